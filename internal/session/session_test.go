package session

import (
	"testing"

	"github.com/amaliris/nailstudio/internal/model"
)

// mapFinder is a minimal ItemFinder over a fixed set of items.
type mapFinder map[string]model.InventoryItem

func (m mapFinder) Get(id string) (model.InventoryItem, bool) {
	it, ok := m[id]
	return it, ok
}

func TestSelectNail_ValidRange(t *testing.T) {
	s := New(mapFinder{})

	for slot := 1; slot <= NailCount; slot++ {
		if err := s.SelectNail(slot); err != nil {
			t.Errorf("SelectNail(%d) returned error: %v", slot, err)
		}
		got, ok := s.SelectedNail()
		if !ok || got != slot {
			t.Errorf("SelectedNail() = %d, %v; want %d, true", got, ok, slot)
		}
	}
}

func TestSelectNail_OutOfRange(t *testing.T) {
	s := New(mapFinder{})

	for _, slot := range []int{0, -1, 11, 100} {
		if err := s.SelectNail(slot); err == nil {
			t.Errorf("SelectNail(%d) expected error, got nil", slot)
		}
	}
	if _, ok := s.SelectedNail(); ok {
		t.Error("rejected selections must not set a slot")
	}
}

func TestSelectNail_ReplacesPreviousSelection(t *testing.T) {
	s := New(mapFinder{})

	if err := s.SelectNail(3); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectNail(7); err != nil {
		t.Fatal(err)
	}
	got, ok := s.SelectedNail()
	if !ok || got != 7 {
		t.Errorf("SelectedNail() = %d, %v; want 7, true", got, ok)
	}
}

func TestClearNail(t *testing.T) {
	s := New(mapFinder{})
	if err := s.SelectNail(4); err != nil {
		t.Fatal(err)
	}
	s.ClearNail()
	if _, ok := s.SelectedNail(); ok {
		t.Error("expected no selection after ClearNail")
	}
}

func TestApplyItem_RequiresSelection(t *testing.T) {
	finder := mapFinder{"a1": model.InventoryItem{ID: "a1", Category: model.CategoryColor, Type: "Ruby Red"}}
	s := New(finder)

	_, _, err := s.ApplyItem("a1")
	if err != ErrNoNailSelected {
		t.Errorf("expected ErrNoNailSelected, got %v", err)
	}
}

func TestApplyItem_UnknownIDIsSilentNoOp(t *testing.T) {
	s := New(mapFinder{})
	if err := s.SelectNail(2); err != nil {
		t.Fatal(err)
	}

	_, ok, err := s.ApplyItem("no-such-id")
	if err != nil {
		t.Errorf("unknown id must not error, got %v", err)
	}
	if ok {
		t.Error("unknown id must not resolve an application")
	}
}

func TestApplyItem_Message(t *testing.T) {
	finder := mapFinder{
		"a1": model.InventoryItem{ID: "a1", Category: model.CategoryColor, Type: "Ruby Red", Color: "red"},
		"a2": model.InventoryItem{ID: "a2", Category: model.CategoryAccessory, Type: "Rhinestones"},
	}
	s := New(finder)
	if err := s.SelectNail(5); err != nil {
		t.Fatal(err)
	}

	app, ok, err := s.ApplyItem("a1")
	if err != nil || !ok {
		t.Fatalf("ApplyItem failed: ok=%v err=%v", ok, err)
	}
	if got, want := app.Message(), "Applying Ruby Red (red) to nail 5"; got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}

	// Missing color falls back to N/A.
	app, ok, err = s.ApplyItem("a2")
	if err != nil || !ok {
		t.Fatalf("ApplyItem failed: ok=%v err=%v", ok, err)
	}
	if got, want := app.Message(), "Applying Rhinestones (N/A) to nail 5"; got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestApplyItem_SelectionSurvivesApply(t *testing.T) {
	finder := mapFinder{"a1": model.InventoryItem{ID: "a1", Type: "Ruby Red"}}
	s := New(finder)
	if err := s.SelectNail(9); err != nil {
		t.Fatal(err)
	}

	if _, _, err := s.ApplyItem("a1"); err != nil {
		t.Fatal(err)
	}

	got, ok := s.SelectedNail()
	if !ok || got != 9 {
		t.Errorf("selection changed after apply: %d, %v", got, ok)
	}
}

func TestPickerCategory_DefaultsToColor(t *testing.T) {
	s := New(mapFinder{})
	if got := s.PickerCategory(); got != model.CategoryColor {
		t.Errorf("PickerCategory() = %q, want %q", got, model.CategoryColor)
	}
}

func TestSetPickerCategory_IgnoresInvalid(t *testing.T) {
	s := New(mapFinder{})
	s.SetPickerCategory(model.CategoryDesign)
	if got := s.PickerCategory(); got != model.CategoryDesign {
		t.Errorf("PickerCategory() = %q, want %q", got, model.CategoryDesign)
	}

	s.SetPickerCategory("glitter")
	if got := s.PickerCategory(); got != model.CategoryDesign {
		t.Errorf("invalid category must be ignored, got %q", got)
	}
}

func TestEditMode(t *testing.T) {
	s := New(mapFinder{})

	if _, editing := s.EditingID(); editing {
		t.Error("new session must start in add mode")
	}

	s.StartEditing("a1")
	id, editing := s.EditingID()
	if !editing || id != "a1" {
		t.Errorf("EditingID() = %q, %v; want a1, true", id, editing)
	}

	s.StopEditing()
	if _, editing := s.EditingID(); editing {
		t.Error("StopEditing must return to add mode")
	}
}
