// Package session tracks the per-session UI state that is never persisted:
// which nail slot is selected, which picker category is active, and which
// item the inventory form is editing.
package session

import (
	"errors"
	"fmt"

	"github.com/amaliris/nailstudio/internal/model"
)

// NailCount is the number of addressable nail slots on the canvas.
const NailCount = 10

// ErrNoNailSelected is returned when applying an item with no active slot.
var ErrNoNailSelected = errors.New("select a nail first")

// ItemFinder looks up an inventory item by id. The store satisfies this.
type ItemFinder interface {
	Get(id string) (model.InventoryItem, bool)
}

// Session holds all transient state for one run of the application.
// At most one nail slot is selected at any time; selecting a new slot
// replaces the previous selection.
type Session struct {
	items ItemFinder

	nailSlot       int // 0 = none, otherwise 1..NailCount
	pickerCategory model.Category
	editingID      string // empty = the form is in add mode
}

// New creates a Session over the given item lookup. The picker starts on
// the color category, matching first launch of the designer.
func New(items ItemFinder) *Session {
	return &Session{
		items:          items,
		pickerCategory: model.CategoryColor,
	}
}

// ─── Nail selection ────────────────────────────────────────

// SelectNail makes the given slot the single active selection.
func (s *Session) SelectNail(slot int) error {
	if slot < 1 || slot > NailCount {
		return fmt.Errorf("nail slot must be between 1 and %d, got %d", NailCount, slot)
	}
	s.nailSlot = slot
	return nil
}

// SelectedNail returns the active slot, or false if none is selected.
func (s *Session) SelectedNail() (int, bool) {
	if s.nailSlot == 0 {
		return 0, false
	}
	return s.nailSlot, true
}

// ClearNail removes any active selection.
func (s *Session) ClearNail() {
	s.nailSlot = 0
}

// Application describes a resolved "apply item to nail" action. The only
// observable effect of applying is the one-shot message; no per-slot
// association is recorded anywhere.
type Application struct {
	Item model.InventoryItem
	Slot int
}

// Message returns the notification text shown to the user.
func (a Application) Message() string {
	color := a.Item.Color
	if color == "" {
		color = "N/A"
	}
	return fmt.Sprintf("Applying %s (%s) to nail %d", a.Item.Type, color, a.Slot)
}

// ApplyItem resolves applying the item with the given id to the selected
// nail. With no slot selected it returns ErrNoNailSelected. An unknown id
// is a silent no-op: ok is false and there is no error and no visible
// effect.
func (s *Session) ApplyItem(id string) (Application, bool, error) {
	if s.nailSlot == 0 {
		return Application{}, false, ErrNoNailSelected
	}
	item, found := s.items.Get(id)
	if !found {
		return Application{}, false, nil
	}
	return Application{Item: item, Slot: s.nailSlot}, true, nil
}

// ─── Picker category ───────────────────────────────────────

// SetPickerCategory switches the designer filter. Invalid values are
// ignored so the active tab always matches one of the four categories.
func (s *Session) SetPickerCategory(c model.Category) {
	if c.Valid() {
		s.pickerCategory = c
	}
}

// PickerCategory returns the active designer filter category.
func (s *Session) PickerCategory() model.Category {
	return s.pickerCategory
}

// ─── Edit mode ─────────────────────────────────────────────

// StartEditing puts the inventory form into edit mode for the given id.
func (s *Session) StartEditing(id string) {
	s.editingID = id
}

// EditingID returns the id being edited, or false in add mode.
func (s *Session) EditingID() (string, bool) {
	if s.editingID == "" {
		return "", false
	}
	return s.editingID, true
}

// StopEditing resets the form to add mode.
func (s *Session) StopEditing() {
	s.editingID = ""
}
