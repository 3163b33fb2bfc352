package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaliris/nailstudio/internal/model"
)

// fakeAdapter records every persisted collection in memory.
type fakeAdapter struct {
	items   []model.InventoryItem
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeAdapter) LoadItems() ([]model.InventoryItem, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.items, nil
}

func (f *fakeAdapter) SaveItems(items []model.InventoryItem) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.items = items
	f.saves++
	return nil
}

func newTestStore(t *testing.T) (*Store, *fakeAdapter) {
	t.Helper()
	adapter := &fakeAdapter{}
	st := New(adapter)
	require.NoError(t, st.Load())
	return st, adapter
}

func TestAdd_GrowsCollection(t *testing.T) {
	st, adapter := newTestStore(t)

	id, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red", Color: "red", Finish: "glossy"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Equal(t, 1, st.Len())

	item, ok := st.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Ruby Red", item.Type)
	assert.Equal(t, model.CategoryColor, item.Category)
	assert.Equal(t, "red", item.Color)
	assert.Equal(t, "glossy", item.Finish)

	assert.Equal(t, 1, adapter.saves, "add should persist once")
}

func TestAdd_GeneratesUniqueIDs(t *testing.T) {
	st, _ := newTestStore(t)

	id1, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red"})
	require.NoError(t, err)
	id2, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red"})
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, st.Len())
}

func TestAdd_RequiresCategoryAndName(t *testing.T) {
	st, adapter := newTestStore(t)

	_, err := st.Add(Fields{Category: "", Type: "Ruby Red"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = st.Add(Fields{Category: model.CategoryColor, Type: "   "})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = st.Add(Fields{Category: "polish", Type: "Ruby Red"})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, 0, st.Len(), "rejected adds must leave the collection unchanged")
	assert.Equal(t, 0, adapter.saves, "rejected adds must not persist")
}

func TestAdd_OptionalFieldsMayBeEmpty(t *testing.T) {
	st, _ := newTestStore(t)

	id, err := st.Add(Fields{Category: model.CategoryAccessory, Type: "Rhinestones"})
	require.NoError(t, err)

	item, ok := st.Get(id)
	require.True(t, ok)
	assert.Empty(t, item.Color)
	assert.Empty(t, item.Finish)
	assert.Empty(t, item.Image)
}

func TestUpdate_ReplacesEditableFields(t *testing.T) {
	st, _ := newTestStore(t)

	id, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red", Color: "red", Finish: "glossy"})
	require.NoError(t, err)
	otherID, err := st.Add(Fields{Category: model.CategoryLayer, Type: "Top Coat"})
	require.NoError(t, err)

	err = st.Update(id, Fields{Category: model.CategoryDesign, Type: "Cherry Blossom", Color: "pink", Finish: "matte"})
	require.NoError(t, err)

	item, ok := st.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, item.ID, "update must not change the id")
	assert.Equal(t, model.CategoryDesign, item.Category)
	assert.Equal(t, "Cherry Blossom", item.Type)
	assert.Equal(t, "pink", item.Color)
	assert.Equal(t, "matte", item.Finish)

	other, ok := st.Get(otherID)
	require.True(t, ok)
	assert.Equal(t, "Top Coat", other.Type, "other items must be unaffected")
	assert.Equal(t, 2, st.Len())
}

func TestUpdate_MissingID(t *testing.T) {
	st, adapter := newTestStore(t)

	_, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red"})
	require.NoError(t, err)
	saves := adapter.saves

	err = st.Update("no-such-id", Fields{Category: model.CategoryColor, Type: "Something"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, saves, adapter.saves, "failed update must not persist")
}

func TestUpdate_ValidatesFields(t *testing.T) {
	st, _ := newTestStore(t)

	id, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red"})
	require.NoError(t, err)

	err = st.Update(id, Fields{Category: model.CategoryColor, Type: ""})
	assert.ErrorIs(t, err, ErrValidation)

	item, _ := st.Get(id)
	assert.Equal(t, "Ruby Red", item.Type, "rejected update must leave the item unchanged")
}

func TestDelete_RemovesItem(t *testing.T) {
	st, _ := newTestStore(t)

	id, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red"})
	require.NoError(t, err)
	keptID, err := st.Add(Fields{Category: model.CategoryColor, Type: "Coral Crush"})
	require.NoError(t, err)

	require.NoError(t, st.Delete(id))

	_, ok := st.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, 1, st.CountByCategory()[model.CategoryColor])

	_, ok = st.Get(keptID)
	assert.True(t, ok)
}

func TestDelete_MissingIDIsNoOp(t *testing.T) {
	st, adapter := newTestStore(t)

	_, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red"})
	require.NoError(t, err)
	saves := adapter.saves

	require.NoError(t, st.Delete("no-such-id"))
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, saves, adapter.saves)
}

func TestFilterByCategory_PreservesInsertionOrder(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red"})
	require.NoError(t, err)
	_, err = st.Add(Fields{Category: model.CategoryLayer, Type: "Base Coat"})
	require.NoError(t, err)
	_, err = st.Add(Fields{Category: model.CategoryColor, Type: "Coral Crush"})
	require.NoError(t, err)

	colors := st.FilterByCategory(model.CategoryColor)
	require.Len(t, colors, 2)
	assert.Equal(t, "Ruby Red", colors[0].Type)
	assert.Equal(t, "Coral Crush", colors[1].Type)

	assert.Empty(t, st.FilterByCategory(model.CategoryDesign))
	assert.Equal(t, 3, st.Len(), "filtering must not mutate the collection")
}

func TestCountByCategory_IncludesZeroCounts(t *testing.T) {
	st, _ := newTestStore(t)

	counts := st.CountByCategory()
	require.Len(t, counts, 4)
	for _, c := range model.Categories() {
		assert.Equal(t, 0, counts[c])
	}

	_, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red"})
	require.NoError(t, err)
	_, err = st.Add(Fields{Category: model.CategoryColor, Type: "Coral Crush"})
	require.NoError(t, err)
	_, err = st.Add(Fields{Category: model.CategoryAccessory, Type: "Rhinestones"})
	require.NoError(t, err)

	counts = st.CountByCategory()
	assert.Equal(t, 2, counts[model.CategoryColor])
	assert.Equal(t, 0, counts[model.CategoryLayer])
	assert.Equal(t, 1, counts[model.CategoryAccessory])
	assert.Equal(t, 0, counts[model.CategoryDesign])
}

func TestLoad_AdapterError(t *testing.T) {
	boom := errors.New("disk on fire")
	st := New(&fakeAdapter{loadErr: boom})

	err := st.Load()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, st.Len(), "a failed load must leave an empty collection")
}

func TestLoad_RestoresPersistedCollection(t *testing.T) {
	adapter := &fakeAdapter{}
	st := New(adapter)
	require.NoError(t, st.Load())

	id, err := st.Add(Fields{Category: model.CategoryDesign, Type: "Leopard Print", Finish: "matte"})
	require.NoError(t, err)

	// A second store over the same adapter sees the persisted state.
	st2 := New(adapter)
	require.NoError(t, st2.Load())

	item, ok := st2.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Leopard Print", item.Type)
}

func TestPersistFailure_KeepsInMemoryChange(t *testing.T) {
	adapter := &fakeAdapter{}
	st := New(adapter)
	require.NoError(t, st.Load())

	adapter.saveErr = errors.New("read-only filesystem")
	id, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red"})
	assert.Error(t, err)
	require.NotEmpty(t, id)

	// The item survives in memory so the user does not lose work.
	_, ok := st.Get(id)
	assert.True(t, ok)

	// Once writing works again, the next mutation persists everything.
	adapter.saveErr = nil
	_, err = st.Add(Fields{Category: model.CategoryLayer, Type: "Top Coat"})
	require.NoError(t, err)
	assert.Len(t, adapter.items, 2)
}

func TestReplace_SwapsWholeCollection(t *testing.T) {
	st, adapter := newTestStore(t)

	_, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red"})
	require.NoError(t, err)

	replacement := []model.InventoryItem{
		model.NewInventoryItem(model.CategoryDesign, "French Tip", "", "", ""),
	}
	require.NoError(t, st.Replace(replacement))

	assert.Equal(t, 1, st.Len())
	assert.Equal(t, "French Tip", st.All()[0].Type)
	assert.Len(t, adapter.items, 1)
}

func TestAll_ReturnsCopy(t *testing.T) {
	st, _ := newTestStore(t)

	_, err := st.Add(Fields{Category: model.CategoryColor, Type: "Ruby Red"})
	require.NoError(t, err)

	items := st.All()
	items[0].Type = "Mutated"

	fresh := st.All()
	assert.Equal(t, "Ruby Red", fresh[0].Type)
}
