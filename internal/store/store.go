// Package store owns the in-memory inventory collection and is the single
// source of truth during a session. Every mutation persists the full
// collection through the injected adapter before returning, so state and
// storage are never observably inconsistent.
package store

import (
	"fmt"
	"strings"

	"github.com/amaliris/nailstudio/internal/model"
)

// Adapter abstracts the durable store the collection is synchronized to.
type Adapter interface {
	LoadItems() ([]model.InventoryItem, error)
	SaveItems(items []model.InventoryItem) error
}

// Fields carries the editable fields of an item through the add and edit
// flows. The form always supplies all five together, so updates replace
// every editable field.
type Fields struct {
	Category model.Category
	Type     string
	Color    string
	Finish   string
	Image    string
}

func (f Fields) validate() error {
	if !f.Category.Valid() || strings.TrimSpace(f.Type) == "" {
		return ErrValidation
	}
	return nil
}

// Store holds the inventory collection in insertion order.
type Store struct {
	adapter Adapter
	items   []model.InventoryItem
}

// New creates a Store backed by the given adapter. Call Load before use.
func New(adapter Adapter) *Store {
	return &Store{adapter: adapter}
}

// Load reads the collection from the adapter. A missing file yields an
// empty collection. Malformed data also falls back to an empty collection,
// with the error returned so the caller can report it instead of silently
// losing or crashing on the stored data.
func (s *Store) Load() error {
	items, err := s.adapter.LoadItems()
	if err != nil {
		s.items = nil
		return fmt.Errorf("load inventory: %w", err)
	}
	s.items = items
	return nil
}

// Add validates the fields, appends a new item with a fresh id, persists,
// and returns the new item's id.
func (s *Store) Add(f Fields) (string, error) {
	if err := f.validate(); err != nil {
		return "", err
	}
	item := model.NewInventoryItem(f.Category, f.Type, f.Color, f.Finish, f.Image)
	s.items = append(s.items, item)
	if err := s.persist(); err != nil {
		return item.ID, err
	}
	return item.ID, nil
}

// Update replaces the editable fields of the item with the given id.
// Returns ErrNotFound if no such item exists.
func (s *Store) Update(id string, f Fields) error {
	if err := f.validate(); err != nil {
		return err
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Category = f.Category
			s.items[i].Type = strings.TrimSpace(f.Type)
			s.items[i].Color = strings.TrimSpace(f.Color)
			s.items[i].Finish = f.Finish
			s.items[i].Image = strings.TrimSpace(f.Image)
			return s.persist()
		}
	}
	return ErrNotFound
}

// Delete removes the item with the given id and persists. Deleting an id
// that is not present is a no-op. User confirmation happens in the view
// layer before this is called.
func (s *Store) Delete(id string) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// Get returns the item with the given id.
func (s *Store) Get(id string) (model.InventoryItem, bool) {
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return model.InventoryItem{}, false
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []model.InventoryItem {
	out := make([]model.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

// FilterByCategory returns the items of one category, insertion order
// preserved. No side effects.
func (s *Store) FilterByCategory(c model.Category) []model.InventoryItem {
	var out []model.InventoryItem
	for _, it := range s.items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}

// CountByCategory maps each of the four fixed categories to its item count,
// zero included.
func (s *Store) CountByCategory() map[model.Category]int {
	counts := make(map[model.Category]int, 4)
	for _, c := range model.Categories() {
		counts[c] = 0
	}
	for _, it := range s.items {
		counts[it.Category]++
	}
	return counts
}

// Len returns the number of items in the collection.
func (s *Store) Len() int {
	return len(s.items)
}

// Replace swaps in a whole new collection (merge import, backup restore)
// and persists it.
func (s *Store) Replace(items []model.InventoryItem) error {
	s.items = items
	return s.persist()
}

// persist writes the full collection through the adapter. On failure the
// in-memory collection is kept as-is; the next successful mutation writes
// everything again.
func (s *Store) persist() error {
	if err := s.adapter.SaveItems(s.All()); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	return nil
}
