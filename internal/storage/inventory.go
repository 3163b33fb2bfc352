// Package storage persists application data as JSON files under the user's
// home directory (~/.nailstudio/). Writes always replace the whole file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amaliris/nailstudio/internal/model"
)

// ErrCorruptData is wrapped into errors returned when a stored file exists
// but cannot be decoded. Callers report it and fall back to an empty
// collection rather than crashing or silently discarding the file.
var ErrCorruptData = errors.New("stored inventory data is malformed")

// DefaultInventoryPath returns the default file path for the inventory file,
// located at ~/.nailstudio/inventory.json.
func DefaultInventoryPath() string {
	return filepath.Join(DefaultConfigDir(), "inventory.json")
}

// SaveItems writes the inventory collection to the specified JSON file,
// overwriting any prior content. It creates parent directories if needed.
func SaveItems(path string, items []model.InventoryItem) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadItems reads the inventory collection from the specified JSON file.
// A missing file yields an empty collection and no error. A file that
// exists but does not decode yields an error wrapping ErrCorruptData.
func LoadItems(path string) ([]model.InventoryItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.InventoryItem{}, nil
		}
		return nil, err
	}
	var items []model.InventoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if items == nil {
		items = []model.InventoryItem{}
	}
	return items, nil
}

// FileStore adapts the package-level save/load functions to the
// store.Adapter interface for a fixed path.
type FileStore struct {
	Path string
}

func (fs FileStore) LoadItems() ([]model.InventoryItem, error) {
	return LoadItems(fs.Path)
}

func (fs FileStore) SaveItems(items []model.InventoryItem) error {
	return SaveItems(fs.Path, items)
}

// ExportItems exports the collection to a user-specified JSON file.
func ExportItems(path string, items []model.InventoryItem) error {
	return SaveItems(path, items)
}

// ImportItems reads a collection from a user-specified JSON file and merges
// it with the existing one. Items whose id is already present are skipped.
func ImportItems(path string, existing []model.InventoryItem) ([]model.InventoryItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported []model.InventoryItem
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	seen := make(map[string]bool, len(existing))
	for _, it := range existing {
		seen[it.ID] = true
	}
	for _, it := range imported {
		if !seen[it.ID] {
			existing = append(existing, it)
			seen[it.ID] = true
		}
	}
	return existing, nil
}
