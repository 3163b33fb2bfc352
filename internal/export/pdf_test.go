package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amaliris/nailstudio/internal/model"
)

// buildTestItems creates a realistic inventory spanning all four categories.
func buildTestItems() []model.InventoryItem {
	return []model.InventoryItem{
		{ID: "c1", Category: model.CategoryColor, Type: "Ruby Red", Color: "red", Finish: "glossy"},
		{ID: "c2", Category: model.CategoryColor, Type: "Coral Crush", Color: "coral", Finish: "shimmer"},
		{ID: "l1", Category: model.CategoryLayer, Type: "Top Coat"},
		{ID: "a1", Category: model.CategoryAccessory, Type: "Rhinestones", Color: "silver"},
		{ID: "d1", Category: model.CategoryDesign, Type: "Leopard Print", Finish: "matte", Image: "leopard.png"},
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.pdf")

	err := ExportPDF(path, buildTestItems())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A catalog with four sections plus a summary should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyInventory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportPDF(path, nil)
	if err == nil {
		t.Fatal("expected error for empty inventory, got nil")
	}
}

func TestExportPDF_SingleCategory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.pdf")

	items := []model.InventoryItem{
		{ID: "c1", Category: model.CategoryColor, Type: "Ruby Red", Color: "red"},
	}
	if err := ExportPDF(path, items); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
}

func TestExportPDF_LongProductNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "long.pdf")

	items := []model.InventoryItem{
		{
			ID:       "c1",
			Category: model.CategoryColor,
			Type:     "An Extremely Long Product Name That Would Overflow The Catalog Table Column If Not Truncated",
			Color:    "iridescent ultramarine with holographic microshimmer",
		},
	}
	if err := ExportPDF(path, items); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
}
