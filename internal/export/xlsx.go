package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/amaliris/nailstudio/internal/model"
)

// sheetName is the single worksheet the inventory is written to.
const sheetName = "Inventory"

// ExportXLSX writes the inventory to an Excel workbook with one row per
// item. The column layout matches what the importer recognizes, so an
// exported sheet can be re-imported as-is.
func ExportXLSX(path string, items []model.InventoryItem) error {
	if len(items) == 0 {
		return fmt.Errorf("no items to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to set up worksheet: %w", err)
	}

	headers := []string{"Category", "Name", "Color", "Finish", "Image"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for row, it := range items {
		values := []string{string(it.Category), it.Type, it.Color, it.Finish, it.Image}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	// Widen the name and image columns for readability
	if err := f.SetColWidth(sheetName, "B", "B", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "E", "E", 40); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
