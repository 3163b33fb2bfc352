// Package export provides functionality for exporting the inventory to
// various file formats: a PDF catalog, QR-coded labels, a spreadsheet, and
// nail stencil outlines.
package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/amaliris/nailstudio/internal/model"
)

// Page layout constants (A4 portrait in mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	rowHeight    = 7.0
	headerHeight = 12.0
)

// catalogColumns defines the table layout for the catalog pages.
var catalogColumns = []struct {
	title string
	width float64
}{
	{"Product", 70},
	{"Color", 40},
	{"Finish", 35},
	{"Image", 35},
}

// ExportPDF generates a PDF product catalog of the inventory. Items are
// grouped by category, one section per category in canonical order, with a
// closing summary of per-category counts.
func ExportPDF(path string, items []model.InventoryItem) error {
	if len(items) == 0 {
		return fmt.Errorf("no items to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.AddPage()

	// Document title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Nail Art Supply Catalog", "", 1, "L", false, 0, "")

	counts := make(map[model.Category]int, 4)
	for _, c := range model.Categories() {
		section := filterCategory(items, c)
		counts[c] = len(section)
		if len(section) == 0 {
			continue
		}
		renderCategorySection(pdf, c, section)
	}

	renderCatalogSummary(pdf, len(items), counts)

	return pdf.OutputFileAndClose(path)
}

func filterCategory(items []model.InventoryItem, c model.Category) []model.InventoryItem {
	var out []model.InventoryItem
	for _, it := range items {
		if it.Category == c {
			out = append(out, it)
		}
	}
	return out
}

// renderCategorySection draws one category heading plus its item table.
func renderCategorySection(pdf *fpdf.Fpdf, c model.Category, items []model.InventoryItem) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(120, 60, 90)
	pdf.SetX(marginLeft)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 8, fmt.Sprintf("%s (%d)", c.Label(), len(items)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// Table header
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(245, 230, 237)
	pdf.SetX(marginLeft)
	for _, col := range catalogColumns {
		pdf.CellFormat(col.width, rowHeight, col.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range items {
		image := "-"
		if it.HasImage() {
			image = "yes"
		}
		cells := []string{it.Type, it.Color, it.Finish, image}
		pdf.SetX(marginLeft)
		for i, col := range catalogColumns {
			text := cells[i]
			// Truncate cell text that would overflow its column
			for len(text) > 0 && pdf.GetStringWidth(text) > col.width-2 {
				text = text[:len(text)-1]
			}
			pdf.CellFormat(col.width, rowHeight, text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(rowHeight)
	}
}

// renderCatalogSummary draws the per-category count block at the end.
func renderCatalogSummary(pdf *fpdf.Fpdf, total int, counts map[model.Category]int) {
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetX(marginLeft)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 7, "Summary", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, c := range model.Categories() {
		pdf.SetX(marginLeft)
		pdf.CellFormat(60, 5.5, fmt.Sprintf("%s: %d", c.Label(), counts[c]), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetX(marginLeft)
	pdf.CellFormat(60, 6, fmt.Sprintf("Total items: %d", total), "", 1, "L", false, 0, "")
}
