package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/amaliris/nailstudio/internal/export"
	"github.com/amaliris/nailstudio/internal/storage"
)

// buildExportPanel creates the export view with one card per output format.
func (a *App) buildExportPanel() fyne.CanvasObject {
	heading := widget.NewLabelWithStyle("Export & Print", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	pdfBtn := widget.NewButtonWithIcon("PDF Catalog", theme.DocumentIcon(), func() {
		a.exportWithDialog("catalog.pdf", func(path string) error {
			return export.ExportPDF(path, a.store.All())
		})
	})
	labelsBtn := widget.NewButtonWithIcon("QR Labels", theme.GridIcon(), func() {
		a.exportWithDialog("labels.pdf", func(path string) error {
			return export.ExportLabels(path, a.store.All())
		})
	})
	xlsxBtn := widget.NewButtonWithIcon("Excel Sheet", theme.FileIcon(), func() {
		a.exportWithDialog("inventory.xlsx", func(path string) error {
			return export.ExportXLSX(path, a.store.All())
		})
	})
	stencilBtn := widget.NewButtonWithIcon("Nail Stencils (DXF)", theme.ContentCutIcon(), func() {
		a.exportWithDialog("nail-stencils.dxf", func(path string) error {
			return export.ExportStencils(path)
		})
	})
	jsonBtn := widget.NewButtonWithIcon("Inventory JSON", theme.DownloadIcon(), func() {
		a.exportInventoryJSON()
	})
	backupBtn := widget.NewButtonWithIcon("Full Backup...", theme.StorageIcon(), func() {
		a.showBackupDialog()
	})

	formats := container.NewGridWithColumns(2,
		widget.NewCard("Catalog", "Printable product catalog grouped by category", pdfBtn),
		widget.NewCard("Labels", "Avery 5160 sticker sheet with QR codes", labelsBtn),
		widget.NewCard("Spreadsheet", "Inventory as an Excel workbook, re-importable", xlsxBtn),
		widget.NewCard("Stencils", "Ten-nail outline drawing for cutting machines", stencilBtn),
		widget.NewCard("Data", "Raw inventory data as JSON", jsonBtn),
		widget.NewCard("Backup", "Everything in one file, including settings", backupBtn),
	)

	return container.NewVBox(
		heading,
		widget.NewSeparator(),
		formats,
		a.buildRecentExports(),
	)
}

func (a *App) buildRecentExports() fyne.CanvasObject {
	if len(a.config.RecentExports) == 0 {
		return container.NewVBox()
	}
	box := container.NewVBox(widget.NewLabelWithStyle("Recent exports", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, path := range a.config.RecentExports {
		box.Add(widget.NewLabel(path))
	}
	return box
}

// exportWithDialog runs the shared save-dialog flow for all file exports
// and records the destination in the recent list.
func (a *App) exportWithDialog(defaultName string, write func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		path := writer.URI().Path()
		if err := write(path); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.config.RememberExport(path)
		if err := a.saveConfig(); err != nil {
			dialog.ShowError(err, a.window)
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

// showBackupDialog offers a full backup or restore of settings plus inventory.
func (a *App) showBackupDialog() {
	backupBtn := widget.NewButton("Create Backup...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()

			path := writer.URI().Path()
			if err := storage.ExportAllData(path, a.config, a.store.All()); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			dialog.ShowInformation("Backup Complete", fmt.Sprintf("Backup saved to %s", path), a.window)
		}, a.window)
		d.SetFileName("nailstudio-backup.json")
		d.Show()
	})

	restoreBtn := widget.NewButton("Restore from Backup...", func() {
		dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			defer reader.Close()

			data, err := storage.ImportAllData(reader.URI().Path())
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			dialog.ShowConfirm("Restore Backup",
				fmt.Sprintf("Replace the current inventory with %d products from the backup?", len(data.Items)),
				func(ok bool) {
					if !ok {
						return
					}
					if err := a.store.Replace(data.Items); err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = data.Config
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(err, a.window)
					}
					a.refreshAll()
				}, a.window)
		}, a.window)
	})

	content := container.NewVBox(
		widget.NewLabel("Back up or restore your settings and inventory."),
		backupBtn,
		restoreBtn,
	)
	dialog.ShowCustom("Backup / Restore", "Close", content, a.window)
}
