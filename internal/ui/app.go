package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/amaliris/nailstudio/internal/importer"
	"github.com/amaliris/nailstudio/internal/model"
	"github.com/amaliris/nailstudio/internal/session"
	"github.com/amaliris/nailstudio/internal/storage"
	"github.com/amaliris/nailstudio/internal/store"
)

// Tab indices in the order Build assembles them.
const (
	tabHome = iota
	tabDesigner
	tabInventory
	tabGallery
	tabExport
)

// App holds all application state and UI references. The store and session
// are injected by main and shared by every view; views never keep their own
// copy of the collection.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	store   *store.Store
	session *session.Session
	config  model.AppConfig

	tabs *container.AppTabs

	// UI references for dynamic updates
	statsContainer     *fyne.Container
	inventoryContainer *fyne.Container
	pickerContainer    *fyne.Container
	galleryContainer   *fyne.Container
	categoryButtons    map[model.Category]*categoryTab
	form               *inventoryForm
}

// NewApp wires the views over an already-loaded store.
func NewApp(fyneApp fyne.App, window fyne.Window, st *store.Store, sess *session.Session, config model.AppConfig) *App {
	return &App{
		fyneApp: fyneApp,
		window:  window,
		store:   st,
		session: sess,
		config:  config,
	}
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	homeTab := container.NewTabItem("Home", a.buildHomePanel())
	designerTab := container.NewTabItem("Designer", a.buildDesignerPanel())
	inventoryTab := container.NewTabItem("Inventory", a.buildInventoryPanel())
	galleryTab := container.NewTabItem("Gallery", a.buildGalleryPanel())
	exportTab := container.NewTabItem("Export", a.buildExportPanel())

	a.tabs = container.NewAppTabs(homeTab, designerTab, inventoryTab, galleryTab, exportTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	// Entering a view re-renders it from the current collection, the same
	// way page navigation re-renders in the original flow.
	a.tabs.OnSelected = func(item *container.TabItem) {
		switch item {
		case homeTab:
			a.refreshStats()
		case designerTab:
			a.refreshPicker()
		case inventoryTab:
			a.refreshInventoryList()
		case galleryTab:
			a.refreshGallery()
		}
	}

	a.refreshAll()
	return a.tabs
}

// refreshAll re-renders every derived view after a store mutation.
func (a *App) refreshAll() {
	a.refreshStats()
	a.refreshInventoryList()
	a.refreshPicker()
	a.refreshGallery()
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Import Items from CSV...", func() {
			a.importCSV()
		}),
		fyne.NewMenuItem("Import Items from Excel...", func() {
			a.importExcel()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Inventory JSON...", func() {
			a.importInventoryJSON()
		}),
		fyne.NewMenuItem("Export Inventory JSON...", func() {
			a.exportInventoryJSON()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Backup / Restore...", func() {
			a.showBackupDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Inventory", func() {
			a.clearInventory()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About NailStudio",
		"NailStudio — Nail Art Inventory & Designer\n\n"+
			"A desktop companion for managing nail-art supplies\n"+
			"and previewing product choices on a ten-nail canvas.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

func (a *App) clearInventory() {
	if a.store.Len() == 0 {
		dialog.ShowInformation("Nothing to clear", "The inventory is already empty.", a.window)
		return
	}
	dialog.ShowConfirm("Clear Inventory",
		fmt.Sprintf("Delete all %d products? This cannot be undone.", a.store.Len()),
		func(ok bool) {
			if !ok {
				return
			}
			if err := a.store.Replace([]model.InventoryItem{}); err != nil {
				dialog.ShowError(err, a.window)
			}
			a.resetForm()
			a.refreshAll()
		},
		a.window,
	)
}

// ─── Bulk import ───────────────────────────────────────────

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importer.ImportCSV(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := importer.ImportExcel(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result importer.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	if len(result.Items) == 0 {
		return
	}

	merged := append(a.store.All(), result.Items...)
	if err := a.store.Replace(merged); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.refreshAll()

	msg := fmt.Sprintf("Successfully imported %d products.", len(result.Items))
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

func (a *App) importInventoryJSON() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		merged, err := storage.ImportItems(reader.URI().Path(), a.store.All())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if err := a.store.Replace(merged); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.refreshAll()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Inventory now contains %d products.", a.store.Len()),
			a.window)
	}, a.window)
}

func (a *App) exportInventoryJSON() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := storage.ExportItems(writer.URI().Path(), a.store.All()); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Inventory exported to %s", writer.URI().Path()),
				a.window)
		}
	}, a.window)
	d.SetFileName("inventory.json")
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return storage.SaveAppConfig(storage.DefaultConfigPath(), a.config)
}
