package ui

import (
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/amaliris/nailstudio/internal/model"
)

// showSettingsDialog edits the app config: theme variant and the category
// the designer picker opens with.
func (a *App) showSettingsDialog() {
	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, nil)
	themeSelect.SetSelected(a.config.Theme)

	categoryNames := make([]string, 0, 4)
	for _, c := range model.Categories() {
		categoryNames = append(categoryNames, string(c))
	}
	categorySelect := widget.NewSelect(categoryNames, nil)
	categorySelect.SetSelected(string(a.config.DefaultPickerCategory))

	form := container.NewGridWithColumns(2,
		widget.NewLabel("Theme"), themeSelect,
		widget.NewLabel("Default picker category"), categorySelect,
	)

	dialog.ShowCustomConfirm("Settings", "Save", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}
		a.config.Theme = themeSelect.Selected
		if c, valid := model.ParseCategory(categorySelect.Selected); valid {
			a.config.DefaultPickerCategory = c
			a.session.SetPickerCategory(c)
		}
		a.ApplyConfiguredTheme()
		if err := a.saveConfig(); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.highlightCategoryTabs()
		a.refreshPicker()
	}, a.window)
}

// ApplyConfiguredTheme installs the studio theme for the configured variant.
func (a *App) ApplyConfiguredTheme() {
	switch a.config.Theme {
	case "light":
		a.fyneApp.Settings().SetTheme(NewNailStudioThemeWithVariant(theme.VariantLight))
	case "dark":
		a.fyneApp.Settings().SetTheme(NewNailStudioThemeWithVariant(theme.VariantDark))
	default:
		a.fyneApp.Settings().SetTheme(NewNailStudioTheme())
	}
}
