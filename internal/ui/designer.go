package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/amaliris/nailstudio/internal/model"
	"github.com/amaliris/nailstudio/internal/session"
	"github.com/amaliris/nailstudio/internal/ui/widgets"
)

// categoryTab is one button of the picker's category row, remembering which
// category it switches to.
type categoryTab struct {
	category model.Category
	button   *widget.Button
}

// buildDesignerPanel creates the designer view: the ten-nail canvas on top,
// the category row and product picker below.
func (a *App) buildDesignerPanel() fyne.CanvasObject {
	nailCanvas := widgets.NewNailCanvas(func(slot int) {
		if err := a.session.SelectNail(slot); err != nil {
			dialog.ShowError(err, a.window)
		}
	})

	a.categoryButtons = make(map[model.Category]*categoryTab, len(model.Categories()))
	categoryRow := container.NewHBox()
	for _, c := range model.Categories() {
		c := c
		tab := &categoryTab{category: c}
		tab.button = widget.NewButton(c.Label(), func() {
			a.session.SetPickerCategory(c)
			a.highlightCategoryTabs()
			a.refreshPicker()
		})
		a.categoryButtons[c] = tab
		categoryRow.Add(tab.button)
	}
	a.highlightCategoryTabs()

	a.pickerContainer = container.NewGridWithColumns(4)
	a.refreshPicker()

	hint := widget.NewLabelWithStyle("Tap a nail, then tap a product to apply it.",
		fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	return container.NewBorder(
		container.NewVBox(
			container.NewCenter(nailCanvas),
			hint,
			widget.NewSeparator(),
			container.NewCenter(categoryRow),
		),
		nil, nil, nil,
		container.NewVScroll(a.pickerContainer),
	)
}

// highlightCategoryTabs marks exactly the active category button.
func (a *App) highlightCategoryTabs() {
	active := a.session.PickerCategory()
	for c, tab := range a.categoryButtons {
		if c == active {
			tab.button.Importance = widget.HighImportance
		} else {
			tab.button.Importance = widget.MediumImportance
		}
		tab.button.Refresh()
	}
}

// refreshPicker re-renders the product picker for the active category.
func (a *App) refreshPicker() {
	if a.pickerContainer == nil {
		return
	}
	a.pickerContainer.RemoveAll()

	items := a.store.FilterByCategory(a.session.PickerCategory())
	if len(items) == 0 {
		a.pickerContainer.Add(widget.NewLabel("No products in this category yet."))
		a.pickerContainer.Refresh()
		return
	}

	for _, item := range items {
		a.pickerContainer.Add(a.buildPickerCard(item))
	}
	a.pickerContainer.Refresh()
}

// buildPickerCard creates one picker entry that applies the item on tap.
func (a *App) buildPickerCard(item model.InventoryItem) fyne.CanvasObject {
	id := item.ID

	applyBtn := widget.NewButton("Apply", func() {
		a.applyItem(id)
	})

	body := container.NewVBox()
	if img := loadItemImage(item); img != nil {
		body.Add(img)
	}
	if summary := item.Summary(); summary != "" {
		body.Add(widget.NewLabel(summary))
	}
	body.Add(applyBtn)

	return widget.NewCard(item.Type, "", body)
}

// applyItem runs the apply flow: it requires a selected nail and shows the
// confirmation notification. The nail rendering itself never changes.
func (a *App) applyItem(id string) {
	app, ok, err := a.session.ApplyItem(id)
	if err != nil {
		if errors.Is(err, session.ErrNoNailSelected) {
			dialog.ShowInformation("Select a Nail", "Please select a nail first.", a.window)
			return
		}
		dialog.ShowError(err, a.window)
		return
	}
	if !ok {
		return
	}
	dialog.ShowInformation("Applied", app.Message(), a.window)
}
