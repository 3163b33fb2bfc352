package ui

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/amaliris/nailstudio/internal/model"
	"github.com/amaliris/nailstudio/internal/store"
)

// finishOptions are the finish labels offered by the product form. Free
// text is not required here; the original form uses a fixed dropdown too.
var finishOptions = []string{"", "glossy", "matte", "shimmer", "chrome", "holographic"}

// inventoryForm groups the entry widgets of the add/edit product form.
type inventoryForm struct {
	title          *widget.Label
	categorySelect *widget.Select
	typeEntry      *widget.Entry
	colorEntry     *widget.Entry
	finishSelect   *widget.Select
	imageEntry     *widget.Entry
}

// buildInventoryPanel creates the management view: the product form on top
// of the full inventory grid.
func (a *App) buildInventoryPanel() fyne.CanvasObject {
	a.form = a.buildForm()
	a.inventoryContainer = container.NewGridWithColumns(3)
	a.refreshInventoryList()

	return container.NewBorder(
		a.buildFormCard(),
		nil, nil, nil,
		container.NewVScroll(a.inventoryContainer),
	)
}

func (a *App) buildForm() *inventoryForm {
	f := &inventoryForm{
		title:     widget.NewLabelWithStyle("Add Product", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		typeEntry: widget.NewEntry(),
	}

	categoryNames := make([]string, 0, 4)
	for _, c := range model.Categories() {
		categoryNames = append(categoryNames, string(c))
	}
	f.categorySelect = widget.NewSelect(categoryNames, nil)

	f.typeEntry.SetPlaceHolder("Product name")

	f.colorEntry = widget.NewEntry()
	f.colorEntry.SetPlaceHolder("e.g. ruby red (optional)")

	f.finishSelect = widget.NewSelect(finishOptions, nil)

	f.imageEntry = widget.NewEntry()
	f.imageEntry.SetPlaceHolder("Image path or URL (optional)")

	return f
}

func (a *App) buildFormCard() fyne.CanvasObject {
	f := a.form

	saveBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		a.submitForm()
	})
	saveBtn.Importance = widget.HighImportance

	cancelBtn := widget.NewButton("Cancel", func() {
		a.resetForm()
	})

	grid := container.NewGridWithColumns(2,
		widget.NewLabel("Category"), f.categorySelect,
		widget.NewLabel("Product Name"), f.typeEntry,
		widget.NewLabel("Color"), f.colorEntry,
		widget.NewLabel("Finish"), f.finishSelect,
		widget.NewLabel("Image"), f.imageEntry,
	)

	return container.NewVBox(
		f.title,
		grid,
		container.NewHBox(saveBtn, cancelBtn),
		widget.NewSeparator(),
	)
}

// submitForm routes to update when an item is being edited, otherwise add.
// On success the form is cleared and editing mode reset.
func (a *App) submitForm() {
	f := a.form
	category, _ := model.ParseCategory(f.categorySelect.Selected)
	fields := store.Fields{
		Category: category,
		Type:     f.typeEntry.Text,
		Color:    f.colorEntry.Text,
		Finish:   f.finishSelect.Selected,
		Image:    f.imageEntry.Text,
	}

	var err error
	if id, editing := a.session.EditingID(); editing {
		err = a.store.Update(id, fields)
	} else {
		_, err = a.store.Add(fields)
	}
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	a.resetForm()
	a.refreshAll()
}

// resetForm clears every field and returns the form to add mode.
func (a *App) resetForm() {
	f := a.form
	if f == nil {
		return
	}
	f.categorySelect.ClearSelected()
	f.typeEntry.SetText("")
	f.colorEntry.SetText("")
	f.finishSelect.ClearSelected()
	f.imageEntry.SetText("")
	f.title.SetText("Add Product")
	a.session.StopEditing()
}

// editItem populates the form with the item's current values and switches
// the session into editing mode.
func (a *App) editItem(id string) {
	item, ok := a.store.Get(id)
	if !ok {
		return
	}
	f := a.form
	f.categorySelect.SetSelected(string(item.Category))
	f.typeEntry.SetText(item.Type)
	f.colorEntry.SetText(item.Color)
	f.finishSelect.SetSelected(item.Finish)
	f.imageEntry.SetText(item.Image)
	f.title.SetText("Edit Product")
	a.session.StartEditing(id)
	a.tabs.SelectIndex(tabInventory)
}

// deleteItem asks for confirmation, then removes the item.
func (a *App) deleteItem(id string) {
	dialog.ShowConfirm("Delete Product", "Delete this product?", func(ok bool) {
		if !ok {
			return
		}
		if err := a.store.Delete(id); err != nil {
			dialog.ShowError(err, a.window)
		}
		if editingID, editing := a.session.EditingID(); editing && editingID == id {
			a.resetForm()
		}
		a.refreshAll()
	}, a.window)
}

// refreshInventoryList re-renders the management grid from the full
// collection. Rendering is a pure function of the current store state.
func (a *App) refreshInventoryList() {
	if a.inventoryContainer == nil {
		return
	}
	a.inventoryContainer.RemoveAll()

	items := a.store.All()
	if len(items) == 0 {
		a.inventoryContainer.Add(widget.NewLabel("No products yet. Add your first one above."))
		a.inventoryContainer.Refresh()
		return
	}

	for _, item := range items {
		a.inventoryContainer.Add(a.buildItemCard(item))
	}
	a.inventoryContainer.Refresh()
}

// buildItemCard creates one management card with edit and delete actions
// bound to the item's id.
func (a *App) buildItemCard(item model.InventoryItem) fyne.CanvasObject {
	id := item.ID

	body := container.NewVBox()
	if img := loadItemImage(item); img != nil {
		body.Add(img)
	}
	category := widget.NewLabel(item.Category.Label())
	category.TextStyle = fyne.TextStyle{Italic: true}
	body.Add(category)
	if summary := item.Summary(); summary != "" {
		body.Add(widget.NewLabel(summary))
	}

	editBtn := widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), func() {
		a.editItem(id)
	})
	deleteBtn := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), func() {
		a.deleteItem(id)
	})
	body.Add(container.NewHBox(editBtn, deleteBtn))

	return widget.NewCard(item.Type, "", body)
}

// loadItemImage returns a preview image for the item if its reference is a
// readable local file, nil otherwise. Remote URLs are shown as text only.
func loadItemImage(item model.InventoryItem) fyne.CanvasObject {
	if !item.HasImage() {
		return nil
	}
	if _, err := os.Stat(item.Image); err != nil {
		return nil
	}
	img := canvas.NewImageFromFile(item.Image)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(120, 90))
	return img
}

// itemCardSubtitle formats the category and summary for compact listings.
func itemCardSubtitle(item model.InventoryItem) string {
	if summary := item.Summary(); summary != "" {
		return fmt.Sprintf("%s — %s", item.Category.Label(), summary)
	}
	return item.Category.Label()
}
