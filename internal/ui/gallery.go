package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// buildGalleryPanel creates the gallery view: a read-only grid of every
// product that carries an image reference.
func (a *App) buildGalleryPanel() fyne.CanvasObject {
	a.galleryContainer = container.NewGridWithColumns(4)
	a.refreshGallery()

	heading := widget.NewLabelWithStyle("Gallery", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	return container.NewBorder(
		container.NewVBox(heading, widget.NewSeparator()),
		nil, nil, nil,
		container.NewVScroll(a.galleryContainer),
	)
}

func (a *App) refreshGallery() {
	if a.galleryContainer == nil {
		return
	}
	a.galleryContainer.RemoveAll()

	shown := 0
	for _, item := range a.store.All() {
		if !item.HasImage() {
			continue
		}
		body := container.NewVBox()
		if img := loadItemImage(item); img != nil {
			body.Add(img)
		}
		body.Add(widget.NewLabel(itemCardSubtitle(item)))
		a.galleryContainer.Add(widget.NewCard(item.Type, "", body))
		shown++
	}

	if shown == 0 {
		a.galleryContainer.Add(widget.NewLabel("No product photos yet. Add image paths in the inventory."))
	}
	a.galleryContainer.Refresh()
}
