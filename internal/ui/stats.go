package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/amaliris/nailstudio/internal/model"
)

// buildHomePanel creates the home view: a welcome header over the four
// per-category count cards.
func (a *App) buildHomePanel() fyne.CanvasObject {
	a.statsContainer = container.NewGridWithColumns(4)
	a.refreshStats()

	heading := widget.NewLabelWithStyle("Welcome to NailStudio", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	sub := widget.NewLabelWithStyle("Your supplies at a glance", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	return container.NewVBox(
		heading,
		sub,
		widget.NewSeparator(),
		a.statsContainer,
	)
}

// refreshStats re-renders the count cards from the current collection.
// Counts are displayed verbatim from the store.
func (a *App) refreshStats() {
	if a.statsContainer == nil {
		return
	}
	a.statsContainer.RemoveAll()

	counts := a.store.CountByCategory()
	for _, c := range model.Categories() {
		count := widget.NewLabelWithStyle(fmt.Sprintf("%d", counts[c]), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		a.statsContainer.Add(widget.NewCard(c.Label(), "", count))
	}
	a.statsContainer.Refresh()
}
