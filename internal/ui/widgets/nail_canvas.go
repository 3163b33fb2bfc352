package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/amaliris/nailstudio/internal/session"
)

// Nail shape colors, matching the soft rose look of the designer page.
var (
	nailFill       = color.NRGBA{R: 245, G: 198, B: 207, A: 255}
	nailStroke     = color.NRGBA{R: 216, G: 165, B: 178, A: 255}
	selectedStroke = color.NRGBA{R: 186, G: 74, B: 110, A: 255}
	slotNumberGray = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
)

// Layout constants in logical pixels.
const (
	nailWidth  float32 = 44
	nailHeight float32 = 72
	nailGap    float32 = 10
	handGap    float32 = 30 // extra gap between the two hands (slots 5 and 6)
	labelSpace float32 = 18 // space under each nail for the slot number
)

// NailCanvas renders the ten nail slots as two hands of five. Tapping a
// nail makes it the single active selection and highlights it.
type NailCanvas struct {
	widget.BaseWidget

	selected int // 0 = none
	OnSelect func(slot int)
}

// NewNailCanvas creates an unselected ten-nail canvas.
func NewNailCanvas(onSelect func(slot int)) *NailCanvas {
	nc := &NailCanvas{OnSelect: onSelect}
	nc.ExtendBaseWidget(nc)
	return nc
}

// SetSelected highlights the given slot (0 clears the highlight).
func (nc *NailCanvas) SetSelected(slot int) {
	nc.selected = slot
	nc.Refresh()
}

// Selected returns the highlighted slot, 0 if none.
func (nc *NailCanvas) Selected() int {
	return nc.selected
}

// slotOrigin returns the top-left corner of the slot's nail shape.
// Slots are numbered 1..10 left to right.
func slotOrigin(slot int) fyne.Position {
	i := float32(slot - 1)
	x := i * (nailWidth + nailGap)
	if slot > 5 {
		x += handGap
	}
	return fyne.NewPos(x, 0)
}

// Tapped resolves which slot was hit and selects it.
func (nc *NailCanvas) Tapped(ev *fyne.PointEvent) {
	for slot := 1; slot <= session.NailCount; slot++ {
		origin := slotOrigin(slot)
		if ev.Position.X >= origin.X && ev.Position.X <= origin.X+nailWidth &&
			ev.Position.Y >= origin.Y && ev.Position.Y <= origin.Y+nailHeight {
			nc.selected = slot
			nc.Refresh()
			if nc.OnSelect != nil {
				nc.OnSelect(slot)
			}
			return
		}
	}
}

func (nc *NailCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newNailCanvasRenderer(nc)
}

type nailCanvasRenderer struct {
	nc      *NailCanvas
	objects []fyne.CanvasObject
}

func newNailCanvasRenderer(nc *NailCanvas) *nailCanvasRenderer {
	r := &nailCanvasRenderer{nc: nc}
	r.rebuild()
	return r
}

func (r *nailCanvasRenderer) rebuild() {
	r.objects = nil

	for slot := 1; slot <= session.NailCount; slot++ {
		origin := slotOrigin(slot)

		shape := canvas.NewRectangle(nailFill)
		shape.CornerRadius = nailWidth / 2.5
		shape.StrokeColor = nailStroke
		shape.StrokeWidth = 2
		if slot == r.nc.selected {
			shape.StrokeColor = selectedStroke
			shape.StrokeWidth = 3
		}
		shape.Resize(fyne.NewSize(nailWidth, nailHeight))
		shape.Move(origin)
		r.objects = append(r.objects, shape)

		number := canvas.NewText(fmt.Sprintf("%d", slot), slotNumberGray)
		number.TextSize = 11
		number.Alignment = fyne.TextAlignCenter
		number.Resize(fyne.NewSize(nailWidth, labelSpace))
		number.Move(fyne.NewPos(origin.X, origin.Y+nailHeight+2))
		r.objects = append(r.objects, number)
	}
}

func (r *nailCanvasRenderer) Layout(size fyne.Size)        {}
func (r *nailCanvasRenderer) Refresh()                     { r.rebuild(); canvas.Refresh(r.nc) }
func (r *nailCanvasRenderer) Destroy()                     {}
func (r *nailCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *nailCanvasRenderer) MinSize() fyne.Size {
	width := 10*nailWidth + 9*nailGap + handGap
	return fyne.NewSize(width, nailHeight+labelSpace)
}
