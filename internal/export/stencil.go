package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/amaliris/nailstudio/internal/session"
)

// Stencil layout constants. The outline is the same nail shape the designer
// canvas draws: a squared-off top flowing into a rounded free edge.
const (
	stencilNailWidth  = 12.0 // mm per nail outline
	stencilNailHeight = 19.0 // mm per nail outline
	stencilSpacing    = 6.0  // mm gap between outlines
	curveSteps        = 12   // segments per curved corner
)

// ExportStencils writes the ten nail-shape outlines as closed polylines in
// a DXF file, sized for craft cutting machines to cut vinyl stencils or
// practice decals. Outlines are laid out in a single row, slot 1 leftmost.
func ExportStencils(path string) error {
	drawing := dxf.NewDrawing()
	if _, err := drawing.AddLayer("NAILS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to create stencil layer: %w", err)
	}

	outline := nailOutline(stencilNailWidth, stencilNailHeight)
	for slot := 0; slot < session.NailCount; slot++ {
		offsetX := float64(slot) * (stencilNailWidth + stencilSpacing)
		vertices := make([][]float64, len(outline))
		for i, p := range outline {
			vertices[i] = []float64{p[0] + offsetX, p[1]}
		}
		if _, err := drawing.LwPolyline(true, vertices...); err != nil {
			return fmt.Errorf("failed to draw outline for nail %d: %w", slot+1, err)
		}
	}

	if err := drawing.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write DXF file: %w", err)
	}
	return nil
}

// nailOutline builds the closed nail shape as a point list: straight top
// and sides, with the bottom free edge rounded by two quadratic curves.
func nailOutline(w, h float64) [][2]float64 {
	// Proportions taken from the designer canvas shape: the curve occupies
	// the bottom tenth of the outline.
	curveTop := h * 0.9

	var pts [][2]float64
	pts = append(pts, [2]float64{0, 0})
	pts = append(pts, [2]float64{w, 0})
	pts = append(pts, [2]float64{w, curveTop})
	// Right half of the free edge: curve from the right side to bottom center
	pts = append(pts, quadratic(
		[2]float64{w, curveTop}, [2]float64{w, h}, [2]float64{w / 2, h}, curveSteps)...)
	// Left half: curve from bottom center up to the left side
	pts = append(pts, quadratic(
		[2]float64{w / 2, h}, [2]float64{0, h}, [2]float64{0, curveTop}, curveSteps)...)
	return pts
}

// quadratic approximates a quadratic bezier from p0 through control c to p1
// with the given number of segments, excluding the start point.
func quadratic(p0, c, p1 [2]float64, steps int) [][2]float64 {
	out := make([][2]float64, 0, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		x := mt*mt*p0[0] + 2*mt*t*c[0] + t*t*p1[0]
		y := mt*mt*p0[1] + 2*mt*t*c[1] + t*t*p1[1]
		out = append(out, [2]float64{x, y})
	}
	return out
}
