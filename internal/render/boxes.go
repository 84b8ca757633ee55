package render

import (
	"math"

	"github.com/connorcarpenter/morph"
)

// Boxes draws solved trees as nested outlines on a character grid.
type Boxes struct {
	// CellWidth and CellHeight are the pixels covered by one grid cell.
	// Zero means one pixel.
	CellWidth  float32
	CellHeight float32
	Border     Border
}

// Draw renders every visible node under root. The grid spans the viewport
// from the origin to the bottom right corner of the furthest box.
func (o Boxes) Draw(tree *morph.Tree, root morph.Node) (*Grid, error) {
	entries, err := Collect(tree, root)
	if err != nil {
		return nil, err
	}
	cw, ch := o.cellSize()

	ext := extent(entries)
	g := NewGrid(cells(ext.Right(), cw), cells(ext.Bottom(), ch))
	for _, e := range entries {
		box := o.box(e.Bounds)
		if box.Width >= 2 && box.Height >= 2 {
			DrawBoxWithTitle(g, box, o.Border, e.Label)
			continue
		}
		// Too small to outline: print the label where the box starts.
		if box.Width >= 1 && box.Height >= 1 && e.Label != "" {
			clip := box.Intersect(Box{Width: g.width, Height: g.height})
			if clip.Width > 0 {
				g.SetString(clip.X, clip.Y, truncate(e.Label, clip.Width))
			}
		}
	}
	return g, nil
}

func (o Boxes) cellSize() (float32, float32) {
	cw, ch := o.CellWidth, o.CellHeight
	if cw <= 0 {
		cw = 1
	}
	if ch <= 0 {
		ch = 1
	}
	return cw, ch
}

// box snaps pixel bounds to the cells they cover most of.
func (o Boxes) box(r morph.Rect) Box {
	cw, ch := o.cellSize()
	x0, y0 := cells(r.X, cw), cells(r.Y, ch)
	x1, y1 := cells(r.Right(), cw), cells(r.Bottom(), ch)
	return Box{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func cells(px, size float32) int {
	return int(math.Round(float64(px / size)))
}
