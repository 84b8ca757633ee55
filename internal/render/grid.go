package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cell is one character position. A wide rune occupies its own cell and a
// continuation cell with width 0 to its right.
type cell struct {
	r     rune
	width uint8
}

func (c cell) isContinuation() bool {
	return c.width == 0
}

// Grid is a fixed-size surface of character cells.
type Grid struct {
	width  int
	height int
	cells  []cell
}

// NewGrid creates a grid filled with spaces. Negative sizes are treated as
// zero.
func NewGrid(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)
	g := &Grid{width: width, height: height, cells: make([]cell, width*height)}
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', width: 1}
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

func (g *Grid) in(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) at(x, y int) cell {
	return g.cells[y*g.width+x]
}

func (g *Grid) set(x, y int, c cell) {
	g.cells[y*g.width+x] = c
}

// Rune returns the rune at (x, y), or 0 outside the grid and on the right
// half of a wide rune.
func (g *Grid) Rune(x, y int) rune {
	if !g.in(x, y) {
		return 0
	}
	c := g.at(x, y)
	if c.isContinuation() {
		return 0
	}
	return c.r
}

// SetRune writes r at (x, y). Writing over either half of a wide rune
// blanks the other half. A wide rune that does not fit before the right
// edge is replaced by a space.
func (g *Grid) SetRune(x, y int, r rune) {
	if !g.in(x, y) {
		return
	}
	width := runewidth.RuneWidth(r)
	if width == 0 {
		return
	}

	cur := g.at(x, y)
	if cur.isContinuation() {
		g.clearWide(x-1, y)
	}
	if cur.width == 2 && x+1 < g.width {
		g.set(x+1, y, cell{r: ' ', width: 1})
	}

	if width == 2 {
		if x+1 >= g.width {
			g.set(x, y, cell{r: ' ', width: 1})
			return
		}
		if next := g.at(x+1, y); next.width == 2 {
			g.clearWide(x+1, y)
		}
		g.set(x, y, cell{r: r, width: 2})
		g.set(x+1, y, cell{})
		return
	}
	g.set(x, y, cell{r: r, width: 1})
}

// clearWide blanks the wide rune starting at (x, y) and its continuation.
func (g *Grid) clearWide(x, y int) {
	if !g.in(x, y) {
		return
	}
	g.set(x, y, cell{r: ' ', width: 1})
	if x+1 < g.width {
		g.set(x+1, y, cell{r: ' ', width: 1})
	}
}

// SetString writes s starting at (x, y), clipped to the grid, and returns
// the number of cells written. It stops at the first wide rune that does
// not fit.
func (g *Grid) SetString(x, y int, s string) int {
	if y < 0 || y >= g.height {
		return 0
	}
	written := 0
	cur := x
	for _, r := range s {
		if cur >= g.width {
			break
		}
		width := runewidth.RuneWidth(r)
		if cur < 0 {
			cur += width
			continue
		}
		if width == 2 && cur+1 >= g.width {
			break
		}
		g.SetRune(cur, y, r)
		cur += width
		written += width
	}
	return written
}

// String returns the grid rows joined by newlines.
func (g *Grid) String() string {
	return g.render(false)
}

// StringTrimmed is String with trailing spaces removed from every row.
func (g *Grid) StringTrimmed() string {
	return g.render(true)
}

func (g *Grid) render(trim bool) string {
	var sb strings.Builder
	var line strings.Builder
	for y := 0; y < g.height; y++ {
		line.Reset()
		for x := 0; x < g.width; x++ {
			c := g.at(x, y)
			if c.isContinuation() {
				continue
			}
			line.WriteRune(c.r)
		}
		if trim {
			sb.WriteString(strings.TrimRight(line.String(), " "))
		} else {
			sb.WriteString(line.String())
		}
		if y < g.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
