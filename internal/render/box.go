package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Border selects the characters a box outline is drawn with.
type Border int

const (
	BorderSingle Border = iota
	BorderDouble
	BorderRounded
	BorderThick
	// BorderASCII draws with + - and |, for terminals without box-drawing
	// glyphs.
	BorderASCII
)

// BorderChars holds the characters used to draw a box outline.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the outline characters for the border.
func (b Border) Chars() BorderChars {
	switch b {
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderThick:
		return BorderChars{'┏', '━', '┓', '┃', '┃', '┗', '━', '┛'}
	case BorderASCII:
		return BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}
	default:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	}
}

func (b Border) String() string {
	switch b {
	case BorderSingle:
		return "single"
	case BorderDouble:
		return "double"
	case BorderRounded:
		return "rounded"
	case BorderThick:
		return "thick"
	case BorderASCII:
		return "ascii"
	}
	return fmt.Sprintf("Border(%d)", int(b))
}

// ParseBorder returns the border with the given name.
func ParseBorder(name string) (Border, error) {
	for b := BorderSingle; b <= BorderASCII; b++ {
		if b.String() == name {
			return b, nil
		}
	}
	return BorderSingle, fmt.Errorf("unknown border %q, want single, double, rounded, thick or ascii", name)
}

// Box is a rectangle of grid cells.
type Box struct {
	X, Y          int
	Width, Height int
}

// Right returns the first column past the box.
func (b Box) Right() int { return b.X + b.Width }

// Bottom returns the first row past the box.
func (b Box) Bottom() int { return b.Y + b.Height }

// Intersect returns the overlap of two boxes, or an empty box.
func (b Box) Intersect(other Box) Box {
	x := max(b.X, other.X)
	y := max(b.Y, other.Y)
	right := min(b.Right(), other.Right())
	bottom := min(b.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Box{}
	}
	return Box{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// DrawBox outlines box on the grid, clipped to the grid. Boxes smaller than
// 2x2 after clipping are not drawn.
func DrawBox(g *Grid, box Box, border Border) {
	box = box.Intersect(Box{Width: g.width, Height: g.height})
	if box.Width < 2 || box.Height < 2 {
		return
	}
	chars := border.Chars()

	left, right := box.X, box.Right()-1
	top, bottom := box.Y, box.Bottom()-1

	for x := left + 1; x < right; x++ {
		g.SetRune(x, top, chars.Top)
		g.SetRune(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		g.SetRune(left, y, chars.Left)
		g.SetRune(right, y, chars.Right)
	}
	g.SetRune(left, top, chars.TopLeft)
	g.SetRune(right, top, chars.TopRight)
	g.SetRune(left, bottom, chars.BottomLeft)
	g.SetRune(right, bottom, chars.BottomRight)
}

// DrawBoxWithTitle outlines box and writes title into its top edge, one
// cell in from the left corner. Titles longer than the edge are truncated
// with an ellipsis.
func DrawBoxWithTitle(g *Grid, box Box, border Border, title string) {
	DrawBox(g, box, border)
	box = box.Intersect(Box{Width: g.width, Height: g.height})
	if box.Width < 2 || box.Height < 2 || title == "" {
		return
	}
	room := box.Width - 2
	if room <= 0 {
		return
	}
	title = truncate(title, room)
	g.SetString(box.X+1, box.Y, title)
}

// truncate shortens s to at most width cells, ending it with an ellipsis
// when cut.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
