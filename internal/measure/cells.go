package measure

import "github.com/mattn/go-runewidth"

// Cells measures text on a terminal grid. Wide runes take two cells.
type Cells struct {
	// LineHeight is the height of one line; zero means one cell.
	LineHeight float32
}

// MeasureText returns the cell size of s wrapped to maxWidth.
func (c Cells) MeasureText(s string, maxWidth float32) (float32, float32) {
	lines := c.Wrap(s, maxWidth)
	return extent(lines), float32(len(lines)) * c.lineHeight()
}

// Wrap breaks s into lines no wider than maxWidth cells.
func (c Cells) Wrap(s string, maxWidth float32) []Line {
	return wrap(s, maxWidth, func(w string) float32 {
		return float32(runewidth.StringWidth(w))
	}, 1)
}

func (c Cells) lineHeight() float32 {
	if c.LineHeight <= 0 {
		return 1
	}
	return c.LineHeight
}
