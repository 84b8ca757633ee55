package measure

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ErrFontSize is returned for a font size that is not positive.
var ErrFontSize = errors.New("font size must be positive")

// Face measures text set in an OpenType font at one pixel size.
// A Face is not safe for concurrent use.
type Face struct {
	font    *sfnt.Font
	ppem    fixed.Int26_6
	hinting font.Hinting

	buf sfnt.Buffer
}

// NewFace parses an OpenType or TrueType font for text set at size pixels
// per em.
func NewFace(data []byte, size float32) (*Face, error) {
	if size <= 0 {
		return nil, ErrFontSize
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Face{
		font:    f,
		ppem:    fixed.Int26_6(size * 64),
		hinting: font.HintingNone,
	}, nil
}

// DefaultFace returns the Go Regular font at size pixels per em.
func DefaultFace(size float32) (*Face, error) {
	return NewFace(goregular.TTF, size)
}

// LineHeight returns the distance between consecutive baselines.
func (f *Face) LineHeight() float32 {
	m, err := f.font.Metrics(&f.buf, f.ppem, f.hinting)
	if err != nil {
		return float32(f.ppem) / 64
	}
	return toFloat(m.Height)
}

// MeasureText returns the size of s wrapped to maxWidth.
func (f *Face) MeasureText(s string, maxWidth float32) (float32, float32) {
	lines := f.Wrap(s, maxWidth)
	return extent(lines), float32(len(lines)) * f.LineHeight()
}

// Wrap breaks s into lines no wider than maxWidth pixels.
func (f *Face) Wrap(s string, maxWidth float32) []Line {
	return wrap(s, maxWidth, f.width, f.width(" "))
}

// width returns the advance of s including kerning.
func (f *Face) width(s string) float32 {
	var x fixed.Int26_6
	prev, hasPrev := sfnt.GlyphIndex(0), false
	for _, r := range s {
		g, err := f.font.GlyphIndex(&f.buf, r)
		if err != nil {
			continue
		}
		if hasPrev {
			if k, err := f.font.Kern(&f.buf, prev, g, f.ppem, f.hinting); err == nil {
				x += k
			}
		}
		adv, err := f.font.GlyphAdvance(&f.buf, g, f.ppem, f.hinting)
		if err != nil {
			continue
		}
		x += adv
		prev, hasPrev = g, true
	}
	return toFloat(x)
}

func toFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
