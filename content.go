package morph

import "math"

// Content reports the intrinsic size of a leaf, such as a run of text or an
// image. knownWidth and knownHeight are nil for axes the solver has not yet
// resolved; a text content wraps to a known width.
type Content interface {
	Measure(knownWidth, knownHeight *float32) (width, height float32)
}

// ContentFunc adapts a plain function to the Content interface.
type ContentFunc func(knownWidth, knownHeight *float32) (width, height float32)

// Measure calls f.
func (f ContentFunc) Measure(knownWidth, knownHeight *float32) (float32, float32) {
	return f(knownWidth, knownHeight)
}

// Intrinsic returns content of a fixed size, for images and placeholders.
func Intrinsic(width, height float32) Content {
	return ContentFunc(func(*float32, *float32) (float32, float32) {
		return width, height
	})
}

// TextMeasurer measures a string laid out within maxWidth. Implementations
// wrap at word boundaries and return the size of the wrapped block.
type TextMeasurer interface {
	MeasureText(s string, maxWidth float32) (width, height float32)
}

// Text returns content that measures s with m, wrapping to the node's width
// once it is known.
func Text(m TextMeasurer, s string) Content {
	return &textContent{measurer: m, text: s}
}

type textContent struct {
	measurer TextMeasurer
	text     string
}

func (c *textContent) Measure(knownWidth, _ *float32) (float32, float32) {
	maxWidth := float32(math.MaxFloat32)
	if knownWidth != nil {
		maxWidth = *knownWidth
	}
	return c.measurer.MeasureText(c.text, maxWidth)
}

// String returns the measured text.
func (c *textContent) String() string {
	return c.text
}
