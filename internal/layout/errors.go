package layout

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMissingAspectRatio is returned for a Solid style without an aspect ratio.
	ErrMissingAspectRatio = errors.New("solid sizing requires an aspect ratio")
	// ErrInvalidAspectRatio is returned for a negative or non-finite aspect ratio.
	ErrInvalidAspectRatio = errors.New("aspect ratio must be positive and finite")
	// ErrNegativeStretch is returned for a stretch factor below zero.
	ErrNegativeStretch = errors.New("stretch factor must not be negative")
	// ErrStretchSize is returned when a size, a bound or padding uses
	// Stretch.
	ErrStretchSize = errors.New("stretch is only valid for spacing")
	// ErrNonFinite is returned for a NaN or infinite amount.
	ErrNonFinite = errors.New("amount must be finite")
)

// StyleError reports an invalid style property.
type StyleError struct {
	Field string
	Err   error
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *StyleError) Unwrap() error {
	return e.Err
}

// Validate checks the style for configurations the solver cannot honor.
// Trees should call it whenever a style is set so that errors surface at
// construction time rather than during a layout pass.
func (s *Style) Validate() error {
	if err := s.validateSolid(); err != nil {
		return err
	}

	fields := []struct {
		field   string
		value   Units
		stretch bool
	}{
		{"width", s.Width, false}, {"height", s.Height, false},
		{"min-width", s.MinWidth, false}, {"min-height", s.MinHeight, false},
		{"max-width", s.MaxWidth, false}, {"max-height", s.MaxHeight, false},
		{"left", s.Left, true}, {"right", s.Right, true},
		{"top", s.Top, true}, {"bottom", s.Bottom, true},
		{"min-left", s.MinLeft, false}, {"max-left", s.MaxLeft, false},
		{"min-right", s.MinRight, false}, {"max-right", s.MaxRight, false},
		{"min-top", s.MinTop, false}, {"max-top", s.MaxTop, false},
		{"min-bottom", s.MinBottom, false}, {"max-bottom", s.MaxBottom, false},
		{"child-left", s.ChildLeft, false}, {"child-right", s.ChildRight, false},
		{"child-top", s.ChildTop, false}, {"child-bottom", s.ChildBottom, false},
		{"between", s.Between, true},
	}
	for _, f := range fields {
		amount := float64(f.value.Amount)
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			return &StyleError{Field: f.field, Err: ErrNonFinite}
		}
		if !f.value.IsStretch() {
			continue
		}
		if !f.stretch {
			return &StyleError{Field: f.field, Err: ErrStretchSize}
		}
		if f.value.Amount < 0 {
			return &StyleError{Field: f.field, Err: ErrNegativeStretch}
		}
	}
	return nil
}

func (s *Style) validateSolid() error {
	if s.AspectRatio < 0 || math.IsNaN(float64(s.AspectRatio)) || math.IsInf(float64(s.AspectRatio), 0) {
		return &StyleError{Field: "aspect-ratio", Err: ErrInvalidAspectRatio}
	}
	if s.Solid != SolidNone && s.AspectRatio == 0 {
		return &StyleError{Field: "solid", Err: ErrMissingAspectRatio}
	}
	return nil
}
