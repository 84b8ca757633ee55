package layout

import (
	"math"
	"strconv"
)

// Unit specifies how a Units value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Determined by content or by the parent's between spacing
	UnitPixels              // Absolute pixels
	UnitPercent             // Percentage of the parent's extent along the same axis
	UnitStretch             // Share of the free space, weighted by Amount (spacing only)
)

// Units is a length that can be fixed, a percentage, stretch, or auto.
type Units struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Units value that is resolved from content or defaults.
func Auto() Units {
	return Units{Unit: UnitAuto}
}

// Pixels returns a Units value of px absolute pixels.
func Pixels(px float32) Units {
	return Units{Amount: px, Unit: UnitPixels}
}

// Percent returns a Units value on a 0-100 scale (50 = 50%).
func Percent(p float32) Units {
	return Units{Amount: p, Unit: UnitPercent}
}

// Stretch returns a flexible Units value claiming a factor-weighted share
// of the free space.
func Stretch(factor float32) Units {
	return Units{Amount: factor, Unit: UnitStretch}
}

// ToPx resolves the value against the parent extent.
// Auto and Stretch return fallback.
func (u Units) ToPx(parent, fallback float32) float32 {
	switch u.Unit {
	case UnitPixels:
		return u.Amount
	case UnitPercent:
		return parent * u.Amount / 100
	default:
		return fallback
	}
}

// IsAuto returns true if the value is resolved from content or defaults.
func (u Units) IsAuto() bool {
	return u.Unit == UnitAuto
}

// IsStretch returns true if the value takes part in free space distribution.
func (u Units) IsStretch() bool {
	return u.Unit == UnitStretch
}

// String formats the value the way scene files spell it: "auto", "12px",
// "50%" or "1s".
func (u Units) String() string {
	amount := strconv.FormatFloat(float64(u.Amount), 'f', -1, 32)
	switch u.Unit {
	case UnitPixels:
		return amount + "px"
	case UnitPercent:
		return amount + "%"
	case UnitStretch:
		return amount + "s"
	default:
		return "auto"
	}
}

// unbounded is the pixel value of an Auto maximum.
const unbounded = math.MaxFloat32

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}

// round rounds half away from zero.
func round(v float32) float32 {
	return float32(math.Round(float64(v)))
}
