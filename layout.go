// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package morph

import "github.com/connorcarpenter/morph/internal/layout"

// Node is an opaque handle naming a node in a Tree.
type Node = layout.NodeID

// LayoutType specifies the main axis along which children are placed.
type LayoutType = layout.LayoutType

const (
	Row    = layout.Row
	Column = layout.Column
)

// PositionType specifies whether a node flows with its siblings.
type PositionType = layout.PositionType

const (
	ParentDirected = layout.ParentDirected
	SelfDirected   = layout.SelfDirected
)

// Solid locks the aspect ratio of a node's box.
type Solid = layout.Solid

const (
	SolidNone = layout.SolidNone
	SolidFit  = layout.SolidFit
	SolidFill = layout.SolidFill
)

// Units is a length that can be fixed, a percentage, stretch, or auto.
type Units = layout.Units

// Unit specifies how a Units value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitPixels  = layout.UnitPixels
	UnitPercent = layout.UnitPercent
	UnitStretch = layout.UnitStretch
)

// Style holds the layout properties for a node.
type Style = layout.Style

// Size is a computed main/cross pair.
type Size = layout.Size

// StyleError reports an invalid style property.
type StyleError = layout.StyleError

// SubLayout sizes leaf content in place of each node's Content.
type SubLayout = layout.SubLayout

var (
	ErrMissingAspectRatio = layout.ErrMissingAspectRatio
	ErrInvalidAspectRatio = layout.ErrInvalidAspectRatio
	ErrNegativeStretch    = layout.ErrNegativeStretch
	ErrStretchSize        = layout.ErrStretchSize
	ErrNonFinite          = layout.ErrNonFinite
)

// Auto creates a Units value resolved from content or defaults.
func Auto() Units {
	return layout.Auto()
}

// Pixels creates a Units value of px absolute pixels.
func Pixels(px float32) Units {
	return layout.Pixels(px)
}

// Percent creates a Units value on a 0-100 scale of the parent's extent.
func Percent(p float32) Units {
	return layout.Percent(p)
}

// Stretch creates a flexible spacing weighted by factor.
func Stretch(factor float32) Units {
	return layout.Stretch(factor)
}

// DefaultStyle returns a Style with every length set to Auto.
func DefaultStyle() Style {
	return layout.DefaultStyle()
}

// ApplySolid locks a width/height pair to ratio (height over width).
func ApplySolid(width, height float32, solid Solid, ratio float32) (float32, float32) {
	return layout.ApplySolid(width, height, solid, ratio)
}
