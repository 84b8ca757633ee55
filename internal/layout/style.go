package layout

// LayoutType specifies the main axis along which children are placed.
type LayoutType uint8

const (
	Row    LayoutType = iota // Children placed left-to-right
	Column                   // Children placed top-to-bottom
)

// String returns "row" or "column".
func (t LayoutType) String() string {
	if t == Column {
		return "column"
	}
	return "row"
}

// PositionType specifies whether a node flows with its siblings.
type PositionType uint8

const (
	// ParentDirected nodes are placed one after another along the parent's
	// main axis and count towards the parent's auto size.
	ParentDirected PositionType = iota
	// SelfDirected nodes are placed from their own before spacing and are
	// ignored by the parent's auto sizing.
	SelfDirected
)

// String returns "parent" or "self".
func (p PositionType) String() string {
	if p == SelfDirected {
		return "self"
	}
	return "parent"
}

// Solid locks the aspect ratio of a node's box.
type Solid uint8

const (
	SolidNone Solid = iota
	SolidFit        // Shrink one axis so the ratio fits inside the box
	SolidFill       // Grow one axis so the ratio covers the box
)

// String returns "none", "fit" or "fill".
func (s Solid) String() string {
	switch s {
	case SolidFit:
		return "fit"
	case SolidFill:
		return "fill"
	default:
		return "none"
	}
}

// Style contains all layout properties for a node. The zero value is a
// visible, parent-directed row with every length set to Auto.
type Style struct {
	LayoutType   LayoutType
	PositionType PositionType
	Hidden       bool

	// Sizing
	Width     Units
	Height    Units
	MinWidth  Units
	MinHeight Units
	MaxWidth  Units
	MaxHeight Units

	// Spacing around the node, inside its parent
	Left   Units
	Right  Units
	Top    Units
	Bottom Units

	MinLeft   Units
	MaxLeft   Units
	MinRight  Units
	MaxRight  Units
	MinTop    Units
	MaxTop    Units
	MinBottom Units
	MaxBottom Units

	// Padding between this node's edges and its children
	ChildLeft   Units
	ChildRight  Units
	ChildTop    Units
	ChildBottom Units

	// Between is the main-axis spacing used in place of an Auto before
	// spacing on every parent-directed child except the first.
	Between Units

	Solid       Solid
	AspectRatio float32 // cross = main * AspectRatio in the row frame; 0 = unset
}

// DefaultStyle returns a Style with every length set to Auto.
func DefaultStyle() Style {
	return Style{}
}

// Visible reports whether the node takes part in layout.
func (s *Style) Visible() bool {
	return !s.Hidden
}

// axisStyle is one axis of a Style projected onto a parent's frame.
type axisStyle struct {
	size, min, max Units

	before, minBefore, maxBefore Units
	after, minAfter, maxAfter    Units

	childBefore, childAfter Units
}

// axes projects the style onto the frame of a parent with the given layout
// type: for a Row parent main is horizontal, for a Column parent vertical.
func (s *Style) axes(parent LayoutType) (main, cross axisStyle) {
	horizontal := axisStyle{
		size: sizeUnits(s.Width), min: sizeUnits(s.MinWidth), max: sizeUnits(s.MaxWidth),
		before: s.Left, minBefore: s.MinLeft, maxBefore: s.MaxLeft,
		after: s.Right, minAfter: s.MinRight, maxAfter: s.MaxRight,
		childBefore: s.ChildLeft, childAfter: s.ChildRight,
	}
	vertical := axisStyle{
		size: sizeUnits(s.Height), min: sizeUnits(s.MinHeight), max: sizeUnits(s.MaxHeight),
		before: s.Top, minBefore: s.MinTop, maxBefore: s.MaxTop,
		after: s.Bottom, minAfter: s.MinBottom, maxAfter: s.MaxBottom,
		childBefore: s.ChildTop, childAfter: s.ChildBottom,
	}
	if parent == Column {
		return vertical, horizontal
	}
	return horizontal, vertical
}

// sizeUnits treats Stretch as Auto; sizes are not flexible.
func sizeUnits(u Units) Units {
	if u.IsStretch() {
		return Auto()
	}
	return u
}
