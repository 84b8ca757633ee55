package layout

// NodeID is an opaque handle naming a node in the caller's storage.
type NodeID uint32

// Tree exposes the structure of the caller's node storage.
// It must be acyclic and finite.
type Tree interface {
	// Children returns the node's children in document order.
	Children(id NodeID) []NodeID
}

// Store exposes the style of each node. The solver only reads it.
type Store interface {
	Style(id NodeID) Style
}

// SubLayout sizes leaf content such as text.
type SubLayout interface {
	// ContentSize returns the intrinsic size of the node's content in the
	// frame of the parent layout type. knownMain and knownCross are nil for
	// axes that are still unresolved. ok is false when the node has no
	// content to measure.
	ContentSize(id NodeID, parent LayoutType, knownMain, knownCross *float32) (main, cross float32, ok bool)
}

// Cache receives the computed rectangle of every laid out node.
type Cache interface {
	// SetRect stores the node's box in the frame of its parent's layout
	// type. Positions are relative to the parent's origin.
	SetRect(id NodeID, parent LayoutType, mainPos, crossPos, mainSize, crossSize float32)
}
