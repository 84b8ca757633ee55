package morph

import "errors"

var (
	// ErrUnknownNode is returned for a handle that does not name a node of the tree.
	ErrUnknownNode = errors.New("unknown node")
	// ErrNoRoot is returned when solving a tree without roots.
	ErrNoRoot = errors.New("tree has no root")
	// ErrNotRoot is returned when solving from a node that has a parent.
	ErrNotRoot = errors.New("node is not a root")
	// ErrDuplicateName is returned when a name is already taken by another node.
	ErrDuplicateName = errors.New("duplicate node name")
)
