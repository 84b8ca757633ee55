package render

import (
	"errors"
	"fmt"

	"github.com/connorcarpenter/morph"
)

// ErrNotSolved is returned when asked to render a root that has no layout.
var ErrNotSolved = errors.New("root has not been solved")

// Entry is one laid out node, in depth-first order.
type Entry struct {
	Node  morph.Node
	Name  string
	Label string
	Depth int
	// Rect is relative to the parent, Bounds to the viewport.
	Rect   morph.Rect
	Bounds morph.Rect
}

// Collect lists the visible nodes under root with their solved boxes.
func Collect(tree *morph.Tree, root morph.Node) ([]Entry, error) {
	if _, ok := tree.Bounds(root); !ok {
		return nil, fmt.Errorf("render %d: %w", root, ErrNotSolved)
	}
	var entries []Entry
	tree.Walk(root, func(n morph.Node, depth int) bool {
		rect, ok := tree.Rect(n)
		if !ok {
			return false
		}
		bounds, _ := tree.Bounds(n)
		entries = append(entries, Entry{
			Node:   n,
			Name:   tree.Name(n),
			Label:  label(tree, n),
			Depth:  depth,
			Rect:   rect,
			Bounds: bounds,
		})
		return true
	})
	return entries, nil
}

// label is the node's name, or the text it displays.
func label(tree *morph.Tree, n morph.Node) string {
	if name := tree.Name(n); name != "" {
		return name
	}
	if s, ok := tree.Content(n).(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}

// extent covers every non-empty box of entries, starting from the root's.
func extent(entries []Entry) morph.Rect {
	r := entries[0].Bounds
	for _, e := range entries[1:] {
		r = r.Union(e.Bounds)
	}
	return r
}
