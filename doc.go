// Package morph lays out trees of UI boxes.
//
// A [Tree] stores styled nodes by handle. Each node has a width and height
// in pixels, a percentage of its parent, or Auto; min and max bounds; spacing
// on every side that is fixed or stretches to share free space; padding and
// between spacing for its children; and an optional aspect lock. Children
// flow along their parent's main axis (row or column) unless they are
// self-directed.
//
// Build a tree, attach [Content] to leaves that size themselves, then call
// [Tree.Solve] with the viewport and read the results with [Tree.Rect] or
// [Tree.Bounds]:
//
//	t, _ := morph.New()
//	root, _ := t.AddRoot(morph.Style{Width: morph.Percent(100), Height: morph.Percent(100)})
//	side, _ := t.Add(root, morph.Style{Width: morph.Pixels(200)})
//	_ = t.Solve(root, 800, 600)
//	r, _ := t.Bounds(side)
package morph
