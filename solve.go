package morph

import (
	"fmt"
	"time"

	"github.com/connorcarpenter/morph/internal/layout"
)

// Solve lays out root within a viewport of width by height pixels.
//
// The root is sized as a parent-directed child of a row the size of the
// viewport: fixed and percentage sizes resolve against the viewport, Auto
// sizes follow content. Its fixed left and top spacing offset it from the
// viewport origin.
//
// Solving a root again with the same viewport and no change to the tree in
// between is a no-op. A Solid style without an aspect ratio aborts the pass
// with a *StyleError; rects of that root are then undefined.
func (t *Tree) Solve(root Node, width, height float32) (err error) {
	if !t.valid(root) {
		return fmt.Errorf("solve %d: %w", root, ErrUnknownNode)
	}
	if !t.nodes[root].isRoot {
		return fmt.Errorf("solve %d: %w", root, ErrNotRoot)
	}
	vp := viewport{width: width, height: height}
	if last, ok := t.solved[root]; ok && last == vp {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			styleErr, ok := r.(*StyleError)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("solve %d: %w", root, styleErr)
		}
	}()

	start := time.Now()
	t.unplace(root)

	style := t.nodes[root].style
	placed := 0
	if style.Visible() {
		view := treeView{t}
		size := layout.LayoutWithin(root, Row, width, height, style.Height.ToPx(height, 0), view, view, view, view)
		x := style.Left.ToPx(width, 0)
		y := style.Top.ToPx(height, 0)
		view.SetRect(root, Row, x, y, size.Main, size.Cross)
		placed = t.place(root, 0, 0)
	}

	t.solved[root] = vp
	t.passes++
	t.logger.Debug("layout pass",
		"root", root,
		"nodes", placed,
		"viewport", fmt.Sprintf("%gx%g", width, height),
		"elapsed", time.Since(start))
	return nil
}

// SolveAll solves every root of the tree against the same viewport.
func (t *Tree) SolveAll(width, height float32) error {
	if len(t.roots) == 0 {
		return ErrNoRoot
	}
	for _, root := range t.roots {
		if err := t.Solve(root, width, height); err != nil {
			return err
		}
	}
	return nil
}

// Rect returns the node's box relative to its parent's origin, as computed by
// the last pass. ok is false if the node was not laid out.
func (t *Tree) Rect(n Node) (Rect, bool) {
	if !t.valid(n) || !t.nodes[n].placed {
		return Rect{}, false
	}
	return t.nodes[n].rect, true
}

// Bounds returns the node's box relative to its root's viewport.
func (t *Tree) Bounds(n Node) (Rect, bool) {
	if !t.valid(n) || !t.nodes[n].placed {
		return Rect{}, false
	}
	return t.nodes[n].bounds, true
}

// HitTest returns the deepest laid out node under root containing the point.
// Later siblings are on top of earlier ones. Children placed outside their
// parent's bounds can still be hit.
func (t *Tree) HitTest(root Node, x, y float32) (Node, bool) {
	if !t.valid(root) || !t.nodes[root].placed {
		return 0, false
	}
	children := t.nodes[root].children
	for i := len(children) - 1; i >= 0; i-- {
		if hit, ok := t.HitTest(children[i], x, y); ok {
			return hit, true
		}
	}
	if !t.nodes[root].bounds.Contains(x, y) {
		return 0, false
	}
	return root, true
}

// unplace clears the rects of the whole subtree, hidden nodes included.
func (t *Tree) unplace(n Node) {
	t.nodes[n].placed = false
	for _, c := range t.nodes[n].children {
		t.unplace(c)
	}
}

// place derives absolute bounds from the parent-relative rects and returns
// the number of nodes laid out.
func (t *Tree) place(n Node, originX, originY float32) int {
	nd := &t.nodes[n]
	if !nd.placed {
		return 0
	}
	nd.bounds = nd.rect.Translate(originX, originY)
	count := 1
	for _, c := range nd.children {
		count += t.place(c, nd.bounds.X, nd.bounds.Y)
	}
	return count
}

// treeView exposes a Tree to the solver.
type treeView struct {
	t *Tree
}

func (v treeView) Children(id layout.NodeID) []layout.NodeID {
	return v.t.nodes[id].children
}

func (v treeView) Style(id layout.NodeID) layout.Style {
	return v.t.nodes[id].style
}

func (v treeView) SetRect(id layout.NodeID, parent layout.LayoutType, mainPos, crossPos, mainSize, crossSize float32) {
	nd := &v.t.nodes[id]
	nd.rect = fromFrame(parent, mainPos, crossPos, mainSize, crossSize)
	nd.placed = true
}

func (v treeView) ContentSize(id layout.NodeID, parent layout.LayoutType, knownMain, knownCross *float32) (float32, float32, bool) {
	if v.t.sub != nil {
		return v.t.sub.ContentSize(id, parent, knownMain, knownCross)
	}
	c := v.t.nodes[id].content
	if c == nil {
		return 0, 0, false
	}
	if parent == Column {
		w, h := c.Measure(knownCross, knownMain)
		return h, w, true
	}
	w, h := c.Measure(knownMain, knownCross)
	return w, h, true
}
