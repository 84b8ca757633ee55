package morph

// markDirty forgets every solved viewport so the next Solve runs a full pass.
// Called by every mutation of structure, style or content.
func (t *Tree) markDirty() {
	clear(t.solved)
}

// Dirty reports whether root needs a layout pass: it was never solved, or
// the tree changed since it was.
func (t *Tree) Dirty(root Node) bool {
	_, ok := t.solved[root]
	return !ok
}

// Passes returns the number of layout passes run so far. Solve calls that
// were skipped because nothing changed are not counted.
func (t *Tree) Passes() int {
	return t.passes
}
