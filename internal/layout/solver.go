package layout

// childNode holds the resolved box of one child in its parent's frame.
// It is rebuilt on every pass, never stored on nodes.
type childNode struct {
	id         NodeID
	style      Style
	mainStyle  axisStyle
	crossStyle axisStyle

	crossBefore, cross, crossAfter float32
	mainBefore, main, mainAfter    float32

	mainItems  []stretchItem
	crossItems []stretchItem
}

func (c *childNode) parentDirected() bool {
	return c.style.PositionType == ParentDirected
}

func (c *childNode) mainExtent() float32 {
	return c.mainBefore + c.main + c.mainAfter
}

func (c *childNode) crossExtent() float32 {
	return c.crossBefore + c.cross + c.crossAfter
}

// resolve fills every spacing and the cross size that do not depend on free
// space, and collects the stretch items of both axes. between replaces an
// Auto main-before spacing when non-nil.
func (c *childNode) resolve(index int, between *Units, mainExtent, crossExtent float32) {
	ms, cs := &c.mainStyle, &c.crossStyle

	before := ms.before
	if before.IsAuto() && between != nil {
		before = *between
	}

	c.mainBefore = fixedSpacing(before, ms.minBefore, ms.maxBefore, mainExtent)
	c.mainAfter = fixedSpacing(ms.after, ms.minAfter, ms.maxAfter, mainExtent)
	c.crossBefore = fixedSpacing(cs.before, cs.minBefore, cs.maxBefore, crossExtent)
	c.crossAfter = fixedSpacing(cs.after, cs.minAfter, cs.maxAfter, crossExtent)

	c.cross = 0
	if !cs.size.IsAuto() {
		c.cross = clamp(cs.size.ToPx(crossExtent, 0), cs.min.ToPx(crossExtent, 0), cs.max.ToPx(crossExtent, unbounded))
	}

	c.mainItems = c.mainItems[:0]
	if before.IsStretch() {
		c.mainItems = append(c.mainItems, newStretchItem(index, stretchBefore, before, ms.minBefore, ms.maxBefore, mainExtent))
	}
	if ms.after.IsStretch() {
		c.mainItems = append(c.mainItems, newStretchItem(index, stretchAfter, ms.after, ms.minAfter, ms.maxAfter, mainExtent))
	}

	c.crossItems = c.crossItems[:0]
	if cs.before.IsStretch() {
		c.crossItems = append(c.crossItems, newStretchItem(index, stretchBefore, cs.before, cs.minBefore, cs.maxBefore, crossExtent))
	}
	if cs.after.IsStretch() {
		c.crossItems = append(c.crossItems, newStretchItem(index, stretchAfter, cs.after, cs.minAfter, cs.maxAfter, crossExtent))
	}
}

func (c *childNode) setMain(item *stretchItem) {
	if item.kind == stretchBefore {
		c.mainBefore = item.computed
	} else {
		c.mainAfter = item.computed
	}
}

func (c *childNode) setCross(item *stretchItem) {
	if item.kind == stretchBefore {
		c.crossBefore = item.computed
	} else {
		c.crossAfter = item.computed
	}
}

// distributeCross resolves the child's cross stretch spacing against its
// own before, size and after.
func (c *childNode) distributeCross(extent float32) {
	if len(c.crossItems) == 0 {
		return
	}
	distribute(c.crossItems, extent, c.crossExtent())
	for i := range c.crossItems {
		c.setCross(&c.crossItems[i])
	}
}

// distributeMain resolves the child's main stretch spacing on its own,
// as used for self-directed children.
func (c *childNode) distributeMain(extent float32) {
	if len(c.mainItems) == 0 {
		return
	}
	distribute(c.mainItems, extent, c.mainExtent())
	for i := range c.mainItems {
		c.setMain(&c.mainItems[i])
	}
}

// fixedSpacing resolves a spacing that does not take part in distribution.
// Stretch spacing starts at zero until distributed.
func fixedSpacing(value, minValue, maxValue Units, parent float32) float32 {
	if value.IsStretch() {
		return 0
	}
	return clamp(value.ToPx(parent, 0), minValue.ToPx(parent, 0), maxValue.ToPx(parent, unbounded))
}

// axisFrame is one axis of a node as seen by its children.
type axisFrame struct {
	extent    float32 // content extent handed to children
	padBefore float32
	padAfter  float32
	min, max  float32
	auto      bool
}

func (a *axisFrame) padding() float32 {
	return a.padBefore + a.padAfter
}

// fit sets the content extent from a children footprint, keeping the
// node's box within its bounds.
func (a *axisFrame) fit(footprint float32) {
	a.extent = max(clamp(footprint+a.padding(), a.min, a.max)-a.padding(), 0)
}

// visibleChildren loads the style of every visible child of id, projected
// onto the frame of layoutType.
func visibleChildren(id NodeID, layoutType LayoutType, tree Tree, store Store) []childNode {
	ids := tree.Children(id)
	if len(ids) == 0 {
		return nil
	}
	children := make([]childNode, 0, len(ids))
	for _, childID := range ids {
		style := store.Style(childID)
		if !style.Visible() {
			continue
		}
		c := childNode{id: childID, style: style}
		c.mainStyle, c.crossStyle = style.axes(layoutType)
		children = append(children, c)
	}
	return children
}

// Layout computes the size of node id and writes the rects of all its
// visible descendants to cache. The caller writes the rect of id itself.
//
// parentType is the layout type of the node's parent; the returned Size and
// both extents are expressed in its frame. parentMain is the main extent
// offered by the parent and crossSize the cross extent the parent already
// assigned to this node (0 when the node's cross size is Auto). Cross
// percentages resolve against crossSize; use LayoutWithin when the parent's
// cross extent is known separately.
//
// A node with a Solid mode but no aspect ratio is a configuration error and
// aborts the pass with a panic carrying a *StyleError.
func Layout(id NodeID, parentType LayoutType, parentMain, crossSize float32, cache Cache, tree Tree, store Store, sub SubLayout) Size {
	return LayoutWithin(id, parentType, parentMain, crossSize, crossSize, cache, tree, store, sub)
}

// LayoutWithin is Layout with the parent's cross extent given apart from the
// cross size assigned to the node. Percentage padding and bounds on the
// cross axis resolve against parentCross.
func LayoutWithin(id NodeID, parentType LayoutType, parentMain, parentCross, crossSize float32, cache Cache, tree Tree, store Store, sub SubLayout) Size {
	style := store.Style(id)
	if err := style.validateSolid(); err != nil {
		panic(err)
	}
	layoutType := style.LayoutType
	mainStyle, crossStyle := style.axes(parentType)

	// 1. Padding and bounds, resolved in the parent's frame
	main := axisFrame{
		padBefore: mainStyle.childBefore.ToPx(parentMain, 0),
		padAfter:  mainStyle.childAfter.ToPx(parentMain, 0),
		min:       mainStyle.min.ToPx(parentMain, 0),
		max:       mainStyle.max.ToPx(parentMain, unbounded),
		auto:      mainStyle.size.IsAuto(),
	}
	cross := axisFrame{
		padBefore: crossStyle.childBefore.ToPx(parentCross, 0),
		padAfter:  crossStyle.childAfter.ToPx(parentCross, 0),
		min:       crossStyle.min.ToPx(parentCross, 0),
		max:       crossStyle.max.ToPx(parentCross, unbounded),
		auto:      crossStyle.size.IsAuto(),
	}

	// 2. Tentative size
	computedMain := mainStyle.size.ToPx(parentMain, 0)
	computedCross := crossSize

	children := visibleChildren(id, layoutType, tree, store)
	parentDirected := 0
	for i := range children {
		if children[i].parentDirected() {
			parentDirected++
		}
	}

	// 3. Content sizing for leaves (and nodes with only self-directed children)
	if (main.auto || cross.auto) && parentDirected == 0 && sub != nil {
		var knownMain, knownCross *float32
		if !main.auto {
			m := computedMain
			knownMain = &m
		}
		if !cross.auto {
			c := computedCross
			knownCross = &c
		}
		if m, c, ok := sub.ContentSize(id, parentType, knownMain, knownCross); ok {
			if main.auto {
				computedMain = m
			}
			if cross.auto {
				computedCross = c
			}
		}
	}

	// 4. Bounds, then the aspect lock
	computedMain = clamp(computedMain, main.min, main.max)
	computedCross = clamp(computedCross, cross.min, cross.max)
	computedMain, computedCross = applySolid(&style, parentType, computedMain, computedCross)

	// 5. Leaves are done
	if len(children) == 0 {
		return Size{Main: computedMain, Cross: computedCross}
	}

	// 6. Switch to the frame the children are laid out in
	main.extent = max(computedMain-main.padding(), 0)
	cross.extent = max(computedCross-cross.padding(), 0)
	inMain, inCross := main, cross
	if layoutType != parentType {
		inMain, inCross = cross, main
	}

	// 7. Parent-directed children: fixed quantities and recursion
	var mainSum, crossMax float32
	first := true
	for i := range children {
		c := &children[i]
		if !c.parentDirected() {
			continue
		}
		var between *Units
		if !first {
			between = &style.Between
		}
		c.resolve(i, between, inMain.extent, inCross.extent)

		size := LayoutWithin(c.id, layoutType, inMain.extent, inCross.extent, c.cross, cache, tree, store, sub)
		c.main, c.cross = size.Main, size.Cross

		mainSum += c.mainExtent()
		crossMax = max(crossMax, c.crossExtent())
		first = false
	}

	// 8. Cross stretch spacing of children with a known cross size
	if inCross.auto && parentDirected > 0 {
		inCross.fit(crossMax)
	}
	for i := range children {
		c := &children[i]
		if !c.parentDirected() || c.crossStyle.size.IsAuto() {
			continue
		}
		c.distributeCross(inCross.extent)
		crossMax = max(crossMax, c.crossExtent())
	}

	// 9. Main stretch spacing, shared by all parent-directed children
	if inMain.auto {
		inMain.fit(max(inMain.extent, mainSum))
	}
	var mainItems []stretchItem
	for i := range children {
		if children[i].parentDirected() {
			mainItems = append(mainItems, children[i].mainItems...)
		}
	}
	if len(mainItems) > 0 {
		mainSum = distribute(mainItems, inMain.extent, mainSum)
		for i := range mainItems {
			children[mainItems[i].index].setMain(&mainItems[i])
		}
	}

	// 10. Cross stretch spacing of children sized by their content
	for i := range children {
		c := &children[i]
		if !c.parentDirected() || !c.crossStyle.size.IsAuto() {
			continue
		}
		c.distributeCross(inCross.extent)
		crossMax = max(crossMax, c.crossExtent())
	}

	// 11. Self-directed children, against the final extents
	for i := range children {
		c := &children[i]
		if c.parentDirected() {
			continue
		}
		c.resolve(i, nil, inMain.extent, inCross.extent)
		size := LayoutWithin(c.id, layoutType, inMain.extent, inCross.extent, c.cross, cache, tree, store, sub)
		c.main, c.cross = size.Main, size.Cross
	}
	for i := range children {
		if !children[i].parentDirected() {
			children[i].distributeCross(inCross.extent)
		}
	}
	for i := range children {
		if !children[i].parentDirected() {
			children[i].distributeMain(inMain.extent)
		}
	}

	// 12. Write rects
	cursor := inMain.padBefore
	for i := range children {
		c := &children[i]
		if !c.parentDirected() {
			continue
		}
		cursor += c.mainBefore
		cache.SetRect(c.id, layoutType, cursor, inCross.padBefore+c.crossBefore, c.main, c.cross)
		cursor += c.main + c.mainAfter
	}
	for i := range children {
		c := &children[i]
		if c.parentDirected() {
			continue
		}
		cache.SetRect(c.id, layoutType, inMain.padBefore+c.mainBefore, inCross.padBefore+c.crossBefore, c.main, c.cross)
	}

	// 13. Auto axes follow the children footprint
	if parentDirected > 0 {
		footprint := Size{Main: mainSum + inMain.padding(), Cross: crossMax + inCross.padding()}.In(layoutType, parentType)
		if main.auto {
			computedMain = clamp(footprint.Main, main.min, main.max)
		}
		if cross.auto {
			computedCross = clamp(footprint.Cross, cross.min, cross.max)
		}
	}

	return Size{Main: computedMain, Cross: computedCross}
}
