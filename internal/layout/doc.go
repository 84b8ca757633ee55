// Package layout implements a box-model layout solver for UI trees.
//
// Every node has a width and height (pixels, percentage or auto), min/max
// bounds, spacing on each side that can be fixed or stretch, padding applied
// to its children, and an optional aspect lock. Children are placed along the
// node's main axis (row or column); stretch spacing shares the free space by
// factor, honoring per-item bounds. Auto sizes are taken from content for
// leaves and from the children's footprint for containers.
//
// The solver works entirely through the [Tree], [Store], [SubLayout] and
// [Cache] interfaces. Types are re-exported through the root morph package
// for public consumption.
//
// The main entry point is [Layout], which is called once per root per pass
// and writes the rect of every visible descendant to the cache.
package layout
