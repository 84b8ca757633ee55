// Package scene reads layout trees from TOML scene files.
//
// A scene names a viewport, the font used to measure text, and a root node
// whose children nest as arrays of tables:
//
//	[viewport]
//	width = 800
//	height = 600
//
//	[root]
//	layout = "column"
//	width = "100%"
//	height = "100%"
//	child-space = "1s"
//
//	[[root.children]]
//	name = "title"
//	text = "Hello"
//
// Lengths are written as "auto", "12px" (or a bare number), "50%" or "1s".
package scene
