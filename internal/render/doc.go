// Package render turns solved layout trees into output: character
// drawings of the boxes, a styled table, JSON and SVG.
package render
