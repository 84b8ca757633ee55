// Package measure sizes text for leaf content.
//
// [Face] measures proportional text set in an OpenType font; [Cells]
// measures text on a terminal grid where every cell is one unit wide. Both
// wrap greedily at spaces and satisfy morph.TextMeasurer.
package measure
