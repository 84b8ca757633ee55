package render

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/connorcarpenter/morph"
)

// SVG draws the solved boxes under root as outlined rectangles, deeper
// nodes in lighter strokes. Labels are drawn at the top left of each box.
type SVG struct {
	// FontSize of the labels in pixels. Zero hides labels.
	FontSize float32
}

var strokes = []string{"#1f6f8b", "#3a8fb7", "#64a6c9", "#99c4dd", "#c2dcea"}

// Write renders root to w.
func (o SVG) Write(w io.Writer, tree *morph.Tree, root morph.Node) error {
	entries, err := Collect(tree, root)
	if err != nil {
		return err
	}
	ext := extent(entries)
	vw, vh := formatFloat(ext.Right()), formatFloat(ext.Bottom())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		vw, vh, vw, vh)
	for _, e := range entries {
		b := e.Bounds
		stroke := strokes[min(e.Depth, len(strokes)-1)]
		fmt.Fprintf(&buf, `  <rect id="node-%d" x="%s" y="%s" width="%s" height="%s" fill="none" stroke="%s"/>`+"\n",
			e.Node, formatFloat(b.X), formatFloat(b.Y), formatFloat(b.Width), formatFloat(b.Height), stroke)
	}
	if o.FontSize > 0 {
		for _, e := range entries {
			if e.Label == "" {
				continue
			}
			b := e.Bounds
			fmt.Fprintf(&buf, `  <text x="%s" y="%s" font-size="%s" font-family="sans-serif">%s</text>`+"\n",
				formatFloat(b.X+2), formatFloat(b.Y+o.FontSize), formatFloat(o.FontSize), html.EscapeString(e.Label))
		}
	}
	buf.WriteString("</svg>\n")

	_, err = w.Write(buf.Bytes())
	return err
}
