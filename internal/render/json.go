package render

import (
	"encoding/json"
	"io"

	"github.com/connorcarpenter/morph"
)

// Box geometry as written to JSON.
type jsonRect struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

type jsonNode struct {
	ID       morph.Node  `json:"id"`
	Name     string      `json:"name,omitempty"`
	Text     string      `json:"text,omitempty"`
	Rect     jsonRect    `json:"rect"`
	Bounds   jsonRect    `json:"bounds"`
	Children []*jsonNode `json:"children,omitempty"`
}

func toJSONRect(r morph.Rect) jsonRect {
	return jsonRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// JSON writes the solved boxes under root as an indented JSON document
// nested the same way as the tree.
func JSON(w io.Writer, tree *morph.Tree, root morph.Node) error {
	entries, err := Collect(tree, root)
	if err != nil {
		return err
	}

	// Entries are depth-first, so each node's parent is the closest
	// preceding entry one level up.
	var stack []*jsonNode
	var top *jsonNode
	for _, e := range entries {
		n := &jsonNode{
			ID:     e.Node,
			Name:   e.Name,
			Rect:   toJSONRect(e.Rect),
			Bounds: toJSONRect(e.Bounds),
		}
		if e.Name == "" {
			n.Text = e.Label
		}
		stack = stack[:e.Depth]
		if e.Depth == 0 {
			top = n
		} else {
			parent := stack[e.Depth-1]
			parent.Children = append(parent.Children, n)
		}
		stack = append(stack, n)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(top)
}
