package scene

import (
	"fmt"
	"os"
	"strconv"

	"github.com/connorcarpenter/morph"
	"github.com/connorcarpenter/morph/internal/measure"
)

// Measurer returns the text measurer selected by the scene's [font] table.
func (sc *Scene) Measurer() (morph.TextMeasurer, error) {
	if sc.Font.Cells {
		return measure.Cells{}, nil
	}
	if sc.Font.File == "" {
		face, err := measure.DefaultFace(sc.Font.Size)
		if err != nil {
			return nil, &ParseError{Path: "font.size", Err: err}
		}
		return face, nil
	}
	data, err := os.ReadFile(sc.Font.File)
	if err != nil {
		return nil, &ParseError{Path: "font.file", Err: err}
	}
	face, err := measure.NewFace(data, sc.Font.Size)
	if err != nil {
		return nil, &ParseError{Path: "font.file", Err: err}
	}
	return face, nil
}

// Build creates a tree holding the scene's nodes and returns it with the
// root handle. Errors name the offending node by path, such as
// "root/sidebar/2.width".
func (sc *Scene) Build(opts ...morph.Option) (*morph.Tree, morph.Node, error) {
	if sc.Root == nil {
		return nil, 0, ErrNoRoot
	}
	opts = append([]morph.Option{morph.WithCapacity(sc.Count())}, opts...)
	tree, err := morph.New(opts...)
	if err != nil {
		return nil, 0, err
	}

	var m morph.TextMeasurer
	if hasText(sc.Root) {
		if m, err = sc.Measurer(); err != nil {
			return nil, 0, err
		}
	}

	b := &builder{tree: tree, measurer: m}
	root, err := b.add(sc.Root, nil, nodePath("", sc.Root, 0))
	if err != nil {
		return nil, 0, err
	}
	return tree, root, nil
}

// Solve builds the scene and lays out its root against the scene's
// viewport.
func (sc *Scene) Solve(opts ...morph.Option) (*morph.Tree, morph.Node, error) {
	tree, root, err := sc.Build(opts...)
	if err != nil {
		return nil, 0, err
	}
	if err := tree.Solve(root, sc.Viewport.Width, sc.Viewport.Height); err != nil {
		return nil, 0, err
	}
	return tree, root, nil
}

type builder struct {
	tree     *morph.Tree
	measurer morph.TextMeasurer
}

func (b *builder) add(def *Node, parent *morph.Node, path string) (morph.Node, error) {
	style, err := def.Style(path)
	if err != nil {
		return 0, err
	}

	var n morph.Node
	if parent == nil {
		n, err = b.tree.AddRoot(style)
	} else {
		n, err = b.tree.Add(*parent, style)
	}
	if err != nil {
		return 0, &ParseError{Path: path, Err: err}
	}

	if def.Name != "" {
		if err := b.tree.SetName(n, def.Name); err != nil {
			return 0, &ParseError{Path: path, Err: err}
		}
	}

	switch {
	case def.Text != "":
		err = b.tree.SetContent(n, morph.Text(b.measurer, def.Text))
	case len(def.ContentSize) == 2:
		err = b.tree.SetContent(n, morph.Intrinsic(def.ContentSize[0], def.ContentSize[1]))
	case len(def.ContentSize) != 0:
		err = fmt.Errorf("content-size needs [width, height], got %d values", len(def.ContentSize))
	}
	if err != nil {
		return 0, &ParseError{Path: path, Err: err}
	}

	for i, child := range def.Children {
		if _, err := b.add(child, &n, nodePath(path, child, i)); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// Style converts the node's fields into a style. path prefixes field names
// in errors.
func (def *Node) Style(path string) (morph.Style, error) {
	var s morph.Style
	var err error

	if s.LayoutType, err = parseLayout(def.Layout); err != nil {
		return s, &ParseError{Path: path + ".layout", Err: err}
	}
	if s.PositionType, err = parsePosition(def.Position); err != nil {
		return s, &ParseError{Path: path + ".position", Err: err}
	}
	if s.Solid, err = parseSolid(def.Solid); err != nil {
		return s, &ParseError{Path: path + ".solid", Err: err}
	}
	s.Hidden = def.Hidden
	s.AspectRatio = def.AspectRatio

	// Shorthands first so explicit sides override them.
	fields := []struct {
		name  string
		value Length
		dst   []*morph.Units
	}{
		{"space", def.Space, []*morph.Units{&s.Left, &s.Right, &s.Top, &s.Bottom}},
		{"child-space", def.ChildSpace, []*morph.Units{&s.ChildLeft, &s.ChildRight, &s.ChildTop, &s.ChildBottom}},
		{"width", def.Width, []*morph.Units{&s.Width}},
		{"height", def.Height, []*morph.Units{&s.Height}},
		{"min-width", def.MinWidth, []*morph.Units{&s.MinWidth}},
		{"min-height", def.MinHeight, []*morph.Units{&s.MinHeight}},
		{"max-width", def.MaxWidth, []*morph.Units{&s.MaxWidth}},
		{"max-height", def.MaxHeight, []*morph.Units{&s.MaxHeight}},
		{"left", def.Left, []*morph.Units{&s.Left}},
		{"right", def.Right, []*morph.Units{&s.Right}},
		{"top", def.Top, []*morph.Units{&s.Top}},
		{"bottom", def.Bottom, []*morph.Units{&s.Bottom}},
		{"min-left", def.MinLeft, []*morph.Units{&s.MinLeft}},
		{"max-left", def.MaxLeft, []*morph.Units{&s.MaxLeft}},
		{"min-right", def.MinRight, []*morph.Units{&s.MinRight}},
		{"max-right", def.MaxRight, []*morph.Units{&s.MaxRight}},
		{"min-top", def.MinTop, []*morph.Units{&s.MinTop}},
		{"max-top", def.MaxTop, []*morph.Units{&s.MaxTop}},
		{"min-bottom", def.MinBottom, []*morph.Units{&s.MinBottom}},
		{"max-bottom", def.MaxBottom, []*morph.Units{&s.MaxBottom}},
		{"child-left", def.ChildLeft, []*morph.Units{&s.ChildLeft}},
		{"child-right", def.ChildRight, []*morph.Units{&s.ChildRight}},
		{"child-top", def.ChildTop, []*morph.Units{&s.ChildTop}},
		{"child-bottom", def.ChildBottom, []*morph.Units{&s.ChildBottom}},
		{"between", def.Between, []*morph.Units{&s.Between}},
	}
	for _, f := range fields {
		if !f.value.IsSet() {
			continue
		}
		u, err := ParseUnits(f.value.String())
		if err != nil {
			return s, &ParseError{Path: path + "." + f.name, Err: err}
		}
		for _, dst := range f.dst {
			*dst = u
		}
	}

	if err := s.Validate(); err != nil {
		return s, &ParseError{Path: path, Err: err}
	}
	return s, nil
}

func parseLayout(s string) (morph.LayoutType, error) {
	switch s {
	case "", "row":
		return morph.Row, nil
	case "column":
		return morph.Column, nil
	}
	return morph.Row, fmt.Errorf("unknown layout %q, want row or column", s)
}

func parsePosition(s string) (morph.PositionType, error) {
	switch s {
	case "", "parent":
		return morph.ParentDirected, nil
	case "self":
		return morph.SelfDirected, nil
	}
	return morph.ParentDirected, fmt.Errorf("unknown position %q, want parent or self", s)
}

func parseSolid(s string) (morph.Solid, error) {
	switch s {
	case "", "none":
		return morph.SolidNone, nil
	case "fit":
		return morph.SolidFit, nil
	case "fill":
		return morph.SolidFill, nil
	}
	return morph.SolidNone, fmt.Errorf("unknown solid %q, want none, fit or fill", s)
}

// nodePath names a node by its name, or by its index among its siblings.
func nodePath(parent string, n *Node, index int) string {
	name := n.Name
	if name == "" {
		if parent == "" {
			name = "root"
		} else {
			name = strconv.Itoa(index)
		}
	}
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

func hasText(n *Node) bool {
	if n.Text != "" {
		return true
	}
	for _, c := range n.Children {
		if hasText(c) {
			return true
		}
	}
	return false
}
