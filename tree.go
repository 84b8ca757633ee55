package morph

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// node is the arena slot behind a Node handle.
type node struct {
	style    Style
	parent   Node
	isRoot   bool
	children []Node
	name     string
	content  Content

	rect   Rect // relative to the parent's origin
	bounds Rect // relative to the viewport
	placed bool
}

// viewport is the size a root was last solved against.
type viewport struct {
	width, height float32
}

// Tree is an arena of styled nodes. Nodes are addressed by handle; a tree
// may hold several roots, each solved independently.
//
// A Tree is not safe for concurrent use. Callers must serialize mutations
// and Solve calls.
type Tree struct {
	nodes []node
	roots []Node
	names map[string]Node

	// solved records the viewport of every root solved since the last
	// mutation.
	solved map[Node]viewport
	passes int

	logger *log.Logger
	sub    SubLayout
}

// New creates an empty tree.
func New(opts ...Option) (*Tree, error) {
	t := &Tree{
		names:  make(map[string]Node),
		solved: make(map[Node]viewport),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// AddRoot creates a node without a parent.
func (t *Tree) AddRoot(style Style) (Node, error) {
	if err := style.Validate(); err != nil {
		return 0, err
	}
	id := Node(len(t.nodes))
	t.nodes = append(t.nodes, node{style: style, isRoot: true})
	t.roots = append(t.roots, id)
	t.markDirty()
	return id, nil
}

// Add creates a node as the last child of parent.
func (t *Tree) Add(parent Node, style Style) (Node, error) {
	if !t.valid(parent) {
		return 0, fmt.Errorf("add child to %d: %w", parent, ErrUnknownNode)
	}
	if err := style.Validate(); err != nil {
		return 0, err
	}
	id := Node(len(t.nodes))
	t.nodes = append(t.nodes, node{style: style, parent: parent})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	t.markDirty()
	return id, nil
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Roots returns the root nodes in creation order.
func (t *Tree) Roots() []Node {
	return append([]Node(nil), t.roots...)
}

// Style returns the node's style.
func (t *Tree) Style(n Node) (Style, error) {
	if !t.valid(n) {
		return Style{}, fmt.Errorf("style of %d: %w", n, ErrUnknownNode)
	}
	return t.nodes[n].style, nil
}

// SetStyle replaces the node's style.
func (t *Tree) SetStyle(n Node, style Style) error {
	if !t.valid(n) {
		return fmt.Errorf("set style of %d: %w", n, ErrUnknownNode)
	}
	if err := style.Validate(); err != nil {
		return err
	}
	t.nodes[n].style = style
	t.markDirty()
	return nil
}

// Update applies fn to a copy of the node's style and stores the result.
func (t *Tree) Update(n Node, fn func(*Style)) error {
	style, err := t.Style(n)
	if err != nil {
		return err
	}
	fn(&style)
	return t.SetStyle(n, style)
}

// Children returns the node's children in document order.
func (t *Tree) Children(n Node) []Node {
	if !t.valid(n) {
		return nil
	}
	return append([]Node(nil), t.nodes[n].children...)
}

// Parent returns the node's parent. ok is false for roots and unknown nodes.
func (t *Tree) Parent(n Node) (parent Node, ok bool) {
	if !t.valid(n) || t.nodes[n].isRoot {
		return 0, false
	}
	return t.nodes[n].parent, true
}

// SetName assigns a unique name to the node. An empty name clears it.
func (t *Tree) SetName(n Node, name string) error {
	if !t.valid(n) {
		return fmt.Errorf("set name of %d: %w", n, ErrUnknownNode)
	}
	if other, ok := t.names[name]; ok && other != n {
		return fmt.Errorf("name %q: %w", name, ErrDuplicateName)
	}
	if old := t.nodes[n].name; old != "" {
		delete(t.names, old)
	}
	t.nodes[n].name = name
	if name != "" {
		t.names[name] = n
	}
	return nil
}

// Name returns the node's name, or "" if it has none.
func (t *Tree) Name(n Node) string {
	if !t.valid(n) {
		return ""
	}
	return t.nodes[n].name
}

// Lookup finds a node by name.
func (t *Tree) Lookup(name string) (Node, bool) {
	n, ok := t.names[name]
	return n, ok
}

// SetContent attaches content that sizes the node while it has no
// parent-directed children. A nil content removes it.
func (t *Tree) SetContent(n Node, c Content) error {
	if !t.valid(n) {
		return fmt.Errorf("set content of %d: %w", n, ErrUnknownNode)
	}
	t.nodes[n].content = c
	t.markDirty()
	return nil
}

// Content returns the node's content, or nil.
func (t *Tree) Content(n Node) Content {
	if !t.valid(n) {
		return nil
	}
	return t.nodes[n].content
}

// Walk visits every node under root depth-first in document order. Hidden
// subtrees are skipped. Returning false from fn skips the node's children.
func (t *Tree) Walk(root Node, fn func(n Node, depth int) bool) {
	if !t.valid(root) {
		return
	}
	t.walk(root, 0, fn)
}

func (t *Tree) walk(n Node, depth int, fn func(Node, int) bool) {
	if t.nodes[n].style.Hidden {
		return
	}
	if !fn(n, depth) {
		return
	}
	for _, c := range t.nodes[n].children {
		t.walk(c, depth+1, fn)
	}
}

func (t *Tree) valid(n Node) bool {
	return int(n) < len(t.nodes)
}
