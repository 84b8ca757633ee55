package scene

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Default viewport used when a scene does not name one.
const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultFontSize = 16
)

// ErrNoRoot is returned for a scene without a [root] table.
var ErrNoRoot = errors.New("scene has no root")

// Scene is a parsed scene file.
type Scene struct {
	Viewport Viewport `toml:"viewport"`
	Font     Font     `toml:"font"`
	Root     *Node    `toml:"root"`

	// Path is the file the scene was loaded from, if any.
	Path string `toml:"-"`
}

// Viewport is the size the root is solved against.
type Viewport struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// Font selects how text content is measured.
type Font struct {
	// Size is the font size in pixels per em.
	Size float32 `toml:"size"`
	// Cells measures text in terminal cells instead of font pixels.
	Cells bool `toml:"cells"`
	// File is an OpenType font to load instead of Go Regular.
	File string `toml:"file"`
}

// Node describes one node and its children.
type Node struct {
	Name     string `toml:"name"`
	Layout   string `toml:"layout"`
	Position string `toml:"position"`
	Hidden   bool   `toml:"hidden"`

	Width     Length `toml:"width"`
	Height    Length `toml:"height"`
	MinWidth  Length `toml:"min-width"`
	MinHeight Length `toml:"min-height"`
	MaxWidth  Length `toml:"max-width"`
	MaxHeight Length `toml:"max-height"`

	// Space sets left, right, top and bottom at once.
	Space  Length `toml:"space"`
	Left   Length `toml:"left"`
	Right  Length `toml:"right"`
	Top    Length `toml:"top"`
	Bottom Length `toml:"bottom"`

	MinLeft   Length `toml:"min-left"`
	MaxLeft   Length `toml:"max-left"`
	MinRight  Length `toml:"min-right"`
	MaxRight  Length `toml:"max-right"`
	MinTop    Length `toml:"min-top"`
	MaxTop    Length `toml:"max-top"`
	MinBottom Length `toml:"min-bottom"`
	MaxBottom Length `toml:"max-bottom"`

	// ChildSpace sets all four child-* paddings at once.
	ChildSpace  Length `toml:"child-space"`
	ChildLeft   Length `toml:"child-left"`
	ChildRight  Length `toml:"child-right"`
	ChildTop    Length `toml:"child-top"`
	ChildBottom Length `toml:"child-bottom"`
	Between     Length `toml:"between"`

	Solid       string  `toml:"solid"`
	AspectRatio float32 `toml:"aspect-ratio"`

	// Text is measured with the scene's font.
	Text string `toml:"text"`
	// ContentSize is a fixed intrinsic [width, height].
	ContentSize []float32 `toml:"content-size"`

	Children []*Node `toml:"children"`
}

// ParseError reports a problem with one node or field of a scene.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	sc.Path = path
	return sc, nil
}

// Parse decodes a scene from TOML. Keys the scene format does not know are
// rejected.
func Parse(data []byte) (*Scene, error) {
	var sc Scene
	md, err := toml.Decode(string(data), &sc)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if sc.Root == nil {
		return nil, ErrNoRoot
	}
	sc.applyDefaults()
	return &sc, nil
}

func (sc *Scene) applyDefaults() {
	if sc.Viewport.Width <= 0 {
		sc.Viewport.Width = DefaultWidth
	}
	if sc.Viewport.Height <= 0 {
		sc.Viewport.Height = DefaultHeight
	}
	if sc.Font.Size <= 0 {
		sc.Font.Size = DefaultFontSize
	}
}

// Count returns the number of nodes in the scene.
func (sc *Scene) Count() int {
	return countNodes(sc.Root)
}

func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += countNodes(c)
	}
	return total
}
