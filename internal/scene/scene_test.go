package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connorcarpenter/morph"
)

func TestLoad_Dashboard(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "dashboard.toml"))
	require.NoError(t, err)

	assert.Equal(t, Viewport{Width: 400, Height: 300}, sc.Viewport)
	assert.True(t, sc.Font.Cells)
	assert.Equal(t, float32(DefaultFontSize), sc.Font.Size)
	assert.Equal(t, 7, sc.Count())
	assert.Equal(t, filepath.Join("testdata", "dashboard.toml"), sc.Path)

	tree, root, err := sc.Build()
	require.NoError(t, err)
	require.NoError(t, tree.Solve(root, sc.Viewport.Width, sc.Viewport.Height))

	bounds := func(name string) morph.Rect {
		t.Helper()
		n, ok := tree.Lookup(name)
		require.True(t, ok, name)
		r, ok := tree.Bounds(n)
		require.True(t, ok, name)
		return r
	}

	assert.Equal(t, morph.NewRect(0, 0, 400, 300), bounds("app"))
	// The header is as wide as its title; the title is centered vertically.
	assert.Equal(t, morph.NewRect(0, 0, 9, 20), bounds("header"))
	assert.Equal(t, morph.NewRect(0, 10, 9, 1), bounds("title"))
	// The body is pushed to the bottom by its stretch top spacing.
	assert.Equal(t, morph.NewRect(0, 196, 400, 104), bounds("body"))
	assert.Equal(t, morph.NewRect(0, 200, 100, 100), bounds("sidebar"))
	assert.Equal(t, morph.NewRect(110, 200, 120, 80), bounds("main"))
	assert.Equal(t, morph.NewRect(175, 125, 50, 50), bounds("overlay"))
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		doc string
		err error
	}

	tests := map[string]tc{
		"no root": {
			doc: "[viewport]\nwidth = 10\n",
			err: ErrNoRoot,
		},
		"unknown key": {
			doc: "[root]\nwidht = 10\n",
		},
		"bad toml": {
			doc: "[root\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	type tc struct {
		doc  string
		path string
		err  error
	}

	tests := map[string]tc{
		"bad length names the field": {
			doc:  "[root]\n[[root.children]]\nname = \"a\"\nwidth = \"wide\"\n",
			path: "root/a.width",
			err:  ErrUnits,
		},
		"unnamed child uses index": {
			doc:  "[root]\n[[root.children]]\n[[root.children]]\nleft = \"x\"\n",
			path: "root/1.left",
			err:  ErrUnits,
		},
		"infinite float": {
			doc:  "[root]\nheight = inf\n",
			path: "root.height",
			err:  ErrUnits,
		},
		"bad layout": {
			doc:  "[root]\nlayout = \"grid\"\n",
			path: "root.layout",
		},
		"bad position": {
			doc:  "[root]\nposition = \"absolute\"\n",
			path: "root.position",
		},
		"bad solid": {
			doc:  "[root]\nsolid = \"cover\"\n",
			path: "root.solid",
		},
		"solid without ratio": {
			doc:  "[root]\nname = \"img\"\nsolid = \"fit\"\n",
			path: "img",
			err:  morph.ErrMissingAspectRatio,
		},
		"stretch size": {
			doc:  "[root]\nwidth = \"1s\"\n",
			path: "root",
			err:  morph.ErrStretchSize,
		},
		"duplicate name": {
			doc:  "[root]\nname = \"a\"\n[[root.children]]\nname = \"a\"\n",
			path: "a/a",
			err:  morph.ErrDuplicateName,
		},
		"short content size": {
			doc:  "[root]\ncontent-size = [1]\n",
			path: "root",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sc, err := Parse([]byte(tt.doc))
			require.NoError(t, err)

			_, _, err = sc.Build()
			require.Error(t, err)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.path, perr.Path)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestNode_StyleShorthands(t *testing.T) {
	n := &Node{
		Space:      L("5px"),
		Left:       L("1s"),
		ChildSpace: L("10%"),
		ChildTop:   L("0"),
		Between:    L("2s"),
		Layout:     "column",
		Position:   "self",
	}

	s, err := n.Style("n")
	require.NoError(t, err)

	assert.Equal(t, morph.Stretch(1), s.Left)
	assert.Equal(t, morph.Pixels(5), s.Right)
	assert.Equal(t, morph.Pixels(5), s.Top)
	assert.Equal(t, morph.Pixels(5), s.Bottom)
	assert.Equal(t, morph.Percent(10), s.ChildLeft)
	assert.Equal(t, morph.Pixels(0), s.ChildTop)
	assert.Equal(t, morph.Stretch(2), s.Between)
	assert.Equal(t, morph.Column, s.LayoutType)
	assert.Equal(t, morph.SelfDirected, s.PositionType)
	assert.True(t, s.Width.IsAuto())
}

func TestScene_Measurer(t *testing.T) {
	sc := &Scene{Font: Font{Size: 12}}
	m, err := sc.Measurer()
	require.NoError(t, err)
	w, h := m.MeasureText("abc", 1000)
	assert.Greater(t, w, float32(0))
	assert.Greater(t, h, float32(0))

	sc.Font.File = filepath.Join(t.TempDir(), "missing.ttf")
	_, err = sc.Measurer()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "font.file", perr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Defaults(t *testing.T) {
	sc, err := Parse([]byte("[root]\n"))
	require.NoError(t, err)
	assert.Equal(t, Viewport{Width: DefaultWidth, Height: DefaultHeight}, sc.Viewport)
	assert.Equal(t, float32(DefaultFontSize), sc.Font.Size)
}

func TestScene_Solve(t *testing.T) {
	sc, err := Parse([]byte(`
[viewport]
width = 200
height = 100

[root]
name = "box"
width = "50%"
height = "25%"
`))
	require.NoError(t, err)

	tree, root, err := sc.Solve()
	require.NoError(t, err)
	r, ok := tree.Rect(root)
	require.True(t, ok)
	assert.Equal(t, morph.NewRect(0, 0, 100, 25), r)
	assert.Equal(t, "box", tree.Name(root))
}
