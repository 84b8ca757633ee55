package morph

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_Bounds(t *testing.T) {
	tree := newTree(t)
	root, _ := tree.AddRoot(Style{
		Width: Percent(100), Height: Percent(100),
		ChildLeft: Pixels(10), ChildTop: Pixels(10),
	})
	panel, _ := tree.Add(root, Style{LayoutType: Column, Width: Pixels(100), Height: Pixels(100), Left: Pixels(5)})
	inner, _ := tree.Add(panel, Style{Width: Pixels(20), Height: Pixels(30), Top: Pixels(7)})

	require.NoError(t, tree.Solve(root, 800, 600))

	r, ok := tree.Rect(root)
	require.True(t, ok)
	assert.Equal(t, NewRect(0, 0, 800, 600), r)

	r, _ = tree.Rect(panel)
	assert.Equal(t, NewRect(15, 10, 100, 100), r)

	r, _ = tree.Rect(inner)
	assert.Equal(t, NewRect(0, 7, 20, 30), r)

	b, ok := tree.Bounds(inner)
	require.True(t, ok)
	assert.Equal(t, NewRect(15, 17, 20, 30), b)
}

func TestSolve_StretchScenario(t *testing.T) {
	tree := newTree(t)
	root, _ := tree.AddRoot(Style{Width: Pixels(300), Height: Pixels(100)})
	a, _ := tree.Add(root, Style{Width: Pixels(50)})
	b, _ := tree.Add(root, Style{Right: Stretch(1)})
	require.NoError(t, tree.SetContent(b, Intrinsic(0, 0)))

	require.NoError(t, tree.Solve(root, 1000, 1000))

	ra, _ := tree.Rect(a)
	rb, _ := tree.Rect(b)
	assert.Equal(t, NewRect(0, 0, 50, 0), ra)
	assert.Equal(t, NewRect(50, 0, 0, 0), rb)
}

func TestSolve_CrossPercentBounds(t *testing.T) {
	type tc struct {
		child Style
		want  Rect
	}

	tests := map[string]tc{
		"max above a fixed height": {child: Style{Height: Pixels(100), MaxHeight: Percent(80)}, want: NewRect(0, 0, 10, 100)},
		"max above content":        {child: Style{MaxHeight: Percent(50)}, want: NewRect(0, 0, 10, 20)},
		"min raises content":       {child: Style{MinHeight: Percent(50)}, want: NewRect(0, 0, 10, 100)},
		"min and max keep content": {child: Style{MinHeight: Percent(5), MaxHeight: Percent(50)}, want: NewRect(0, 0, 10, 20)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTree(t)
			root, _ := tree.AddRoot(Style{Width: Pixels(300), Height: Pixels(200)})
			child, err := tree.Add(root, tt.child)
			require.NoError(t, err)
			require.NoError(t, tree.SetContent(child, Intrinsic(10, 20)))

			require.NoError(t, tree.Solve(root, 1000, 1000))

			r, ok := tree.Rect(child)
			require.True(t, ok)
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestSolve_RootPercentBoundsUseViewport(t *testing.T) {
	tree := newTree(t)
	root, _ := tree.AddRoot(Style{MaxHeight: Percent(25)})
	_, _ = tree.Add(root, Style{Width: Pixels(40), Height: Pixels(90)})

	require.NoError(t, tree.Solve(root, 200, 200))

	r, _ := tree.Rect(root)
	assert.Equal(t, NewRect(0, 0, 40, 50), r)
}

func TestSolve_RootOffsetAndAutoSize(t *testing.T) {
	tree := newTree(t)
	root, _ := tree.AddRoot(Style{Left: Pixels(4), Top: Percent(10)})
	_, _ = tree.Add(root, Style{Width: Pixels(30), Height: Pixels(12)})
	_, _ = tree.Add(root, Style{Width: Pixels(20), Height: Pixels(18)})

	require.NoError(t, tree.Solve(root, 200, 100))

	r, _ := tree.Rect(root)
	assert.Equal(t, NewRect(4, 10, 50, 18), r)
}

func TestSolve_ContentFrames(t *testing.T) {
	type tc struct {
		layout     LayoutType
		child      Style
		want       Rect
		wantWidth  *float32
		wantHeight *float32
	}

	width := float32(80)
	height := float32(40)

	tests := map[string]tc{
		"row parent knows width": {
			layout:    Row,
			child:     Style{Width: Pixels(80)},
			want:      NewRect(0, 0, 80, 25),
			wantWidth: &width,
		},
		"column parent knows height": {
			layout:     Column,
			child:      Style{Height: Pixels(40)},
			want:       NewRect(0, 0, 70, 40),
			wantHeight: &height,
		},
		"nothing known": {
			layout: Column,
			child:  Style{},
			want:   NewRect(0, 0, 70, 25),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tree := newTree(t)
			root, _ := tree.AddRoot(Style{LayoutType: tt.layout, Width: Pixels(300), Height: Pixels(300)})
			leaf, _ := tree.Add(root, tt.child)

			var gotWidth, gotHeight *float32
			require.NoError(t, tree.SetContent(leaf, ContentFunc(func(w, h *float32) (float32, float32) {
				gotWidth, gotHeight = w, h
				return 70, 25
			})))

			require.NoError(t, tree.Solve(root, 300, 300))

			r, _ := tree.Rect(leaf)
			assert.Equal(t, tt.want, r)
			assert.Equal(t, tt.wantWidth, gotWidth)
			assert.Equal(t, tt.wantHeight, gotHeight)
		})
	}
}

type wrapMeasurer struct {
	lineHeight float32
	charWidth  float32
}

// MeasureText lays characters out on lines no wider than maxWidth.
func (m wrapMeasurer) MeasureText(s string, maxWidth float32) (float32, float32) {
	total := float32(len(s)) * m.charWidth
	if total <= maxWidth {
		return total, m.lineHeight
	}
	perLine := int(maxWidth / m.charWidth)
	lines := (len(s) + perLine - 1) / perLine
	return float32(perLine) * m.charWidth, float32(lines) * m.lineHeight
}

func TestSolve_TextWrapsToKnownWidth(t *testing.T) {
	tree := newTree(t)
	root, _ := tree.AddRoot(Style{LayoutType: Column, Width: Pixels(50)})
	label, _ := tree.Add(root, Style{Width: Percent(100)})
	require.NoError(t, tree.SetContent(label, Text(wrapMeasurer{lineHeight: 10, charWidth: 5}, "abcdefghijklmnopqrstuvwxy")))

	require.NoError(t, tree.Solve(root, 1000, 1000))

	r, _ := tree.Rect(label)
	assert.Equal(t, NewRect(0, 0, 50, 30), r)

	root2, _ := tree.Rect(root)
	assert.Equal(t, float32(30), root2.Height)
}

type fixedSub struct {
	calls int
}

func (s *fixedSub) ContentSize(Node, LayoutType, *float32, *float32) (float32, float32, bool) {
	s.calls++
	return 11, 22, true
}

func TestSolve_WithSubLayout(t *testing.T) {
	sub := &fixedSub{}
	tree := newTree(t, WithSubLayout(sub))
	root, _ := tree.AddRoot(DefaultStyle())
	leaf, _ := tree.Add(root, DefaultStyle())
	require.NoError(t, tree.SetContent(leaf, Intrinsic(1, 1)))

	require.NoError(t, tree.Solve(root, 100, 100))

	r, _ := tree.Rect(leaf)
	assert.Equal(t, NewRect(0, 0, 11, 22), r)
	assert.Equal(t, 1, sub.calls)
}

func TestSolve_SkipsCleanTree(t *testing.T) {
	tree := newTree(t)
	root, _ := tree.AddRoot(Style{Width: Percent(50), Height: Percent(50)})
	child, _ := tree.Add(root, Style{Width: Pixels(10)})

	assert.True(t, tree.Dirty(root))
	require.NoError(t, tree.Solve(root, 100, 100))
	assert.False(t, tree.Dirty(root))
	assert.Equal(t, 1, tree.Passes())

	require.NoError(t, tree.Solve(root, 100, 100))
	assert.Equal(t, 1, tree.Passes(), "same viewport and clean tree")

	require.NoError(t, tree.Solve(root, 200, 100))
	assert.Equal(t, 2, tree.Passes(), "viewport changed")
	r, _ := tree.Rect(root)
	assert.Equal(t, float32(100), r.Width)

	require.NoError(t, tree.SetStyle(child, Style{Width: Pixels(20)}))
	assert.True(t, tree.Dirty(root))
	require.NoError(t, tree.Solve(root, 200, 100))
	assert.Equal(t, 3, tree.Passes(), "style changed")
	r, _ = tree.Rect(child)
	assert.Equal(t, float32(20), r.Width)
}

func TestSolve_HiddenNodesHaveNoRect(t *testing.T) {
	tree := newTree(t)
	root, _ := tree.AddRoot(DefaultStyle())
	a, _ := tree.Add(root, Style{Width: Pixels(10), Height: Pixels(10)})

	require.NoError(t, tree.Solve(root, 100, 100))
	_, ok := tree.Rect(a)
	assert.True(t, ok)

	require.NoError(t, tree.Update(a, func(s *Style) { s.Hidden = true }))
	require.NoError(t, tree.Solve(root, 100, 100))
	_, ok = tree.Rect(a)
	assert.False(t, ok, "stale rect after hiding")
	_, ok = tree.Bounds(a)
	assert.False(t, ok)
}

func TestSolve_Errors(t *testing.T) {
	tree := newTree(t)
	assert.ErrorIs(t, tree.SolveAll(10, 10), ErrNoRoot)

	root, _ := tree.AddRoot(DefaultStyle())
	child, _ := tree.Add(root, DefaultStyle())
	assert.ErrorIs(t, tree.Solve(child, 10, 10), ErrNotRoot)
}

type badSub struct{}

func (badSub) ContentSize(Node, LayoutType, *float32, *float32) (float32, float32, bool) {
	panic(&StyleError{Field: "solid", Err: ErrMissingAspectRatio})
}

func TestSolve_StyleErrorAbortsPass(t *testing.T) {
	tree := newTree(t, WithSubLayout(badSub{}))
	root, _ := tree.AddRoot(DefaultStyle())

	err := tree.Solve(root, 10, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAspectRatio)
	assert.True(t, tree.Dirty(root))
}

func TestSolveAll_MultipleRoots(t *testing.T) {
	tree := newTree(t)
	a, _ := tree.AddRoot(Style{Width: Percent(50), Height: Pixels(10)})
	b, _ := tree.AddRoot(Style{Width: Pixels(30), Height: Percent(100)})

	require.NoError(t, tree.SolveAll(200, 80))

	ra, _ := tree.Rect(a)
	rb, _ := tree.Rect(b)
	assert.Equal(t, NewRect(0, 0, 100, 10), ra)
	assert.Equal(t, NewRect(0, 0, 30, 80), rb)
}

func TestHitTest(t *testing.T) {
	tree := newTree(t)
	root, _ := tree.AddRoot(Style{Width: Pixels(100), Height: Pixels(100)})
	left, _ := tree.Add(root, Style{Width: Pixels(50), Height: Pixels(100)})
	inner, _ := tree.Add(left, Style{Width: Pixels(10), Height: Pixels(10), Left: Pixels(5), Top: Pixels(5)})
	overlay, _ := tree.Add(root, Style{PositionType: SelfDirected, Width: Pixels(20), Height: Pixels(20)})
	outside, _ := tree.Add(root, Style{PositionType: SelfDirected, Width: Pixels(20), Height: Pixels(20), Left: Pixels(120)})

	require.NoError(t, tree.Solve(root, 100, 100))

	type tc struct {
		x, y float32
		want Node
		ok   bool
	}

	tests := map[string]tc{
		"deepest node":            {x: 7, y: 7, want: overlay, ok: true},
		"left panel":              {x: 25, y: 25, want: left, ok: true},
		"below inner":             {x: 8, y: 30, want: left, ok: true},
		"right half is root":      {x: 75, y: 50, want: root, ok: true},
		"outside the root":        {x: 150, y: 50, ok: false},
		"inner outside overlay":   {x: 12, y: 12, want: overlay, ok: true},
		"child beyond its parent": {x: 130, y: 10, want: outside, ok: true},
		"beside that child":       {x: 130, y: 30, ok: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := tree.HitTest(root, tt.x, tt.y)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}

	// Without the overlay the nested leaf wins.
	require.NoError(t, tree.Update(overlay, func(s *Style) { s.Hidden = true }))
	require.NoError(t, tree.Solve(root, 100, 100))
	got, ok := tree.HitTest(root, 7, 7)
	assert.True(t, ok)
	assert.Equal(t, inner, got)
}

func TestSolve_LogsPass(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	tree := newTree(t, WithLogger(logger))
	root, _ := tree.AddRoot(DefaultStyle())
	_, _ = tree.Add(root, DefaultStyle())

	require.NoError(t, tree.Solve(root, 640, 480))

	out := buf.String()
	assert.Contains(t, out, "layout pass")
	assert.Contains(t, out, "nodes=2")
	assert.Contains(t, out, "viewport=640x480")
}
