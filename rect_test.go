package morph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Edges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, Rect{X: 5, Y: 10, Width: 20, Height: 15}, r)
	assert.Equal(t, float32(25), r.Right())
	assert.Equal(t, float32(25), r.Bottom())
}

func TestRect_IsEmpty(t *testing.T) {
	type tc struct {
		rect  Rect
		empty bool
	}

	tests := map[string]tc{
		"normal":          {rect: NewRect(0, 0, 10, 10), empty: false},
		"zero width":      {rect: NewRect(0, 0, 0, 10), empty: true},
		"zero height":     {rect: NewRect(0, 0, 10, 0), empty: true},
		"negative width":  {rect: NewRect(0, 0, -1, 10), empty: true},
		"fractional size": {rect: NewRect(0, 0, 0.5, 0.5), empty: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.rect.IsEmpty())
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	type tc struct {
		x, y float32
		want bool
	}

	tests := map[string]tc{
		"inside":             {x: 15, y: 15, want: true},
		"top-left corner":    {x: 10, y: 10, want: true},
		"right edge":         {x: 30, y: 15, want: false},
		"bottom edge":        {x: 15, y: 30, want: false},
		"just inside bottom": {x: 29.5, y: 29.5, want: true},
		"left of rect":       {x: 9.9, y: 15, want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestRect_Union(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 5, 10, 10)

	assert.Equal(t, NewRect(0, 0, 30, 15), a.Union(b))
	assert.Equal(t, NewRect(-5, 0, 15, 10), a.Union(NewRect(-5, 2, 1, 1)))
	assert.Equal(t, b, Rect{}.Union(b))
	assert.Equal(t, a, a.Union(Rect{}))
}

func TestRect_Translate(t *testing.T) {
	r := NewRect(1, 2, 3, 4)

	assert.Equal(t, NewRect(11, 22, 3, 4), r.Translate(10, 20))
	assert.Equal(t, NewRect(1, 2, 3, 4), r, "receiver unchanged")
}

func TestFromFrame(t *testing.T) {
	assert.Equal(t, NewRect(1, 2, 30, 40), fromFrame(Row, 1, 2, 30, 40))
	assert.Equal(t, NewRect(2, 1, 40, 30), fromFrame(Column, 1, 2, 30, 40))
}
