package morph

// Rect is a solved box in pixels. X and Y locate its top-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect returns the rect at (x, y) of the given size.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right is the first x past the rect.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom is the first y past the rect.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// IsEmpty reports whether the rect covers no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies in the rect. The right and bottom
// edges are outside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Union returns the smallest rect covering both. Empty rects are ignored.
func (r Rect) Union(other Rect) Rect {
	switch {
	case r.IsEmpty():
		return other
	case other.IsEmpty():
		return r
	}
	left, top := min(r.X, other.X), min(r.Y, other.Y)
	right, bottom := max(r.Right(), other.Right()), max(r.Bottom(), other.Bottom())
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// fromFrame converts a cache rect written in the frame of the parent's
// layout type. Column parents store the vertical axis as main.
func fromFrame(parent LayoutType, mainPos, crossPos, mainSize, crossSize float32) Rect {
	if parent == Column {
		return Rect{X: crossPos, Y: mainPos, Width: crossSize, Height: mainSize}
	}
	return Rect{X: mainPos, Y: crossPos, Width: mainSize, Height: crossSize}
}
