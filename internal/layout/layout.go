package layout

// Size is a computed main/cross pair in the frame of a parent layout type.
type Size struct {
	Main  float32
	Cross float32
}

// Swap returns the pair with the axes exchanged.
func (s Size) Swap() Size {
	return Size{Main: s.Cross, Cross: s.Main}
}

// In converts a size expressed for parent layout type from into the frame of
// layout type to.
func (s Size) In(from, to LayoutType) Size {
	if from != to {
		return s.Swap()
	}
	return s
}
