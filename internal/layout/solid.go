package layout

// ApplySolid locks (main, cross) to the aspect ratio. The candidate main is
// cross/ratio and the candidate cross is main*ratio; Fit keeps the smaller of
// each pair, Fill the larger. SolidNone returns the pair unchanged.
//
// ApplySolid panics with ErrMissingAspectRatio when solid is set without a
// positive ratio.
func ApplySolid(main, cross float32, solid Solid, ratio float32) (float32, float32) {
	if solid == SolidNone {
		return main, cross
	}
	if ratio <= 0 {
		panic(&StyleError{Field: "solid", Err: ErrMissingAspectRatio})
	}

	candidateMain := cross / ratio
	candidateCross := main * ratio

	switch solid {
	case SolidFit:
		return min(candidateMain, main), min(candidateCross, cross)
	case SolidFill:
		return max(candidateMain, main), max(candidateCross, cross)
	}
	return main, cross
}

// applySolid applies the style's aspect lock to a pair expressed in the
// frame of parent. Ratios are defined in the row frame, so a column pair
// is turned around first.
func applySolid(s *Style, parent LayoutType, main, cross float32) (float32, float32) {
	if s.Solid == SolidNone {
		return main, cross
	}
	if parent == Column {
		cross, main = ApplySolid(cross, main, s.Solid, s.AspectRatio)
		return main, cross
	}
	return ApplySolid(main, cross, s.Solid, s.AspectRatio)
}
