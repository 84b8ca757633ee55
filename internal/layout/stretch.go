package layout

// stretchKind names the child field a stretch item resolves.
type stretchKind uint8

const (
	stretchBefore stretchKind = iota
	stretchAfter
)

// stretchItem holds intermediate state for one flexible spacing.
// It lives only for a single distribute call.
type stretchItem struct {
	index     int // position of the owning child in the parent's child list
	factor    float32
	kind      stretchKind
	min, max  float32
	computed  float32
	violation float32
	frozen    bool
}

// newStretchItem builds an item for a Stretch spacing, resolving its bounds
// against the parent extent along the same axis.
func newStretchItem(index int, kind stretchKind, value, minValue, maxValue Units, parent float32) stretchItem {
	return stretchItem{
		index:  index,
		factor: value.Amount,
		kind:   kind,
		min:    minValue.ToPx(parent, 0),
		max:    maxValue.ToPx(parent, unbounded),
	}
}

// distribute resolves items sharing one free space pool. baseline is the
// extent already claimed by finalized quantities; the returned baseline also
// includes every item's resolved value.
//
// Each round hands every unfrozen item its rounded share of the remaining
// space, clamps it, and freezes the items whose clamping points the same way
// as the total violation (or every item when nothing was clamped). A round
// freezes at least one item, so the loop ends after at most len(items)
// rounds.
func distribute(items []stretchItem, pool, baseline float32) float32 {
	var factors float32
	for i := range items {
		factors += items[i].factor
	}

	for {
		pending := 0
		for i := range items {
			if !items[i].frozen {
				pending++
			}
		}
		if pending == 0 {
			return baseline
		}

		// Nothing left to weight by: remaining items keep their default.
		if factors <= 0 {
			for i := range items {
				item := &items[i]
				if item.frozen {
					continue
				}
				item.computed = clamp(0, item.min, item.max)
				item.violation = 0
				item.frozen = true
				baseline += item.computed
			}
			return baseline
		}

		free := pool - baseline
		var totalViolation float32
		for i := range items {
			item := &items[i]
			if item.frozen {
				continue
			}
			actual := round(item.factor * free / factors)
			clamped := clamp(actual, item.min, item.max)
			item.violation = clamped - actual
			item.computed = clamped
			totalViolation += item.violation
		}

		for i := range items {
			item := &items[i]
			if item.frozen {
				continue
			}
			if (totalViolation > 0 && item.violation > 0) ||
				(totalViolation < 0 && item.violation < 0) ||
				totalViolation == 0 {
				item.frozen = true
				factors -= item.factor
				baseline += item.computed
			}
		}
	}
}
