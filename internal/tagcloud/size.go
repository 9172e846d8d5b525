package tagcloud

import "slices"

// Font sizes range over [MinSize, MaxSize].
const (
	MinSize     = 11
	SizeRange   = 37
	MaxSize     = MinSize + SizeRange
	DefaultSize = 20 // Used when every selected term has the same count.
)

// Bounds holds the smallest and largest counts among the selected terms.
type Bounds struct {
	Min int
	Max int
}

// RankedTerm is a selected term with its display size.
type RankedTerm struct {
	Term
	FontSize int `json:"font_size"`
}

// BoundsOf returns the count range of selected. It returns the zero Bounds
// for an empty selection.
func BoundsOf(selected []Term) Bounds {
	if len(selected) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: selected[0].Count, Max: selected[0].Count}
	for _, t := range selected[1:] {
		b.Min = min(b.Min, t.Count)
		b.Max = max(b.Max, t.Count)
	}
	return b
}

// Degenerate reports whether the bounds leave no room for interpolation.
func (b Bounds) Degenerate() bool {
	return b.Min == b.Max
}

// Size maps count linearly onto [MinSize, MaxSize], truncating toward zero.
func (b Bounds) Size(count int) int {
	if b.Degenerate() {
		return DefaultSize
	}
	ratio := float64(count-b.Min) / float64(b.Max-b.Min)
	return int(ratio*SizeRange) + MinSize
}

// Annotate sizes every selected term against the selection's own bounds and
// returns them in alphabetical order.
func Annotate(selected []Term) []RankedTerm {
	bounds := BoundsOf(selected)
	ranked := make([]RankedTerm, 0, len(selected))
	for _, t := range selected {
		ranked = append(ranked, RankedTerm{Term: t, FontSize: bounds.Size(t.Count)})
	}
	slices.SortFunc(ranked, func(a, b RankedTerm) int {
		return ByWord(a.Term, b.Term)
	})
	return ranked
}
