package tagcloud

import "testing"

func TestBounds_Size(t *testing.T) {
	b := Bounds{Min: 1, Max: 3}
	tests := []struct {
		count int
		want  int
	}{
		{1, 11},
		{2, 29}, // 0.5 * 37 = 18.5, truncated to 18.
		{3, 48},
	}
	for _, tc := range tests {
		if got := b.Size(tc.count); got != tc.want {
			t.Errorf("Size(%d): expected %d, got %d", tc.count, tc.want, got)
		}
	}
}

func TestBounds_SizeDegenerate(t *testing.T) {
	b := Bounds{Min: 4, Max: 4}
	if !b.Degenerate() {
		t.Fatal("expected equal bounds to be degenerate")
	}
	if got := b.Size(4); got != DefaultSize {
		t.Errorf("expected %d, got %d", DefaultSize, got)
	}
}

func TestBounds_SizeStaysInRange(t *testing.T) {
	b := Bounds{Min: 2, Max: 101}
	for c := b.Min; c <= b.Max; c++ {
		s := b.Size(c)
		if s < MinSize || s > MaxSize {
			t.Fatalf("count %d: size %d outside [%d,%d]", c, s, MinSize, MaxSize)
		}
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]Term{{"a", 7}, {"b", 2}, {"c", 9}})
	if b.Min != 2 || b.Max != 9 {
		t.Errorf("expected (2,9), got (%d,%d)", b.Min, b.Max)
	}
	if empty := BoundsOf(nil); empty != (Bounds{}) {
		t.Errorf("expected zero bounds for empty selection, got %+v", empty)
	}
}

func TestAnnotate_AlphabeticalWithSizes(t *testing.T) {
	got := Annotate([]Term{{"the", 3}, {"cat", 2}, {"mat", 1}})
	want := []RankedTerm{
		{Term: Term{"cat", 2}, FontSize: 29},
		{Term: Term{"mat", 1}, FontSize: 11},
		{Term: Term{"the", 3}, FontSize: 48},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d terms, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("term %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestAnnotate_SingleTerm(t *testing.T) {
	got := Annotate([]Term{{"only", 12}})
	if len(got) != 1 || got[0].FontSize != DefaultSize {
		t.Errorf("expected single term at size %d, got %+v", DefaultSize, got)
	}
}
