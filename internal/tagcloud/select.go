package tagcloud

import (
	"cmp"
	"slices"
)

// ByCountThenWord orders terms by count descending, breaking ties by word
// ascending in byte order.
func ByCountThenWord(a, b Term) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return cmp.Compare(a.Word, b.Word)
}

// ByWord orders terms alphabetically.
func ByWord(a, b Term) int {
	return cmp.Compare(a.Word, b.Word)
}

// ValidateN checks that 0 <= n <= distinct.
func ValidateN(n, distinct int) error {
	if n < 0 || n > distinct {
		return &InvalidNError{N: n, Distinct: distinct}
	}
	return nil
}

// Select returns the n most frequent terms ordered by ByCountThenWord.
// The input slice is not modified. n == 0 yields an empty result.
func Select(terms []Term, n int) ([]Term, error) {
	if err := ValidateN(n, len(terms)); err != nil {
		return nil, err
	}
	ranked := slices.Clone(terms)
	slices.SortFunc(ranked, ByCountThenWord)
	return ranked[:n:n], nil
}
