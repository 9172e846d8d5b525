package tagcloud

// DefaultSeparators is the character set that splits words in a cloud.
const DefaultSeparators = " ,.@#$%^&*()'<>_-~+=;:{}[]!?\t\n\r\""

// SeparatorSet classifies characters as word boundaries.
// It is built once and never mutated, so it is safe to share.
type SeparatorSet struct {
	chars map[rune]struct{}
}

// NewSeparatorSet builds a set from every character in chars.
// Duplicates are ignored; an empty string yields an empty set.
func NewSeparatorSet(chars string) SeparatorSet {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return SeparatorSet{chars: set}
}

// Default returns the set built from DefaultSeparators.
func Default() SeparatorSet {
	return NewSeparatorSet(DefaultSeparators)
}

// IsSeparator reports whether r is a word boundary.
func (s SeparatorSet) IsSeparator(r rune) bool {
	_, ok := s.chars[r]
	return ok
}

// Len returns the number of distinct separator characters.
func (s SeparatorSet) Len() int {
	return len(s.chars)
}
