package tagcloud

import (
	"errors"
	"io"
	"strings"
)

// Term is a normalized word and the number of times it occurred.
type Term struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Frequencies maps each distinct lowercase word to its count.
// A nil Frequencies is empty and read-only.
type Frequencies map[string]int

// Add records one occurrence of word, inserting it with count 1 if absent.
func (f Frequencies) Add(word string) {
	f[word]++
}

// Count returns the occurrences recorded for word.
func (f Frequencies) Count(word string) int {
	return f[word]
}

// Len returns the number of distinct words.
func (f Frequencies) Len() int {
	return len(f)
}

// Total returns the sum of all counts.
func (f Frequencies) Total() int {
	total := 0
	for _, c := range f {
		total += c
	}
	return total
}

// Merge adds every count in other to f. Merging is associative and
// commutative, so the order partial maps are combined in never matters.
func (f Frequencies) Merge(other Frequencies) {
	for word, c := range other {
		f[word] += c
	}
}

// Terms returns the entries in no particular order.
func (f Frequencies) Terms() []Term {
	terms := make([]Term, 0, len(f))
	for word, c := range f {
		terms = append(terms, Term{Word: word, Count: c})
	}
	return terms
}

// Aggregate counts the lowercased words of every line in lr.
//
// Separator tokens are discarded. If lr fails before io.EOF, Aggregate
// returns a *ReadError and no counts.
func Aggregate(lr LineReader, seps SeparatorSet) (Frequencies, error) {
	freq := make(Frequencies)
	lineNo := 0
	for {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return freq, nil
		}
		if err != nil {
			return nil, &ReadError{Line: lineNo, Err: err}
		}
		lineNo++

		for pos := 0; pos < len(line); {
			tok := NextToken(line, pos, seps)
			if !tok.Separator {
				freq.Add(strings.ToLower(tok.Text))
			}
			pos += tok.Len
		}
	}
}
