package tagcloud

import (
	"fmt"
	"unicode/utf8"
)

// Token is a maximal run of characters within one line that are either all
// separators or all word characters.
type Token struct {
	Text      string
	Start     int // Byte offset within the line.
	Len       int // Length in bytes; callers advance by this amount.
	Separator bool
}

// NextToken returns the token starting at byte offset pos of line.
//
// The character at pos decides the classification; the scan runs forward
// while characters keep that classification and stops at the first character
// of the other kind or at the end of the line. pos must satisfy
// 0 <= pos < len(line).
func NextToken(line string, pos int, seps SeparatorSet) Token {
	if pos < 0 || pos >= len(line) {
		panic(fmt.Sprintf("tagcloud: token offset %d out of range [0,%d)", pos, len(line)))
	}

	r, size := utf8.DecodeRuneInString(line[pos:])
	sep := seps.IsSeparator(r)

	end := pos + size
	for end < len(line) {
		r, size = utf8.DecodeRuneInString(line[end:])
		if seps.IsSeparator(r) != sep {
			break
		}
		end += size
	}

	return Token{
		Text:      line[pos:end],
		Start:     pos,
		Len:       end - pos,
		Separator: sep,
	}
}

// Tokens splits a whole line into consecutive tokens. An empty line yields none.
func Tokens(line string, seps SeparatorSet) []Token {
	var tokens []Token
	for pos := 0; pos < len(line); {
		tok := NextToken(line, pos, seps)
		tokens = append(tokens, tok)
		pos += tok.Len
	}
	return tokens
}
