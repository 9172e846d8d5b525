package parser

import (
	"io"

	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

// TextParser streams plain text line by line. Read errors surface while the
// lines are consumed, not here.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*Document, error) {
	return &Document{
		Lines: tagcloud.NewLineScanner(r),
	}, nil
}
