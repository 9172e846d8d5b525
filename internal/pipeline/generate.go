package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dgallion1/tagcloud/internal/parser"
	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

// ErrUnsupported marks an upload whose format has no parser.
var ErrUnsupported = errors.New("unsupported document")

// Request describes one cloud to generate from an uploaded document.
type Request struct {
	Filename   string
	Title      string // Overrides the document's own title in the heading.
	Terms      int
	Separators tagcloud.SeparatorSet
	Parser     parser.Options
}

// Generate extracts the document's lines and runs the tag cloud pipeline.
// Parse failures are reported as read failures, since the input could not be
// read as a document. observe sees the tag cloud stages only; parsing
// happens before the first of them.
//
// The heading names req.Title, else the document's declared title, else
// the file name.
func Generate(r io.Reader, req Request, observe func(tagcloud.Stage)) (*tagcloud.Cloud, error) {
	p, err := parser.ForFile(req.Filename, req.Parser)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}

	doc, err := p.Parse(r, req.Filename)
	if err != nil {
		return nil, &tagcloud.ReadError{Err: err}
	}

	return tagcloud.Generate(doc.Lines, req.Separators, req.Terms, headingSource(req, doc), observe)
}

func headingSource(req Request, doc *parser.Document) string {
	switch {
	case req.Title != "":
		return req.Title
	case doc.Title != "":
		return doc.Title
	default:
		return req.Filename
	}
}

// Classify maps a pipeline error onto the failure kind reported to clients.
func Classify(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrUnsupported):
		return FailureUnsupported
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.Is(err, ErrStopped):
		return FailureCancelled
	case errors.Is(err, tagcloud.ErrInvalidN):
		return FailureInvalidN
	default:
		return FailureRead
	}
}
