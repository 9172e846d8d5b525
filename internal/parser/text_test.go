package parser

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

// readAll drains a document's lines.
func readAll(t *testing.T, doc *Document) []string {
	t.Helper()
	var lines []string
	for {
		line, err := doc.Lines.ReadLine()
		if errors.Is(err, io.EOF) {
			return lines
		}
		if err != nil {
			t.Fatalf("read line: %v", err)
		}
		lines = append(lines, line)
	}
}

func equalLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines %q, got %d %q", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestTextParser_LinesInOrder(t *testing.T) {
	input := "First line.\nSecond line.\n\nFourth line."
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "" {
		t.Errorf("expected no declared title, got %q", doc.Title)
	}
	equalLines(t, readAll(t, doc), []string{"First line.", "Second line.", "", "Fourth line."})
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines := readAll(t, doc); len(lines) != 0 {
		t.Errorf("expected 0 lines for empty input, got %d", len(lines))
	}
}

func TestTextParser_CRLF(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("one\r\ntwo\r\n"), "dos.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	equalLines(t, readAll(t, doc), []string{"one", "two"})
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestTextParser_ReadErrorSurfacesFromAggregate(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(brokenReader{}, "broken.txt")
	if err != nil {
		t.Fatalf("expected lazy read, got %v", err)
	}
	_, err = tagcloud.Aggregate(doc.Lines, tagcloud.Default())
	if !errors.Is(err, tagcloud.ErrRead) {
		t.Errorf("expected ErrRead, got %v", err)
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{"a.txt", &TextParser{}},
		{"a.TXT", &TextParser{}},
		{"a.md", &MarkdownParser{}},
		{"a.markdown", &MarkdownParser{}},
		{"a.csv", &CSVParser{}},
		{"a.htm", &HTMLParser{}},
		{"a.html", &HTMLParser{}},
		{"a.pdf", &PDFParser{FallbackPdftotext: true}},
		{"a.docx", &DOCXParser{}},
	}
	for _, tc := range tests {
		got, err := ForFile(tc.filename, Options{PDFFallbackPdftotext: true})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.filename, err)
		}
		if pdf, ok := got.(*PDFParser); ok && !pdf.FallbackPdftotext {
			t.Errorf("%s: expected pdftotext fallback to be passed through", tc.filename)
		}
		if gotType, wantType := typeName(got), typeName(tc.want); gotType != wantType {
			t.Errorf("%s: expected %s, got %s", tc.filename, wantType, gotType)
		}
		if !IsSupportedExtension(tc.filename) {
			t.Errorf("%s: expected extension to be supported", tc.filename)
		}
	}

	if _, err := ForFile("a.exe", Options{}); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if IsSupportedExtension("noext") {
		t.Error("expected file without extension to be unsupported")
	}
}

func typeName(p Parser) string {
	switch p.(type) {
	case *TextParser:
		return "text"
	case *MarkdownParser:
		return "markdown"
	case *CSVParser:
		return "csv"
	case *HTMLParser:
		return "html"
	case *PDFParser:
		return "pdf"
	case *DOCXParser:
		return "docx"
	}
	return "unknown"
}
