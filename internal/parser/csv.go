package parser

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

// CSVParser handles CSV files. Every cell, header row included, is one line.
type CSVParser struct{}

func (p *CSVParser) Parse(r io.Reader, filename string) (*Document, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	var lines []string
	for _, row := range records {
		for _, cell := range row {
			// Quoted cells may carry embedded newlines.
			lines = append(lines, splitLines(cell)...)
		}
	}

	return &Document{
		Lines: tagcloud.SliceLines(lines),
	}, nil
}
