// Package render writes a tag cloud in a presentation format.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

// Renderer serializes a cloud. Escaping for the target format is the
// renderer's responsibility.
type Renderer interface {
	Render(w io.Writer, c *tagcloud.Cloud) error
	ContentType() string
}

// Formats lists the names accepted by ForFormat.
var Formats = []string{"html", "json"}

// ForFormat returns the renderer for a format name. An empty name means HTML.
func ForFormat(format, stylesheetURL string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "html":
		return &HTML{StylesheetURL: stylesheetURL}, nil
	case "json":
		return &JSON{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Heading is the page title shared by all formats.
func Heading(c *tagcloud.Cloud) string {
	return fmt.Sprintf("Top %d words in %s", c.N, c.Source)
}
