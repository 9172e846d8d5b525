package render

import (
	"encoding/json"
	"io"

	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

// JSON renders the cloud payload with a heading field.
type JSON struct{}

func (j *JSON) ContentType() string {
	return "application/json"
}

func (j *JSON) Render(w io.Writer, c *tagcloud.Cloud) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Heading string `json:"heading"`
		*tagcloud.Cloud
	}{Heading(c), c})
}
