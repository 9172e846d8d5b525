package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dgallion1/tagcloud/internal/tagcloud"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultStylesheetURL defines the f11..f48 font classes used by the page.
const DefaultStylesheetURL = "http://web.cse.ohio-state.edu/software/2231/web-sw2/assignments/projects/tag-cloud-generator/data/tagcloud.css"

// HTML renders a standalone page with one span per term.
type HTML struct {
	StylesheetURL string
}

func (h *HTML) ContentType() string {
	return "text/html; charset=utf-8"
}

func (h *HTML) Render(w io.Writer, c *tagcloud.Cloud) error {
	if err := html.Render(w, h.document(c)); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (h *HTML) document(c *tagcloud.Cloud) *html.Node {
	heading := Heading(c)
	stylesheet := h.StylesheetURL
	if stylesheet == "" {
		stylesheet = DefaultStylesheetURL
	}

	head := element(atom.Head, nil,
		element(atom.Title, nil, text(heading)),
		element(atom.Link, []html.Attribute{
			{Key: "href", Val: stylesheet},
			{Key: "rel", Val: "stylesheet"},
			{Key: "type", Val: "text/css"},
		}),
	)

	box := element(atom.P, []html.Attribute{{Key: "class", Val: "cbox"}})
	for _, t := range c.Terms {
		box.AppendChild(element(atom.Span, []html.Attribute{
			{Key: "style", Val: "cursor:default"},
			{Key: "class", Val: "f" + strconv.Itoa(t.FontSize)},
			{Key: "title", Val: "count: " + strconv.Itoa(t.Count)},
		}, text(t.Word)))
		box.AppendChild(text("\n"))
	}

	body := element(atom.Body, nil,
		element(atom.H2, nil, text(heading)),
		element(atom.Hr, nil),
		element(atom.Div, []html.Attribute{{Key: "class", Val: "cdiv"}}, box),
	)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html, nil, head, body))
	return doc
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
