package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

func catCloud(t *testing.T) *tagcloud.Cloud {
	t.Helper()
	cloud, err := tagcloud.Generate(tagcloud.SliceLines([]string{"the cat sat on the mat", "the cat ran"}),
		tagcloud.Default(), 3, "cats.txt", nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return cloud
}

func TestHTML_PageStructure(t *testing.T) {
	var buf bytes.Buffer
	r := &HTML{StylesheetURL: "/static/tagcloud.css"}
	if err := r.Render(&buf, catCloud(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Top 3 words in cats.txt</title>",
		`<link href="/static/tagcloud.css" rel="stylesheet" type="text/css"/>`,
		"<h2>Top 3 words in cats.txt</h2>",
		`<div class="cdiv"><p class="cbox">`,
		`<span style="cursor:default" class="f29" title="count: 2">cat</span>`,
		`<span style="cursor:default" class="f11" title="count: 1">mat</span>`,
		`<span style="cursor:default" class="f48" title="count: 3">the</span>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}

	cat := strings.Index(out, ">cat<")
	mat := strings.Index(out, ">mat<")
	the := strings.Index(out, ">the<")
	if !(cat < mat && mat < the) {
		t.Errorf("expected alphabetical span order, got cat=%d mat=%d the=%d", cat, mat, the)
	}
}

func TestHTML_DefaultStylesheet(t *testing.T) {
	var buf bytes.Buffer
	if err := (&HTML{}).Render(&buf, catCloud(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), DefaultStylesheetURL) {
		t.Error("expected default stylesheet link")
	}
}

func TestHTML_EscapesWordsAndSource(t *testing.T) {
	// With only whitespace as separators, markup characters survive into words.
	cloud, err := tagcloud.Generate(tagcloud.SliceLines([]string{"<b> a&b <b>"}),
		tagcloud.NewSeparatorSet(" "), 2, `"x<y".txt`, nil)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	var buf bytes.Buffer
	if err := (&HTML{}).Render(&buf, cloud); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<b>") {
		t.Errorf("expected word markup to be escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;b&gt;") || !strings.Contains(out, "a&amp;b") {
		t.Errorf("expected escaped words in output:\n%s", out)
	}
	if !strings.Contains(out, "x&lt;y") {
		t.Errorf("expected escaped source in heading:\n%s", out)
	}
}

func TestHTML_EmptyCloud(t *testing.T) {
	cloud := &tagcloud.Cloud{Source: "none", N: 0}
	var buf bytes.Buffer
	if err := (&HTML{}).Render(&buf, cloud); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "<span") {
		t.Error("expected no spans for empty cloud")
	}
	if !strings.Contains(buf.String(), "Top 0 words in none") {
		t.Error("expected heading for empty cloud")
	}
}

func TestJSON_Payload(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSON{}).Render(&buf, catCloud(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got struct {
		Heading  string `json:"heading"`
		Source   string `json:"source"`
		N        int    `json:"n"`
		MinCount int    `json:"min_count"`
		MaxCount int    `json:"max_count"`
		Terms    []struct {
			Word     string `json:"word"`
			Count    int    `json:"count"`
			FontSize int    `json:"font_size"`
		} `json:"terms"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Heading != "Top 3 words in cats.txt" {
		t.Errorf("unexpected heading %q", got.Heading)
	}
	if got.MinCount != 1 || got.MaxCount != 3 {
		t.Errorf("expected bounds (1,3), got (%d,%d)", got.MinCount, got.MaxCount)
	}
	if len(got.Terms) != 3 || got.Terms[0].Word != "cat" || got.Terms[0].FontSize != 29 {
		t.Errorf("unexpected terms %+v", got.Terms)
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format      string
		contentType string
		wantErr     bool
	}{
		{"", "text/html; charset=utf-8", false},
		{"html", "text/html; charset=utf-8", false},
		{"JSON", "application/json", false},
		{"xml", "", true},
	}
	for _, tc := range tests {
		r, err := ForFormat(tc.format, "")
		if tc.wantErr {
			if err == nil {
				t.Errorf("format %q: expected error", tc.format)
			}
			continue
		}
		if err != nil {
			t.Fatalf("format %q: unexpected error: %v", tc.format, err)
		}
		if r.ContentType() != tc.contentType {
			t.Errorf("format %q: expected %q, got %q", tc.format, tc.contentType, r.ContentType())
		}
	}
}
