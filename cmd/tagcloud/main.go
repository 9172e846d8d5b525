// Command tagcloud renders the most frequent words of one document as a tag
// cloud page.
//
//	tagcloud -in notes.md -n 50 -out cloud.html
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/tagcloud/internal/parser"
	"github.com/dgallion1/tagcloud/internal/pipeline"
	"github.com/dgallion1/tagcloud/internal/render"
	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

// Exit codes.
const (
	exitOK = iota
	exitError
	exitUsage
	exitInvalidN
	exitReadFailure
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tagcloud", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		in         = fs.String("in", "", "input document (.txt, .md, .html, .csv, .pdf, .docx)")
		out        = fs.String("out", "", "output file (default stdout)")
		n          = fs.Int("n", 100, "number of words in the cloud")
		format     = fs.String("format", "html", "output format: html or json")
		title      = fs.String("title", "", "heading source name (default input file name)")
		separators = fs.String("separators", tagcloud.DefaultSeparators, "characters that split words")
		stylesheet = fs.String("stylesheet", render.DefaultStylesheetURL, "stylesheet URL for html output")
		pdftotext  = fs.Bool("pdftotext", false, "fall back to pdftotext for PDFs")
		verbose    = fs.Bool("v", false, "log pipeline stages to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *in == "" {
		fmt.Fprintln(stderr, "tagcloud: -in is required")
		fs.Usage()
		return exitUsage
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	renderer, err := render.ForFormat(*format, *stylesheet)
	if err != nil {
		fmt.Fprintf(stderr, "tagcloud: %v\n", err)
		return exitUsage
	}

	f, err := os.Open(*in)
	if err != nil {
		fmt.Fprintf(stderr, "tagcloud: %v\n", err)
		return exitReadFailure
	}
	defer f.Close()

	cloud, err := pipeline.Generate(f, pipeline.Request{
		Filename:   filepath.Base(*in),
		Title:      *title,
		Terms:      *n,
		Separators: tagcloud.NewSeparatorSet(*separators),
		Parser:     parser.Options{PDFFallbackPdftotext: *pdftotext},
	}, func(stage tagcloud.Stage) {
		log.Debug("stage", "stage", stage, "file", *in)
	})
	if err != nil {
		return reportFailure(stderr, err)
	}
	log.Debug("cloud ready", "terms", len(cloud.Terms), "min_count", cloud.MinCount, "max_count", cloud.MaxCount)

	var buf bytes.Buffer
	if err := renderer.Render(&buf, cloud); err != nil {
		fmt.Fprintf(stderr, "tagcloud: render: %v\n", err)
		return exitError
	}

	if *out == "" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			fmt.Fprintf(stderr, "tagcloud: %v\n", err)
			return exitError
		}
		return exitOK
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(stderr, "tagcloud: %v\n", err)
		return exitError
	}
	return exitOK
}

func reportFailure(stderr io.Writer, err error) int {
	var inv *tagcloud.InvalidNError
	switch {
	case errors.As(err, &inv):
		if inv.Distinct == 0 {
			fmt.Fprintln(stderr, "tagcloud: the document contains no words")
		} else {
			fmt.Fprintf(stderr, "tagcloud: -n %d is out of range, the document has %d distinct words\n", inv.N, inv.Distinct)
		}
		return exitInvalidN
	case errors.Is(err, pipeline.ErrUnsupported):
		fmt.Fprintf(stderr, "tagcloud: %v\n", err)
		return exitUsage
	case errors.Is(err, tagcloud.ErrRead):
		fmt.Fprintf(stderr, "tagcloud: could not read document: %v\n", err)
		return exitReadFailure
	default:
		fmt.Fprintf(stderr, "tagcloud: %v\n", err)
		return exitError
	}
}
