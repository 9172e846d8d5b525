package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dgallion1/tagcloud/internal/parser"
	"github.com/dgallion1/tagcloud/internal/pipeline"
	"github.com/dgallion1/tagcloud/internal/render"
	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

// cloudForm is a validated upload.
type cloudForm struct {
	filename string
	title    string
	terms    int
	renderer render.Renderer
	data     []byte
}

// readCloudForm parses the multipart upload shared by the render and job
// endpoints. It writes the error response itself and returns false on failure.
func (s *Server) readCloudForm(w http.ResponseWriter, r *http.Request) (cloudForm, bool) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return cloudForm{}, false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return cloudForm{}, false
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return cloudForm{}, false
	}

	terms := s.cfg.DefaultTerms
	if v := strings.TrimSpace(r.FormValue("n")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			jsonError(w, fmt.Sprintf("n must be an integer, got %q", v), http.StatusBadRequest)
			return cloudForm{}, false
		}
		terms = n
	}

	renderer, err := render.ForFormat(r.FormValue("format"), s.cfg.StylesheetURL)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return cloudForm{}, false
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return cloudForm{}, false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return cloudForm{}, false
	}

	return cloudForm{
		filename: filename,
		title:    strings.TrimSpace(r.FormValue("title")),
		terms:    terms,
		renderer: renderer,
		data:     data,
	}, true
}

// handleRender generates and renders a cloud within the request.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	form, ok := s.readCloudForm(w, r)
	if !ok {
		return
	}

	cloud, err := pipeline.Generate(bytes.NewReader(form.data), pipeline.Request{
		Filename:   form.filename,
		Title:      form.title,
		Terms:      form.terms,
		Separators: s.cfg.SeparatorSet(),
		Parser:     parser.Options{PDFFallbackPdftotext: s.cfg.PDFFallbackPdftotext},
	}, nil)
	if err != nil {
		s.log.Warn("render failed", "filename", form.filename, "n", form.terms, "error", err)
		writePipelineError(w, err)
		return
	}

	writeCloud(w, form.renderer, cloud)
}

// handleCreateCloud queues a cloud job.
func (s *Server) handleCreateCloud(w http.ResponseWriter, r *http.Request) {
	form, ok := s.readCloudForm(w, r)
	if !ok {
		return
	}
	if form.terms < 0 {
		// No document can make a negative count valid.
		jsonError(w, fmt.Sprintf("invalid term count %d: must not be negative", form.terms), http.StatusUnprocessableEntity)
		return
	}

	job := pipeline.NewJob(form.filename, form.title, form.terms, form.data)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":     job.ID,
		"status":     pipeline.StatusQueued,
		"poll_url":   fmt.Sprintf("/api/clouds/%s", job.ID),
		"render_url": fmt.Sprintf("/api/clouds/%s/render", job.ID),
	})
}

func (s *Server) handleCloudStatus(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

func (s *Server) handleCloudResult(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}

	renderer, err := render.ForFormat(r.URL.Query().Get("format"), s.cfg.StylesheetURL)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	snap := job.Snapshot()
	switch snap.Status {
	case pipeline.StatusCompleted:
		writeCloud(w, renderer, job.Result())
	case pipeline.StatusFailed:
		code := http.StatusUnprocessableEntity
		switch snap.Failure {
		case pipeline.FailureQueueFull, pipeline.FailureCancelled:
			code = http.StatusServiceUnavailable
		case pipeline.FailureUnsupported:
			code = http.StatusBadRequest
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(snap)
	default:
		jsonError(w, fmt.Sprintf("job is %s", snap.Status), http.StatusConflict)
	}
}

// writeCloud renders into memory first so a render error never leaves a
// partial document on the wire.
func writeCloud(w http.ResponseWriter, renderer render.Renderer, cloud *tagcloud.Cloud) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, cloud); err != nil {
		jsonError(w, "render failed: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.Write(buf.Bytes())
}

func writePipelineError(w http.ResponseWriter, err error) {
	body := map[string]any{
		"error":   err.Error(),
		"failure": pipeline.Classify(err),
	}
	code := http.StatusUnprocessableEntity

	var inv *tagcloud.InvalidNError
	switch {
	case errors.Is(err, pipeline.ErrUnsupported):
		code = http.StatusBadRequest
	case errors.As(err, &inv):
		body["n"] = inv.N
		body["distinct_words"] = inv.Distinct
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
