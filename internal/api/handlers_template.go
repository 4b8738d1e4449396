package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/krisrjensen/publication-style-config-server/internal/intake"
	"github.com/krisrjensen/publication-style-config-server/internal/template"
)

type processRequest struct {
	Content      string `json:"content"`
	Style        string `json:"style"`
	TemplateType string `json:"template_type"`
}

func (s *Server) handleProcessContent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxContentBytes)

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		jsonError(w, "Content is required", http.StatusBadRequest)
		return
	}
	if req.Style == "" {
		req.Style = "default"
	}
	if req.TemplateType == "" {
		req.TemplateType = "article"
	}

	result, err := s.processor.Process(req.Content, req.TemplateType, req.Style)
	if err != nil {
		if errors.Is(err, template.ErrUnsupportedTemplate) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "Template processing failed", http.StatusInternalServerError)
		return
	}
	jsonOK(w, result)
}

func (s *Server) handleProcessFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !intake.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	parser, err := intake.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Read file data.
	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	doc, err := parser.Parse(bytes.NewReader(data), filename)
	if err != nil {
		jsonError(w, "failed to parse manuscript: "+err.Error(), http.StatusBadRequest)
		return
	}

	style := r.FormValue("style")
	if style == "" {
		style = "default"
	}
	templateType := r.FormValue("template_type")
	if templateType == "" {
		templateType = "article"
	}

	result, err := s.processor.Process(doc.MarkupText(), templateType, style)
	if err != nil {
		if errors.Is(err, template.ErrUnsupportedTemplate) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, "Template processing failed", http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]any{
		"filename": filename,
		"title":    doc.Title,
		"result":   result,
	})
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, map[string]any{
		"templates": s.processor.Templates().Names(),
		"timestamp": time.Now().Format(time.RFC3339Nano),
	})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "templateName")
	desc, err := s.processor.Templates().Lookup(name)
	if err != nil {
		jsonError(w, "Template not found", http.StatusNotFound)
		return
	}
	jsonOK(w, struct {
		template.Descriptor
		Metadata map[string]string `json:"metadata"`
	}{
		Descriptor: desc,
		Metadata: map[string]string{
			"timestamp":     time.Now().Format(time.RFC3339Nano),
			"template_name": name,
		},
	})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
