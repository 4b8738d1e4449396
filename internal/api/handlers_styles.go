package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/krisrjensen/publication-style-config-server/internal/styles"
)

type styleMeta struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source,omitempty"`
	StyleName string `json:"style_name,omitempty"`
}

func (s *Server) handleListStyles(w http.ResponseWriter, r *http.Request) {
	list, err := s.styles.List()
	if err != nil {
		jsonError(w, "Failed to retrieve styles", http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]any{
		"styles": list,
		"count":  len(list),
		"metadata": map[string]string{
			"timestamp": time.Now().Format(time.RFC3339Nano),
			"service":   "style_manager",
		},
	})
}

func (s *Server) handleGetStyle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "styleName")
	desc, source, err := s.styles.Get(name)
	if err != nil {
		if errors.Is(err, styles.ErrStyleNotFound) {
			jsonError(w, "Style not found", http.StatusNotFound)
			return
		}
		jsonError(w, "Failed to retrieve style configuration", http.StatusInternalServerError)
		return
	}
	jsonOK(w, struct {
		styles.Descriptor
		Metadata styleMeta `json:"metadata"`
	}{
		Descriptor: desc,
		Metadata: styleMeta{
			Timestamp: time.Now().Format(time.RFC3339Nano),
			Source:    source,
			StyleName: name,
		},
	})
}

func (s *Server) handleUpdateStyle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "styleName")

	var desc styles.Descriptor
	if err := json.NewDecoder(r.Body).Decode(&desc); err != nil {
		jsonError(w, "invalid style body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.styles.Put(name, desc); err != nil {
		jsonError(w, "Failed to update style configuration", http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]any{
		"success":    true,
		"message":    fmt.Sprintf("Style %s updated successfully", name),
		"style_name": name,
		"timestamp":  time.Now().Format(time.RFC3339Nano),
	})
}

func (s *Server) handleDeleteStyle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "styleName")
	if err := s.styles.Delete(name); err != nil {
		switch {
		case errors.Is(err, styles.ErrDefaultStyle):
			jsonError(w, "Cannot delete default styles", http.StatusForbidden)
		case errors.Is(err, styles.ErrStyleNotFound):
			jsonError(w, "Style not found", http.StatusNotFound)
		default:
			jsonError(w, "Failed to delete style", http.StatusInternalServerError)
		}
		return
	}
	jsonOK(w, map[string]any{
		"success": true,
		"message": fmt.Sprintf("Style %s deleted successfully", name),
	})
}

func (s *Server) handleDeriveStyle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "styleName")

	var req struct {
		BaseStyle string `json:"base_style"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.BaseStyle == "" {
		req.BaseStyle = "ieee"
	}

	desc, err := s.styles.Derive(name, req.BaseStyle)
	if err != nil {
		if errors.Is(err, styles.ErrStyleNotFound) {
			jsonError(w, fmt.Sprintf("Base style %s not found", req.BaseStyle), http.StatusNotFound)
			return
		}
		jsonError(w, "Failed to create custom style", http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]any{
		"success":    true,
		"style_name": name,
		"style":      desc,
		"timestamp":  time.Now().Format(time.RFC3339Nano),
	})
}

func (s *Server) handleValidateStyle(w http.ResponseWriter, r *http.Request) {
	var desc styles.Descriptor
	if err := json.NewDecoder(r.Body).Decode(&desc); err != nil {
		jsonError(w, "invalid style body: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := styles.Validate(desc)
	jsonOK(w, map[string]any{
		"valid":     result.Valid,
		"errors":    result.Errors,
		"warnings":  result.Warnings,
		"timestamp": time.Now().Format(time.RFC3339Nano),
	})
}
