package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/krisrjensen/publication-style-config-server/internal/export"
)

func (s *Server) handleCoordinateExport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxContentBytes)

	var req export.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Format == "" {
		req.Format = "pdf"
	}
	if req.Style == "" {
		req.Style = "default"
	}

	result := s.coordinator.Coordinate(r.Context(), req)
	jsonOK(w, result)
}

func (s *Server) handleExportHistory(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	entries, total, successRate := s.coordinator.History(limit)
	jsonOK(w, map[string]any{
		"history":             entries,
		"total_coordinations": total,
		"success_rate":        successRate,
	})
}

func (s *Server) handleExportServices(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, s.coordinator.Status(r.Context()))
}
