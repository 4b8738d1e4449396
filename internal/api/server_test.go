package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/krisrjensen/publication-style-config-server/internal/config"
	"github.com/krisrjensen/publication-style-config-server/internal/export"
	"github.com/krisrjensen/publication-style-config-server/internal/processor"
	"github.com/krisrjensen/publication-style-config-server/internal/styles"
	"github.com/krisrjensen/publication-style-config-server/internal/template"
)

func newTestServer(t *testing.T, apiKey string) *Server {
	t.Helper()

	cfg := config.Config{
		Port:            "0",
		StylesDir:       t.TempDir(),
		APIKey:          apiKey,
		MaxContentBytes: 1 << 20,
		MaxUploadBytes:  1 << 20,
		HealthTimeout:   time.Second,
		HistoryLimit:    10,
	}

	store, err := styles.NewStore(cfg.StylesDir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	proc := processor.New(template.NewRegistry())
	coord := export.NewCoordinator(proc, export.NewChecker(cfg.HealthTimeout), cfg.HistoryLimit, log)

	return NewServer(proc, store, coord, log, cfg)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "healthy" || body["service"] != "publication-style-config-server" {
		t.Errorf("body = %v", body)
	}
}

func TestAuth(t *testing.T) {
	s := newTestServer(t, "secret-key")

	// Health stays open.
	if rec := doJSON(t, s, http.MethodGet, "/health", nil); rec.Code != http.StatusOK {
		t.Errorf("health status = %d", rec.Code)
	}

	rec := doJSON(t, s, http.MethodGet, "/api/templates", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing key status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong key status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/templates", nil)
	req.Header.Set("Authorization", "Bearer secret-key")
	w = httptest.NewRecorder()
	s.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("valid key status = %d", w.Code)
	}
}

func TestProcessContent(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodPost, "/api/template/process", map[string]string{
		"content":       "# Title\nA Study\n# Introduction\nSee [1] and (Smith, 2020).",
		"template_type": "article",
		"style":         "ieee",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var result processor.Result
	decodeBody(t, rec, &result)
	if result.TemplateType != "article" || result.StyleName != "ieee" {
		t.Errorf("identity fields: %s/%s", result.TemplateType, result.StyleName)
	}
	if _, ok := result.Sections["introduction"]; !ok {
		t.Errorf("sections: %v", result.Sections)
	}
	if result.Validation.Valid {
		t.Error("expected invalid: required sections missing")
	}
	if result.Citations.TotalCitations != 2 {
		t.Errorf("citations = %d", result.Citations.TotalCitations)
	}
}

func TestProcessContent_Defaults(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodPost, "/api/template/process", map[string]string{
		"content": "# Introduction\nBody.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var result processor.Result
	decodeBody(t, rec, &result)
	if result.TemplateType != "article" || result.StyleName != "default" {
		t.Errorf("defaults not applied: %s/%s", result.TemplateType, result.StyleName)
	}
}

func TestProcessContent_ContentRequired(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodPost, "/api/template/process", map[string]string{
		"template_type": "article",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["error"] != "Content is required" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestProcessContent_UnknownTemplate(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodPost, "/api/template/process", map[string]string{
		"content":       "# Title\nx",
		"template_type": "newsletter",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestProcessFile(t *testing.T) {
	s := newTestServer(t, "")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "paper.md")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("# Abstract\n\nShort summary.\n\n# Introduction\n\nSee [3].\n"))
	mw.WriteField("template_type", "article")
	mw.WriteField("style", "nature")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/template/process/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Filename string           `json:"filename"`
		Title    string           `json:"title"`
		Result   processor.Result `json:"result"`
	}
	decodeBody(t, rec, &body)
	if body.Filename != "paper.md" || body.Title != "paper" {
		t.Errorf("filename/title = %q/%q", body.Filename, body.Title)
	}
	if _, ok := body.Result.Sections["abstract"]; !ok {
		t.Errorf("sections: %v", body.Result.Sections)
	}
	if body.Result.StyleName != "nature" {
		t.Errorf("style = %q", body.Result.StyleName)
	}
}

func TestProcessFile_OversizedRejected(t *testing.T) {
	s := newTestServer(t, "")
	s.cfg.MaxUploadBytes = 64

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "big.txt")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("# Introduction\n" + strings.Repeat("word ", 64)))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/template/process/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if !strings.Contains(body["error"], "exceeds max size") {
		t.Errorf("error = %q", body["error"])
	}
}

func TestProcessFile_UnsupportedExtension(t *testing.T) {
	s := newTestServer(t, "")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "data.csv")
	fw.Write([]byte("a,b,c"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/template/process/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestListTemplates(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodGet, "/api/templates", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Templates []string `json:"templates"`
	}
	decodeBody(t, rec, &body)
	want := []string{"article", "conference_paper", "technical_report", "thesis"}
	if len(body.Templates) != len(want) {
		t.Fatalf("templates = %v", body.Templates)
	}
	for i, name := range want {
		if body.Templates[i] != name {
			t.Errorf("templates[%d] = %q, want %q", i, body.Templates[i], name)
		}
	}
}

func TestGetTemplate(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodGet, "/api/templates/thesis", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Name             string            `json:"name"`
		RequiredSections []string          `json:"required_sections"`
		Metadata         map[string]string `json:"metadata"`
	}
	decodeBody(t, rec, &body)
	if body.Name != "Thesis/Dissertation" || len(body.RequiredSections) == 0 {
		t.Errorf("body = %+v", body)
	}
	if body.Metadata["template_name"] != "thesis" {
		t.Errorf("metadata = %v", body.Metadata)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/templates/newsletter", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown template status = %d", rec.Code)
	}
}

func TestStyleLifecycle(t *testing.T) {
	s := newTestServer(t, "")

	// Built-in style is served.
	rec := doJSON(t, s, http.MethodGet, "/api/styles/ieee", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get ieee status = %d", rec.Code)
	}
	var got struct {
		Name     string `json:"name"`
		Metadata struct {
			Source string `json:"source"`
		} `json:"metadata"`
	}
	decodeBody(t, rec, &got)
	if got.Name != "IEEE" || got.Metadata.Source != styles.SourceDefault {
		t.Errorf("ieee response: %+v", got)
	}

	// Create, read back, and delete a custom style.
	custom := map[string]string{
		"name":         "house",
		"font_family":  "Helvetica",
		"font_size":    "11pt",
		"line_spacing": "1.2",
	}
	if rec := doJSON(t, s, http.MethodPut, "/api/styles/house", custom); rec.Code != http.StatusOK {
		t.Fatalf("put status = %d", rec.Code)
	}

	rec = doJSON(t, s, http.MethodGet, "/api/styles/house", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get custom status = %d", rec.Code)
	}
	decodeBody(t, rec, &got)
	if got.Metadata.Source != styles.SourceCustom {
		t.Errorf("custom source = %q", got.Metadata.Source)
	}

	if rec := doJSON(t, s, http.MethodDelete, "/api/styles/house", nil); rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if rec := doJSON(t, s, http.MethodGet, "/api/styles/house", nil); rec.Code != http.StatusNotFound {
		t.Errorf("get deleted status = %d", rec.Code)
	}
}

func TestDeleteDefaultStyleForbidden(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodDelete, "/api/styles/apa", nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestDeriveStyle(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodPost, "/api/styles/my-ieee/derive", map[string]string{
		"base_style": "ieee",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success   bool              `json:"success"`
		StyleName string            `json:"style_name"`
		Style     styles.Descriptor `json:"style"`
	}
	decodeBody(t, rec, &body)
	if !body.Success || body.StyleName != "my-ieee" || body.Style.Name != "my-ieee" {
		t.Errorf("body = %+v", body)
	}

	rec = doJSON(t, s, http.MethodPost, "/api/styles/x/derive", map[string]string{"base_style": "chicago"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown base status = %d", rec.Code)
	}
}

func TestValidateStyleEndpoint(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodPost, "/api/styles/validate", map[string]string{
		"name": "partial",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Valid  bool     `json:"valid"`
		Errors []string `json:"errors"`
	}
	decodeBody(t, rec, &body)
	if body.Valid || len(body.Errors) == 0 {
		t.Errorf("body = %+v", body)
	}
}

func TestListStyles(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodGet, "/api/styles", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Styles map[string]styles.Overview `json:"styles"`
		Count  int                        `json:"count"`
	}
	decodeBody(t, rec, &body)
	if body.Count != 3 || len(body.Styles) != 3 {
		t.Errorf("count = %d, styles = %v", body.Count, body.Styles)
	}
	if _, ok := body.Styles["nature"]; !ok {
		t.Errorf("styles = %v", body.Styles)
	}
}

func TestCoordinateExportEndpoint(t *testing.T) {
	s := newTestServer(t, "")
	rec := doJSON(t, s, http.MethodPost, "/api/export/coordinate", map[string]any{
		"content": "# Title\nA Study\n# Introduction\nBody.",
		"style":   "ieee",
		"format":  "pdf",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var result export.Result
	decodeBody(t, rec, &result)
	if !result.Success {
		t.Errorf("result = %+v", result)
	}
	if result.CoordinationID == "" {
		t.Error("missing coordination id")
	}

	// Missing content fails the run but still answers 200 with errors.
	rec = doJSON(t, s, http.MethodPost, "/api/export/coordinate", map[string]any{
		"style":  "ieee",
		"format": "pdf",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	decodeBody(t, rec, &result)
	if result.Success || len(result.Errors) == 0 {
		t.Errorf("result = %+v", result)
	}
}

func TestExportHistoryEndpoint(t *testing.T) {
	s := newTestServer(t, "")

	doJSON(t, s, http.MethodPost, "/api/export/coordinate", map[string]any{
		"content": "# Introduction\nBody.",
		"style":   "ieee",
		"format":  "docx",
	})

	rec := doJSON(t, s, http.MethodGet, "/api/export/history?limit=5", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		History            []export.HistoryEntry `json:"history"`
		TotalCoordinations int                   `json:"total_coordinations"`
		SuccessRate        float64               `json:"success_rate"`
	}
	decodeBody(t, rec, &body)
	if body.TotalCoordinations != 1 || len(body.History) != 1 {
		t.Errorf("body = %+v", body)
	}
	if body.History[0].Format != "docx" {
		t.Errorf("entry = %+v", body.History[0])
	}
	if body.SuccessRate != 1.0 {
		t.Errorf("success rate = %v", body.SuccessRate)
	}
}

func TestRequestBodyLimit(t *testing.T) {
	s := newTestServer(t, "")
	s.cfg.MaxContentBytes = 64

	big := strings.Repeat("x", 256)
	rec := doJSON(t, s, http.MethodPost, "/api/template/process", map[string]string{"content": big})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}
}
