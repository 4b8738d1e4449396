package export

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/krisrjensen/publication-style-config-server/internal/processor"
)

// Request is an export coordination request.
type Request struct {
	Content        string         `json:"content"`
	Style          string         `json:"style"`
	Format         string         `json:"format"`
	TemplateType   string         `json:"template_type,omitempty"`
	TargetServices []string       `json:"target_services"`
	ExportOptions  map[string]any `json:"export_options"`
}

func (r Request) templateTypeOrDefault() string {
	if r.TemplateType == "" {
		return "article"
	}
	return r.TemplateType
}

// RequestValidation is the outcome of checking an export request.
type RequestValidation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Result is the outcome of one coordination run.
type Result struct {
	Success           bool                    `json:"success"`
	CoordinationID    string                  `json:"coordination_id"`
	Workflow          []Step                  `json:"workflow,omitempty"`
	Results           *Execution              `json:"results,omitempty"`
	AvailableServices map[string]Availability `json:"available_services,omitempty"`
	Errors            []string                `json:"errors,omitempty"`
	Timestamp         string                  `json:"timestamp"`
}

// HistoryEntry records one past coordination for inspection.
type HistoryEntry struct {
	CoordinationID string `json:"coordination_id"`
	Timestamp      string `json:"timestamp"`
	Style          string `json:"style"`
	Format         string `json:"format"`
	Success        bool   `json:"success"`
	StepsCompleted int    `json:"steps_completed"`
}

// ServiceStatus is the health report for every registered service.
type ServiceStatus struct {
	Services        map[string]serviceState `json:"services"`
	TotalServices   int                     `json:"total_services"`
	HealthyServices int                     `json:"healthy_services"`
	Timestamp       string                  `json:"timestamp"`
}

type serviceState struct {
	URL            string   `json:"url"`
	Healthy        bool     `json:"healthy"`
	ResponseTimeMs int64    `json:"response_time_ms,omitempty"`
	Capabilities   []string `json:"capabilities"`
}

// Coordinator plans and executes export workflows across the service
// registry and keeps a bounded history of past runs.
type Coordinator struct {
	registry map[string]ServiceInfo
	formats  map[string]FormatInfo
	checker  *Checker
	exec     *executor
	log      *slog.Logger

	mu           sync.Mutex
	history      []HistoryEntry
	historyLimit int
}

// NewCoordinator builds a coordinator with the built-in service and
// format registries.
func NewCoordinator(proc *processor.Processor, checker *Checker, historyLimit int, log *slog.Logger) *Coordinator {
	if historyLimit <= 0 {
		historyLimit = 100
	}
	return &Coordinator{
		registry:     serviceRegistry(),
		formats:      exportFormats(),
		checker:      checker,
		exec:         &executor{proc: proc},
		log:          log,
		historyLimit: historyLimit,
	}
}

// Coordinate validates the request, probes target services, plans the
// workflow, executes it, and records the run. Invalid requests return a
// failed Result rather than an error; only infrastructure problems
// surface as errors.
func (c *Coordinator) Coordinate(ctx context.Context, req Request) Result {
	coordinationID := uuid.NewString()

	validation := c.validateRequest(req)
	if !validation.Valid {
		return Result{
			Success:        false,
			CoordinationID: coordinationID,
			Errors:         validation.Errors,
			Timestamp:      time.Now().Format(time.RFC3339Nano),
		}
	}

	available := c.checkAvailability(ctx, req.TargetServices)
	workflow := planWorkflow(req, c.formats, available)
	execution := c.exec.run(ctx, workflow, coordinationID)

	c.recordHistory(HistoryEntry{
		CoordinationID: coordinationID,
		Timestamp:      time.Now().Format(time.RFC3339Nano),
		Style:          req.Style,
		Format:         req.Format,
		Success:        execution.Success,
		StepsCompleted: execution.StepsCompleted,
	})

	c.log.Info("export coordinated",
		"coordination_id", coordinationID,
		"format", req.Format,
		"success", execution.Success,
		"steps_completed", execution.StepsCompleted,
	)

	return Result{
		Success:           execution.Success,
		CoordinationID:    coordinationID,
		Workflow:          workflow,
		Results:           &execution,
		AvailableServices: available,
		Timestamp:         time.Now().Format(time.RFC3339Nano),
	}
}

func (c *Coordinator) validateRequest(req Request) RequestValidation {
	v := RequestValidation{Valid: true, Errors: []string{}, Warnings: []string{}}

	if req.Content == "" {
		v.Errors = append(v.Errors, "Missing required field: content")
		v.Valid = false
	}
	if req.Style == "" {
		v.Errors = append(v.Errors, "Missing required field: style")
		v.Valid = false
	}
	if req.Format == "" {
		v.Errors = append(v.Errors, "Missing required field: format")
		v.Valid = false
	}

	format, ok := c.formats[req.Format]
	if req.Format != "" && !ok {
		v.Errors = append(v.Errors, fmt.Sprintf("Unsupported export format: %s", req.Format))
		v.Valid = false
	}

	if ok && req.Style != "" && len(format.CompatibleStyles) > 0 {
		compatible := false
		for _, s := range format.CompatibleStyles {
			if s == req.Style {
				compatible = true
				break
			}
		}
		if !compatible {
			v.Warnings = append(v.Warnings, fmt.Sprintf(
				"Style %s may not be compatible with format %s", req.Style, req.Format))
		}
	}

	return v
}

func (c *Coordinator) checkAvailability(ctx context.Context, targets []string) map[string]Availability {
	available := make(map[string]Availability, len(targets))
	for _, name := range targets {
		svc, ok := c.registry[name]
		if !ok {
			available[name] = Availability{Available: false, Error: "Service not found in registry"}
			continue
		}
		health := c.checker.Check(ctx, svc)
		available[name] = Availability{
			Available:      health.Healthy,
			ResponseTimeMs: health.ResponseTimeMs,
			Capabilities:   svc.Capabilities,
			URL:            svc.URL,
		}
	}
	return available
}

func (c *Coordinator) recordHistory(entry HistoryEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, entry)
	if len(c.history) > c.historyLimit {
		c.history = c.history[len(c.history)-c.historyLimit:]
	}
}

// History returns up to limit most recent coordination entries along
// with the overall success rate.
func (c *Coordinator) History(limit int) (entries []HistoryEntry, total int, successRate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit <= 0 || limit > len(c.history) {
		limit = len(c.history)
	}
	entries = append([]HistoryEntry{}, c.history[len(c.history)-limit:]...)
	total = len(c.history)

	if total > 0 {
		successes := 0
		for _, e := range c.history {
			if e.Success {
				successes++
			}
		}
		successRate = float64(successes) / float64(total)
	}
	return entries, total, successRate
}

// Status probes every registered service.
func (c *Coordinator) Status(ctx context.Context) ServiceStatus {
	status := ServiceStatus{
		Services:      make(map[string]serviceState, len(c.registry)),
		TotalServices: len(c.registry),
		Timestamp:     time.Now().Format(time.RFC3339Nano),
	}
	for name, svc := range c.registry {
		health := c.checker.Check(ctx, svc)
		status.Services[name] = serviceState{
			URL:            svc.URL,
			Healthy:        health.Healthy,
			ResponseTimeMs: health.ResponseTimeMs,
			Capabilities:   svc.Capabilities,
		}
		if health.Healthy {
			status.HealthyServices++
		}
	}
	return status
}
