package export

import (
	"context"
	"net/http"
	"time"
)

// Health is the probe result for one peer service.
type Health struct {
	Healthy        bool   `json:"healthy"`
	ResponseTimeMs int64  `json:"response_time_ms"`
	StatusCode     int    `json:"status_code,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Availability combines a probe result with registry data for one
// requested target service.
type Availability struct {
	Available      bool     `json:"available"`
	ResponseTimeMs int64    `json:"response_time_ms,omitempty"`
	Capabilities   []string `json:"capabilities,omitempty"`
	URL            string   `json:"url,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// Checker probes peer service health endpoints.
type Checker struct {
	client *http.Client
}

// NewChecker builds a checker with a per-probe timeout.
func NewChecker(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Checker{client: &http.Client{Timeout: timeout}}
}

// Check probes a single service's health endpoint.
func (c *Checker) Check(ctx context.Context, svc ServiceInfo) Health {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.URL+svc.HealthEndpoint, nil)
	if err != nil {
		return Health{Healthy: false, Error: err.Error()}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Health{Healthy: false, Error: "connection failed"}
	}
	defer resp.Body.Close()

	return Health{
		Healthy:        resp.StatusCode == http.StatusOK,
		ResponseTimeMs: time.Since(start).Milliseconds(),
		StatusCode:     resp.StatusCode,
	}
}
