// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"snapbridge/internal/core/version"
	"snapbridge/internal/modkit/httpkit"
)

// Check is one readiness probe; a nil Probe reports skipped
type Check struct {
	Name  string
	Probe func(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      []Check
	Platform    interface{ Version() string }
	Discarded   func() int64
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok fail skipped
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// VersionResponse reports build info and the platform string getPlatformVersion returns
type VersionResponse struct {
	Build    version.BuildInfo `json:"build"`
	Platform string            `json:"platform,omitempty"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
	// DiscardedCompletions counts duplicate provider callbacks dropped since start
	DiscardedCompletions int64 `json:"discarded_completions"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	out := ReadyResponse{Status: "ok", Checks: make([]ReadyCheck, 0, len(h.deps.Checks))}
	for _, c := range h.deps.Checks {
		rc := ReadyCheck{Name: c.Name, Status: "ok"}
		if c.Probe == nil {
			rc.Status = "skipped"
		} else if err := c.Probe(ctx); err != nil {
			rc.Status, rc.Error = "fail", err.Error()
		}
		out.Checks = append(out.Checks, rc)

		switch rc.Status {
		case "fail":
			out.Status = "fail"
		case "skipped":
			if out.Status == "ok" {
				out.Status = "degraded"
			}
		}
	}
	out.Now = time.Now().UTC().Format(time.RFC3339)
	return out, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	resp := VersionResponse{Build: version.Info()}
	if h.deps.Platform != nil {
		resp.Platform = h.deps.Platform.Version()
	}
	return resp, nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	resp := ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
	}
	if h.deps.Discarded != nil {
		resp.DiscardedCompletions = h.deps.Discarded()
	}
	return resp, nil
}
