package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"snapbridge/internal/modkit/httpkit"
	phttp "snapbridge/internal/platform/net/http"
	metahttp "snapbridge/internal/services/api/meta/http"

	"github.com/go-chi/chi/v5"
)

type platformString string

func (p platformString) Version() string { return string(p) }

func get[T any](t *testing.T, r httpkit.Router, path string) T {
	t.Helper()
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET %s = %d", path, rr.Code)
	}
	var env struct {
		Data T `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return env.Data
}

func mount(d metahttp.Deps) httpkit.Router {
	r := phttp.AdaptChi(chi.NewRouter())
	metahttp.Register(r, d)
	return r
}

func ok(context.Context) error { return nil }

func TestHealthServiceVersion(t *testing.T) {
	started := time.Now().Add(-90 * time.Second)
	r := mount(metahttp.Deps{
		ServiceName: "snapbridge-host",
		StartedAt:   started,
		Platform:    platformString("Linux 6.8.0"),
		Discarded:   func() int64 { return 3 },
	})

	h := get[metahttp.HealthResponse](t, r, "/health")
	if !h.OK || h.Service != "snapbridge-host" {
		t.Fatalf("health = %+v", h)
	}

	s := get[metahttp.ServiceResponse](t, r, "/service")
	if s.Name != "snapbridge-host" || s.Uptime < 89 || s.DiscardedCompletions != 3 {
		t.Fatalf("service = %+v", s)
	}

	v := get[metahttp.VersionResponse](t, r, "/version")
	if v.Platform != "Linux 6.8.0" || v.Build.Service == "" {
		t.Fatalf("version = %+v", v)
	}
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		checks []metahttp.Check
		want   string
	}{
		{"no checks", nil, "ok"},
		{"all ok", []metahttp.Check{{Name: "identity", Probe: ok}, {Name: "sharing", Probe: ok}}, "ok"},
		{"skipped", []metahttp.Check{{Name: "identity", Probe: ok}, {Name: "verification"}}, "degraded"},
		{"failed", []metahttp.Check{
			{Name: "verification"},
			{Name: "sharing", Probe: func(context.Context) error { return errors.New("client construction failed") }},
		}, "fail"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := get[metahttp.ReadyResponse](t, mount(metahttp.Deps{Checks: c.checks}), "/ready")
			if got.Status != c.want || len(got.Checks) != len(c.checks) {
				t.Fatalf("ready = %+v", got)
			}
			for _, rc := range got.Checks {
				if rc.Status == "fail" && rc.Error == "" {
					t.Fatalf("failed check should carry an error: %+v", rc)
				}
			}
		})
	}
}
