package module_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"snapbridge/internal/modkit"
	"snapbridge/internal/modkit/module"
	phttp "snapbridge/internal/platform/net/http"
	metahttp "snapbridge/internal/services/api/meta/http"
	metamod "snapbridge/internal/services/api/meta/module"

	"github.com/go-chi/chi/v5"
)

func TestMeta_MountsUnderPrefix(t *testing.T) {
	t.Setenv("SERVICE_NAME", "bridge-test")

	hit := false
	m := metamod.New(modkit.Deps{},
		modkit.WithPorts(metamod.Ports{Checks: []metahttp.Check{{Name: "x", Probe: func(context.Context) error { return nil }}}}),
		modkit.WithMiddlewares(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hit = true; next.ServeHTTP(w, r) })
		}),
	)
	if m.Name() != "meta" || module.HasPorts(m) {
		t.Fatalf("name=%q ports=%v", m.Name(), m.Ports())
	}

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	for _, path := range []string{"/meta/health", "/meta/ready", "/meta/version", "/meta/service"} {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s = %d", path, rr.Code)
		}
		if path == "/meta/health" && !strings.Contains(rr.Body.String(), "bridge-test") {
			t.Fatalf("service name not applied: %s", rr.Body.String())
		}
	}
	if !hit {
		t.Fatal("module middleware not applied")
	}
}
