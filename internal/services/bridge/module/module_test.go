package module_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"snapbridge/internal/modkit"
	"snapbridge/internal/modkit/httpkit"
	"snapbridge/internal/modkit/module"
	"snapbridge/internal/platform/config"
	phttp "snapbridge/internal/platform/net/http"
	dom "snapbridge/internal/services/bridge/domain"
	bridgemod "snapbridge/internal/services/bridge/module"

	"github.com/go-chi/chi/v5"
)

type probe bool

func (p probe) IsAppInstalled(string) bool { return bool(p) }

func build(t *testing.T, o bridgemod.Options, p dom.Providers) (modkit.Module, httpkit.Router) {
	t.Helper()
	m := bridgemod.New(modkit.Deps{}, o, modkit.WithPorts(bridgemod.Deps{Providers: p}))
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	return m, r
}

func invoke(t *testing.T, r httpkit.Router, body, token string) (int, httpkit.Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/bridge/invoke", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, req)
	var env httpkit.Envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr.Code, env
}

func TestModule_InvokeThroughService(t *testing.T) {
	m, r := build(t, bridgemod.Options{}, dom.Providers{Probe: probe(true)})
	if m.Name() != "bridge" {
		t.Fatalf("name = %q", m.Name())
	}

	code, env := invoke(t, r, `{"method":"callLogout"}`, "")
	if code != http.StatusOK || env.Data != dom.LogoutSuccess {
		t.Fatalf("logout %d %+v", code, env)
	}

	code, env = invoke(t, r, `{"method":"isInstalled"}`, "")
	if code != http.StatusOK || env.Data != true {
		t.Fatalf("isInstalled %d %+v", code, env)
	}

	code, env = invoke(t, r, `{"method":"callLogin"}`, "")
	if code != http.StatusServiceUnavailable || env.Reason != "LoginError" {
		t.Fatalf("login without identity %d %+v", code, env)
	}

	code, env = invoke(t, r, `{"method":"nope"}`, "")
	if code != http.StatusNotImplemented || env.Reason != "NotImplemented" {
		t.Fatalf("unknown %d %+v", code, env)
	}
}

func TestModule_HostToken(t *testing.T) {
	_, r := build(t, bridgemod.Options{HostToken: "s3cret", HostID: "app"}, dom.Providers{})

	if code, _ := invoke(t, r, `{"method":"callLogout"}`, ""); code != http.StatusUnauthorized {
		t.Fatalf("missing token got %d", code)
	}
	if code, _ := invoke(t, r, `{"method":"callLogout"}`, "s3cret"); code != http.StatusOK {
		t.Fatalf("valid token got %d", code)
	}
}

func TestModule_PortsExposeRouter(t *testing.T) {
	m, _ := build(t, bridgemod.Options{}, dom.Providers{})
	ports := module.MustPortsOf[dom.RouterPort](m)
	if got := ports.Methods(); len(got) != 7 {
		t.Fatalf("methods = %v", got)
	}
	set := module.MustPortsOf[bridgemod.Ports](m)
	if set.Capabilities == nil || set.Discarded == nil || set.Discarded() < 0 {
		t.Fatalf("port set = %+v", set)
	}
}

func TestModule_WithoutInjectedPorts(t *testing.T) {
	m := bridgemod.New(modkit.Deps{}, bridgemod.Options{})
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)

	code, env := invoke(t, r, `{"method":"getPlatformVersion"}`, "")
	if code != http.StatusOK || env.Data != "Unknown" {
		t.Fatalf("platform %d %+v", code, env)
	}
}

func TestFromConfig(t *testing.T) {
	t.Setenv("BRIDGE_APP_SCHEME", "snapchat://other")
	t.Setenv("BRIDGE_CALL_TIMEOUT", "3s")
	t.Setenv("BRIDGE_MAX_INFLIGHT", "8")
	t.Setenv("BRIDGE_HOST_TOKEN", "tok")

	o := bridgemod.FromConfig(config.New())
	if o.AppScheme != "snapchat://other" || o.CallTimeout != 3*time.Second || o.MaxInflight != 8 || o.HostToken != "tok" || o.HostID != "host" {
		t.Fatalf("options = %+v", o)
	}
}

func TestFromConfig_Defaults(t *testing.T) {
	o := bridgemod.FromConfig(config.New().Prefix("UNSET_"))
	if o.AppScheme != "snapchat://app" || o.CallTimeout != 30*time.Second || o.MaxInflight != 0 || o.HostToken != "" {
		t.Fatalf("options = %+v", o)
	}
}
