package module

import (
	"strings"
	"testing"

	phttp "snapbridge/internal/platform/net/http"
)

type RouterPort interface {
	Methods() []string
}

type methods []string

func (m methods) Methods() []string { return m }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() PortSet           { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

func TestHasPorts(t *testing.T) {
	if HasPorts(nil) {
		t.Fatal("nil module should report false")
	}
	if HasPorts(fakeModule{}) {
		t.Fatal("nil ports should report false")
	}
	if !HasPorts(fakeModule{ports: 1}) {
		t.Fatal("non nil ports should report true")
	}
}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type Ports struct {
		Router RouterPort
		Scheme string
	}
	type hidden struct {
		router RouterPort
	}

	cases := []struct {
		name   string
		ports  any
		wantOK bool
	}{
		{"nil ports", nil, false},
		{"direct", RouterPort(methods{"a"}), true},
		{"exported field", Ports{Router: methods{"a"}, Scheme: "x"}, true},
		{"unexported field ignored", hidden{router: methods{"a"}}, false},
		{"unrelated value", 42, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := PortsOf[RouterPort](fakeModule{name: c.name, ports: c.ports})
			if ok != c.wantOK {
				t.Fatalf("ok = %v want %v", ok, c.wantOK)
			}
			if ok && got.Methods()[0] != "a" {
				t.Fatalf("unexpected port %v", got)
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()

	got := MustPortsOf[RouterPort](fakeModule{name: "bridge", ports: methods{"x"}})
	if got.Methods()[0] != "x" {
		t.Fatalf("unexpected port %v", got)
	}

	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "bridge") || !strings.Contains(msg, "requested port not found") {
			t.Fatalf("panic message should name the module, got %q", msg)
		}
	}()
	_ = MustPortsOf[RouterPort](fakeModule{name: "bridge"})
}
