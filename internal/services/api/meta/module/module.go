// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	"snapbridge/internal/modkit"
	"snapbridge/internal/modkit/httpkit"
	str "snapbridge/internal/platform/strings"

	metahttp "snapbridge/internal/services/api/meta/http"
)

// Ports is what meta accepts through modkit.WithPorts
type Ports struct {
	Checks    []metahttp.Check
	Platform  interface{ Version() string }
	Discarded func() int64
}

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	in, _ := modkit.PortsAs[Ports](b)
	m := &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	service := deps.Cfg.MayString("SERVICE_NAME", "snapbridge-host")
	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: service,
			StartedAt:   m.startedAt,
			Checks:      in.Checks,
			Platform:    in.Platform,
			Discarded:   in.Discarded,
		})
		external(r)
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.Prefix(), func(rr httpkit.Router) {
		if len(m.mws) > 0 {
			rr.Use(m.mws...)
		}
		m.register(m.subrouter(rr))
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix returns the mount path
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
