// Package module wires the bridge command channel into the API
package module

import (
	"net/http"

	"snapbridge/internal/modkit"
	"snapbridge/internal/modkit/httpkit"
	"snapbridge/internal/platform/net/middleware"
	str "snapbridge/internal/platform/strings"

	"snapbridge/internal/services/bridge/completion"
	bridgehttp "snapbridge/internal/services/bridge/http"
	"snapbridge/internal/services/bridge/service"
)

// Module implements modkit.Module for the bridge
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *service.Service
}

// New constructs the bridge module
// providers arrive as Deps through modkit.WithPorts; without them every provider backed command reports unavailable
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("bridge"),
		modkit.WithPrefix("/bridge"),
	}, opts...)...)

	in, _ := modkit.PortsAs[Deps](b)
	svc := service.New(in.Providers, service.Config{AppScheme: o.AppScheme})

	mws := b.Mw
	if o.HostToken != "" {
		mws = append(mws, httpkit.Auth(middleware.StaticToken{Token: o.HostToken, HostID: o.HostID}))
	}
	mws = append(mws, middleware.Throttle(o.MaxInflight))

	deps.Logger().Info().
		Str("module", b.Name).
		Str("app_scheme", svc.Cfg.AppScheme).
		Bool("auth", o.HostToken != "").
		Dur("call_timeout", o.CallTimeout).
		Msg("bridge module ready")

	m := &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       mws,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		bridgehttp.Register(r, bridgehttp.Deps{Router: svc, CallTimeout: o.CallTimeout})
		external(r)
	}
	return m
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.Prefix(), m.mws, func(rr httpkit.Router) {
		m.register(m.subrouter(rr))
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "bridge module name") }

// Prefix returns the mount path
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements modkit.Module
func (m *Module) Ports() any {
	return Ports{Router: m.svc, Capabilities: m.svc.Capabilities, Discarded: completion.Discarded}
}
