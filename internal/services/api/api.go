// Package api composes the host facing HTTP API
package api

import (
	"snapbridge/internal/platform/config"
	"snapbridge/internal/platform/logger"
	phttp "snapbridge/internal/platform/net/http"

	"snapbridge/internal/modkit"
	"snapbridge/internal/modkit/httpkit"
	"snapbridge/internal/modkit/module"

	metahttp "snapbridge/internal/services/api/meta/http"
	metamod "snapbridge/internal/services/api/meta/module"
	dom "snapbridge/internal/services/bridge/domain"
	bridgemod "snapbridge/internal/services/bridge/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Providers      dom.Providers
	Stack          httpkit.Stack
	EnableProfiler bool
}

// Mount mounts the API onto r under /api/v1 and returns the bridge router port
func Mount(r phttp.Router, opt Options) dom.RouterPort {
	deps := modkit.Deps{Log: opt.Logger, Cfg: opt.Config}

	bridge := bridgemod.New(deps, bridgemod.FromConfig(opt.Config),
		modkit.WithPorts(bridgemod.Deps{Providers: opt.Providers}),
	)
	bp := module.MustPortsOf[bridgemod.Ports](bridge)

	var checks []metahttp.Check
	for _, c := range bp.Capabilities() {
		checks = append(checks, metahttp.Check{Name: c.Name, Probe: c.Check})
	}
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Checks:    checks,
		Platform:  opt.Providers.Platform,
		Discarded: bp.Discarded,
	}))

	mods := []module.Module{meta, bridge}

	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	deps.Logger().Info().Strs("methods", bp.Router.Methods()).Msg("api mounted")
	return bp.Router
}
