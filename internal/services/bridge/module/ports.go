package module

import (
	dom "snapbridge/internal/services/bridge/domain"
	"snapbridge/internal/services/bridge/service"
)

// Deps is the port set the bridge module needs, injected with modkit.WithPorts
type Deps struct {
	Providers dom.Providers
}

// Ports is the port set the bridge module exposes
type Ports struct {
	Router       dom.RouterPort
	Capabilities func() []service.Capability
	// Discarded counts completions dropped after a command already replied
	Discarded func() int64
}
