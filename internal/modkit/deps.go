// Package modkit provides module wiring and core deps
package modkit

import (
	"snapbridge/internal/platform/config"
	"snapbridge/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// cross module collaborators travel as ports via WithPorts, not here
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns d.Log or the root logger when unset
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}
