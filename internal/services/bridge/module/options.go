package module

import (
	"time"

	"snapbridge/internal/platform/config"
	"snapbridge/internal/services/bridge/service"
)

// Options for the bridge module
type Options struct {
	// AppScheme is probed by isInstalled
	AppScheme string
	// CallTimeout bounds how long the channel waits for one Response
	CallTimeout time.Duration
	// MaxInflight caps concurrent invocations, 0 disables the cap
	MaxInflight int
	// HostToken enables bearer auth on the channel when set
	HostToken string
	// HostID names the authenticated host in logs
	HostID string
}

// FromConfig reads BRIDGE_* settings from c
func FromConfig(c config.Conf) Options {
	b := c.Prefix("BRIDGE_")
	return Options{
		AppScheme:   b.MayString("APP_SCHEME", service.DefaultAppScheme),
		CallTimeout: b.MayDuration("CALL_TIMEOUT", 30*time.Second),
		MaxInflight: b.MayInt("MAX_INFLIGHT", 0),
		HostToken:   b.MayString("HOST_TOKEN", ""),
		HostID:      b.MayString("HOST_ID", "host"),
	}
}
