package httpkit

import (
	"net/http"

	perr "snapbridge/internal/platform/errors"
	pnet "snapbridge/internal/platform/net"
)

// Host returns the authenticated host id from the request context
func Host(r *http.Request) (string, error) {
	id := pnet.HostID(r.Context())
	if id == "" {
		return "", perr.Unauthenticatedf("no authenticated host")
	}
	return id, nil
}

// HostOr returns the authenticated host id or def when auth is not mounted
func HostOr(r *http.Request, def string) string {
	if id := pnet.HostID(r.Context()); id != "" {
		return id
	}
	return def
}

// CommandID returns the X-Command-ID supplied by the host, if any
func CommandID(r *http.Request) string { return pnet.CommandID(r.Context()) }
