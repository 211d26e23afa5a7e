package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	perr "snapbridge/internal/platform/errors"
	pnet "snapbridge/internal/platform/net"
)

// AuthPort authenticates the host application calling the channel
type AuthPort interface {
	// Authenticate returns the host id for r or an error
	Authenticate(r *http.Request) (hostID string, err error)
}

// StaticToken accepts requests carrying "Authorization: Bearer <Token>"
type StaticToken struct {
	Token  string
	HostID string
}

// Authenticate implements AuthPort
func (s StaticToken) Authenticate(r *http.Request) (string, error) {
	got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(s.Token)) != 1 {
		return "", perr.Unauthenticatedf("missing or invalid host token")
	}
	if s.HostID == "" {
		return "host", nil
	}
	return s.HostID, nil
}

// Auth rejects unauthenticated requests using p; a nil port passes everything through
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if p == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hostID, err := p.Authenticate(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithHost(r.Context(), hostID)))
		})
	}
}
