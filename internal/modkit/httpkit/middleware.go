package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"snapbridge/internal/platform/config"
	phttp "snapbridge/internal/platform/net/http"
	"snapbridge/internal/platform/net/middleware"
)

// Stack tunes CommonStack
type Stack struct {
	// Timeout cancels request contexts, 0 disables it
	Timeout time.Duration
	// Slow marks access log lines at warn
	Slow time.Duration
	// MaxInflight caps concurrent requests, 0 disables it
	MaxInflight int
	CORS        middleware.CORSOptions
}

// StackFromConfig reads HTTP_TIMEOUT, HTTP_SLOW, HTTP_MAX_INFLIGHT and HTTP_CORS_ORIGINS under c
func StackFromConfig(c config.Conf) Stack {
	return Stack{
		Timeout:     c.MayDuration("HTTP_TIMEOUT", 30*time.Second),
		Slow:        c.MayDuration("HTTP_SLOW", 2*time.Second),
		MaxInflight: c.MayInt("HTTP_MAX_INFLIGHT", 0),
		CORS: middleware.CORSOptions{
			AllowedOrigins: c.MayCSV("HTTP_CORS_ORIGINS", []string{"http://localhost:*", "http://127.0.0.1:*"}),
			MaxAge:         300,
		},
	}
}

// CommonStack returns the baseline per scope middleware slice
// compose with Auth in main when a host token is configured
func CommonStack(s Stack) []func(http.Handler) http.Handler {
	mw := []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.Correlate,

		// safety
		middleware.RecoverJSON,

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: s.Slow}),

		middleware.NoCache(),
		middleware.CORS(s.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Throttle(s.MaxInflight),
	}
	if s.Timeout > 0 {
		mw = append(mw, middleware.Timeout(s.Timeout))
	}
	return mw
}

// Auth wires the auth middleware to the platform JSON writer
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}
