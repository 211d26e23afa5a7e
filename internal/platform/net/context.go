// Package net provides request context helpers and the transport envelope
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// CommandIDHeader lets a host pick the command id used for correlation
const CommandIDHeader = "X-Command-ID"

type ctxKey string

const (
	keyHostID    ctxKey = "host_id"
	keyCommandID ctxKey = "command_id"
)

// WithRequest stores reqID where chi's RequestID middleware would
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// WithHost annotates ctx with the authenticated host id
func WithHost(ctx context.Context, hostID string) context.Context {
	if hostID != "" {
		ctx = context.WithValue(ctx, keyHostID, hostID)
	}
	return ctx
}

// HostID returns the authenticated host id if present
func HostID(ctx context.Context) string {
	v, _ := ctx.Value(keyHostID).(string)
	return v
}

// WithCommandID annotates ctx with a host supplied command id
func WithCommandID(ctx context.Context, id string) context.Context {
	if id != "" {
		ctx = context.WithValue(ctx, keyCommandID, id)
	}
	return ctx
}

// CommandID returns the host supplied command id if present
func CommandID(ctx context.Context) string {
	v, _ := ctx.Value(keyCommandID).(string)
	return v
}
