// Package http exposes the bridge command channel over JSON
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"snapbridge/internal/modkit/httpkit"
	perr "snapbridge/internal/platform/errors"
	"snapbridge/internal/platform/logger"
	dom "snapbridge/internal/services/bridge/domain"
	"snapbridge/internal/services/bridge/translate"
)

// Deps are the handler dependencies
type Deps struct {
	Router dom.RouterPort
	// CallTimeout bounds how long invoke waits for a Response, 0 waits for the request context only
	CallTimeout time.Duration
}

// InvokeRequest is the body of POST /invoke
type InvokeRequest struct {
	Method    string         `json:"method" validate:"required"`
	Arguments map[string]any `json:"arguments"`
	ID        string         `json:"id"`
}

// MethodsResponse lists the recognised command names
type MethodsResponse struct {
	Methods []string `json:"methods"`
}

type handlers struct {
	deps Deps
}

// Register mounts the bridge routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.PostJSON(r, "/invoke", h.invoke)
	httpkit.Get(r, "/methods", h.methods)
}

func (h *handlers) invoke(r *http.Request, in InvokeRequest) (any, error) {
	cmd := dom.Command{ID: in.ID, Name: in.Method, Payload: in.Arguments}
	if cmd.ID == "" {
		cmd.ID = httpkit.CommandID(r)
	}

	ctx := r.Context()
	if h.deps.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.deps.CallTimeout)
		defer cancel()
	}

	resp, err := h.deps.Router.Call(ctx, cmd)
	if err != nil {
		logger.C(ctx).Warn().Err(err).
			Str("command", cmd.Name).
			Str("host", httpkit.HostOr(r, "")).
			Msg("command did not complete before the caller gave up")
		return nil, abandoned(err)
	}
	return Reply(resp)
}

func (h *handlers) methods(_ *http.Request) (any, error) {
	return MethodsResponse{Methods: h.deps.Router.Methods()}, nil
}

// Reply maps a bridge Response onto a handler result
func Reply(resp dom.Response) (any, error) {
	switch resp.Status {
	case dom.StatusSuccess:
		return httpkit.OK(resp.Value), nil
	case dom.StatusNotImplemented:
		return nil, perr.WithReason(perr.New(perr.ErrorCodeNotImplemented, "method not implemented"), resp.Code())
	default:
		if resp.Err == nil {
			return nil, perr.WithReason(perr.Internalf("failure without error"), translate.CodeBridge)
		}
		return nil, resp.Err
	}
}

func abandoned(err error) error {
	msg := "command cancelled by caller"
	if errors.Is(err, context.DeadlineExceeded) {
		msg = "command timed out"
	}
	return perr.WithReason(perr.Wrap(err, perr.ErrorCodeUnavailable, msg), translate.CodeBridge)
}
