// Package client calls a running bridge host over its HTTP channel
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	perr "snapbridge/internal/platform/errors"
	pnet "snapbridge/internal/platform/net"
	dom "snapbridge/internal/services/bridge/domain"
)

// Client talks to /api/v1/bridge on BaseURL
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New builds a Client with the default http client
func New(baseURL, token string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), Token: token, HTTP: http.DefaultClient}
}

// Invoke posts cmd and returns the reply envelope
// err is only set when no envelope could be read; command failures arrive as a Failed envelope
func (c *Client) Invoke(ctx context.Context, cmd dom.Command) (pnet.Wire, error) {
	body, err := json.Marshal(cmd)
	if err != nil {
		return pnet.Wire{}, perr.Wrap(err, perr.ErrorCodeJSON, "encode command")
	}
	return c.do(ctx, http.MethodPost, "/invoke", body, cmd.ID)
}

// Methods lists the command names the host recognises
func (c *Client) Methods(ctx context.Context) ([]string, error) {
	w, err := c.do(ctx, http.MethodGet, "/methods", nil, "")
	if err != nil {
		return nil, err
	}
	if w.Failed() {
		return nil, perr.Newf(w.Code, "%s", w.Error)
	}
	raw, err := json.Marshal(w.Data)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "re-encode methods")
	}
	var out struct {
		Methods []string `json:"methods"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "decode methods")
	}
	return out.Methods, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, cmdID string) (pnet.Wire, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/api/v1/bridge"+path, bytes.NewReader(body))
	if err != nil {
		return pnet.Wire{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if cmdID != "" {
		req.Header.Set(pnet.CommandIDHeader, cmdID)
	}

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return pnet.Wire{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "bridge host unreachable")
	}
	defer resp.Body.Close()

	var w pnet.Wire
	if err := json.NewDecoder(resp.Body).Decode(&w); err != nil {
		return pnet.Wire{}, perr.Wrapf(err, perr.ErrorCodeJSON, "decode reply (http %d)", resp.StatusCode)
	}
	if w.StatusCode == 0 {
		w.StatusCode, w.Status = resp.StatusCode, http.StatusText(resp.StatusCode)
	}
	return w, nil
}
