package net

import (
	"net/http"

	perr "snapbridge/internal/platform/errors"
)

// Wire is the envelope every transport reply uses
// Reason and Details carry the bridge channel code and payload on failures
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	Error      string         `json:"error,omitempty"`
	Details    any            `json:"details,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// Failed reports whether the envelope carries an error
func (w Wire) Failed() bool { return w.StatusCode >= http.StatusBadRequest }

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Wire) {
	return http.StatusOK, Wire{
		StatusCode: http.StatusOK,
		Status:     http.StatusText(http.StatusOK),
		RequestID:  reqID,
		Data:       data,
	}
}

// Error builds an error envelope, status mapped from the error code
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status := HTTPStatus(err)
	w := perr.WireFrom(err)
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Reason:     w.Reason,
		Error:      w.Message,
		Details:    w.Details,
		Field:      w.Field,
		RequestID:  reqID,
	}
}

// HTTPStatus maps a project error to http status, 200 for nil
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}
