package net

import (
	"net/http"

	perr "personalab/internal/platform/errors"
)

// Wire is the JSON envelope every API response travels in
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Details    []perr.Detail  `json:"details,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(status int, data any, reqID string) (int, Wire) {
	return status, Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// OK builds a 200 envelope
func OK(data any, reqID string) (int, Wire) { return envelope(http.StatusOK, data, reqID) }

// Created builds a 201 envelope, used for new and forked personas
func Created(data any, reqID string) (int, Wire) { return envelope(http.StatusCreated, data, reqID) }

// NoContent builds a 204 envelope
func NoContent(reqID string) (int, Wire) { return envelope(http.StatusNoContent, nil, reqID) }

// Error builds an error envelope from the perr code of err. Validation
// violations ride along in Details; a nil err is a plain 200
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status, w := envelope(perr.HTTPStatus(err), nil, reqID)
	wire := perr.WireFrom(err)
	w.Code = wire.Code
	w.Error = wire.Message
	w.Details = wire.Details
	return status, w
}
