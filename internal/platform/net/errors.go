package net

import (
	stderrs "errors"
	"net/http"

	perr "personalab/internal/platform/errors"
)

// ErrNoCredentials means the request carried no bearer token at all
var ErrNoCredentials = perr.Unauthorizedf("missing bearer token")

// IsNoCredentials reports whether err is ErrNoCredentials or wraps it
func IsNoCredentials(err error) bool { return stderrs.Is(err, ErrNoCredentials) }

// HTTPStatus maps a project error to http status
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}
