package httpkit

import (
	"net/http"
	"strings"

	perr "personalab/internal/platform/errors"
	pnet "personalab/internal/platform/net"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Identity returns the caller attached by the auth middleware, if any
func Identity(r *http.Request) (pnet.Identity, bool) {
	return pnet.IdentityFrom(r.Context())
}

// User returns the authenticated user id from the request context
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", pnet.ErrNoCredentials
	}
	return uid, nil
}

// MustUser returns the authenticated user id or panics.
// only use on routes protected by the auth middleware
func MustUser(r *http.Request) string {
	uid, err := User(r)
	if err != nil {
		panic(err)
	}
	return uid
}

// UUIDParam reads a path parameter that must be a UUID. The canonical lower
// case form is returned
func UUIDParam(r *http.Request, name string) (string, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", perr.WithField(perr.InvalidArgf("%s must be a uuid", name), name)
	}
	return id.String(), nil
}

// Param reads a path parameter, trimmed
func Param(r *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(r, name))
}
