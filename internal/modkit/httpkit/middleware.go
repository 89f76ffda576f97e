package httpkit

import (
	"net/http"

	phttp "personalab/internal/platform/net/http"
	"personalab/internal/platform/net/middleware"
)

// Auth requires a verified caller and writes the JSON envelope on failure
func Auth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.Auth(p, phttp.JSON)
}

// OptionalAuth attaches a caller when a bearer token is present
func OptionalAuth(p middleware.AuthPort) func(http.Handler) http.Handler {
	return middleware.OptionalAuth(p, phttp.JSON)
}
