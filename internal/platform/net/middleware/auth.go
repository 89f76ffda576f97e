package middleware

import (
	"net/http"

	"personalab/internal/platform/logger"
	pnet "personalab/internal/platform/net"
)

// AuthPort resolves the caller identity from a request. Implementations
// return pnet.ErrNoCredentials when the request carries no token at all
type AuthPort interface {
	Parse(r *http.Request) (pnet.Identity, error)
}

// WriteFunc writes a status and body, usually phttp.JSON
type WriteFunc func(w http.ResponseWriter, status int, body any)

// Auth rejects requests without a valid identity
func Auth(p AuthPort, write WriteFunc) func(http.Handler) http.Handler {
	return authenticate(p, write, true)
}

// OptionalAuth attaches an identity when a token is present. A request
// without a token passes anonymously, a bad token is still rejected
func OptionalAuth(p AuthPort, write WriteFunc) func(http.Handler) http.Handler {
	return authenticate(p, write, false)
}

func authenticate(p AuthPort, write WriteFunc, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			id, err := p.Parse(r)
			if err != nil && (required || !pnet.IsNoCredentials(err)) {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := pnet.WithIdentity(r.Context(), id)
			ctx = logger.WithRequest(ctx, "", id.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
