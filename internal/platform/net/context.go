// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyIdentity ctxKey = "identity"

// Identity is the verified caller behind a request
type Identity struct {
	UserID string
	Email  string
	Name   string
}

// DisplayName is the name, else the email, else ""
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}

// WithRequest annotates context with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	return ctx
}

// WithIdentity annotates context with the authenticated caller. An identity
// without a user id is ignored
func WithIdentity(ctx context.Context, id Identity) context.Context {
	if id.UserID != "" {
		ctx = context.WithValue(ctx, keyIdentity, id)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// IdentityFrom returns the caller on the context if present
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(keyIdentity).(Identity)
	return id, ok
}

// UserID returns the caller's user id if present
func UserID(ctx context.Context) string {
	id, _ := IdentityFrom(ctx)
	return id.UserID
}
