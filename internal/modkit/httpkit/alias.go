// Package httpkit provides handler and routing helpers that alias the platform http package
// use these from modules so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "personalab/internal/platform/net/http"
	"personalab/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope
	// Response is the HTTP response type
	Response = phttp.Response
	// Attachment is a raw file body, written without the envelope
	Attachment = phttp.Attachment
	// Handler is the platform handler type
	Handler = phttp.Handler
	// Router is a re-export of the platform router seam
	Router = phttp.Router
	// BindOptions tunes body decoding
	BindOptions = bind.JSONOptions
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Created returns a 201 response
func Created(data any) Response { return phttp.Created(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// File returns a 200 download of a
func File(a Attachment) Response { return phttp.File(a) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// DomainBody decodes strictly but leaves validation to a domain validator.
// Persona documents are checked by persona.Validator, not struct tags
func DomainBody() BindOptions {
	o := bind.DefaultJSONOptions()
	o.SkipValidation = true
	return o
}

// JSON adapts a body handler. The body is decoded with opts; fn may return
// plain data (200) or a Response
func JSON[T any](opts BindOptions, fn func(*http.Request, T) (any, error)) Handler {
	return phttp.JSONHandlerWith(opts, fn)
}

// Call adapts a handler that takes no body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Handle lets you directly adapt a Response-returning function if you prefer
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
