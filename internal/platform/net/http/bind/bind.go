// Package bind decodes and validates JSON request bodies
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	perr "personalab/internal/platform/errors"
	"personalab/internal/platform/logger"
	"personalab/internal/platform/validate"
)

// JSONOptions controls decoding
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	AllowEmptyBody  bool  // default false
	SkipValidation  bool  // for payloads validated by a domain validator
}

// DefaultJSONOptions are the options ParseJSON uses when none are given
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

var jsonMore = func(dec *json.Decoder) bool { return dec.More() }

// ParseJSON decodes the body into T and runs struct validation. Validation
// failures report every field as error details
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := DefaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	var body io.Reader = r.Body
	if !o.AllowEmptyBody {
		first := make([]byte, 1)
		n, _ := r.Body.Read(first)
		if n == 0 {
			return zero, perr.JSONErrf("empty body")
		}
		body = io.MultiReader(bytes.NewReader(first[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		body = io.LimitReader(body, o.MaxBytes)
	}

	dec := json.NewDecoder(body)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}
	if o.SkipValidation {
		return dst, nil
	}
	if err := Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Struct validates v with the default validator and maps failures onto a
// validation error listing every offending field
func Struct(v any) error {
	svc := validate.Default()
	err := svc.Validator.Struct(v)
	if err == nil {
		return nil
	}
	var details []perr.Detail
	if !svc.Each(err, func(path, msg string) {
		details = append(details, perr.Detail{Field: path, Message: msg})
	}) {
		logger.Get().Error().Err(err).Msg("validator internal error")
		return perr.Internalf("validation error")
	}
	out := perr.Validationf("%s", details[0].Message)
	out = perr.WithField(out, details[0].Field)
	return perr.WithDetails(out, details...)
}
