package net_test

import (
	"net/http"
	"testing"

	perr "personalab/internal/platform/errors"
	pnet "personalab/internal/platform/net"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelopes(t *testing.T) {
	persona := map[string]any{"id": "p-1", "title": "Ops lead"}

	cases := []struct {
		name   string
		build  func() (int, pnet.Wire)
		status int
		data   any
	}{
		{"ok", func() (int, pnet.Wire) { return pnet.OK(persona, "req-1") }, http.StatusOK, persona},
		{"created", func() (int, pnet.Wire) { return pnet.Created(persona, "req-1") }, http.StatusCreated, persona},
		{"no content", func() (int, pnet.Wire) { return pnet.NoContent("req-1") }, http.StatusNoContent, nil},
		{"nil error", func() (int, pnet.Wire) { return pnet.Error(nil, "req-1") }, http.StatusOK, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, w := c.build()
			assert.Equal(t, c.status, status)
			assert.Equal(t, c.status, w.StatusCode)
			assert.Equal(t, http.StatusText(c.status), w.Status)
			assert.Equal(t, "req-1", w.RequestID)
			assert.Equal(t, c.data, w.Data)
			assert.Empty(t, w.Error)
			assert.Zero(t, w.Code)
		})
	}
}

func TestError_CodeMapsToStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   perr.ErrorCode
	}{
		{perr.Unauthorizedf("missing bearer token"), http.StatusUnauthorized, perr.ErrorCodeUnauthorized},
		{perr.Forbiddenf("persona belongs to another author"), http.StatusForbidden, perr.ErrorCodeForbidden},
		{perr.NotFoundf("persona %s not found", "p-9"), http.StatusNotFound, perr.ErrorCodeNotFound},
	}
	for _, c := range cases {
		status, w := pnet.Error(c.err, "req-5")
		assert.Equal(t, c.status, status, c.err.Error())
		assert.Equal(t, c.status, w.StatusCode)
		assert.Equal(t, c.code, w.Code)
		assert.NotEmpty(t, w.Error)
		assert.Nil(t, w.Data)
		assert.Equal(t, "req-5", w.RequestID)
	}
}

func TestError_ValidationCarriesDetails(t *testing.T) {
	err := perr.WithDetails(perr.Validationf("persona is invalid"),
		perr.Detail{Field: "goals.primary", Message: "goals.primary must contain at least 1 item(s)"},
		perr.Detail{Field: "personality.openness", Message: "personality.openness must be a whole number between 1 and 5"},
	)

	status, w := pnet.Error(err, "req-6")

	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, w.Details, 2)
	assert.Equal(t, "personality.openness", w.Details[1].Field)
}
