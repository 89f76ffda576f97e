package net_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	perr "personalab/internal/platform/errors"
	pnet "personalab/internal/platform/net"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, http.StatusOK},
		{"foreign error", errors.New("boom"), http.StatusInternalServerError},
		{"unauthorized", perr.New(perr.ErrorCodeUnauthorized, "not allowed"), http.StatusUnauthorized},
		{"missing token", pnet.ErrNoCredentials, http.StatusUnauthorized},
		{"forbidden", perr.Forbiddenf("not the owner"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pnet.HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("want %d got %d", tt.want, got)
			}
		})
	}
}

func TestIsNoCredentials(t *testing.T) {
	if !pnet.IsNoCredentials(fmt.Errorf("parse: %w", pnet.ErrNoCredentials)) {
		t.Fatal("wrapped ErrNoCredentials not recognized")
	}
	if pnet.IsNoCredentials(perr.Unauthorizedf("missing bearer token")) {
		t.Fatal("only the sentinel counts")
	}
}
