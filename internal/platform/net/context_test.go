package net_test

import (
	"context"
	"testing"

	pnet "personalab/internal/platform/net"
)

func TestWithRequest(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequest(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want %q", got, "req-123")
	}

	if ctx := pnet.WithRequest(base, ""); ctx != base {
		t.Fatalf("expected ctx to be unchanged for an empty id")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID got %q want empty", got)
	}
}

func TestWithIdentity(t *testing.T) {
	base := context.Background()

	t.Run("round trip", func(t *testing.T) {
		in := pnet.Identity{UserID: "u1", Email: "ana@example.com", Name: "Ana"}
		ctx := pnet.WithIdentity(base, in)

		got, ok := pnet.IdentityFrom(ctx)
		if !ok || got != in {
			t.Fatalf("IdentityFrom got %+v, %v", got, ok)
		}
		if pnet.UserID(ctx) != "u1" {
			t.Fatalf("UserID mismatch")
		}
	})

	t.Run("anonymous identity is ignored", func(t *testing.T) {
		ctx := pnet.WithIdentity(base, pnet.Identity{Email: "x@example.com"})
		if ctx != base {
			t.Fatalf("expected ctx unchanged")
		}
		if _, ok := pnet.IdentityFrom(ctx); ok {
			t.Fatalf("expected no identity")
		}
		if pnet.UserID(ctx) != "" {
			t.Fatalf("expected empty user id")
		}
	})
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		in   pnet.Identity
		want string
	}{
		{pnet.Identity{UserID: "u", Name: "Ana", Email: "a@x"}, "Ana"},
		{pnet.Identity{UserID: "u", Email: "a@x"}, "a@x"},
		{pnet.Identity{UserID: "u"}, ""},
	}
	for _, c := range cases {
		if got := c.in.DisplayName(); got != c.want {
			t.Fatalf("DisplayName(%+v) = %q want %q", c.in, got, c.want)
		}
	}
}
