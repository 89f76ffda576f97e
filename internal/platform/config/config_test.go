package config

import (
	"testing"
	"time"

	kit "personalab/internal/platform/testkit"
)

func TestKeyPrefixes(t *testing.T) {
	c := New().Prefix("PERSONALAB_").Prefix("EXPORT_")
	if got := c.Key("CACHE_SIZE"); got != "PERSONALAB_EXPORT_CACHE_SIZE" {
		t.Fatalf("Key = %q", got)
	}
}

func TestMustStringAndRequire(t *testing.T) {
	c := New().Prefix("T1_")
	t.Setenv("T1_JWT_SECRET", "  s3cret ")

	if got := c.MustString("JWT_SECRET"); got != "s3cret" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { c.MustString("MISSING") })
	kit.MustPanic(t, func() { c.Require("JWT_SECRET", "MISSING") })
	kit.MustNotPanic(t, func() { c.Require("JWT_SECRET") })
}

func TestMayRawKeepsWhitespace(t *testing.T) {
	c := New().Prefix("T5_")
	t.Setenv("T5_SUFFIX", " (fork)")
	t.Setenv("T5_EMPTY", "")

	if got := c.MayRaw("SUFFIX", "x"); got != " (fork)" {
		t.Fatalf("MayRaw = %q", got)
	}
	if got := c.MayString("SUFFIX", "x"); got != "(fork)" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayRaw("EMPTY", "def"); got != "def" {
		t.Fatalf("MayRaw empty = %q", got)
	}
	if got := c.MayRaw("UNSET", "def"); got != "def" {
		t.Fatalf("MayRaw unset = %q", got)
	}
}

func TestMayValues(t *testing.T) {
	c := New().Prefix("T2_")
	t.Setenv("T2_LIST_LIMIT", "50")
	t.Setenv("T2_BAD_INT", "fifty")
	t.Setenv("T2_SWAGGER", "true")
	t.Setenv("T2_BAD_BOOL", "maybe")
	t.Setenv("T2_TIMEOUT", "250ms")
	t.Setenv("T2_BAD_DUR", "soon")
	t.Setenv("T2_ORIGINS", " https://a.example , ,https://b.example ")
	t.Setenv("T2_EMPTY_CSV", " , ")

	cases := []struct {
		name string
		got  any
		want any
	}{
		{"string default", c.MayString("MISSING", "def"), "def"},
		{"int", c.MayInt("LIST_LIMIT", 100), 50},
		{"bad int", c.MayInt("BAD_INT", 100), 100},
		{"bool", c.MayBool("SWAGGER", false), true},
		{"bad bool", c.MayBool("BAD_BOOL", false), false},
		{"duration", c.MayDuration("TIMEOUT", time.Second), 250 * time.Millisecond},
		{"bad duration", c.MayDuration("BAD_DUR", time.Second), time.Second},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: got %v, want %v", tc.name, tc.got, tc.want)
		}
	}

	origins := c.MayCSV("ORIGINS", nil)
	if len(origins) != 2 || origins[1] != "https://b.example" {
		t.Fatalf("MayCSV = %v", origins)
	}
	if got := c.MayCSV("EMPTY_CSV", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV default = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("T3_")
	t.Setenv("T3_STORE_DRIVER", "SQLite")
	t.Setenv("T3_BAD", "mysql")

	if got := c.MayEnum("STORE_DRIVER", "pg", "pg", "sqlite"); got != "sqlite" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("MISSING", "pg", "pg", "sqlite"); got != "pg" {
		t.Fatalf("MayEnum default = %q", got)
	}
	kit.MustPanic(t, func() { c.MayEnum("BAD", "pg", "pg", "sqlite") })
}

func TestMayAddr(t *testing.T) {
	c := New().Prefix("T4_")
	t.Setenv("T4_PORT", "8080")
	t.Setenv("T4_ADDR", "127.0.0.1:9000")

	if got := c.MayAddr("PORT", ":4000"); got != ":8080" {
		t.Fatalf("bare port = %q", got)
	}
	if got := c.MayAddr("ADDR", ":4000"); got != "127.0.0.1:9000" {
		t.Fatalf("host:port = %q", got)
	}
	if got := c.MayAddr("MISSING", ":4000"); got != ":4000" {
		t.Fatalf("default = %q", got)
	}
}
