package testkit

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPanicHelpers(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() { panic("boom") })
	MustNotPanic(t, func() {})
}

func TestContainHelpers(t *testing.T) {
	t.Parallel()

	MustContain(t, "# Title\n## Goals", "## Goals")
	MustNotContain(t, "# Title", "## Goals")
}

func TestMustReadJSON(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(p, []byte(`{"title":"Ana"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	got := MustReadJSON[map[string]string](t, p)
	if got["title"] != "Ana" {
		t.Fatalf("got %v", got)
	}
}

var clock = func() string { return "real" }

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Serial(t)
		Swap(t, &clock, func() string { return "fake" })
		if clock() != "fake" {
			t.Fatalf("swap not applied")
		}
	})
	if clock() != "real" {
		t.Fatalf("swap not restored")
	}
}
