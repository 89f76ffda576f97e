package modkit

import (
	"testing"

	"personalab/internal/modkit/repokit"
	"personalab/internal/platform/config"
	"personalab/internal/platform/store"
)

func TestDeps_ZeroValue_IsOK(t *testing.T) {
	t.Parallel()
	var d Deps
	if !d.ZeroOK() {
		t.Fatal("zero-value Deps should be safe in tests (ZeroOK == true)")
	}
}

func TestDeps_FromStore(t *testing.T) {
	t.Parallel()

	base := Deps{Cfg: config.New().Prefix("PERSONALAB_")}
	if got := base.FromStore(nil); got.SQL != nil || got.Dialect != "" {
		t.Fatalf("nil store should leave deps untouched, got %+v", got)
	}

	got := base.FromStore(&store.Store{Driver: store.DriverPG})
	if got.Dialect != repokit.DialectPG {
		t.Fatalf("Dialect = %q, want pg", got.Dialect)
	}
	if got.Cfg.Key("X") != "PERSONALAB_X" {
		t.Fatal("FromStore dropped the config view")
	}
}
