package repokit

import (
	"context"
	"fmt"
	"time"
)

// Guarder is anything that can check its backends, such as *store.Store
type Guarder interface {
	Guard(context.Context) error
}

// MustGuard runs Guard with a 5s budget and panics on any error.
// used at service startup so a dead store stops the process early
func MustGuard(ctx context.Context, st Guarder) {
	if st == nil {
		panic("repokit: nil store")
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
