package service

import (
	"context"
	"encoding/json"
	"slices"
	"sort"
	"sync"
	"testing"

	"personalab/internal/modkit/repokit"
	perr "personalab/internal/platform/errors"
	"personalab/internal/services/api/personas/domain"
	"personalab/internal/services/api/personas/repo"
)

// fakeRepo is an in-memory repo that records every call by name
type fakeRepo struct {
	mu    sync.Mutex
	rows  map[string]repo.Row
	calls []string
}

func newFakeRepo() *fakeRepo { return &fakeRepo{rows: map[string]repo.Row{}} }

func (f *fakeRepo) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeRepo) mutated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == "insert" || c == "update" || c == "delete" {
			return true
		}
	}
	return false
}

func (f *fakeRepo) put(row repo.Row) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[row.ID] = row
}

func (f *fakeRepo) Insert(_ context.Context, row repo.Row) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("insert")
	if _, ok := f.rows[row.ID]; ok {
		return perr.Conflictf("duplicate id %s", row.ID)
	}
	f.rows[row.ID] = row
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (repo.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("get")
	row, ok := f.rows[id]
	if !ok {
		return repo.Row{}, perr.NotFoundf("persona not found")
	}
	return row, nil
}

func (f *fakeRepo) Update(_ context.Context, row repo.Row) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("update")
	if _, ok := f.rows[row.ID]; !ok {
		return perr.NotFoundf("persona not found")
	}
	f.rows[row.ID] = row
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete")
	if _, ok := f.rows[id]; !ok {
		return perr.NotFoundf("persona not found")
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeRepo) List(_ context.Context, flt repo.Filter) ([]repo.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("list")
	out := []repo.Row{}
	for _, row := range f.rows {
		switch {
		case flt.Scope == domain.ScopeMine:
			if row.UserID != flt.UserID {
				continue
			}
		case flt.Scope == domain.ScopeAll && flt.UserID != "":
			if !row.IsPublic && row.UserID != flt.UserID {
				continue
			}
		default:
			if !row.IsPublic {
				continue
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	if len(out) > flt.Limit {
		out = out[:flt.Limit]
	}
	return out, nil
}

func (f *fakeRepo) callsSnapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// fakeTx runs transactions straight through, the binder ignores the Queryer
type fakeTx struct{ repokit.TxRunner }

func (fakeTx) Tx(_ context.Context, fn func(q repokit.Queryer) error) error { return fn(nil) }

func binderFor(f *fakeRepo) repokit.Binder[repo.Repo] {
	return repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return f })
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}
