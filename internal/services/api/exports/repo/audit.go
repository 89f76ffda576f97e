// Package repo records delivered exports in the ClickHouse audit table
package repo

import (
	"context"
	"sync"
	"time"

	"personalab/internal/core/export"
	"personalab/internal/platform/logger"
	pnet "personalab/internal/platform/net"
	"personalab/internal/platform/store"
)

// Table is the audit table name
const Table = "persona_exports"

const ddl = `
CREATE TABLE IF NOT EXISTS ` + Table + ` (
    persona_id  String,
    format      LowCardinality(String),
    bytes       UInt64,
    duration_ms UInt32,
    user_id     String,
    at          DateTime64(3, 'UTC')
)
ENGINE = MergeTree
ORDER BY (persona_id, at)`

// Audit is an export.Auditor writing one row per delivered artifact.
// Writes run in the background and failures are only logged
type Audit struct {
	ch      store.Clickhouse
	timeout time.Duration
	wg      sync.WaitGroup
}

var _ export.Auditor = (*Audit)(nil)

// NewAudit returns an auditor over ch, nil when ch is nil so callers can pass
// the result straight to export.WithAuditor
func NewAudit(ch store.Clickhouse) *Audit {
	if ch == nil {
		return nil
	}
	return &Audit{ch: ch, timeout: 5 * time.Second}
}

// Migrate creates the audit table when missing
func (a *Audit) Migrate(ctx context.Context) error {
	return a.ch.Exec(ctx, ddl)
}

// Exported implements export.Auditor. user_id is the requester, empty for
// anonymous downloads
func (a *Audit) Exported(ctx context.Context, ev export.Event) {
	if a == nil {
		return
	}
	row := []any{
		ev.PersonaID,
		string(ev.Format),
		uint64(ev.Bytes),
		uint32(ev.Took.Milliseconds()),
		pnet.UserID(ctx),
		ev.At.UTC(),
	}
	// the request may finish before the write does
	bg := context.WithoutCancel(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		wctx, cancel := context.WithTimeout(bg, a.timeout)
		defer cancel()
		if err := a.ch.Insert(wctx, Table, [][]any{row}); err != nil {
			logger.C(bg).Warn().Err(err).Str("persona_id", ev.PersonaID).Str("format", string(ev.Format)).
				Msg("export audit write failed")
		}
	}()
}

// Wait blocks until pending writes finish. Used on shutdown and in tests
func (a *Audit) Wait() {
	if a != nil {
		a.wg.Wait()
	}
}
