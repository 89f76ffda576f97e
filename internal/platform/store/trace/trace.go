// Package trace logs SQL statements issued through the store adapters
package trace

import (
	"context"
	"strings"

	"personalab/internal/platform/logger"

	"github.com/rs/zerolog"
)

// Event is one finished statement
type Event struct {
	Driver    string
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// Tracer receives statement events
type Tracer interface {
	OnQuery(ctx context.Context, ev Event)
}

// Zerolog returns a tracer that prints every statement when SQL logging is
// on, independent of the root level. Slow statements log at warn
func Zerolog(root logger.Logger) Tracer {
	return &zlTracer{log: root.Level(zerolog.DebugLevel).With().Str("component", "sql").Logger()}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(ctx context.Context, ev Event) {
	evt := z.log.Info()
	if ev.Slow {
		evt = z.log.Warn()
	}
	evt.Ctx(ctx).
		Str("driver", ev.Driver).
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg("sql query")
}

// Tee fans one event out to every tracer in order
func Tee(ts ...Tracer) Tracer { return tee(ts) }

type tee []Tracer

func (t tee) OnQuery(ctx context.Context, ev Event) {
	for _, x := range t {
		x.OnQuery(ctx, ev)
	}
}

// Slow reports whether elapsedUS reaches the threshold. A negative threshold
// disables slow marking
func Slow(elapsedUS int64, thresholdMs int) bool {
	return thresholdMs >= 0 && elapsedUS >= int64(thresholdMs)*1000
}

// compact folds runs of whitespace into one space
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
