// Package export renders a persona record into downloadable artifacts
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"personalab/internal/core/labels"
	"personalab/internal/core/persona"
	"personalab/internal/core/render/markdown"
	"personalab/internal/core/render/pdf"
	perr "personalab/internal/platform/errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

// Artifact is one rendered file
type Artifact struct {
	Format      Format `json:"format"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Observer receives render telemetry. Implementations must be safe for concurrent use
type Observer interface {
	Rendered(f Format, took time.Duration, size int, err error)
	CacheHit(f Format)
}

// Event describes one delivered artifact
type Event struct {
	PersonaID string
	OwnerID   string
	Format    Format
	Bytes     int
	Took      time.Duration
	At        time.Time
}

// Auditor records delivered artifacts. It must not block the caller and never
// fails an export
type Auditor interface {
	Exported(ctx context.Context, ev Event)
}

// Exporter renders records. It is safe for concurrent use
type Exporter struct {
	labels labels.Table
	cache  *lru.Cache[string, Artifact]
	obs    Observer
	audit  Auditor
	now    func() time.Time
}

// Option configures an Exporter
type Option func(*Exporter) error

// WithLabels sets the label table handed to the renderers
func WithLabels(t labels.Table) Option {
	return func(e *Exporter) error { e.labels = t; return nil }
}

// WithCache keeps up to size rendered artifacts. 0 disables caching
func WithCache(size int) Option {
	return func(e *Exporter) error {
		if size <= 0 {
			e.cache = nil
			return nil
		}
		c, err := lru.New[string, Artifact](size)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "export: create cache")
		}
		e.cache = c
		return nil
	}
}

// WithObserver sets the telemetry sink
func WithObserver(o Observer) Option {
	return func(e *Exporter) error { e.obs = o; return nil }
}

// WithAuditor sets the delivery log
func WithAuditor(a Auditor) Option {
	return func(e *Exporter) error { e.audit = a; return nil }
}

// New builds an Exporter with English labels and no cache
func New(opts ...Option) (*Exporter, error) {
	e := &Exporter{labels: labels.Default(), now: time.Now}
	for _, o := range opts {
		if err := o(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// One renders a single artifact
func (e *Exporter) One(ctx context.Context, rec persona.Record, f Format) (Artifact, error) {
	if !f.Valid() {
		return Artifact{}, perr.InvalidArgf("unknown export format %q", f)
	}
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}

	key := cacheKey(rec, f)
	if e.cache != nil && key != "" {
		if a, ok := e.cache.Get(key); ok {
			if e.obs != nil {
				e.obs.CacheHit(f)
			}
			a.Body = bytes.Clone(a.Body)
			e.record(ctx, rec, a, 0)
			return a, nil
		}
	}

	start := e.now()
	body, err := e.render(rec, f)
	took := e.now().Sub(start)
	if e.obs != nil {
		e.obs.Rendered(f, took, len(body), err)
	}
	if err != nil {
		return Artifact{}, perr.WithOp(err, "export."+string(f))
	}

	a := Artifact{
		Format:      f,
		Filename:    f.Filename(rec.Title),
		ContentType: f.ContentType(),
		Body:        body,
	}
	if e.cache != nil && key != "" {
		e.cache.Add(key, Artifact{Format: a.Format, Filename: a.Filename, ContentType: a.ContentType, Body: bytes.Clone(body)})
	}
	e.record(ctx, rec, a, took)
	return a, nil
}

// All renders every format concurrently, returned in Formats order
func (e *Exporter) All(ctx context.Context, rec persona.Record) ([]Artifact, error) {
	return e.Some(ctx, rec, Formats...)
}

// Some renders the given formats concurrently, returned in the order asked.
// The first failure cancels the rest
func (e *Exporter) Some(ctx context.Context, rec persona.Record, formats ...Format) ([]Artifact, error) {
	for _, f := range formats {
		if !f.Valid() {
			return nil, perr.InvalidArgf("unknown export format %q", f)
		}
	}
	out := make([]Artifact, len(formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		g.Go(func() error {
			a, err := e.One(gctx, rec, f)
			if err != nil {
				return err
			}
			out[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Exporter) render(rec persona.Record, f Format) ([]byte, error) {
	switch f {
	case PDFExecutive, PDFDetailed:
		layout := pdf.Executive
		if f == PDFDetailed {
			layout = pdf.Detailed
		}
		author := ""
		if rec.AuthorName != nil {
			author = *rec.AuthorName
		}
		return pdf.Render(pdf.Document{
			Title:      rec.Title,
			Data:       rec.Data,
			AuthorName: author,
			CreatedAt:  rec.CreatedAt,
		}, layout, pdf.WithLabels(e.labels))
	case Markdown:
		return []byte(markdown.Render(rec.Title, rec.Data, markdown.WithLabels(e.labels))), nil
	case JSON:
		b, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeJSON, "export: encode record")
		}
		return b, nil
	}
	return nil, perr.InvalidArgf("unknown export format %q", f)
}

func (e *Exporter) record(ctx context.Context, rec persona.Record, a Artifact, took time.Duration) {
	if e.audit == nil || rec.ID == "" {
		return
	}
	e.audit.Exported(ctx, Event{
		PersonaID: rec.ID,
		OwnerID:   rec.UserID,
		Format:    a.Format,
		Bytes:     len(a.Body),
		Took:      took,
		At:        e.now().UTC(),
	})
}

// records without an id never hit the cache
func cacheKey(rec persona.Record, f Format) string {
	if rec.ID == "" {
		return ""
	}
	return rec.ID + "|" + rec.UpdatedAt.UTC().Format(time.RFC3339Nano) + "|" + string(f)
}
