// Package service contains persona record workflows
package service

import (
	"context"
	"encoding/json"
	"time"

	"personalab/internal/core/labels"
	"personalab/internal/core/persona"
	"personalab/internal/modkit/repokit"
	perr "personalab/internal/platform/errors"
	pstrings "personalab/internal/platform/strings"
	"personalab/internal/services/api/personas/domain"
	"personalab/internal/services/api/personas/repo"

	"github.com/google/uuid"
)

// DefaultListLimit caps List when Options.ListLimit is unset
const DefaultListLimit = 100

var errUnauthenticated = perr.New(perr.ErrorCodeUnauthorized, "authentication required")

// Service is the public service port
type Service interface{ domain.ServicePort }

// Options control service behavior
type Options struct {
	// Validator defaults to persona.NewValidator()
	Validator *persona.Validator

	// ForkSuffix is appended to the title on a self fork. Empty takes the
	// default label table text
	ForkSuffix string

	// ListLimit caps List results, DefaultListLimit when zero
	ListLimit int

	// Now and NewID are clock and id seams for tests
	Now   func() time.Time
	NewID func() string
}

// Svc implements the service port
type Svc struct {
	repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner

	v      *persona.Validator
	suffix string
	limit  int
	now    func() time.Time
	newID  func() string
}

var _ Service = (*Svc)(nil)

// New constructs the service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if binder == nil {
		panic("personas.Service requires a non nil Repo binder")
	}

	s := &Svc{
		repo:   repokit.MustBind(binder, db),
		binder: binder,
		db:     db,
		v:      opt.Validator,
		suffix: opt.ForkSuffix,
		limit:  opt.ListLimit,
		now:    opt.Now,
		newID:  opt.NewID,
	}
	if s.v == nil {
		s.v = persona.NewValidator()
	}
	if s.suffix == "" {
		s.suffix = labels.Default().Text(labels.ForkSuffix)
	}
	if s.limit <= 0 {
		s.limit = DefaultListLimit
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.NewString() }
	}
	return s
}

// Create validates and stores a new record owned by caller
func (s *Svc) Create(ctx context.Context, caller domain.Caller, in persona.Payload) (persona.Record, error) {
	if caller.Anonymous() {
		return persona.Record{}, errUnauthenticated
	}
	p, err := s.v.Payload(in)
	if err != nil {
		return persona.Record{}, err
	}
	data, err := json.Marshal(p.Data)
	if err != nil {
		return persona.Record{}, perr.Wrap(err, perr.ErrorCodeUnknown, "encode persona data")
	}

	now := s.stamp()
	row := repo.Row{
		ID:              s.newID(),
		UserID:          caller.UserID,
		AuthorName:      pstrings.Ptr(caller.Author()),
		Title:           p.Title,
		Locale:          p.Locale,
		IsPublic:        p.Public(),
		SourcePersonaID: p.SourcePersonaID,
		Data:            data,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Insert(ctx, row); err != nil {
		return persona.Record{}, err
	}
	return record(row, p.Data), nil
}

// Get loads a record of any visibility. Stored data is checked again on the
// way out
func (s *Svc) Get(ctx context.Context, id string) (persona.Record, error) {
	row, err := s.repo.Get(ctx, id)
	if err != nil {
		return persona.Record{}, err
	}
	return s.decode(row)
}

// Update replaces a record the caller owns. Ownership is settled before the
// payload is looked at
func (s *Svc) Update(ctx context.Context, id string, caller domain.Caller, in persona.Payload) (persona.Record, error) {
	if caller.Anonymous() {
		return persona.Record{}, errUnauthenticated
	}

	var out persona.Record
	err := repokit.WithTx(ctx, s.db, s.binder, func(r repo.Repo) error {
		cur, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		if cur.UserID != caller.UserID {
			return perr.WithField(perr.Forbiddenf("only the owner can edit this persona, fork it instead"), "id")
		}

		p, err := s.v.Payload(in)
		if err != nil {
			return err
		}
		data, err := json.Marshal(p.Data)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeUnknown, "encode persona data")
		}

		next := cur
		next.Title = p.Title
		next.Locale = p.Locale
		next.IsPublic = p.Public()
		next.Data = data
		next.UpdatedAt = s.stamp()
		if p.SourcePersonaID != nil {
			next.SourcePersonaID = p.SourcePersonaID
		}
		if err := r.Update(ctx, next); err != nil {
			return err
		}
		out = record(next, p.Data)
		return nil
	})
	return out, err
}

// Delete hard deletes a record the caller owns
func (s *Svc) Delete(ctx context.Context, id string, caller domain.Caller) error {
	if caller.Anonymous() {
		return errUnauthenticated
	}
	return repokit.WithTx(ctx, s.db, s.binder, func(r repo.Repo) error {
		cur, err := r.Get(ctx, id)
		if err != nil {
			return err
		}
		if cur.UserID != caller.UserID {
			return perr.WithField(perr.Forbiddenf("only the owner can delete this persona"), "id")
		}
		return r.Delete(ctx, id)
	})
}

// Fork copies a record into a new private one owned by caller. The document
// is copied as stored, without another validation pass. Only a self fork
// gets the title suffix
func (s *Svc) Fork(ctx context.Context, id string, caller domain.Caller) (persona.Record, error) {
	if caller.Anonymous() {
		return persona.Record{}, errUnauthenticated
	}
	src, err := s.repo.Get(ctx, id)
	if err != nil {
		return persona.Record{}, err
	}
	var d persona.Data
	if err := json.Unmarshal(src.Data, &d); err != nil {
		return persona.Record{}, perr.Wrapf(err, perr.ErrorCodeDB, "stored persona %s is unreadable", src.ID)
	}

	title := src.Title
	if src.UserID == caller.UserID {
		title += s.suffix
	}
	now := s.stamp()
	sourceID := src.ID
	row := repo.Row{
		ID:              s.newID(),
		UserID:          caller.UserID,
		AuthorName:      pstrings.Ptr(caller.Author()),
		Title:           title,
		Locale:          src.Locale,
		IsPublic:        false,
		SourcePersonaID: &sourceID,
		Data:            src.Data,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Insert(ctx, row); err != nil {
		return persona.Record{}, err
	}
	return record(row, d), nil
}

// List returns the records visible under scope, most recently updated first
func (s *Svc) List(ctx context.Context, scope domain.Scope, caller domain.Caller) ([]persona.Record, error) {
	switch scope {
	case domain.ScopeMine:
		if caller.Anonymous() {
			return nil, errUnauthenticated
		}
	case domain.ScopeCommunity, domain.ScopeAll:
	case "":
		scope = domain.ScopeAll
	default:
		return nil, perr.WithField(perr.InvalidArgf("unknown scope %q", scope), "scope")
	}

	rows, err := s.repo.List(ctx, repo.Filter{Scope: scope, UserID: caller.UserID, Limit: s.limit})
	if err != nil {
		return nil, err
	}
	out := make([]persona.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := s.decode(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// Validate checks a payload without storing it. applyDefaults fills the
// gaps a quick entry form leaves before checking
func (s *Svc) Validate(_ context.Context, in persona.Payload, applyDefaults bool) (persona.Payload, error) {
	if applyDefaults {
		persona.ApplyDefaults(&in.Data)
	}
	return s.v.Payload(in)
}

// decode turns a stored row into a record, failing as a store error when the
// document no longer passes validation
func (s *Svc) decode(row repo.Row) (persona.Record, error) {
	var d persona.Data
	if err := json.Unmarshal(row.Data, &d); err != nil {
		return persona.Record{}, perr.Wrapf(err, perr.ErrorCodeDB, "stored persona %s is unreadable", row.ID)
	}
	d, err := s.v.Data(d)
	if err != nil {
		return persona.Record{}, perr.Wrapf(err, perr.ErrorCodeDB, "stored persona %s is invalid", row.ID)
	}
	return record(row, d), nil
}

// stamp is now at the precision every store keeps
func (s *Svc) stamp() time.Time { return s.now().UTC().Truncate(time.Microsecond) }

func record(row repo.Row, d persona.Data) persona.Record {
	return persona.Record{
		ID:              row.ID,
		UserID:          row.UserID,
		AuthorName:      row.AuthorName,
		Title:           row.Title,
		Locale:          row.Locale,
		IsPublic:        row.IsPublic,
		SourcePersonaID: row.SourcePersonaID,
		Data:            d,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}
