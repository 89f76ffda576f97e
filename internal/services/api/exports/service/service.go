// Package service renders stored persona records into downloads
package service

import (
	"context"

	"personalab/internal/core/export"
	perr "personalab/internal/platform/errors"
	"personalab/internal/services/api/exports/domain"
	pdomain "personalab/internal/services/api/personas/domain"
)

// Service is the public service port
type Service interface{ domain.ServicePort }

// Svc loads records through the personas reader and renders them
type Svc struct {
	reader pdomain.Reader
	exp    *export.Exporter
}

var _ Service = (*Svc)(nil)

// New constructs the service
func New(reader pdomain.Reader, exp *export.Exporter) *Svc {
	if reader == nil {
		panic("exports.Service requires a non nil personas Reader")
	}
	if exp == nil {
		panic("exports.Service requires a non nil Exporter")
	}
	return &Svc{reader: reader, exp: exp}
}

// All renders every format of record id
func (s *Svc) All(ctx context.Context, id string) ([]export.Artifact, error) {
	rec, err := s.reader.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.exp.All(ctx, rec)
}

// One renders a single format of record id. The format is checked before the
// record is loaded
func (s *Svc) One(ctx context.Context, id string, f export.Format) (export.Artifact, error) {
	if !f.Valid() {
		return export.Artifact{}, perr.WithField(perr.InvalidArgf("unknown export format %q", f), "format")
	}
	rec, err := s.reader.Get(ctx, id)
	if err != nil {
		return export.Artifact{}, err
	}
	return s.exp.One(ctx, rec, f)
}
