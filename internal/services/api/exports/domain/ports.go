// Package domain holds the export service contract
package domain

import (
	"context"

	"personalab/internal/core/export"
)

// ServicePort is the interface implemented by the exports service
type ServicePort interface {
	All(ctx context.Context, id string) ([]export.Artifact, error)
	One(ctx context.Context, id string, f export.Format) (export.Artifact, error)
}
