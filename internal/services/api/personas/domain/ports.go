package domain

import (
	"context"

	"personalab/internal/core/persona"
)

// ServicePort is the interface implemented by the personas service
type ServicePort interface {
	Create(ctx context.Context, caller Caller, in persona.Payload) (persona.Record, error)
	Get(ctx context.Context, id string) (persona.Record, error)
	Update(ctx context.Context, id string, caller Caller, in persona.Payload) (persona.Record, error)
	Delete(ctx context.Context, id string, caller Caller) error
	Fork(ctx context.Context, id string, caller Caller) (persona.Record, error)
	List(ctx context.Context, scope Scope, caller Caller) ([]persona.Record, error)
	Validate(ctx context.Context, in persona.Payload, applyDefaults bool) (persona.Payload, error)
}

// Reader is the port other modules use to load a record
type Reader interface {
	Get(ctx context.Context, id string) (persona.Record, error)
}
