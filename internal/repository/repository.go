// Package repository provides the generic CRUD contract shared by the
// durable (GORM) backend and the in-memory backend, plus the fallback
// wrapper that degrades from one to the other.
package repository

import "context"

// Entity is any top-level record identified by an opaque string id.
type Entity interface {
	GetID() string
}

// Patch is a typed partial update for T. Changes builds the column map the
// durable backend writes; Apply mutates an in-memory record. Both stamp a
// fresh updatedAt.
type Patch[T any] interface {
	Changes() map[string]any
	Apply(*T)
}

// Repository is the CRUD contract over one entity type. Not-found is a
// normal outcome, not an error: Get and Update report it as (nil, nil),
// Delete as (false, nil). Errors are reserved for transport and store
// failures.
type Repository[T Entity, I any, P Patch[T]] interface {
	Get(ctx context.Context, id string) (*T, error)

	// Create assigns an id if the payload lacks one, stamps timestamps and
	// entity defaults, persists, and returns the stored record.
	Create(ctx context.Context, data I) (*T, error)

	// Update merges the patch onto the existing record and stamps a fresh
	// updatedAt.
	Update(ctx context.Context, id string, patch P) (*T, error)

	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// List returns all records. Order is insertion order for the memory
	// backend and store-defined for the durable backend.
	List(ctx context.Context) ([]T, error)
}
