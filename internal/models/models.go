package models

import "github.com/google/uuid"

// orNewID keeps a client-supplied id (its idempotency key) and mints one
// otherwise. IDs are assigned once at creation and never reassigned.
func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

// emptyIfNil normalizes absent list fields to empty lists so they serialize
// as [] rather than null.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
