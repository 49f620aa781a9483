// Package syncclient keeps a local JSON cache of a collection converged with
// the server. Writes apply locally first; the server is mirrored best-effort
// and differences are reconciled by updatedAt last-write-wins on each sync
// cycle.
package syncclient

import "time"

// Record is a synced entity: an opaque id plus the timestamp merges compare.
type Record interface {
	GetID() string
	GetUpdatedAt() time.Time
}

// MergeByTimestamp merges the server's copy of a collection with the local
// one. Every server record seeds the result; a local record survives when
// its id is unknown to the server, and overwrites when its updatedAt is
// strictly later. Equal timestamps keep the server record. Output order is
// server order followed by local-only records in local order, so the merge
// is deterministic and idempotent.
func MergeByTimestamp[T Record](server, local []T) []T {
	merged := make(map[string]T, len(server)+len(local))
	for _, item := range server {
		merged[item.GetID()] = item
	}

	var localOnly []string
	for _, item := range local {
		current, ok := merged[item.GetID()]
		if !ok {
			merged[item.GetID()] = item
			localOnly = append(localOnly, item.GetID())
			continue
		}
		if item.GetUpdatedAt().After(current.GetUpdatedAt()) {
			merged[item.GetID()] = item
		}
	}

	out := make([]T, 0, len(merged))
	seen := make(map[string]bool, len(server))
	for _, item := range server {
		if seen[item.GetID()] {
			continue
		}
		seen[item.GetID()] = true
		out = append(out, merged[item.GetID()])
	}
	for _, id := range localOnly {
		out = append(out, merged[id])
	}
	return out
}
