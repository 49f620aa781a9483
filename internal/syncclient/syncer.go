package syncclient

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Syncer reconciles one collection between the local store and the server.
// The local copy is the source of truth for what the user sees: writes land
// there first and the server is mirrored best-effort.
type Syncer[T Record] struct {
	api   *APIClient[T]
	store *LocalStore
	key   string
	group singleflight.Group
	log   zerolog.Logger
}

func NewSyncer[T Record](api *APIClient[T], store *LocalStore, key string, log zerolog.Logger) *Syncer[T] {
	return &Syncer[T]{
		api:   api,
		store: store,
		key:   key,
		log:   log.With().Str("collection", key).Logger(),
	}
}

// Sync runs one reconciliation cycle and returns the merged collection.
// Concurrent callers share a single in-flight cycle instead of starting a
// redundant one.
func (s *Syncer[T]) Sync(ctx context.Context) ([]T, error) {
	v, err, _ := s.group.Do(s.key, func() (any, error) {
		return s.syncOnce(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

func (s *Syncer[T]) syncOnce(ctx context.Context) ([]T, error) {
	local, err := LoadCollection[T](s.store, s.key)
	if err != nil {
		return nil, err
	}

	server, err := s.api.List(ctx)
	if err != nil {
		// Offline or server down: the local copy is the answer. The next
		// cycle retries.
		s.log.Warn().Err(err).Msg("sync failed, using local copy")
		return local, nil
	}

	merged := MergeByTimestamp(server, local)
	if err := SaveCollection(s.store, s.key, merged); err != nil {
		return nil, err
	}

	s.pushToServer(ctx, merged, server)
	return merged, nil
}

// pushToServer propagates local-only records (POST) and local-newer records
// (PUT). Each push is best-effort; failures wait for the next cycle.
func (s *Syncer[T]) pushToServer(ctx context.Context, merged, server []T) {
	serverMap := make(map[string]T, len(server))
	for _, item := range server {
		serverMap[item.GetID()] = item
	}

	for _, item := range merged {
		current, ok := serverMap[item.GetID()]
		if !ok {
			if err := s.api.Create(ctx, item); err != nil {
				s.log.Warn().Err(err).Str("id", item.GetID()).Msg("failed to create on server, will retry next sync")
			}
			continue
		}
		if item.GetUpdatedAt().After(current.GetUpdatedAt()) {
			if err := s.api.Update(ctx, item.GetID(), item); err != nil {
				s.log.Warn().Err(err).Str("id", item.GetID()).Msg("failed to update on server, will retry next sync")
			}
		}
	}
}

// Run re-syncs on a fixed interval until the context is cancelled.
func (s *Syncer[T]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sync(ctx); err != nil {
				s.log.Warn().Err(err).Msg("sync cycle failed")
			}
		}
	}
}

// Create appends the record locally and mirrors it to the server
// best-effort. The caller builds the full record (id, timestamps) so the
// create is replay-safe against the server.
func (s *Syncer[T]) Create(ctx context.Context, item T) error {
	local, err := LoadCollection[T](s.store, s.key)
	if err != nil {
		return err
	}
	local = append(local, item)
	if err := SaveCollection(s.store, s.key, local); err != nil {
		return err
	}

	if err := s.api.Create(ctx, item); err != nil {
		s.log.Warn().Err(err).Str("id", item.GetID()).Msg("saved locally, will sync to server later")
	}
	return nil
}

// Update replaces the record locally by id and mirrors it best-effort.
func (s *Syncer[T]) Update(ctx context.Context, item T) error {
	local, err := LoadCollection[T](s.store, s.key)
	if err != nil {
		return err
	}
	replaced := false
	for i := range local {
		if local[i].GetID() == item.GetID() {
			local[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		local = append(local, item)
	}
	if err := SaveCollection(s.store, s.key, local); err != nil {
		return err
	}

	if err := s.api.Update(ctx, item.GetID(), item); err != nil {
		s.log.Warn().Err(err).Str("id", item.GetID()).Msg("saved locally, will sync to server later")
	}
	return nil
}

// Delete removes the record locally and mirrors the delete best-effort.
func (s *Syncer[T]) Delete(ctx context.Context, id string) error {
	local, err := LoadCollection[T](s.store, s.key)
	if err != nil {
		return err
	}
	filtered := local[:0]
	for _, item := range local {
		if item.GetID() != id {
			filtered = append(filtered, item)
		}
	}
	if err := SaveCollection(s.store, s.key, filtered); err != nil {
		return err
	}

	if err := s.api.Delete(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("deleted locally, will sync to server later")
	}
	return nil
}
