package repository

import (
	"context"

	"github.com/rs/zerolog"
)

// Fallback decorates a durable repository with an in-memory one. Any error
// from the primary is logged and the identical operation re-issued against
// the fallback, so callers never see a transport failure.
//
// The two stores are never reconciled with each other: a write that lands in
// the fallback stays invisible to the durable store until something external
// re-creates it there. Repeating a create after the durable store recovers
// can therefore duplicate the record unless the caller supplied its own id.
type Fallback[T Entity, I any, P Patch[T]] struct {
	primary  Repository[T, I, P]
	fallback Repository[T, I, P]
	log      zerolog.Logger
}

func WithFallback[T Entity, I any, P Patch[T]](primary, fallback Repository[T, I, P], log zerolog.Logger) *Fallback[T, I, P] {
	return &Fallback[T, I, P]{primary: primary, fallback: fallback, log: log}
}

func (f *Fallback[T, I, P]) warn(op string, err error) {
	f.log.Warn().Err(err).Str("op", op).Msg("database error, using fallback")
}

func (f *Fallback[T, I, P]) Get(ctx context.Context, id string) (*T, error) {
	item, err := f.primary.Get(ctx, id)
	if err != nil {
		f.warn("get", err)
		return f.fallback.Get(ctx, id)
	}
	return item, nil
}

func (f *Fallback[T, I, P]) Create(ctx context.Context, data I) (*T, error) {
	item, err := f.primary.Create(ctx, data)
	if err != nil {
		f.warn("create", err)
		return f.fallback.Create(ctx, data)
	}
	return item, nil
}

func (f *Fallback[T, I, P]) Update(ctx context.Context, id string, patch P) (*T, error) {
	item, err := f.primary.Update(ctx, id, patch)
	if err != nil {
		f.warn("update", err)
		return f.fallback.Update(ctx, id, patch)
	}
	return item, nil
}

func (f *Fallback[T, I, P]) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := f.primary.Delete(ctx, id)
	if err != nil {
		f.warn("delete", err)
		return f.fallback.Delete(ctx, id)
	}
	return ok, nil
}

func (f *Fallback[T, I, P]) List(ctx context.Context) ([]T, error) {
	items, err := f.primary.List(ctx)
	if err != nil {
		f.warn("list", err)
		return f.fallback.List(ctx)
	}
	return items, nil
}
