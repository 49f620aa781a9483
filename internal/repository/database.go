package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Database is the durable backend. Each operation issues one round trip to
// the store and returns its error untouched; the fallback wrapper decides
// what to do with failures.
type Database[T Entity, I any, P Patch[T]] struct {
	db      *gorm.DB
	prepare func(I) T
}

// NewDatabase creates a GORM-backed repository. prepare builds a stored
// record from an insert payload; it runs app-side so id assignment and
// timestamp stamping behave identically to the memory backend.
func NewDatabase[T Entity, I any, P Patch[T]](db *gorm.DB, prepare func(I) T) *Database[T, I, P] {
	return &Database[T, I, P]{db: db, prepare: prepare}
}

func (r *Database[T, I, P]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Database[T, I, P]) Create(ctx context.Context, data I) (*T, error) {
	item := r.prepare(data)
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Database[T, I, P]) Update(ctx context.Context, id string, patch P) (*T, error) {
	var item T
	tx := r.db.WithContext(ctx).Model(&item).Where("id = ?", id).Updates(patch.Changes())
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Database[T, I, P]) Delete(ctx context.Context, id string) (bool, error) {
	var item T
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&item)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *Database[T, I, P]) List(ctx context.Context) ([]T, error) {
	items := []T{}
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
