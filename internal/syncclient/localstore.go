package syncclient

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage keys, one per synced collection. Records under a key hold exactly
// the REST response shape, so they move between local and server storage
// without transformation.
const (
	ProjectsKey   = "brick-projects"
	CallSheetsKey = "brick-call-sheets"
	TemplatesKey  = "brick-templates"
)

// LocalStore persists one JSON array per collection key in a directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// LoadCollection reads a collection; a missing file is an empty collection.
func LoadCollection[T any](s *LocalStore, key string) ([]T, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveCollection writes a collection atomically (temp file plus rename), so
// a crash mid-write never leaves a truncated cache.
func SaveCollection[T any](s *LocalStore, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}
