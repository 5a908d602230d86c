package client

import (
	"encoding/json"
	"os"
	"sync"
)

// FavoriteStore persists the favorites set in full. It is the local-storage
// analogue: the whole set is rewritten on every change.
type FavoriteStore interface {
	Load() ([]string, error)
	Save(ids []string) error
}

// FileStore keeps favorites as a JSON array in a single local file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted set; a missing file is an empty set, not an
// error.
func (s *FileStore) Load() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *FileStore) Save(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
