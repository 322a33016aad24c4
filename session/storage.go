package session

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Fixed storage keys for the persisted snapshots.
const (
	identityKey = "billmate.identity"
	guestKey    = "billmate.guest"
)

// ErrNotFound is returned by Storage.Load when no value exists for a key.
var ErrNotFound = errors.New("session: key not found")

// Storage persists session snapshots between runs.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
	Delete(key string) error
}

// FileStorage keeps one file per key inside a directory, created with
// owner-only permissions since snapshots contain the session token.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		return nil, errors.New("session: storage dir cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the value stored under key.
func (s *FileStorage) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Save writes the value stored under key.
func (s *FileStorage) Save(key string, data []byte) error {
	return os.WriteFile(s.path(key), data, 0o600)
}

// Delete removes the value stored under key. Deleting a missing key is
// not an error.
func (s *FileStorage) Delete(key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStorage is an in-process Storage used by tests and by callers
// that do not want persistence.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

// Load reads the value stored under key.
func (s *MemoryStorage) Load(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

// Save writes the value stored under key.
func (s *MemoryStorage) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), data...)
	return nil
}

// Delete removes the value stored under key.
func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
