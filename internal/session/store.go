// Package session holds the client's only durable local state: the persisted
// bearer tokens and identity snapshots for the storefront and admin scopes,
// plus the in-memory session holders built on top of them. Everything else
// the application shows is a transient snapshot of server state.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/lmoreno/toyhaven/internal/api"
	"github.com/lmoreno/toyhaven/internal/errors"
)

// Persisted credential keys. The storefront and admin consoles use separate
// keys so one can be logged out without touching the other.
const (
	KeyToken      = "token"
	KeyUser       = "user"
	KeyAdminToken = "admin_token"
	KeyAdmin      = "admin"
)

// Store is a file-backed credential store. Each key maps to a file in the
// state directory; writes are atomic so a crash mid-save never leaves a
// half-written token behind.
type Store struct {
	baseDir string
	mu      sync.RWMutex
}

// NewStore creates a Store rooted at the given directory, creating it if
// needed.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Get returns the value stored under key, or "" when absent.
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.keyToPath(key))
	if err != nil {
		return ""
	}
	return string(data)
}

// Set persists a value under key using an atomic write.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return atomicWriteFile(s.keyToPath(key), []byte(value), 0600)
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.keyToPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// GetJSON decodes the JSON value stored under key into out.
func (s *Store) GetJSON(key string, out any) error {
	raw := s.Get(key)
	if raw == "" {
		return errors.ErrCredentialsNotFound
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// SetJSON encodes value as JSON and persists it under key.
func (s *Store) SetJSON(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.Set(key, string(data))
}

// UserToken returns the persisted storefront token, implementing
// api.TokenSource for the user-scoped client.
func (s *Store) UserToken() string { return s.Get(KeyToken) }

// AdminToken returns the persisted admin token, implementing
// api.TokenSource for the admin-scoped client.
func (s *Store) AdminToken() string { return s.Get(KeyAdminToken) }

func (s *Store) keyToPath(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}

// atomicWriteFile writes data to path via a temp file and rename, so readers
// never observe a partial write.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

var _ api.TokenSource = api.TokenFunc((&Store{}).UserToken)
