// Package session persists the console's {token, user} record on disk.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"wash-admin/internal/model"
)

// Store owns the single persisted session record. It is an injected
// value: the transport client and the guard read through it, only the
// auth operations write through it.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Set serializes {token, user} and replaces the record on disk.
func (s *Store) Set(token string, user *model.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := model.Session{Token: token, User: user}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the persisted record. A record that never existed is
// not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// Get returns the current session. An absent or unparsable record is
// treated as "no session"; Get never fails.
func (s *Store) Get() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.Session{}
	}

	var record model.Session
	if err := json.Unmarshal(data, &record); err != nil {
		return model.Session{}
	}

	return record
}

// Token implements the transport.TokenSource contract.
func (s *Store) Token() string {
	return s.Get().Token
}
