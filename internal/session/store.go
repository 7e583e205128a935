// Package session owns the authenticated-identity state: a durable store for
// the token/identity pair and the controller that is its only writer.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/vestra-hq/vestra/pkg/domain"
)

const sessionFile = "session.json"

// record is the persisted pair. Both keys live in one document so a save is
// atomic: the file is written to a temp path and renamed over the old one.
type record struct {
	Token    string           `json:"token"`
	Identity *domain.Identity `json:"identity"`
}

// Store persists the session token and cached identity across runs.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore returns a store rooted at dir (e.g. ~/.vestra).
func NewStore(dir string, log zerolog.Logger) *Store {
	return &Store{path: filepath.Join(dir, sessionFile), log: log}
}

// Save writes the token/identity pair. The directory is created on demand
// with owner-only permissions.
func (s *Store) Save(token string, id domain.Identity) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.Marshal(record{Token: token, Identity: &id})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) //nolint:errcheck
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

// Load returns the persisted pair, or ("", nil) when absent. A document that
// fails to parse, or that holds only half the pair, is treated as logged-out
// and cleared; Load never propagates a parse error outward.
func (s *Store) Load() (string, *domain.Identity) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("session unreadable, treating as logged out")
		}
		return "", nil
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil || rec.Token == "" || rec.Identity == nil {
		s.log.Warn().Str("path", s.path).Msg("session corrupt, clearing")
		s.Clear() //nolint:errcheck // best-effort cleanup of corrupt state
		return "", nil
	}
	return rec.Token, rec.Identity
}

// Clear removes the persisted pair. Safe to call when nothing is stored.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
