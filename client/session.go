// client/session.go
package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// SessionStore persists the auth token across process restarts. All
// persistence is best-effort: a missing or unreadable file yields an
// empty token, and write failures surface as errors without affecting
// the in-memory token.
type SessionStore struct {
	mu    sync.Mutex
	path  string
	token string
}

type sessionFile struct {
	Token string `json:"token"`
}

// DefaultSessionPath returns the session file location under the
// user's config directory.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "storefront", "session.json"), nil
}

// NewSessionStore creates a store backed by the given file path and
// loads any previously persisted token.
func NewSessionStore(path string) *SessionStore {
	s := &SessionStore{path: path}
	s.load()
	return s
}

func (s *SessionStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return
	}
	s.token = f.Token
}

// Token returns the current token, or "" when no session exists.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken stores the token in memory and persists it to disk.
func (s *SessionStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(sessionFile{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear forgets the token and removes the session file.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
