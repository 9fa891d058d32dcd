// Package session persists the login credentials between runs — the
// terminal counterpart of the browser's two local-storage keys.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Session is what survives a restart: the opaque API token and the username
// it belongs to.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (s Session) IsZero() bool {
	return s.Token == "" && s.Username == ""
}

// Store handles loading/saving the session file.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath is used when SESSION_FILE is not configured.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".hack-or-snooze", "session.json")
	}
	return filepath.Join(home, ".hack-or-snooze", "session.json")
}

// Load reads the session from disk. A missing file is a fresh session, not
// an error.
func (st *Store) Load() (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("failed to parse session: %w", err)
	}
	return s, nil
}

// Save writes the session to disk, creating the directory if needed.
func (st *Store) Save(s Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(st.path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// 0600：文件里有 token，别让其他用户读到
	if err := os.WriteFile(st.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear deletes the session file. Used on logout and account deletion.
func (st *Store) Clear() error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
