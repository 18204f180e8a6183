package session

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"conduitclient/internal/ports"
)

// Store holds the current session token and mirrors it to a single file,
// the process-wide analog of the browser's well-known local key. It never
// performs network I/O.
type Store struct {
	mu     sync.RWMutex
	path   string
	token  string
	logger *slog.Logger
}

var _ ports.CredentialStore = (*Store)(nil)

// NewStore wires the credential file path.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the persisted token back into memory. A missing file means no
// session; that is not an error.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read token file: %w", err)
	}

	s.mu.Lock()
	s.token = strings.TrimSpace(string(raw))
	s.mu.Unlock()

	s.debug("session restored from disk")
	return nil
}

// Token returns the current session credential, empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken persists the credential, then updates memory. Persistence
// happens-before any caller observes the new token.
func (s *Store) SetToken(token string) error {
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.debug("session token persisted")
	return nil
}

// Clear synchronously removes the persisted credential and zeroes memory.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}

	s.debug("session cleared")
	return nil
}

func (s *Store) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

// Gate is the read-only projection surrounding collaborators consult to
// permit or deny navigation. After Load restores a token it reports
// authenticated immediately, before any profile fetch resolves; a stale
// token is revoked only once that fetch fails.
type Gate struct {
	store *Store
}

// NewGate projects over a session store.
func NewGate(store *Store) *Gate {
	return &Gate{store: store}
}

// Authenticated reports whether a session token is currently held.
func (g *Gate) Authenticated() bool {
	return g.store != nil && g.store.Token() != ""
}
