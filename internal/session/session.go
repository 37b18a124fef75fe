package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session token expired")
)

// Store holds the bearer token between invocations. It is the only place
// the token lives: screens go through the API client, which reads it from
// here.
type Store struct {
	path  string
	token string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted token, if any. A missing file is not an error:
// the client simply runs unauthenticated.
func (s *Store) Load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}
	s.token = strings.TrimSpace(string(raw))
	return nil
}

// Login validates the token's shape and expiry, then persists it.
func (s *Store) Login(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("empty token")
	}
	expiry, err := tokenExpiry(token)
	if err != nil {
		return err
	}
	if !expiry.IsZero() && time.Now().After(expiry) {
		return ErrSessionExpired
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	s.token = token
	return nil
}

// Logout discards the persisted token.
func (s *Store) Logout() error {
	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Token implements api.TokenSource. Expired tokens are withheld so a stale
// session fails client-side instead of producing confusing 401s.
func (s *Store) Token() string {
	if s.token == "" {
		return ""
	}
	if expiry, err := tokenExpiry(s.token); err == nil && !expiry.IsZero() && time.Now().After(expiry) {
		return ""
	}
	return s.token
}

// Check reports whether a usable session exists.
func (s *Store) Check() error {
	if s.token == "" {
		return ErrNoSession
	}
	expiry, err := tokenExpiry(s.token)
	if err != nil {
		return err
	}
	if !expiry.IsZero() && time.Now().After(expiry) {
		return ErrSessionExpired
	}
	return nil
}

// tokenExpiry reads the exp claim without verifying the signature. The
// client holds no signing secret; verification is the backend's job.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("malformed token: %w", err)
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed token: %w", err)
	}
	if expiry == nil {
		return time.Time{}, nil
	}
	return expiry.Time, nil
}
