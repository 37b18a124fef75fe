package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, expiry time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "user-1"}
	if !expiry.IsZero() {
		claims["exp"] = expiry.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("dev-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestLoginPersistsToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session")
	store := NewStore(path)

	token := signedToken(t, time.Now().Add(time.Hour))
	if err := store.Login(token); err != nil {
		t.Fatalf("login: %v", err)
	}
	if store.Token() != token {
		t.Fatalf("token not held after login")
	}

	// A fresh store picks the token up from disk.
	reloaded := NewStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if reloaded.Token() != token {
		t.Fatalf("token not reloaded from disk")
	}
	if err := reloaded.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestLoginRejectsExpiredToken(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session"))

	err := store.Login(signedToken(t, time.Now().Add(-time.Minute)))
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if _, statErr := os.Stat(store.path); !os.IsNotExist(statErr) {
		t.Fatalf("expired token must not be persisted")
	}
}

func TestLoginRejectsMalformedToken(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session"))

	if err := store.Login("not-a-jwt"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
	if err := store.Login("   "); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestTokenWithheldOnceExpired(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session"))

	expired := signedToken(t, time.Now().Add(-time.Minute))
	if err := os.WriteFile(store.path, []byte(expired+"\n"), 0o600); err != nil {
		t.Fatalf("write session file: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if store.Token() != "" {
		t.Fatalf("expired token must be withheld")
	}
	if err := store.Check(); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
}

func TestTokenWithoutExpiryIsAccepted(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session"))

	token := signedToken(t, time.Time{})
	if err := store.Login(token); err != nil {
		t.Fatalf("login: %v", err)
	}
	if store.Token() != token {
		t.Fatalf("token without exp claim should be usable")
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent"))

	if err := store.Load(); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if err := store.Check(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestLogoutRemovesFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "session"))

	if err := store.Login(signedToken(t, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := store.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.Token() != "" {
		t.Fatalf("token still held after logout")
	}
	if _, err := os.Stat(store.path); !os.IsNotExist(err) {
		t.Fatalf("session file still present after logout")
	}

	// Logging out twice is fine.
	if err := store.Logout(); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}
