package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenKey is the fixed key under which the session token is persisted.
const tokenKey = "authToken"

var errNoIdentity = errors.New("token carries no identity")

// Identity is the claim set decoded locally from a persisted token, without
// signature verification. It is a UI hint only and is deliberately a distinct
// type from the server-verified claims: nothing security-relevant may ever be
// decided from it.
type Identity struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// TokenStore persists the session token between runs.
type TokenStore interface {
	// Load returns the persisted token, or "" when none is stored.
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStore keeps the token under tokenKey in a small JSON state file,
// the local-storage analogue for a native client.
type FileTokenStore struct {
	path string
}

func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	state := map[string]string{}
	if err := json.Unmarshal(raw, &state); err != nil {
		return "", fmt.Errorf("corrupt session state: %w", err)
	}
	return state[tokenKey], nil
}

func (s *FileTokenStore) Save(token string) error {
	raw, err := json.Marshal(map[string]string{tokenKey: token})
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Session holds the client-side authentication state. It starts in the
// loading state; Restore moves it to loaded by reading the persisted token
// and decoding its claims locally, with no network round-trip. Guard
// evaluation is cooperative: callers observe Loading before IsAuthenticated.
type Session struct {
	store    TokenStore
	token    string
	identity *Identity
	loading  bool
}

func NewSession(store TokenStore) *Session {
	return &Session{store: store, loading: true}
}

// Restore loads the persisted token and reconstructs the identity from its
// claims. A missing, malformed or locally-expired token, or a corrupt state
// file, leaves the session unauthenticated and clears the persisted state.
func (s *Session) Restore() error {
	defer func() { s.loading = false }()

	token, err := s.store.Load()
	if err != nil {
		// Corrupt state is treated like a bad token: session absent, state gone.
		s.token = ""
		s.identity = nil
		_ = s.store.Clear()
		return nil
	}
	if token == "" {
		s.token = ""
		s.identity = nil
		return nil
	}

	identity, err := decodeIdentity(token)
	if err != nil {
		s.token = ""
		s.identity = nil
		_ = s.store.Clear()
		return nil
	}

	s.token = token
	s.identity = identity
	return nil
}

// SetToken persists a freshly issued token and updates the in-memory
// identity synchronously, so guards evaluated right after signup/login see
// the authenticated state.
func (s *Session) SetToken(token string) error {
	identity, err := decodeIdentity(token)
	if err != nil {
		return err
	}
	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	s.identity = identity
	s.loading = false
	return nil
}

// Logout clears the persisted token and the in-memory identity.
func (s *Session) Logout() error {
	s.token = ""
	s.identity = nil
	s.loading = false
	return s.store.Clear()
}

func (s *Session) Loading() bool { return s.loading }

func (s *Session) Token() string { return s.token }

// Identity returns the locally decoded identity, or nil when the session is
// absent or still loading.
func (s *Session) Identity() *Identity { return s.identity }

func (s *Session) IsAuthenticated() bool {
	return !s.loading && s.identity != nil
}

// decodeIdentity parses the token without verifying its signature. Expiry is
// still checked locally so a stale persisted session is treated as absent
// instead of producing requests the server will reject anyway.
func decodeIdentity(token string) (*Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}

	identity := &Identity{}
	identity.UserID, _ = claims["sub"].(string)
	identity.Email, _ = claims["email"].(string)
	identity.Role, _ = claims["role"].(string)
	if identity.Email == "" {
		return nil, errNoIdentity
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.ExpiresAt = exp.Time
		if time.Now().After(exp.Time) {
			return nil, jwt.ErrTokenExpired
		}
	}
	return identity, nil
}
