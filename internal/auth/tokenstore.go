// Package auth holds bearer-token persistence for the HRMS client.
//
// The backend issues JWTs. The store is the single source of truth for the
// token attached to outgoing requests; any 401 response evicts it.
package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/hrbuddy/hrms-go/internal/types"
)

// TokenStore abstracts bearer-token storage. Implementations must be safe
// for concurrent use.
type TokenStore interface {
	// Token returns the stored token, or "" when none is stored.
	Token() string

	// Set stores a token, replacing any previous value.
	Set(token string) error

	// Clear removes the stored token.
	Clear() error
}

// MemoryStore keeps the token in process memory only.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore creates an empty in-memory token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// storedToken is the on-disk representation. A single fixed key holds the
// bearer token, mirroring the browser client's local-storage layout.
type storedToken struct {
	AuthToken string    `json:"authToken"`
	SavedAt   time.Time `json:"savedAt"`
}

// FileStore persists the token to a JSON file with restrictive permissions.
type FileStore struct {
	mu    sync.RWMutex
	path  string
	token string
}

// NewFileStore creates a file-backed store. An existing token file is loaded
// eagerly; a missing file is not an error.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrap(err, "failed to read token file")
	}

	var stored storedToken
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal token file")
	}
	s.token = stored.AuthToken

	return s, nil
}

func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *FileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.Wrap(err, "failed to create token directory")
	}

	data, err := json.MarshalIndent(storedToken{AuthToken: token, SavedAt: time.Now()}, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal token")
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write token file")
	}

	s.token = token
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove token file")
	}
	return nil
}

// TokenExpiry reads the exp claim from a JWT without verifying the
// signature. The client only needs the timestamp to decide when to prompt
// for re-authentication; verification stays server-side.
func TokenExpiry(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to parse token")
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, types.ErrSessionExpired
	}
	return exp.Time, nil
}

// SessionFromToken builds a Session from a JWT's registered and private
// claims. Missing claims leave zero values; expiry falls back to 24h from
// now when the token carries no exp claim.
func SessionFromToken(token string) *types.Session {
	session := &types.Session{
		Token:     token,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return session
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		session.UserID = sub
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		session.Role = role
	}

	return session
}
