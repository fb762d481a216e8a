package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	assert.Equal(t, "", s.Token())

	require.NoError(t, s.Set("t1"))
	assert.Equal(t, "t1", s.Token())

	require.NoError(t, s.Clear())
	assert.Equal(t, "", s.Token())
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hrms", "token.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, "", s.Token())

	require.NoError(t, s.Set("t1"))

	// Restrictive permissions on the token file.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// A fresh store loads the persisted token.
	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, "t1", reloaded.Token())

	require.NoError(t, s.Clear())
	assert.Equal(t, "", s.Token())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_ClearMissingFile(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.NoError(t, s.Clear())
}

// fakeJWT builds an unsigned JWT carrying the given claims.
func fakeJWT(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	require.NoError(t, err)
	return fmt.Sprintf("%s.%s.sig", header, base64.RawURLEncoding.EncodeToString(payload))
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := fakeJWT(t, map[string]interface{}{"exp": exp.Unix()})

	got, err := TokenExpiry(token)
	require.NoError(t, err)
	assert.True(t, got.Equal(exp))

	_, err = TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}

func TestSessionFromToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := fakeJWT(t, map[string]interface{}{
		"sub":   "emp-42",
		"email": "a@b.com",
		"role":  "hr",
		"exp":   exp.Unix(),
	})

	session := SessionFromToken(token)
	assert.Equal(t, token, session.Token)
	assert.Equal(t, "emp-42", session.UserID)
	assert.Equal(t, "a@b.com", session.Email)
	assert.Equal(t, "hr", session.Role)
	assert.True(t, session.ExpiresAt.Equal(exp))
}

func TestSessionFromToken_Opaque(t *testing.T) {
	// Opaque tokens still yield a usable session with a default expiry.
	session := SessionFromToken("t1")
	assert.Equal(t, "t1", session.Token)
	assert.True(t, session.ExpiresAt.After(time.Now()))
}
