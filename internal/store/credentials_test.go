package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialFileSeedsDefaults(t *testing.T) {
	creds, err := NewCredentialFile("")
	require.NoError(t, err)

	admin, err := creds.Authenticate("admin@gyidie.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)

	user, err := creds.Authenticate("user@demo.com", "user123")
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)
}

func TestCredentialFileRejectsBadCredentials(t *testing.T) {
	creds, err := NewCredentialFile("")
	require.NoError(t, err)

	_, err = creds.Authenticate("admin@gyidie.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = creds.Authenticate("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCredentialFileRegister(t *testing.T) {
	creds, err := NewCredentialFile("")
	require.NoError(t, err)

	user, err := creds.Register("ama@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "user", user.Role)

	_, err = creds.Register("ama@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := creds.Authenticate("ama@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestCredentialFilePersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")

	creds, err := NewCredentialFile(path)
	require.NoError(t, err)

	user, err := creds.Register("kofi@example.com", "long-enough-pass")
	require.NoError(t, err)

	reloaded, err := NewCredentialFile(path)
	require.NoError(t, err)

	got, err := reloaded.Authenticate("kofi@example.com", "long-enough-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Seeded defaults were written on first load too.
	_, err = reloaded.Authenticate("admin@gyidie.com", "admin123")
	assert.NoError(t, err)
}
