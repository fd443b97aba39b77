package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kofidarko/gyidie-backend/internal/config"
	"github.com/kofidarko/gyidie-backend/internal/dto"
	"github.com/kofidarko/gyidie-backend/internal/store"
)

func newDegradedAuthService(t *testing.T) *AuthService {
	t.Helper()

	creds, err := store.NewCredentialFile("")
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
	return NewAuthService(nil, cfg, creds)
}

func TestDegradedLoginUsesCredentialFile(t *testing.T) {
	svc := newDegradedAuthService(t)

	resp, err := svc.Login(&dto.LoginRequest{Email: "admin@gyidie.com", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "admin", resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Empty(t, resp.RefreshToken, "refresh state lives in the database only")

	_, err = svc.Login(&dto.LoginRequest{Email: "admin@gyidie.com", Password: "nope"})
	assert.ErrorIs(t, err, store.ErrInvalidCredentials)
}

func TestDegradedRegister(t *testing.T) {
	svc := newDegradedAuthService(t)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "new@example.com", Password: "longpassword1"})
	require.NoError(t, err)
	assert.Equal(t, "user", resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Register(&dto.RegisterRequest{Email: "new@example.com", Password: "other-pass"})
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestDegradedRefreshRefused(t *testing.T) {
	svc := newDegradedAuthService(t)

	_, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "anything"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	assert.NoError(t, svc.Logout(&dto.LogoutRequest{RefreshToken: "anything"}))
}

func TestAccessTokenClaims(t *testing.T) {
	svc := newDegradedAuthService(t)

	resp, err := svc.Login(&dto.LoginRequest{Email: "user@demo.com", Password: "user123"})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
	assert.Equal(t, "user@demo.com", claims["email"])
	assert.Equal(t, "user", claims["role"])
}
