package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varunmaharana/quick-todos-backend/internal/auth/domain"
	"github.com/varunmaharana/quick-todos-backend/pkg/config"
	"github.com/varunmaharana/quick-todos-backend/pkg/response"
)

func testConfig() *config.Config {
	return &config.Config{
		AccessTokenSecret:  "test-access-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenSecret: "test-refresh-secret",
		RefreshTokenExpiry: 168 * time.Hour,
	}
}

func testUser() *domain.User {
	return &domain.User{
		ID:       "user-1",
		Name:     "Alice",
		Username: "alice",
		Email:    "a@x.com",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer := NewIssuer(testConfig())

	tokenString, err := issuer.AccessToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	id, err := issuer.VerifyAccess(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	issuer := NewIssuer(testConfig())

	tokenString, err := issuer.RefreshToken("user-1")
	require.NoError(t, err)

	id, err := issuer.VerifyRefresh(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestTokenKindsUseDistinctSecrets(t *testing.T) {
	issuer := NewIssuer(testConfig())

	refresh, err := issuer.RefreshToken("user-1")
	require.NoError(t, err)

	// a refresh token must not pass access verification
	_, err = issuer.VerifyAccess(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMissingSecretIsConfigurationError(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenSecret = ""
	issuer := NewIssuer(cfg)

	_, err := issuer.AccessToken(testUser())
	var apiErr *response.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 500, apiErr.StatusCode)
}

func TestMissingExpiryIsConfigurationError(t *testing.T) {
	cfg := testConfig()
	cfg.RefreshTokenExpiry = 0
	issuer := NewIssuer(cfg)

	_, err := issuer.RefreshToken("user-1")
	var apiErr *response.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 500, apiErr.StatusCode)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer(testConfig())

	other := NewIssuer(&config.Config{
		AccessTokenSecret: "some-other-secret",
		AccessTokenExpiry: 15 * time.Minute,
	})
	forged, err := other.AccessToken(testUser())
	require.NoError(t, err)

	_, err = issuer.VerifyAccess(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	cfg := testConfig()
	issuer := NewIssuer(cfg)

	claims := jwt.MapClaims{
		"id":  "user-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
		"iat": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.AccessTokenSecret))
	require.NoError(t, err)

	_, err = issuer.VerifyAccess(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingIdentityClaim(t *testing.T) {
	cfg := testConfig()
	issuer := NewIssuer(cfg)

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.AccessTokenSecret))
	require.NoError(t, err)

	_, err = issuer.VerifyAccess(anonymous)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := NewIssuer(testConfig())

	_, err := issuer.VerifyAccess("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
