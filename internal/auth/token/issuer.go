package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/varunmaharana/quick-todos-backend/internal/auth/domain"
	"github.com/varunmaharana/quick-todos-backend/pkg/config"
	"github.com/varunmaharana/quick-todos-backend/pkg/response"
)

// ErrInvalidToken covers every verification failure: bad signature, expiry,
// malformed claims, missing identity. Callers map it to Unauthorized.
var ErrInvalidToken = errors.New("invalid token")

// Issuer mints and verifies the two token kinds. Access tokens embed a
// denormalized snapshot of the user's public fields; refresh tokens carry only
// the identity. Each kind is signed with its own secret. Issuing is stateless:
// no I/O, no side effects beyond signing.
type Issuer struct {
	cfg *config.Config
}

func NewIssuer(cfg *config.Config) *Issuer {
	return &Issuer{cfg: cfg}
}

func (i *Issuer) AccessToken(user *domain.User) (string, error) {
	if i.cfg.AccessTokenSecret == "" || i.cfg.AccessTokenExpiry <= 0 {
		return "", response.NewConfiguration("Access token secret or expiry not set in environment variables")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":       user.ID,
		"name":     user.Name,
		"username": user.Username,
		"email":    user.Email,
		"exp":      now.Add(i.cfg.AccessTokenExpiry).Unix(),
		"iat":      now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.cfg.AccessTokenSecret))
}

func (i *Issuer) RefreshToken(userID string) (string, error) {
	if i.cfg.RefreshTokenSecret == "" || i.cfg.RefreshTokenExpiry <= 0 {
		return "", response.NewConfiguration("Refresh token secret or expiry not set in environment variables")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": now.Add(i.cfg.RefreshTokenExpiry).Unix(),
		"iat": now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.cfg.RefreshTokenSecret))
}

// VerifyAccess checks signature and expiry against the access secret and
// returns the identity claim.
func (i *Issuer) VerifyAccess(tokenString string) (string, error) {
	if i.cfg.AccessTokenSecret == "" {
		return "", response.NewConfiguration("Access token secret not set in environment variables")
	}
	return i.verify(tokenString, i.cfg.AccessTokenSecret)
}

// VerifyRefresh checks signature and expiry against the refresh secret and
// returns the identity claim.
func (i *Issuer) VerifyRefresh(tokenString string) (string, error) {
	if i.cfg.RefreshTokenSecret == "" {
		return "", response.NewConfiguration("Refresh token secret not set in environment variables")
	}
	return i.verify(tokenString, i.cfg.RefreshTokenSecret)
}

func (i *Issuer) verify(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", ErrInvalidToken
	}
	return id, nil
}
