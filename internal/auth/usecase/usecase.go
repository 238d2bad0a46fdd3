package usecase

import (
	"github.com/varunmaharana/quick-todos-backend/internal/auth/domain"
	"github.com/varunmaharana/quick-todos-backend/internal/auth/dto"
)

// AuthUsecase is the session lifecycle: account creation, credential checks,
// token issuance and rotation, and the per-request authentication gate.
type AuthUsecase interface {
	// SignUp creates a new account after the uniqueness check on username and
	// email, returning the sanitized user
	SignUp(req *dto.SignUpRequest) (*domain.User, error)

	// Login verifies credentials and issues a fresh access/refresh pair,
	// overwriting the stored refresh token
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)

	// RefreshAccessToken rotates the pair. The presented token must exactly
	// equal the stored one; a stale or replayed token is rejected
	RefreshAccessToken(refreshToken string) (*dto.TokenResponse, error)

	// Logout unconditionally clears the stored refresh token
	Logout(userID string) error

	// Me returns the sanitized user for an authenticated identity
	Me(userID string) (*domain.User, error)

	// UpdateProfile applies partial changes to name/username/email
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*domain.User, error)

	// ChangePassword verifies the current password before setting a new one
	ChangePassword(userID string, req *dto.ChangePasswordRequest) error

	// DeleteAccount removes the user record and runs the cleanup callback
	DeleteAccount(userID string) error

	// SetAccountCleanup registers a callback invoked when an account is
	// deleted, so owned data in other modules can be removed
	SetAccountCleanup(cleanup func(userID string) error)

	// Authenticate resolves an access token to a live, sanitized user
	Authenticate(accessToken string) (*domain.User, error)
}
