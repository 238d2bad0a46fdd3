package dto

import "github.com/varunmaharana/quick-todos-backend/internal/auth/domain"

type SignUpRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1"`
	Username string `json:"username" binding:"required,min=3,max=20,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=20,username"`
	Password string `json:"password" binding:"required,min=6,max=100"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Username *string `json:"username" binding:"omitempty,min=3,max=20,username"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=6,max=100"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=100"`
}

// TokenResponse is the login/refresh payload. The user serializes without
// password or refresh token.
type TokenResponse struct {
	User         *domain.User `json:"user,omitempty"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}
