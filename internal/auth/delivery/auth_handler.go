package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/varunmaharana/quick-todos-backend/internal/auth/dto"
	"github.com/varunmaharana/quick-todos-backend/internal/auth/usecase"
	"github.com/varunmaharana/quick-todos-backend/pkg/config"
	"github.com/varunmaharana/quick-todos-backend/pkg/response"
)

// AuthHandler handles the user account endpoints
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		config:      cfg,
	}
}

// SignUp creates a new account
// POST /api/users/signUp
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if apiErr := response.Bind(c, &req); apiErr != nil {
		c.Error(apiErr)
		return
	}

	user, err := h.authUsecase.SignUp(&req)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusCreated, "User registered successfully!", user)
}

// Login verifies credentials and issues the token pair, both in the body and
// as http-only cookies
// POST /api/users/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if apiErr := response.Bind(c, &req); apiErr != nil {
		c.Error(apiErr)
		return
	}

	tokens, err := h.authUsecase.Login(&req)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookies(c, tokens.AccessToken, tokens.RefreshToken)
	response.OK(c, http.StatusCreated, "User logged in successfully!", tokens)
}

// RefreshToken rotates the token pair. The refresh token comes from the
// cookie or, failing that, the request body.
// POST /api/users/refreshToken
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, _ := c.Cookie(RefreshTokenCookie)
	if refreshToken == "" {
		var req dto.RefreshTokenRequest
		// body is optional here; a decode failure just leaves the token empty
		_ = c.ShouldBindJSON(&req)
		refreshToken = req.RefreshToken
	}

	tokens, err := h.authUsecase.RefreshAccessToken(refreshToken)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookies(c, tokens.AccessToken, tokens.RefreshToken)
	response.OK(c, http.StatusOK, "Access token refreshed successfully!", tokens)
}

// Logout clears the stored refresh token and both cookies
// POST /api/users/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.Error(response.NewUnauthorized("Unauthorized request!"))
		return
	}

	if err := h.authUsecase.Logout(user.ID); err != nil {
		c.Error(err)
		return
	}

	h.clearAuthCookies(c)
	response.OK(c, http.StatusOK, "User logged out successfully!", nil)
}

// Me returns the authenticated user's details
// GET /api/users/getLoggedInUserDetails
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.Error(response.NewUnauthorized("Unauthorized request!"))
		return
	}

	response.OK(c, http.StatusOK, "User details fetched successfully!", user)
}

// UpdateProfile applies partial changes to name/username/email
// PATCH /api/users/updateUserDetails
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.Error(response.NewUnauthorized("Unauthorized request!"))
		return
	}

	var req dto.UpdateProfileRequest
	if apiErr := response.Bind(c, &req); apiErr != nil {
		c.Error(apiErr)
		return
	}

	updated, err := h.authUsecase.UpdateProfile(user.ID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "User details updated successfully!", updated)
}

// ChangePassword verifies the current password and sets a new one
// POST /api/users/changeUserPassword
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.Error(response.NewUnauthorized("Unauthorized request!"))
		return
	}

	var req dto.ChangePasswordRequest
	if apiErr := response.Bind(c, &req); apiErr != nil {
		c.Error(apiErr)
		return
	}

	if err := h.authUsecase.ChangePassword(user.ID, &req); err != nil {
		c.Error(err)
		return
	}

	response.OK(c, http.StatusOK, "Password changed successfully!", nil)
}

// DeleteAccount removes the account and ends the session
// DELETE /api/users/deleteUserDetails
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.Error(response.NewUnauthorized("Unauthorized request!"))
		return
	}

	if err := h.authUsecase.DeleteAccount(user.ID); err != nil {
		c.Error(err)
		return
	}

	h.clearAuthCookies(c)
	response.OK(c, http.StatusOK, "User deleted successfully!", nil)
}

func (h *AuthHandler) setAuthCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AccessTokenCookie, accessToken, int(h.config.AccessTokenExpiry.Seconds()), "/", "", true, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, int(h.config.RefreshTokenExpiry.Seconds()), "/", "", true, true)
}

func (h *AuthHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", true, true)
}
