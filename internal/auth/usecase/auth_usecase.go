package usecase

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/varunmaharana/quick-todos-backend/internal/auth/domain"
	"github.com/varunmaharana/quick-todos-backend/internal/auth/dto"
	"github.com/varunmaharana/quick-todos-backend/internal/auth/repository"
	"github.com/varunmaharana/quick-todos-backend/internal/auth/token"
	"github.com/varunmaharana/quick-todos-backend/pkg/response"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo       repository.UserRepository
	issuer         *token.Issuer
	accountCleanup func(userID string) error
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, issuer *token.Issuer) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		issuer:   issuer,
	}
}

func (u *authUsecase) SignUp(req *dto.SignUpRequest) (*domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	existing, err := u.userRepo.FindByUsernameOrEmail(username, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewConflict("User with this username or email already exists!")
	}

	user := &domain.User{
		Name:     req.Name,
		Username: username,
		Email:    req.Email,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	// The unique indexes close the race between the check above and the
	// insert: a concurrent duplicate still comes back as a conflict.
	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflict("User with this username or email already exists!")
		}
		return nil, err
	}

	return sanitize(user), nil
}

func (u *authUsecase) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByUsername(strings.ToLower(strings.TrimSpace(req.Username)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewNotFound("User not found!")
	}

	if !user.CheckPassword(req.Password) {
		return nil, response.NewUnauthorized("Invalid user credentials!")
	}

	return u.issueTokens(user)
}

func (u *authUsecase) RefreshAccessToken(refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, response.NewUnauthorized("Unauthorized request!")
	}

	userID, err := u.issuer.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, asUnauthorized(err, "Invalid refresh token!")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewUnauthorized("Invalid refresh token!")
	}

	// Anti-replay: only the most recently issued refresh token is live. A
	// stale token, including one already rotated away, is rejected.
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, response.NewUnauthorized("Refresh token is expired or already used!")
	}

	return u.issueTokens(user)
}

func (u *authUsecase) Logout(userID string) error {
	return u.userRepo.UpdateRefreshToken(userID, "")
}

func (u *authUsecase) Me(userID string) (*domain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewNotFound("User not found!")
	}
	return sanitize(user), nil
}

func (u *authUsecase) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewNotFound("User not found!")
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Username != nil {
		username := strings.ToLower(strings.TrimSpace(*req.Username))
		if username != user.Username {
			other, err := u.userRepo.FindByUsername(username)
			if err != nil {
				return nil, err
			}
			if other != nil {
				return nil, response.NewConflict("Username is already taken!")
			}
			user.Username = username
		}
	}
	if req.Email != nil && *req.Email != user.Email {
		other, err := u.userRepo.FindByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, response.NewConflict("Email is already in use!")
		}
		user.Email = *req.Email
	}

	if err := u.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflict("Username or email is already in use!")
		}
		return nil, err
	}

	return sanitize(user), nil
}

func (u *authUsecase) ChangePassword(userID string, req *dto.ChangePasswordRequest) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return response.NewNotFound("User not found!")
	}

	if !user.CheckPassword(req.CurrentPassword) {
		return response.NewBadRequest("Current password is incorrect!")
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return err
	}
	return u.userRepo.Update(user)
}

func (u *authUsecase) SetAccountCleanup(cleanup func(userID string) error) {
	u.accountCleanup = cleanup
}

func (u *authUsecase) DeleteAccount(userID string) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return response.NewNotFound("User not found!")
	}

	if u.accountCleanup != nil {
		if err := u.accountCleanup(userID); err != nil {
			return err
		}
	}
	return u.userRepo.Delete(userID)
}

func (u *authUsecase) Authenticate(accessToken string) (*domain.User, error) {
	userID, err := u.issuer.VerifyAccess(accessToken)
	if err != nil {
		return nil, asUnauthorized(err, "Invalid access token!")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.NewNotFound("User not found!")
	}
	return sanitize(user), nil
}

// issueTokens mints a new access/refresh pair and overwrites the stored
// refresh token, invalidating any previously issued one.
func (u *authUsecase) issueTokens(user *domain.User) (*dto.TokenResponse, error) {
	accessToken, err := u.issuer.AccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := u.issuer.RefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		User:         sanitize(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// sanitize returns a copy with the credential fields zeroed.
func sanitize(user *domain.User) *domain.User {
	clean := *user
	clean.Password = ""
	clean.RefreshToken = ""
	return &clean
}

// asUnauthorized maps verification failures to 401 but lets configuration
// errors keep their own status.
func asUnauthorized(err error, message string) error {
	var apiErr *response.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return response.NewUnauthorized(message)
}
