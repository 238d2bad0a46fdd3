package repository

import (
	"github.com/varunmaharana/quick-todos-backend/internal/auth/domain"
)

// UserRepository defines the interface for user data access. Find methods
// return (nil, nil) when no record matches.
type UserRepository interface {
	// Create persists a new user, assigning its ID
	Create(user *domain.User) error

	// FindByID finds a user by primary key
	FindByID(id string) (*domain.User, error)

	// FindByUsername finds a user by exact username
	FindByUsername(username string) (*domain.User, error)

	// FindByEmail finds a user by exact email
	FindByEmail(email string) (*domain.User, error)

	// FindByUsernameOrEmail finds any user holding either identity field,
	// used for the sign-up uniqueness check
	FindByUsernameOrEmail(username, email string) (*domain.User, error)

	// Update saves all fields of an existing user
	Update(user *domain.User) error

	// UpdateRefreshToken overwrites only the stored refresh token; an empty
	// value clears it
	UpdateRefreshToken(userID, refreshToken string) error

	// Delete removes a user by primary key
	Delete(id string) error
}
