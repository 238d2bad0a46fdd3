package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/varunmaharana/quick-todos-backend/internal/auth/domain"
)

// gormUserRepository implements UserRepository using GORM
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM-based UserRepository
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *gormUserRepository) FindByID(id string) (*domain.User, error) {
	return r.findOne("id = ?", id)
}

func (r *gormUserRepository) FindByUsername(username string) (*domain.User, error) {
	return r.findOne("username = ?", username)
}

func (r *gormUserRepository) FindByEmail(email string) (*domain.User, error) {
	return r.findOne("email = ?", email)
}

func (r *gormUserRepository) FindByUsernameOrEmail(username, email string) (*domain.User, error) {
	return r.findOne("username = ? OR email = ?", username, email)
}

func (r *gormUserRepository) findOne(query string, args ...interface{}) (*domain.User, error) {
	var user domain.User
	err := r.db.Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *gormUserRepository) Update(user *domain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

func (r *gormUserRepository) UpdateRefreshToken(userID, refreshToken string) error {
	return r.db.Model(&domain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"refresh_token": refreshToken,
			"updated_at":    time.Now(),
		}).Error
}

func (r *gormUserRepository) Delete(id string) error {
	return r.db.Delete(&domain.User{}, "id = ?", id).Error
}
