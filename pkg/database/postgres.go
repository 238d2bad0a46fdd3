package database

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/varunmaharana/quick-todos-backend/pkg/config"
)

// NewPostgresConnection opens the GORM connection used by all repositories.
// TranslateError maps driver-level unique violations onto gorm.ErrDuplicatedKey
// so repositories can surface them as conflicts.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
}
