package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is the persisted account record. Password holds a bcrypt hash and
// RefreshToken the single currently valid refresh token; neither is ever
// serialized into responses.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name,omitempty"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Password     string    `json:"-" gorm:"not null"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SetPassword hashes the plaintext and stores the hash. This is the only
// write path to the Password field, so a stored value is always a fresh
// bcrypt hash of the most recently set plaintext.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext)) == nil
}
