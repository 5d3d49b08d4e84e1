package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64 `gorm:"primaryKey"`
	CreatedAt    time.Time
	Username     string `gorm:"type:varchar(50);index:uniq_username,unique"`
	Email        string `gorm:"type:varchar(100);index:uniq_email,unique"`
	PasswordHash string `gorm:"type:varchar(128)"`
}

// CreateUser inserts a new user. Uniqueness of username and email is enforced
// by the database indexes, not pre-checked, so two concurrent registrations
// with the same username cannot both succeed. passwordHash must already be
// hashed, the plaintext never reaches this layer.
func (s *Store) CreateUser(username, email, passwordHash string) (User, error) {
	u := User{Username: username, Email: email, PasswordHash: passwordHash}
	err := s.DB.Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The insert was rejected by one of the unique indexes; look up
		// which column collided so the caller can report it.
		_, lookupErr := s.FindUserByUsername(username)
		switch {
		case lookupErr == nil:
			return User{}, ErrDuplicateUsername
		case errors.Is(lookupErr, ErrNotFound):
			return User{}, ErrDuplicateEmail
		default:
			return User{}, lookupErr
		}
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Store) FindUserByUsername(username string) (User, error) {
	var u User
	err := s.DB.First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (s *Store) GetUserByID(id uint64) (User, error) {
	var u User
	err := s.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}
