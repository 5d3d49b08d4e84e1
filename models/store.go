package models

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrNotFound          = errors.New("not found")
)

// Store wraps the database handle with the entity queries the handlers use.
// It is created once at startup and injected, there are no package globals.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}
