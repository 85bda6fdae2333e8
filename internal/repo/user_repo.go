// Package repo implements the data persistence layer. This file provides
// GORM repository functions for the User model.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// CreateUser inserts a user. There is no uniqueness constraint on username.
func CreateUser(ctx context.Context, db *gorm.DB, in domain.NewUser) (*domain.User, error) {
	u := domain.User{ID: newID(), Username: in.Username, Password: in.Password}
	if err := db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser fetches a user by id or returns ErrNotFound.
func GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByUsername returns the earliest-inserted user with username, or
// ErrNotFound.
func GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("username = ?", username).
		Order("seq asc").
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
