package services

import (
	"context"
	"errors"
	"strings"

	"github.com/tbourn/go-storefront-backend/internal/domain"
	"github.com/tbourn/go-storefront-backend/internal/repo"
)

// UserService registers and looks up users. Usernames are not unique:
// FindByUsername returns the earliest registration.
type UserService struct {
	Store Storage
}

// NewUserService constructs a UserService over s.
func NewUserService(s Storage) *UserService { return &UserService{Store: s} }

// Register stores a user. The username is trimmed; the password is kept
// verbatim. Both must be non-blank.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}
	return s.Store.CreateUser(ctx, domain.NewUser{Username: username, Password: password})
}

// FindByUsername returns the first user registered under username.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.Store.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// Get returns the user with id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.Store.GetUser(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}
