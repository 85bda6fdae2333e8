package services

import (
	"context"
	"errors"

	"github.com/tbourn/go-storefront-backend/internal/domain"
	"github.com/tbourn/go-storefront-backend/internal/repo"
)

// ContactService manages contact-form submissions.
type ContactService struct {
	Store Storage
}

// NewContactService constructs a ContactService over s.
func NewContactService(s Storage) *ContactService { return &ContactService{Store: s} }

// Submit trims the payload and stores it.
func (s *ContactService) Submit(ctx context.Context, in domain.NewContact) (*domain.Contact, error) {
	return s.Store.CreateContact(ctx, in.Normalize())
}

// List returns every contact submission in submission order.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.Store.ListContacts(ctx)
}

// Get returns a single submission or ErrContactNotFound.
func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	c, err := s.Store.GetContact(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrContactNotFound
	}
	return c, err
}
