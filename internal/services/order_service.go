// Package services – OrderService
//
// This file implements custom-order submissions. Submit normalizes the
// payload and persists it as a pending order; the store decides the id,
// timestamp, status and (absent) estimated price.
package services

import (
	"context"
	"errors"

	"github.com/tbourn/go-storefront-backend/internal/domain"
	"github.com/tbourn/go-storefront-backend/internal/repo"
)

// OrderService manages custom-order submissions.
type OrderService struct {
	Store Storage
}

// NewOrderService constructs an OrderService over s.
func NewOrderService(s Storage) *OrderService { return &OrderService{Store: s} }

// Submit trims the payload and stores it. Field validation happens at the
// transport boundary.
func (s *OrderService) Submit(ctx context.Context, in domain.NewCustomOrder) (*domain.CustomOrder, error) {
	return s.Store.CreateCustomOrder(ctx, in.Normalize())
}

// List returns every custom order in submission order.
func (s *OrderService) List(ctx context.Context) ([]domain.CustomOrder, error) {
	return s.Store.ListCustomOrders(ctx)
}

// Get returns a single order or ErrOrderNotFound.
func (s *OrderService) Get(ctx context.Context, id string) (*domain.CustomOrder, error) {
	o, err := s.Store.GetCustomOrder(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}
