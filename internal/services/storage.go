// Package services implements the storefront's application logic on top of
// an injected store. Services normalize inputs, translate repository errors
// into service errors, and never hold package-level state.
package services

import (
	"context"
	"time"

	"github.com/tbourn/go-storefront-backend/internal/domain"
	"github.com/tbourn/go-storefront-backend/internal/repo"
)

// Storage is the store contract consumed by the services. Both repo.MemStore
// and repo.GormStore implement it.
//
// Lookups that match nothing return repo.ErrNotFound. List operations return
// entities in insertion order and a non-nil slice on success.
type Storage interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error)

	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error)

	ListCustomOrders(ctx context.Context) ([]domain.CustomOrder, error)
	GetCustomOrder(ctx context.Context, id string) (*domain.CustomOrder, error)
	CreateCustomOrder(ctx context.Context, in domain.NewCustomOrder) (*domain.CustomOrder, error)

	ListContacts(ctx context.Context) ([]domain.Contact, error)
	GetContact(ctx context.Context, id string) (*domain.Contact, error)
	CreateContact(ctx context.Context, in domain.NewContact) (*domain.Contact, error)

	Stats(ctx context.Context) (repo.Stats, error)
}

// IdempotencyRepo persists idempotency records.
type IdempotencyRepo interface {
	GetIdempotency(ctx context.Context, scope, key string, now time.Time) (*domain.Idempotency, error)
	CreateIdempotency(ctx context.Context, scope, key, resourceID string, status int, ttl time.Duration) (*domain.Idempotency, error)
}

var (
	_ Storage         = (*repo.MemStore)(nil)
	_ Storage         = (*repo.GormStore)(nil)
	_ IdempotencyRepo = (*repo.MemStore)(nil)
	_ IdempotencyRepo = (*repo.GormStore)(nil)
)
