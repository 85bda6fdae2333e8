package repo

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// GormStore adapts the repository free functions to the store contract over
// a single *gorm.DB handle.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore wraps db. Call Init before serving traffic.
func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

// Init migrates the schema and seeds the fixture catalog when the products
// table is empty, so restarting against a persistent database does not
// duplicate the seed. seeded reports whether the fixtures were inserted.
func (s *GormStore) Init(ctx context.Context) (seeded bool, err error) {
	if err := AutoMigrate(s.DB); err != nil {
		return false, fmt.Errorf("migrate: %w", err)
	}
	n, err := CountProducts(ctx, s.DB)
	if err != nil {
		return false, fmt.Errorf("count products: %w", err)
	}
	if n > 0 {
		return false, nil
	}
	if err := Seed(ctx, s); err != nil {
		return false, err
	}
	return true, nil
}

// GetUser proxies GetUser.
func (s *GormStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return GetUser(ctx, s.DB, id)
}

// GetUserByUsername proxies GetUserByUsername.
func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return GetUserByUsername(ctx, s.DB, username)
}

// CreateUser proxies CreateUser.
func (s *GormStore) CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	return CreateUser(ctx, s.DB, in)
}

// ListProducts proxies ListProducts.
func (s *GormStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return ListProducts(ctx, s.DB)
}

// ListProductsByCategory proxies ListProductsByCategory.
func (s *GormStore) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return ListProductsByCategory(ctx, s.DB, category)
}

// GetProduct proxies GetProduct.
func (s *GormStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return GetProduct(ctx, s.DB, id)
}

// CreateProduct proxies CreateProduct.
func (s *GormStore) CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error) {
	return CreateProduct(ctx, s.DB, in)
}

// ListCustomOrders proxies ListCustomOrders.
func (s *GormStore) ListCustomOrders(ctx context.Context) ([]domain.CustomOrder, error) {
	return ListCustomOrders(ctx, s.DB)
}

// GetCustomOrder proxies GetCustomOrder.
func (s *GormStore) GetCustomOrder(ctx context.Context, id string) (*domain.CustomOrder, error) {
	return GetCustomOrder(ctx, s.DB, id)
}

// CreateCustomOrder proxies CreateCustomOrder.
func (s *GormStore) CreateCustomOrder(ctx context.Context, in domain.NewCustomOrder) (*domain.CustomOrder, error) {
	return CreateCustomOrder(ctx, s.DB, in)
}

// ListContacts proxies ListContacts.
func (s *GormStore) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	return ListContacts(ctx, s.DB)
}

// GetContact proxies GetContact.
func (s *GormStore) GetContact(ctx context.Context, id string) (*domain.Contact, error) {
	return GetContact(ctx, s.DB, id)
}

// CreateContact proxies CreateContact.
func (s *GormStore) CreateContact(ctx context.Context, in domain.NewContact) (*domain.Contact, error) {
	return CreateContact(ctx, s.DB, in)
}

// GetIdempotency proxies GetIdempotency.
func (s *GormStore) GetIdempotency(ctx context.Context, scope, key string, now time.Time) (*domain.Idempotency, error) {
	return GetIdempotency(ctx, s.DB, scope, key, now)
}

// CreateIdempotency proxies CreateIdempotency.
func (s *GormStore) CreateIdempotency(ctx context.Context, scope, key, resourceID string, status int, ttl time.Duration) (*domain.Idempotency, error) {
	return CreateIdempotency(ctx, s.DB, scope, key, resourceID, status, ttl)
}

// Stats proxies StoreStats.
func (s *GormStore) Stats(ctx context.Context) (Stats, error) {
	return StoreStats(ctx, s.DB)
}
