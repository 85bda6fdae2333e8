// Package handlers provides the HTTP handlers of the storefront API.
//
// Handlers are transport-thin: they bind and validate input, call the
// application services, and translate results into responses. They depend
// on the service contracts below rather than concrete types.
package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tbourn/go-storefront-backend/internal/domain"
	"github.com/tbourn/go-storefront-backend/internal/repo"
	"github.com/tbourn/go-storefront-backend/internal/services"
)

// CatalogService serves product reads.
type CatalogService interface {
	List(ctx context.Context, f services.ProductFilter) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, q string, k int) ([]services.ProductHit, error)
}

// OrderService handles custom-order submissions.
type OrderService interface {
	Submit(ctx context.Context, in domain.NewCustomOrder) (*domain.CustomOrder, error)
	List(ctx context.Context) ([]domain.CustomOrder, error)
	Get(ctx context.Context, id string) (*domain.CustomOrder, error)
}

// ContactService handles contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, in domain.NewContact) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
	Get(ctx context.Context, id string) (*domain.Contact, error)
}

// CurrencyService reports and applies the configured exchange rate.
type CurrencyService interface {
	Rates() services.Rates
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}

// IdempotencyRecorder remembers which resource an idempotent submission
// created.
type IdempotencyRecorder interface {
	Remember(ctx context.Context, scope, key, resourceID string, status int) error
}

// StatsFunc reports store statistics; it backs the product-list ETag.
type StatsFunc func(ctx context.Context) (repo.Stats, error)

// Services bundles the handler dependencies. Idempotency and Stats are
// optional.
type Services struct {
	Catalog     CatalogService
	Orders      OrderService
	Contacts    ContactService
	Currency    CurrencyService
	Idempotency IdempotencyRecorder
	Stats       StatsFunc
}

// Handlers groups the storefront endpoints.
type Handlers struct {
	catalog  CatalogService
	orders   OrderService
	contacts ContactService
	currency CurrencyService
	idem     IdempotencyRecorder
	stats    StatsFunc
}

// New constructs Handlers bound to s.
func New(s Services) *Handlers {
	return &Handlers{
		catalog:  s.Catalog,
		orders:   s.Orders,
		contacts: s.Contacts,
		currency: s.Currency,
		idem:     s.Idempotency,
		stats:    s.Stats,
	}
}
