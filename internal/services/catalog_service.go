// Package services – CatalogService
//
// This file implements read access to the product catalog: full listings with
// optional featured/limit filtering, exact category listings, lookups by id,
// and a keyword search backed by an in-memory index. Products are immutable
// once created, so the search index is rebuilt only when the product count
// changes.
package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-storefront-backend/internal/domain"
	"github.com/tbourn/go-storefront-backend/internal/repo"
	"github.com/tbourn/go-storefront-backend/internal/search"
)

// ProductFilter narrows List results. The zero value returns everything.
type ProductFilter struct {
	// Featured keeps only featured (true) or non-featured (false) products.
	Featured *bool
	// Limit caps the number of products returned; <= 0 means no cap.
	Limit int
}

// ProductHit is a search result.
type ProductHit struct {
	Product domain.Product `json:"product"`
	Score   float64        `json:"score" example:"0.5"`
}

// maxIndexedProducts bounds the search index; later products are listed but
// not searchable.
const maxIndexedProducts = 5000

// CatalogService serves product reads from the store.
type CatalogService struct {
	Store Storage

	// IndexOptions tune the search index.
	IndexOptions []search.Option

	mu     sync.Mutex
	idx    search.Index
	idxLen int
}

// NewCatalogService constructs a CatalogService over s.
func NewCatalogService(s Storage) *CatalogService {
	return &CatalogService{
		Store: s,
		IndexOptions: []search.Option{
			search.WithStopwords(search.DefaultStopwords),
			search.WithMinRunes(2),
			search.WithMaxDocs(maxIndexedProducts),
		},
	}
}

// List returns products in insertion order, filtered by f.
func (s *CatalogService) List(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	items, err := s.Store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if f.Featured == nil && f.Limit <= 0 {
		return items, nil
	}
	out := make([]domain.Product, 0, len(items))
	for _, p := range items {
		if f.Featured != nil && p.IsFeatured() != *f.Featured {
			continue
		}
		out = append(out, p)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}
	return out, nil
}

// ListByCategory returns products whose category equals category exactly.
func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.Store.ListProductsByCategory(ctx, category)
}

// Get returns a single product or ErrProductNotFound.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.Store.GetProduct(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// Search ranks products against q and returns at most k hits. A blank query
// yields ErrEmptyQuery; no matches yields an empty slice.
func (s *CatalogService) Search(ctx context.Context, q string, k int) ([]ProductHit, error) {
	tr := otel.Tracer("services/CatalogService")
	ctx, span := tr.Start(ctx, "Search",
		trace.WithAttributes(
			attribute.String("query", q),
			attribute.Int("k", k),
		),
	)
	defer span.End()

	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrEmptyQuery
	}

	products, err := s.Store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	results := s.index(products).TopK(q, k)
	hits := make([]ProductHit, 0, len(results))
	for _, r := range results {
		p, ok := byID[r.ID]
		if !ok {
			continue
		}
		hits = append(hits, ProductHit{Product: p, Score: r.Score})
	}
	span.SetAttributes(attribute.Int("hits", len(hits)))
	return hits, nil
}

// index returns the cached index, rebuilding it when products were added.
func (s *CatalogService) index(products []domain.Product) search.Index {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idx != nil && s.idxLen == len(products) {
		return s.idx
	}
	docs := make([]search.Document, 0, len(products))
	for _, p := range products {
		docs = append(docs, search.Document{ID: p.ID, Text: productText(p)})
	}
	s.idx = search.New(docs, s.IndexOptions...)
	s.idxLen = len(products)
	return s.idx
}

func productText(p domain.Product) string {
	parts := []string{p.Name, p.Description, p.Category}
	parts = append(parts, p.FabricOptions...)
	return strings.Join(parts, " ")
}
