// Package repo implements the data persistence layer. This file provides
// GORM repository functions for the Product model.
//
// All functions are context-aware and accept a *gorm.DB handle, so they work
// inside transactions as well. They are thin: persistence and query
// composition only. Listing order is insertion order (ascending seq).
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// CreateProduct inserts a product built from in with a fresh UUID and UTC
// creation time.
func CreateProduct(ctx context.Context, db *gorm.DB, in domain.NewProduct) (*domain.Product, error) {
	p := in.Build(newID(), utcNow())
	if err := db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProducts returns all products in insertion order. It never returns a
// nil slice on success.
func ListProducts(ctx context.Context, db *gorm.DB) ([]domain.Product, error) {
	out := []domain.Product{}
	if err := db.WithContext(ctx).Order("seq asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return normalizeProducts(out), nil
}

// ListProductsByCategory returns products whose category equals category
// exactly, in insertion order.
func ListProductsByCategory(ctx context.Context, db *gorm.DB, category string) ([]domain.Product, error) {
	out := []domain.Product{}
	err := db.WithContext(ctx).
		Where("category = ?", category).
		Order("seq asc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return normalizeProducts(out), nil
}

// GetProduct fetches a product by id or returns ErrNotFound.
func GetProduct(ctx context.Context, db *gorm.DB, id string) (*domain.Product, error) {
	var p domain.Product
	if err := db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}

// CountProducts returns the number of stored products.
func CountProducts(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.Product{}).Count(&n).Error
	return n, err
}

// normalizeProducts restores the "images is never null" guarantee after a
// JSON column round-trip.
func normalizeProducts(ps []domain.Product) []domain.Product {
	for i := range ps {
		if ps[i].Images == nil {
			ps[i].Images = []string{}
		}
	}
	return ps
}
