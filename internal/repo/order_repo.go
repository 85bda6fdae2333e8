// Package repo implements the data persistence layer. This file provides
// GORM repository functions for the CustomOrder and Contact models.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// CreateCustomOrder inserts a pending order built from in.
func CreateCustomOrder(ctx context.Context, db *gorm.DB, in domain.NewCustomOrder) (*domain.CustomOrder, error) {
	o := in.Build(newID(), utcNow())
	if err := db.WithContext(ctx).Create(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListCustomOrders returns all custom orders in insertion order.
func ListCustomOrders(ctx context.Context, db *gorm.DB) ([]domain.CustomOrder, error) {
	out := []domain.CustomOrder{}
	if err := db.WithContext(ctx).Order("seq asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetCustomOrder fetches an order by id or returns ErrNotFound.
func GetCustomOrder(ctx context.Context, db *gorm.DB, id string) (*domain.CustomOrder, error) {
	var o domain.CustomOrder
	if err := db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateContact inserts a contact submission built from in.
func CreateContact(ctx context.Context, db *gorm.DB, in domain.NewContact) (*domain.Contact, error) {
	c := in.Build(newID(), utcNow())
	if err := db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListContacts returns all contact submissions in insertion order.
func ListContacts(ctx context.Context, db *gorm.DB) ([]domain.Contact, error) {
	out := []domain.Contact{}
	if err := db.WithContext(ctx).Order("seq asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetContact fetches a contact submission by id or returns ErrNotFound.
func GetContact(ctx context.Context, db *gorm.DB, id string) (*domain.Contact, error) {
	var c domain.Contact
	if err := db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
