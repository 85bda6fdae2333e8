// Package repo implements the data persistence layer. This file provides
// aggregate queries used for metrics and conditional responses (ETag).
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// StoreStats counts every entity table and finds the newest product
// timestamp. LastProductAt is nil when there are no products.
func StoreStats(ctx context.Context, db *gorm.DB) (Stats, error) {
	var st Stats
	q := db.WithContext(ctx)

	if err := q.Model(&domain.User{}).Count(&st.Users).Error; err != nil {
		return Stats{}, err
	}
	if err := q.Model(&domain.Product{}).Count(&st.Products).Error; err != nil {
		return Stats{}, err
	}
	if err := q.Model(&domain.CustomOrder{}).Count(&st.CustomOrders).Error; err != nil {
		return Stats{}, err
	}
	if err := q.Model(&domain.Contact{}).Count(&st.Contacts).Error; err != nil {
		return Stats{}, err
	}
	if st.Products == 0 {
		return st, nil
	}

	// Avoid MAX() -> TEXT in SQLite.
	var row struct {
		CreatedAt time.Time
	}
	if err := q.Model(&domain.Product{}).Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return Stats{}, err
	}
	st.LastProductAt = &row.CreatedAt
	return st, nil
}
