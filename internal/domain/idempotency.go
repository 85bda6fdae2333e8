package domain

import "time"

// Idempotency records the outcome of a submission made with an
// Idempotency-Key so that retries replay the original resource instead of
// creating a duplicate. Records are unique per (scope, key), where scope is
// the route that accepted the submission.
type Idempotency struct {
	ID         string    `gorm:"type:varchar(36);primaryKey"`
	Scope      string    `gorm:"type:varchar(128);not null;uniqueIndex:ux_idem_scope_key,priority:1"`
	Key        string    `gorm:"column:idem_key;type:varchar(200);not null;uniqueIndex:ux_idem_scope_key,priority:2"`
	ResourceID string    `gorm:"type:varchar(36);not null"`
	Status     int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }

// Expired reports whether the record is no longer valid at now.
func (r Idempotency) Expired(now time.Time) bool { return !now.Before(r.ExpiresAt) }
