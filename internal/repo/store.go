// Package repo implements the storefront's persistence layer.
//
// Two interchangeable stores satisfy the same contract:
//   - MemStore: the default process-local store. All state lives in maps
//     guarded by a single RWMutex and is lost on restart.
//   - GormStore: the same contract over GORM (SQLite, Postgres, or MySQL).
//
// Error semantics:
//   - Lookups that match nothing return ErrNotFound (an alias of
//     gorm.ErrRecordNotFound so both stores report "absent" identically).
//   - Creates never fail for well-formed input in MemStore; GormStore
//     propagates raw database errors.
//   - Idempotency inserts that collide return ErrDuplicate.
package repo

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates that an idempotency record already exists for the
// given (scope, key) pair.
var ErrDuplicate = errors.New("duplicate")

// Stats summarizes store contents. It feeds the entity gauges and the weak
// ETag of the product listing.
type Stats struct {
	Users         int64
	Products      int64
	CustomOrders  int64
	Contacts      int64
	LastProductAt *time.Time
}

// Counts returns the entity counts keyed by entity name.
func (s Stats) Counts() map[string]int64 {
	return map[string]int64{
		"users":         s.Users,
		"products":      s.Products,
		"custom_orders": s.CustomOrders,
		"contacts":      s.Contacts,
	}
}

// newID generates a fresh UUIDv4 string.
func newID() string { return uuid.NewString() }

// utcNow is the default clock.
func utcNow() time.Time { return time.Now().UTC() }
