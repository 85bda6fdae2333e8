package services

import (
	"context"
	"errors"
	"time"

	"github.com/tbourn/go-storefront-backend/internal/repo"
)

// DefaultIdempotencyTTL is how long a recorded submission can be replayed.
const DefaultIdempotencyTTL = 24 * time.Hour

// IdempotencyService remembers which resource a (scope, key) pair created.
type IdempotencyService struct {
	Repo IdempotencyRepo
	TTL  time.Duration
}

// NewIdempotencyService constructs the service; ttl <= 0 uses the default.
func NewIdempotencyService(r IdempotencyRepo, ttl time.Duration) *IdempotencyService {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyService{Repo: r, TTL: ttl}
}

// Lookup returns the resource id recorded for (scope, key) if still live.
func (s *IdempotencyService) Lookup(ctx context.Context, scope, key string, now time.Time) (string, bool, error) {
	rec, err := s.Repo.GetIdempotency(ctx, scope, key, now)
	if errors.Is(err, repo.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.ResourceID, true, nil
}

// Remember records (scope, key) → resourceID. A concurrent winner for the
// same pair is not an error.
func (s *IdempotencyService) Remember(ctx context.Context, scope, key, resourceID string, status int) error {
	_, err := s.Repo.CreateIdempotency(ctx, scope, key, resourceID, status, s.TTL)
	if errors.Is(err, repo.ErrDuplicate) {
		return nil
	}
	return err
}
