package repo

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// table is an id-keyed map that remembers insertion order.
type table[T any] struct {
	byID  map[string]T
	order []string
}

func newTable[T any]() table[T] {
	return table[T]{byID: make(map[string]T)}
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.byID[id]; !ok {
		t.order = append(t.order, id)
	}
	t.byID[id] = v
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.byID[id]
	return v, ok
}

// each visits values in insertion order until fn returns false.
func (t *table[T]) each(fn func(T) bool) {
	for _, id := range t.order {
		if !fn(t.byID[id]) {
			return
		}
	}
}

func (t *table[T]) len() int { return len(t.order) }

// MemOption customizes a MemStore.
type MemOption func(*MemStore)

// WithoutSeed skips the fixture products normally inserted on construction.
func WithoutSeed() MemOption {
	return func(s *MemStore) { s.seed = false }
}

// WithClock overrides the time source used for CreatedAt stamps.
func WithClock(now func() time.Time) MemOption {
	return func(s *MemStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDFunc overrides the identifier generator.
func WithIDFunc(fn func() string) MemOption {
	return func(s *MemStore) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// MemStore is the in-process store. Every operation takes the same lock, so
// creates are serialized and readers never observe a half-written entity.
//
// Returned entities are copies; callers may not reach into the store's state.
type MemStore struct {
	mu       sync.RWMutex
	users    table[domain.User]
	products table[domain.Product]
	orders   table[domain.CustomOrder]
	contacts table[domain.Contact]
	idem     map[string]domain.Idempotency

	now   func() time.Time
	newID func() string
	seed  bool
}

// NewMemStore constructs a MemStore seeded with the fixture catalog unless
// WithoutSeed is given.
func NewMemStore(opts ...MemOption) *MemStore {
	s := &MemStore{
		users:    newTable[domain.User](),
		products: newTable[domain.Product](),
		orders:   newTable[domain.CustomOrder](),
		contacts: newTable[domain.Contact](),
		idem:     make(map[string]domain.Idempotency),
		now:      utcNow,
		newID:    newID,
		seed:     true,
	}
	for _, o := range opts {
		o(s)
	}
	if s.seed {
		// MemStore.CreateProduct cannot fail.
		_ = Seed(context.Background(), s)
	}
	return s
}

// --- users ---

// GetUser returns the user with id, or ErrNotFound.
func (s *MemStore) GetUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// GetUserByUsername scans users in insertion order and returns the first
// whose username matches exactly.
func (s *MemStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var found *domain.User
	s.users.each(func(u domain.User) bool {
		if u.Username == username {
			found = &u
			return false
		}
		return true
	})
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// CreateUser stores a new user. Duplicate usernames are accepted.
func (s *MemStore) CreateUser(_ context.Context, in domain.NewUser) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := domain.User{ID: s.newID(), Username: in.Username, Password: in.Password}
	s.users.put(u.ID, u)
	return &u, nil
}

// --- products ---

// ListProducts returns every product in insertion order.
func (s *MemStore) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, s.products.len())
	s.products.each(func(p domain.Product) bool {
		out = append(out, p.Clone())
		return true
	})
	return out, nil
}

// ListProductsByCategory returns products whose category equals category
// exactly (case-sensitive), preserving insertion order.
func (s *MemStore) ListProductsByCategory(_ context.Context, category string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Product{}
	s.products.each(func(p domain.Product) bool {
		if p.Category == category {
			out = append(out, p.Clone())
		}
		return true
	})
	return out, nil
}

// GetProduct returns the product with id, or ErrNotFound.
func (s *MemStore) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	c := p.Clone()
	return &c, nil
}

// CreateProduct stores a new product with defaults applied.
func (s *MemStore) CreateProduct(_ context.Context, in domain.NewProduct) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := in.Build(s.newID(), s.now())
	s.products.put(p.ID, p)
	c := p.Clone()
	return &c, nil
}

// --- custom orders ---

// ListCustomOrders returns every custom order in insertion order.
func (s *MemStore) ListCustomOrders(_ context.Context) ([]domain.CustomOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CustomOrder, 0, s.orders.len())
	s.orders.each(func(o domain.CustomOrder) bool {
		out = append(out, cloneOrder(o))
		return true
	})
	return out, nil
}

// GetCustomOrder returns the custom order with id, or ErrNotFound.
func (s *MemStore) GetCustomOrder(_ context.Context, id string) (*domain.CustomOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	c := cloneOrder(o)
	return &c, nil
}

// CreateCustomOrder stores a new pending order.
func (s *MemStore) CreateCustomOrder(_ context.Context, in domain.NewCustomOrder) (*domain.CustomOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := in.Build(s.newID(), s.now())
	s.orders.put(o.ID, o)
	c := cloneOrder(o)
	return &c, nil
}

// --- contacts ---

// ListContacts returns every contact submission in insertion order.
func (s *MemStore) ListContacts(_ context.Context) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Contact, 0, s.contacts.len())
	s.contacts.each(func(c domain.Contact) bool {
		out = append(out, c)
		return true
	})
	return out, nil
}

// GetContact returns the contact with id, or ErrNotFound.
func (s *MemStore) GetContact(_ context.Context, id string) (*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contacts.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// CreateContact stores a new contact submission.
func (s *MemStore) CreateContact(_ context.Context, in domain.NewContact) (*domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := in.Build(s.newID(), s.now())
	s.contacts.put(c.ID, c)
	return &c, nil
}

// --- idempotency ---

// GetIdempotency returns a non-expired record for (scope, key) or ErrNotFound.
func (s *MemStore) GetIdempotency(_ context.Context, scope, key string, now time.Time) (*domain.Idempotency, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.idem[idemKey(scope, key)]
	if !ok || rec.Expired(now) {
		return nil, ErrNotFound
	}
	return &rec, nil
}

// CreateIdempotency records (scope, key) → resourceID. A live record for the
// same pair yields ErrDuplicate; an expired one is replaced.
func (s *MemStore) CreateIdempotency(_ context.Context, scope, key, resourceID string, status int, ttl time.Duration) (*domain.Idempotency, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	k := idemKey(scope, key)
	if prev, ok := s.idem[k]; ok && !prev.Expired(now) {
		return nil, ErrDuplicate
	}
	rec := domain.Idempotency{
		ID:         s.newID(),
		Scope:      scope,
		Key:        key,
		ResourceID: resourceID,
		Status:     status,
		CreatedAt:  now,
		ExpiresAt:  now.Add(ttl),
	}
	s.idem[k] = rec
	return &rec, nil
}

// --- stats ---

// Stats reports entity counts and the newest product timestamp.
func (s *MemStore) Stats(_ context.Context) (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := Stats{
		Users:        int64(s.users.len()),
		Products:     int64(s.products.len()),
		CustomOrders: int64(s.orders.len()),
		Contacts:     int64(s.contacts.len()),
	}
	s.products.each(func(p domain.Product) bool {
		if st.LastProductAt == nil || p.CreatedAt.After(*st.LastProductAt) {
			ts := p.CreatedAt
			st.LastProductAt = &ts
		}
		return true
	})
	return st, nil
}

func idemKey(scope, key string) string { return scope + "\x00" + key }

func cloneOrder(o domain.CustomOrder) domain.CustomOrder {
	if o.SpecialRequirements != nil {
		v := *o.SpecialRequirements
		o.SpecialRequirements = &v
	}
	if o.EstimatedPrice != nil {
		v := *o.EstimatedPrice
		o.EstimatedPrice = &v
	}
	return o
}
