package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/go-storefront-backend/internal/domain"
	"github.com/tbourn/go-storefront-backend/internal/repo"
)

// ----- Fakes -----

// brokenStore fails every call; it embeds a MemStore only to satisfy the
// interface for the methods a test does not override.
type brokenStore struct {
	*repo.MemStore
	err error
}

func (b *brokenStore) ListProducts(context.Context) ([]domain.Product, error) { return nil, b.err }
func (b *brokenStore) GetProduct(context.Context, string) (*domain.Product, error) {
	return nil, b.err
}
func (b *brokenStore) GetCustomOrder(context.Context, string) (*domain.CustomOrder, error) {
	return nil, b.err
}

type fakeIdemRepo struct {
	rec       *domain.Idempotency
	getErr    error
	createErr error

	gotScope, gotKey, gotResource string
	gotTTL                        time.Duration
}

func (f *fakeIdemRepo) GetIdempotency(_ context.Context, scope, key string, _ time.Time) (*domain.Idempotency, error) {
	f.gotScope, f.gotKey = scope, key
	return f.rec, f.getErr
}

func (f *fakeIdemRepo) CreateIdempotency(_ context.Context, scope, key, resourceID string, _ int, ttl time.Duration) (*domain.Idempotency, error) {
	f.gotScope, f.gotKey, f.gotResource, f.gotTTL = scope, key, resourceID, ttl
	return nil, f.createErr
}

func boolPtr(b bool) *bool     { return &b }
func strp(s string) *string    { return &s }
func newStore() *repo.MemStore { return repo.NewMemStore() }
func bg() context.Context      { return context.Background() }

// ----- CatalogService -----

func TestCatalog_List_FiltersAndLimit(t *testing.T) {
	s := newStore()
	featuredFalse := "false"
	if _, err := s.CreateProduct(bg(), domain.NewProduct{
		Name: "Plain Tee", Description: "Basic", Category: "casual", Type: "ready",
		PriceKES: 1000, Featured: &featuredFalse,
	}); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	svc := NewCatalogService(s)

	all, err := svc.List(bg(), ProductFilter{})
	if err != nil || len(all) != 5 {
		t.Fatalf("List all = %d, %v; want 5", len(all), err)
	}

	feat, _ := svc.List(bg(), ProductFilter{Featured: boolPtr(true)})
	if len(feat) != 4 {
		t.Fatalf("featured = %d; want 4", len(feat))
	}
	notFeat, _ := svc.List(bg(), ProductFilter{Featured: boolPtr(false)})
	if len(notFeat) != 1 || notFeat[0].Name != "Plain Tee" {
		t.Fatalf("non-featured = %+v", notFeat)
	}

	lim, _ := svc.List(bg(), ProductFilter{Limit: 2})
	if len(lim) != 2 || lim[0].Name != "Ankara Midi Dress" || lim[1].Name != "Kitenge Shirt" {
		t.Fatalf("limit 2 = %+v", lim)
	}
}

func TestCatalog_ListByCategory(t *testing.T) {
	svc := NewCatalogService(newStore())
	got, err := svc.ListByCategory(bg(), "suits")
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Executive Blazer" {
		t.Fatalf("suits = %+v", got)
	}
	none, _ := svc.ListByCategory(bg(), "Suits")
	if none == nil || len(none) != 0 {
		t.Fatalf("case-sensitive miss should be empty non-nil, got %#v", none)
	}
}

func TestCatalog_Get(t *testing.T) {
	s := newStore()
	svc := NewCatalogService(s)
	all, _ := s.ListProducts(bg())

	p, err := svc.Get(bg(), all[0].ID)
	if err != nil || p.ID != all[0].ID {
		t.Fatalf("Get = %+v, %v", p, err)
	}
	if _, err := svc.Get(bg(), "missing"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}

	boom := errors.New("boom")
	bad := NewCatalogService(&brokenStore{MemStore: s, err: boom})
	if _, err := bad.Get(bg(), "x"); !errors.Is(err, boom) {
		t.Fatalf("raw error should pass through, got %v", err)
	}
	if _, err := bad.List(bg(), ProductFilter{}); !errors.Is(err, boom) {
		t.Fatalf("List should pass through error, got %v", err)
	}
	if _, err := bad.Search(bg(), "dress", 3); !errors.Is(err, boom) {
		t.Fatalf("Search should pass through error, got %v", err)
	}
}

func TestCatalog_Search(t *testing.T) {
	s := newStore()
	svc := NewCatalogService(s)

	if _, err := svc.Search(bg(), "   ", 3); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("blank query: want ErrEmptyQuery, got %v", err)
	}

	hits, err := svc.Search(bg(), "wool blazer", 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Product.Name != "Executive Blazer" || hits[0].Score <= 0 {
		t.Fatalf("hits = %+v", hits)
	}

	none, err := svc.Search(bg(), "zebra", 5)
	if err != nil || none == nil || len(none) != 0 {
		t.Fatalf("no match should be empty non-nil, got %#v, %v", none, err)
	}

	// A new product invalidates the cached index.
	if _, err := s.CreateProduct(bg(), domain.NewProduct{
		Name: "Wool Overcoat", Description: "Winter layer", Category: "outerwear", Type: "ready", PriceKES: 30000,
	}); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	hits, _ = svc.Search(bg(), "wool", 5)
	if len(hits) != 2 {
		t.Fatalf("expected 2 wool hits after insert, got %+v", hits)
	}
}

// ----- OrderService -----

func TestOrder_SubmitNormalizes(t *testing.T) {
	s := newStore()
	svc := NewOrderService(s)

	o, err := svc.Submit(bg(), domain.NewCustomOrder{
		Name: "  Jane Doe ", Email: " jane@example.com ", Phone: "0712345678",
		GarmentType: "dress", Measurements: "bust 90", SpecialRequirements: strp("   "),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if o.Name != "Jane Doe" || o.Email != "jane@example.com" {
		t.Fatalf("fields not trimmed: %+v", o)
	}
	if o.Status != domain.OrderStatusPending || o.EstimatedPrice != nil || o.SpecialRequirements != nil {
		t.Fatalf("defaults not applied: %+v", o)
	}

	list, _ := svc.List(bg())
	if len(list) != 1 || list[0].ID != o.ID {
		t.Fatalf("List = %+v", list)
	}
	got, err := svc.Get(bg(), o.ID)
	if err != nil || got.ID != o.ID {
		t.Fatalf("Get = %+v, %v", got, err)
	}
	if _, err := svc.Get(bg(), "nope"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
}

// ----- ContactService -----

func TestContact_SubmitListGet(t *testing.T) {
	svc := NewContactService(newStore())
	c, err := svc.Submit(bg(), domain.NewContact{Name: " Ann ", Email: "ann@example.com", Message: " hi "})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if c.Name != "Ann" || c.Message != "hi" || c.ID == "" || c.CreatedAt.IsZero() {
		t.Fatalf("unexpected contact: %+v", c)
	}
	list, _ := svc.List(bg())
	if len(list) != 1 {
		t.Fatalf("List len = %d", len(list))
	}
	if _, err := svc.Get(bg(), c.ID); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := svc.Get(bg(), "nope"); !errors.Is(err, ErrContactNotFound) {
		t.Fatalf("want ErrContactNotFound, got %v", err)
	}
}

// ----- UserService -----

func TestUser_RegisterAndFind(t *testing.T) {
	svc := NewUserService(newStore())

	if _, err := svc.Register(bg(), "  ", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("blank username: got %v", err)
	}
	if _, err := svc.Register(bg(), "amina", " "); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("blank password: got %v", err)
	}

	first, err := svc.Register(bg(), " amina ", "secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if first.Username != "amina" || first.Password != "secret" {
		t.Fatalf("unexpected user: %+v", first)
	}
	second, err := svc.Register(bg(), "amina", "other")
	if err != nil {
		t.Fatalf("duplicate usernames are permitted, got %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("ids must differ")
	}

	found, err := svc.FindByUsername(bg(), "amina")
	if err != nil || found.ID != first.ID {
		t.Fatalf("first match expected, got %+v, %v", found, err)
	}
	if _, err := svc.FindByUsername(bg(), "nobody"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
	if u, err := svc.Get(bg(), second.ID); err != nil || u.Password != "other" {
		t.Fatalf("Get = %+v, %v", u, err)
	}
	if _, err := svc.Get(bg(), "nope"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}

// ----- CurrencyService -----

func TestCurrency_Rates(t *testing.T) {
	r := NewCurrencyService(150).Rates()
	if r.USDToKES != 150 || r.KESToUSD != 1.0/150 {
		t.Fatalf("rates = %+v", r)
	}
	if d := NewCurrencyService(0).Rates(); d.USDToKES != DefaultUSDToKES {
		t.Fatalf("non-positive rate should default, got %+v", d)
	}
}

func TestCurrency_Convert(t *testing.T) {
	svc := NewCurrencyService(150)
	cases := []struct {
		amount, from, to, want string
		err                    error
	}{
		{"15500", "KES", "USD", "103", nil},
		{"225", "kes", "usd", "2", nil}, // 1.5 → 2
		{"224", "KES", "USD", "1", nil}, // 1.49 → 1
		{"10.5", "USD", "KES", "1575", nil},
		{"42", "USD", "USD", "42", nil},
		{"1", "EUR", "USD", "", ErrUnsupportedCurrency},
		{"-1", "KES", "USD", "", ErrInvalidAmount},
	}
	for _, tc := range cases {
		amt, err := ParseAmount(tc.amount)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", tc.amount, err)
		}
		got, err := svc.Convert(amt, tc.from, tc.to)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("Convert(%s %s→%s) err = %v; want %v", tc.amount, tc.from, tc.to, err, tc.err)
			}
			continue
		}
		if err != nil || got.String() != tc.want {
			t.Errorf("Convert(%s %s→%s) = %s, %v; want %s", tc.amount, tc.from, tc.to, got, err, tc.want)
		}
	}
	if _, err := ParseAmount("abc"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("ParseAmount should reject garbage, got %v", err)
	}
}

// ----- IdempotencyService -----

func TestIdempotency_LookupAndRemember(t *testing.T) {
	f := &fakeIdemRepo{getErr: repo.ErrNotFound}
	svc := NewIdempotencyService(f, 0)
	if svc.TTL != DefaultIdempotencyTTL {
		t.Fatalf("default TTL not applied: %v", svc.TTL)
	}

	id, ok, err := svc.Lookup(bg(), "/api/contacts", "k1", time.Now())
	if err != nil || ok || id != "" {
		t.Fatalf("miss = %q, %v, %v", id, ok, err)
	}

	f.getErr = nil
	f.rec = &domain.Idempotency{ResourceID: "res-1"}
	id, ok, err = svc.Lookup(bg(), "/api/contacts", "k1", time.Now())
	if err != nil || !ok || id != "res-1" {
		t.Fatalf("hit = %q, %v, %v", id, ok, err)
	}

	boom := errors.New("db down")
	f.getErr = boom
	if _, _, err := svc.Lookup(bg(), "s", "k", time.Now()); !errors.Is(err, boom) {
		t.Fatalf("lookup error should propagate, got %v", err)
	}

	if err := svc.Remember(bg(), "s", "k", "r", 201); err != nil {
		t.Fatalf("Remember: %v", err)
	}
	if f.gotResource != "r" || f.gotTTL != DefaultIdempotencyTTL {
		t.Fatalf("Remember args not forwarded: %+v", f)
	}
	f.createErr = repo.ErrDuplicate
	if err := svc.Remember(bg(), "s", "k", "r", 201); err != nil {
		t.Fatalf("duplicate should be swallowed, got %v", err)
	}
	f.createErr = boom
	if err := svc.Remember(bg(), "s", "k", "r", 201); !errors.Is(err, boom) {
		t.Fatalf("other errors should propagate, got %v", err)
	}
}

func TestIdempotency_WithMemStore(t *testing.T) {
	svc := NewIdempotencyService(repo.NewMemStore(repo.WithoutSeed()), time.Hour)
	if err := svc.Remember(bg(), "/api/custom-orders", "abc", "order-1", 201); err != nil {
		t.Fatalf("Remember: %v", err)
	}
	id, ok, err := svc.Lookup(bg(), "/api/custom-orders", "abc", time.Now().UTC())
	if err != nil || !ok || id != "order-1" {
		t.Fatalf("Lookup = %q, %v, %v", id, ok, err)
	}
	if _, ok, _ := svc.Lookup(bg(), "/api/contacts", "abc", time.Now().UTC()); ok {
		t.Fatalf("keys must be scoped by route")
	}
	if _, ok, _ := svc.Lookup(bg(), "/api/custom-orders", "abc", time.Now().UTC().Add(2*time.Hour)); ok {
		t.Fatalf("expired record must not replay")
	}
}
