package repo

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// contract is the surface both stores implement.
type contract interface {
	ProductCreator
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, in domain.NewUser) (*domain.User, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListCustomOrders(ctx context.Context) ([]domain.CustomOrder, error)
	GetCustomOrder(ctx context.Context, id string) (*domain.CustomOrder, error)
	CreateCustomOrder(ctx context.Context, in domain.NewCustomOrder) (*domain.CustomOrder, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
	GetContact(ctx context.Context, id string) (*domain.Contact, error)
	CreateContact(ctx context.Context, in domain.NewContact) (*domain.Contact, error)
	GetIdempotency(ctx context.Context, scope, key string, now time.Time) (*domain.Idempotency, error)
	CreateIdempotency(ctx context.Context, scope, key, resourceID string, status int, ttl time.Duration) (*domain.Idempotency, error)
	Stats(ctx context.Context) (Stats, error)
}

var (
	_ contract = (*MemStore)(nil)
	_ contract = (*GormStore)(nil)
)

func newGormTestStore(t *testing.T) *GormStore {
	t.Helper()
	s := NewGormStore(newTestDB(t))
	seeded, err := s.Init(context.Background())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if !seeded {
		t.Fatal("Init on an empty database should seed")
	}
	return s
}

// eachStore runs fn against a fresh seeded store of every kind.
func eachStore(t *testing.T, fn func(t *testing.T, s contract)) {
	t.Helper()
	t.Run("memory", func(t *testing.T) { fn(t, NewMemStore()) })
	t.Run("gorm", func(t *testing.T) { fn(t, newGormTestStore(t)) })
}

func TestStore_SeedCatalog(t *testing.T) {
	eachStore(t, func(t *testing.T, s contract) {
		ps, err := s.ListProducts(context.Background())
		if err != nil {
			t.Fatalf("ListProducts: %v", err)
		}
		want := SeedProducts()
		if len(ps) != len(want) {
			t.Fatalf("expected %d seeded products, got %d", len(want), len(ps))
		}
		seen := map[string]bool{}
		for i, p := range ps {
			if p.Name != want[i].Name || p.PriceKES != want[i].PriceKES || p.Category != want[i].Category {
				t.Fatalf("product %d = %q/%d/%q, want %q/%d/%q", i, p.Name, p.PriceKES, p.Category, want[i].Name, want[i].PriceKES, want[i].Category)
			}
			if !p.IsFeatured() || p.InStock == nil || *p.InStock != *want[i].InStock {
				t.Fatalf("product %q lost optional fields: %+v", p.Name, p)
			}
			if !reflect.DeepEqual(p.AvailableSizes, want[i].AvailableSizes) || len(p.Images) != 1 {
				t.Fatalf("product %q lost list fields: %+v", p.Name, p)
			}
			if p.ID == "" || seen[p.ID] {
				t.Fatalf("expected unique non-empty ids, got %q", p.ID)
			}
			seen[p.ID] = true
		}
	})
}

func TestStore_CategoryFilterMatchesFullList(t *testing.T) {
	eachStore(t, func(t *testing.T, s contract) {
		ctx := context.Background()
		all, _ := s.ListProducts(ctx)
		for _, cat := range []string{"african-prints", "suits", "traditional", "Suits", "none"} {
			got, err := s.ListProductsByCategory(ctx, cat)
			if err != nil {
				t.Fatalf("ListProductsByCategory(%q): %v", cat, err)
			}
			want := []string{}
			for _, p := range all {
				if p.Category == cat {
					want = append(want, p.ID)
				}
			}
			ids := []string{}
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if !reflect.DeepEqual(ids, want) {
				t.Fatalf("category %q: got %v want %v", cat, ids, want)
			}
		}
	})
}

func TestStore_ProductEmptyListsSurvive(t *testing.T) {
	eachStore(t, func(t *testing.T, s contract) {
		ctx := context.Background()
		p, err := s.CreateProduct(ctx, domain.NewProduct{
			Name: "Kaftan", Description: "One size", Category: "traditional", Type: "ready", PriceKES: 5000,
			AvailableSizes: []string{},
		})
		if err != nil {
			t.Fatalf("CreateProduct: %v", err)
		}
		got, err := s.GetProduct(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetProduct: %v", err)
		}
		if got.AvailableSizes == nil || len(got.AvailableSizes) != 0 {
			t.Fatalf("empty sizes should read back as [], got %#v", got.AvailableSizes)
		}
		if got.FabricOptions != nil {
			t.Fatalf("absent fabrics should read back as nil, got %#v", got.FabricOptions)
		}
	})
}

func TestStore_ProductCreateAndGet(t *testing.T) {
	eachStore(t, func(t *testing.T, s contract) {
		ctx := context.Background()
		p, err := s.CreateProduct(ctx, domain.NewProduct{
			Name: "Dashiki Top", Description: "Embroidered", Category: "african-prints", Type: "ready", PriceKES: 6400,
		})
		if err != nil {
			t.Fatalf("CreateProduct: %v", err)
		}
		if p.Images == nil || len(p.Images) != 0 {
			t.Fatalf("expected empty non-nil images, got %#v", p.Images)
		}
		if p.AvailableSizes != nil || p.FabricOptions != nil || p.InStock != nil || p.Featured != nil {
			t.Fatalf("expected nil optionals, got %+v", p)
		}

		got1, err := s.GetProduct(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetProduct: %v", err)
		}
		got2, _ := s.GetProduct(ctx, p.ID)
		if got1.ID != p.ID || got1.Name != "Dashiki Top" || got1.Images == nil {
			t.Fatalf("unexpected product: %+v", got1)
		}
		if !reflect.DeepEqual(got1, got2) {
			t.Fatalf("repeated reads differ: %+v vs %+v", got1, got2)
		}

		all, _ := s.ListProducts(ctx)
		if all[len(all)-1].ID != p.ID {
			t.Fatalf("expected new product last in listing")
		}

		if _, err := s.GetProduct(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestStore_IDsDistinctAcrossEntityTypes(t *testing.T) {
	eachStore(t, func(t *testing.T, s contract) {
		ctx := context.Background()
		u, err := s.CreateUser(ctx, domain.NewUser{Username: "amina", Password: "pw"})
		if err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
		p, err := s.CreateProduct(ctx, domain.NewProduct{Name: "Kikoi", Description: "d", Category: "traditional", Type: "ready"})
		if err != nil {
			t.Fatalf("CreateProduct: %v", err)
		}
		o, err := s.CreateCustomOrder(ctx, domain.NewCustomOrder{
			Name: "Amina", Email: "a@example.com", Phone: "+254711000000", GarmentType: "suit", Measurements: "chest 100",
		})
		if err != nil {
			t.Fatalf("CreateCustomOrder: %v", err)
		}
		c, err := s.CreateContact(ctx, domain.NewContact{Name: "Amina", Email: "a@example.com", Message: "hello"})
		if err != nil {
			t.Fatalf("CreateContact: %v", err)
		}

		seen := map[string]string{}
		products, _ := s.ListProducts(ctx)
		for _, sp := range products {
			seen[sp.ID] = "product"
		}
		for kind, id := range map[string]string{"user": u.ID, "order": o.ID, "contact": c.ID} {
			if prev, dup := seen[id]; dup {
				t.Fatalf("%s id %q collides with %s", kind, id, prev)
			}
			seen[id] = kind
		}
		if seen[p.ID] != "product" || len(seen) != len(products)+3 {
			t.Fatalf("ids not pairwise distinct: %v", seen)
		}

		// An id of one type never resolves as another.
		if _, err := s.GetCustomOrder(ctx, p.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("product id resolved as order: %v", err)
		}
		if _, err := s.GetProduct(ctx, c.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("contact id resolved as product: %v", err)
		}
	})
}

func TestStore_CustomOrders(t *testing.T) {
	eachStore(t, func(t *testing.T, s contract) {
		ctx := context.Background()
		if list, _ := s.ListCustomOrders(ctx); list == nil || len(list) != 0 {
			t.Fatalf("expected empty non-nil list, got %#v", list)
		}
		o, err := s.CreateCustomOrder(ctx, domain.NewCustomOrder{
			Name: "Wanjiku", Email: "w@example.com", Phone: "+254700000000",
			GarmentType: "dress", Measurements: "bust 90",
		})
		if err != nil {
			t.Fatalf("CreateCustomOrder: %v", err)
		}
		if o.Status != domain.OrderStatusPending || o.EstimatedPrice != nil || o.SpecialRequirements != nil {
			t.Fatalf("unexpected new order: %+v", o)
		}
		got, err := s.GetCustomOrder(ctx, o.ID)
		if err != nil || got.Name != "Wanjiku" || got.Status != domain.OrderStatusPending {
			t.Fatalf("GetCustomOrder: %+v err=%v", got, err)
		}
		list, _ := s.ListCustomOrders(ctx)
		if len(list) != 1 || list[0].ID != o.ID {
			t.Fatalf("unexpected order list: %+v", list)
		}
		if _, err := s.GetCustomOrder(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestStore_Contacts(t *testing.T) {
	eachStore(t, func(t *testing.T, s contract) {
		ctx := context.Background()
		first, _ := s.CreateContact(ctx, domain.NewContact{Name: "A", Email: "a@example.com", Message: "one"})
		second, _ := s.CreateContact(ctx, domain.NewContact{Name: "B", Email: "b@example.com", Message: "two", Subject: "hi"})
		if first.ID == second.ID {
			t.Fatalf("expected distinct ids")
		}
		list, err := s.ListContacts(ctx)
		if err != nil || len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
			t.Fatalf("unexpected contact list: %+v err=%v", list, err)
		}
		got, err := s.GetContact(ctx, second.ID)
		if err != nil || got.Subject != "hi" {
			t.Fatalf("GetContact: %+v err=%v", got, err)
		}
		if _, err := s.GetContact(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestStore_UsersAllowDuplicateUsernames(t *testing.T) {
	eachStore(t, func(t *testing.T, s contract) {
		ctx := context.Background()
		u1, _ := s.CreateUser(ctx, domain.NewUser{Username: "amina", Password: "one"})
		u2, err := s.CreateUser(ctx, domain.NewUser{Username: "amina", Password: "two"})
		if err != nil {
			t.Fatalf("duplicate username rejected: %v", err)
		}
		if u1.ID == u2.ID {
			t.Fatalf("expected distinct ids")
		}
		got, err := s.GetUserByUsername(ctx, "amina")
		if err != nil || got.ID != u1.ID || got.Password != "one" {
			t.Fatalf("expected first inserted user, got %+v err=%v", got, err)
		}
		if byID, err := s.GetUser(ctx, u2.ID); err != nil || byID.Password != "two" {
			t.Fatalf("GetUser: %+v err=%v", byID, err)
		}
		if _, err := s.GetUserByUsername(ctx, "Amina"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected case-sensitive miss, got %v", err)
		}
		if _, err := s.GetUser(ctx, "nope"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestStore_Idempotency(t *testing.T) {
	eachStore(t, func(t *testing.T, s contract) {
		ctx := context.Background()
		if _, err := s.CreateIdempotency(ctx, ordersScope, "k", "o1", 201, time.Hour); err != nil {
			t.Fatalf("CreateIdempotency: %v", err)
		}
		if _, err := s.CreateIdempotency(ctx, ordersScope, "k", "o2", 201, time.Hour); !errors.Is(err, ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
		rec, err := s.GetIdempotency(ctx, ordersScope, "k", time.Now().UTC())
		if err != nil || rec.ResourceID != "o1" {
			t.Fatalf("GetIdempotency: %+v err=%v", rec, err)
		}
		if _, err := s.GetIdempotency(ctx, ordersScope, "k", time.Now().Add(2*time.Hour)); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected expiry, got %v", err)
		}
		if _, err := s.GetIdempotency(ctx, ordersScope, "", time.Now()); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected blank key miss, got %v", err)
		}
	})
}

func TestStore_Stats(t *testing.T) {
	eachStore(t, func(t *testing.T, s contract) {
		ctx := context.Background()
		_, _ = s.CreateContact(ctx, domain.NewContact{Name: "A", Email: "a@example.com", Message: "m"})
		st, err := s.Stats(ctx)
		if err != nil {
			t.Fatalf("Stats: %v", err)
		}
		if st.Products != 4 || st.Contacts != 1 || st.Users != 0 || st.CustomOrders != 0 {
			t.Fatalf("unexpected stats: %+v", st)
		}
		if st.LastProductAt == nil {
			t.Fatalf("expected LastProductAt to be set")
		}
	})
}

func TestGormStore_InitSeedsOnce(t *testing.T) {
	s := newGormTestStore(t)
	seeded, err := s.Init(context.Background())
	if err != nil {
		t.Fatalf("second Init: %v", err)
	}
	if seeded {
		t.Fatal("second Init must not report a seed")
	}
	n, err := CountProducts(context.Background(), s.DB)
	if err != nil || n != int64(len(SeedProducts())) {
		t.Fatalf("expected %d products after re-init, got %d err=%v", len(SeedProducts()), n, err)
	}
}
