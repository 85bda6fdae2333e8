package repo

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// memDSN names a private shared-cache memory database for the running test.
func memDSN(t *testing.T) string {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

func newTestDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()
	// Unique DB per test to avoid schema leaking across tests.
	db, err := gorm.Open(sqlite.Open(memDSN(t)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func allModels() []any {
	return []any{&domain.User{}, &domain.Product{}, &domain.CustomOrder{}, &domain.Contact{}, &domain.Idempotency{}}
}

func TestStoreStats_CountError_NoTable(t *testing.T) {
	db := newTestDB(t /* no migrations */)
	if _, err := StoreStats(context.Background(), db); err == nil {
		t.Fatalf("expected error due to missing tables")
	}
}

func TestStoreStats_ZeroRows(t *testing.T) {
	db := newTestDB(t, allModels()...)
	st, err := StoreStats(context.Background(), db)
	if err != nil {
		t.Fatalf("StoreStats error: %v", err)
	}
	if st.Users != 0 || st.Products != 0 || st.CustomOrders != 0 || st.Contacts != 0 || st.LastProductAt != nil {
		t.Fatalf("expected zero stats, got %+v", st)
	}
}

func TestStoreStats_CountsAndLatestProduct(t *testing.T) {
	db := newTestDB(t, allModels()...)
	ctx := context.Background()

	t1 := time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC) // latest
	t3 := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	for i, at := range []time.Time{t1, t2, t3} {
		p := domain.NewProduct{Name: "p", Description: "d", Category: "c", Type: "ready"}.Build(fmt.Sprintf("p%d", i), at)
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("insert product: %v", err)
		}
	}
	if _, err := CreateUser(ctx, db, domain.NewUser{Username: "amina", Password: "pw"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := CreateContact(ctx, db, domain.NewContact{Name: "n", Email: "a@b.co", Message: "m"}); err != nil {
		t.Fatalf("CreateContact: %v", err)
	}

	st, err := StoreStats(ctx, db)
	if err != nil {
		t.Fatalf("StoreStats: %v", err)
	}
	if st.Products != 3 || st.Users != 1 || st.Contacts != 1 || st.CustomOrders != 0 {
		t.Fatalf("unexpected counts: %+v", st)
	}
	if st.LastProductAt == nil || !st.LastProductAt.Equal(t2) {
		t.Fatalf("LastProductAt=%v want %v", st.LastProductAt, t2)
	}

	counts := st.Counts()
	want := map[string]int64{"users": 1, "products": 3, "custom_orders": 0, "contacts": 1}
	for k, v := range want {
		if counts[k] != v {
			t.Fatalf("Counts()[%q]=%d want %d", k, counts[k], v)
		}
	}
}
