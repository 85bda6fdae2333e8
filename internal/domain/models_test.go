package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:domain_models?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		(User{}).TableName():        "users",
		(Product{}).TableName():     "products",
		(CustomOrder{}).TableName(): "custom_orders",
		(Contact{}).TableName():     "contacts",
		(Idempotency{}).TableName(): "idempotency",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("TableName() = %q; want %q", got, want)
		}
	}
}

func TestMigrations_Indexes_AndSeqOrder(t *testing.T) {
	db := newDomainDB(t)

	if err := db.AutoMigrate(&User{}, &Product{}, &CustomOrder{}, &Contact{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	m := db.Migrator()
	for _, tbl := range []any{&User{}, &Product{}, &CustomOrder{}, &Contact{}} {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}
	if !m.HasIndex(&Product{}, "Category") {
		t.Fatalf("expected category index on products")
	}
	if !m.HasIndex(&Product{}, "ID") {
		t.Fatalf("expected unique id index on products")
	}

	// Seq is assigned in insertion order.
	now := time.Now().UTC()
	a := NewContact{Name: "a", Email: "a@x.io", Message: "m"}.Build("c-b", now)
	b := NewContact{Name: "b", Email: "b@x.io", Message: "m"}.Build("c-a", now)
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("create a: %v", err)
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("create b: %v", err)
	}
	if a.Seq == 0 || b.Seq <= a.Seq {
		t.Fatalf("expected increasing seq, got %d then %d", a.Seq, b.Seq)
	}

	// Duplicate public id is rejected.
	dup := NewContact{Name: "c", Email: "c@x.io", Message: "m"}.Build("c-a", now)
	if err := db.Create(&dup).Error; err == nil {
		t.Fatalf("expected unique violation on duplicate id")
	}
}

func TestProductBuild_KeepsExplicitEmptyLists(t *testing.T) {
	p := NewProduct{
		Name: "n", Description: "d", Category: "c", Type: "ready",
		AvailableSizes: []string{},
	}.Build("p1", time.Now())

	if p.AvailableSizes == nil || len(p.AvailableSizes) != 0 {
		t.Fatalf("explicit empty sizes should stay empty, got %#v", p.AvailableSizes)
	}
	if p.FabricOptions != nil {
		t.Fatalf("absent fabrics should stay nil, got %#v", p.FabricOptions)
	}
	raw, _ := json.Marshal(p)
	if s := string(raw); !strings.Contains(s, `"availableSizes":[]`) || !strings.Contains(s, `"fabricOptions":null`) {
		t.Fatalf("unexpected JSON: %s", s)
	}
}

func TestProductBuild_Defaults(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	empty := ""
	p := NewProduct{
		Name: "n", Description: "d", Category: "c", Type: "ready", PriceKES: 10,
		Featured: &empty,
	}.Build("p1", now)

	if p.ID != "p1" || !p.CreatedAt.Equal(now) {
		t.Fatalf("identity not applied: %+v", p)
	}
	if p.Images == nil || len(p.Images) != 0 {
		t.Fatalf("expected empty non-nil images, got %#v", p.Images)
	}
	if p.AvailableSizes != nil || p.FabricOptions != nil || p.InStock != nil || p.Featured != nil {
		t.Fatalf("expected absent optionals to be nil: %+v", p)
	}
	if p.IsFeatured() {
		t.Fatalf("product without flag must not be featured")
	}

	raw, _ := json.Marshal(p)
	s := string(raw)
	for _, frag := range []string{`"images":[]`, `"availableSizes":null`, `"inStock":null`, `"featured":null`, `"priceKES":10`} {
		if !strings.Contains(s, frag) {
			t.Fatalf("expected %s in %s", frag, s)
		}
	}
	if strings.Contains(s, "seq") || strings.Contains(s, "Seq") {
		t.Fatalf("seq must not be serialized: %s", s)
	}
}

func TestProductBuild_CopiesInputs(t *testing.T) {
	stock := 3
	yes := FeaturedYes
	in := NewProduct{Images: []string{"a"}, AvailableSizes: []string{"M"}, InStock: &stock, Featured: &yes}
	p := in.Build("p", time.Now())

	in.Images[0] = "b"
	in.AvailableSizes[0] = "L"
	stock = 9
	if p.Images[0] != "a" || p.AvailableSizes[0] != "M" || *p.InStock != 3 {
		t.Fatalf("Build aliases its input: %+v", p)
	}
	if !p.IsFeatured() {
		t.Fatalf("expected featured product")
	}
}

func TestProductClone(t *testing.T) {
	stock := 1
	f := "false"
	p := Product{Images: nil, FabricOptions: []string{"silk"}, InStock: &stock, Featured: &f}
	c := p.Clone()

	if c.Images == nil {
		t.Fatalf("clone must restore empty images")
	}
	c.FabricOptions[0] = "wool"
	*c.InStock = 7
	*c.Featured = "true"
	if p.FabricOptions[0] != "silk" || *p.InStock != 1 || *p.Featured != "false" {
		t.Fatalf("clone shares state with original: %+v", p)
	}
	if p.IsFeatured() || !c.IsFeatured() {
		t.Fatalf("IsFeatured mismatch")
	}
}

func TestCustomOrder_NormalizeAndBuild(t *testing.T) {
	blank := "   "
	in := NewCustomOrder{
		Name: "  Wanjiku ", Email: " w@example.com", Phone: "0700", GarmentType: "dress ",
		Measurements: "\tbust 90\n", SpecialRequirements: &blank,
	}.Normalize()
	if in.Name != "Wanjiku" || in.Email != "w@example.com" || in.GarmentType != "dress" || in.Measurements != "bust 90" {
		t.Fatalf("fields not trimmed: %+v", in)
	}
	if in.SpecialRequirements != nil {
		t.Fatalf("blank special requirements should become nil")
	}

	note := " lined "
	in.SpecialRequirements = &note
	in = in.Normalize()
	o := in.Build("o1", time.Now())
	if o.Status != OrderStatusPending || o.EstimatedPrice != nil {
		t.Fatalf("new order must be pending without price: %+v", o)
	}
	if o.SpecialRequirements == nil || *o.SpecialRequirements != "lined" {
		t.Fatalf("unexpected special requirements: %v", o.SpecialRequirements)
	}
	note = "changed"
	if *o.SpecialRequirements != "lined" {
		t.Fatalf("Build aliases SpecialRequirements")
	}

	raw, _ := json.Marshal(NewCustomOrder{}.Build("o2", time.Now()))
	if !strings.Contains(string(raw), `"estimatedPrice":null`) || !strings.Contains(string(raw), `"specialRequirements":null`) {
		t.Fatalf("nullable fields must serialize as null: %s", raw)
	}
}

func TestContact_NormalizeAndBuild(t *testing.T) {
	c := NewContact{Name: " A ", Email: "a@x.io ", Subject: " hi", Message: " m "}.Normalize().Build("c1", time.Now())
	if c.ID != "c1" || c.Name != "A" || c.Email != "a@x.io" || c.Subject != "hi" || c.Message != "m" {
		t.Fatalf("unexpected contact: %+v", c)
	}
}

func TestUser_PasswordNotSerialized(t *testing.T) {
	raw, _ := json.Marshal(User{ID: "u1", Username: "amina", Password: "secret"})
	if strings.Contains(string(raw), "secret") {
		t.Fatalf("password leaked: %s", raw)
	}
}
