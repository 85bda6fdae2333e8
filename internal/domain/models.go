// Package domain defines the storefront entities: users, products, custom
// orders, and contact submissions. The same types are held by the in-memory
// store and mapped with GORM by the SQL-backed store.
//
// Every entity carries two identities:
//   - ID: the opaque UUID assigned once by the store and exposed over HTTP.
//   - Seq: an auto-increment surrogate key used only to preserve insertion
//     order in SQL backends. It is never serialized.
package domain

import (
	"slices"
	"time"
)

// OrderStatusPending is the status every custom order starts in.
const OrderStatusPending = "pending"

// FeaturedYes is the conventional value of Product.Featured for featured items.
const FeaturedYes = "true"

// User is an account record. Passwords are stored verbatim and usernames are
// not unique at the storage level.
type User struct {
	Seq      uint64 `json:"-"        gorm:"primaryKey;autoIncrement"`
	ID       string `json:"id"       gorm:"type:varchar(36);uniqueIndex;not null"`
	Username string `json:"username" gorm:"type:varchar(64);not null;index"`
	Password string `json:"-"        gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Product is a catalog item priced in whole Kenyan shillings.
//
// Images is always a non-nil slice once stored. AvailableSizes,
// FabricOptions, InStock and Featured are nullable and serialize as null when
// absent.
type Product struct {
	Seq            uint64    `json:"-"              gorm:"primaryKey;autoIncrement"`
	ID             string    `json:"id"             gorm:"type:varchar(36);uniqueIndex;not null"`
	Name           string    `json:"name"           gorm:"type:varchar(255);not null"`
	Description    string    `json:"description"    gorm:"type:text;not null"`
	Category       string    `json:"category"       gorm:"type:varchar(64);not null;index"`
	Type           string    `json:"type"           gorm:"type:varchar(32);not null"`
	PriceKES       int64     `json:"priceKES"       gorm:"column:price_kes;not null"`
	Images         []string  `json:"images"         gorm:"serializer:json;type:text"`
	AvailableSizes []string  `json:"availableSizes" gorm:"serializer:json;type:text"`
	FabricOptions  []string  `json:"fabricOptions"  gorm:"serializer:json;type:text"`
	InStock        *int      `json:"inStock"`
	Featured       *string   `json:"featured"       gorm:"type:varchar(8)"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TableName returns the database table name for Product.
func (Product) TableName() string { return "products" }

// IsFeatured reports whether the product carries the "true" featured flag.
func (p Product) IsFeatured() bool {
	return p.Featured != nil && *p.Featured == FeaturedYes
}

// Clone returns a copy that shares no mutable state with p.
func (p Product) Clone() Product {
	out := p
	out.Images = slices.Clone(p.Images)
	if out.Images == nil {
		out.Images = []string{}
	}
	out.AvailableSizes = slices.Clone(p.AvailableSizes)
	out.FabricOptions = slices.Clone(p.FabricOptions)
	if p.InStock != nil {
		v := *p.InStock
		out.InStock = &v
	}
	if p.Featured != nil {
		v := *p.Featured
		out.Featured = &v
	}
	return out
}

// CustomOrder is a bespoke tailoring request. Status is always "pending" on
// creation and EstimatedPrice is always nil; nothing in this service changes
// either afterwards.
type CustomOrder struct {
	Seq                 uint64    `json:"-"                   gorm:"primaryKey;autoIncrement"`
	ID                  string    `json:"id"                  gorm:"type:varchar(36);uniqueIndex;not null"`
	Name                string    `json:"name"                gorm:"type:varchar(120);not null"`
	Email               string    `json:"email"               gorm:"type:varchar(254);not null"`
	Phone               string    `json:"phone"               gorm:"type:varchar(32);not null"`
	GarmentType         string    `json:"garmentType"         gorm:"type:varchar(64);not null"`
	FabricPreference    string    `json:"fabricPreference"    gorm:"type:varchar(120)"`
	Measurements        string    `json:"measurements"        gorm:"type:text;not null"`
	Budget              string    `json:"budget"              gorm:"type:varchar(64)"`
	Timeline            string    `json:"timeline"            gorm:"type:varchar(64)"`
	SpecialRequirements *string   `json:"specialRequirements" gorm:"type:text"`
	Status              string    `json:"status"              gorm:"type:varchar(16);not null;default:'pending'"`
	EstimatedPrice      *int64    `json:"estimatedPrice"`
	CreatedAt           time.Time `json:"createdAt"`
}

// TableName returns the database table name for CustomOrder.
func (CustomOrder) TableName() string { return "custom_orders" }

// Contact is a contact-form submission.
type Contact struct {
	Seq       uint64    `json:"-"         gorm:"primaryKey;autoIncrement"`
	ID        string    `json:"id"        gorm:"type:varchar(36);uniqueIndex;not null"`
	Name      string    `json:"name"      gorm:"type:varchar(120);not null"`
	Email     string    `json:"email"     gorm:"type:varchar(254);not null"`
	Phone     string    `json:"phone"     gorm:"type:varchar(32)"`
	Subject   string    `json:"subject"   gorm:"type:varchar(200)"`
	Message   string    `json:"message"   gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the database table name for Contact.
func (Contact) TableName() string { return "contacts" }
