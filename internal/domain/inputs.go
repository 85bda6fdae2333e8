package domain

import (
	"slices"
	"strings"
	"time"
)

// NewUser is the creation input for a User.
type NewUser struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=255"`
}

// NewProduct is the creation input for a Product. It doubles as the schema of
// catalog files, hence the yaml tags.
type NewProduct struct {
	Name           string   `json:"name"           yaml:"name"           binding:"required,max=255"`
	Description    string   `json:"description"    yaml:"description"    binding:"required"`
	Category       string   `json:"category"       yaml:"category"       binding:"required,max=64"`
	Type           string   `json:"type"           yaml:"type"           binding:"required,max=32"`
	PriceKES       int64    `json:"priceKES"       yaml:"priceKES"       binding:"gte=0"`
	Images         []string `json:"images"         yaml:"images"         binding:"omitempty,dive,url"`
	AvailableSizes []string `json:"availableSizes" yaml:"availableSizes"`
	FabricOptions  []string `json:"fabricOptions"  yaml:"fabricOptions"`
	InStock        *int     `json:"inStock"        yaml:"inStock"        binding:"omitempty,gte=0"`
	Featured       *string  `json:"featured"       yaml:"featured"       binding:"omitempty,oneof=true false"`
}

// Build materializes the product with the given identity and creation time,
// applying defaults: Images becomes an empty slice, absent optional slices
// stay nil and an empty Featured becomes nil.
func (in NewProduct) Build(id string, now time.Time) Product {
	p := Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Type:        in.Type,
		PriceKES:    in.PriceKES,
		Images:      slices.Clone(in.Images),
		CreatedAt:   now,
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	// An explicit empty list is kept; only an absent one stays nil.
	if in.AvailableSizes != nil {
		p.AvailableSizes = slices.Clone(in.AvailableSizes)
	}
	if in.FabricOptions != nil {
		p.FabricOptions = slices.Clone(in.FabricOptions)
	}
	if in.InStock != nil {
		v := *in.InStock
		p.InStock = &v
	}
	if in.Featured != nil && *in.Featured != "" {
		v := *in.Featured
		p.Featured = &v
	}
	return p
}

// NewCustomOrder is the submission payload for a custom order.
type NewCustomOrder struct {
	Name                string  `json:"name"                binding:"required,max=120"`
	Email               string  `json:"email"               binding:"required,email,max=254"`
	Phone               string  `json:"phone"               binding:"required,max=32"`
	GarmentType         string  `json:"garmentType"         binding:"required,max=64"`
	FabricPreference    string  `json:"fabricPreference"    binding:"max=120"`
	Measurements        string  `json:"measurements"        binding:"required,max=4000"`
	Budget              string  `json:"budget"              binding:"max=64"`
	Timeline            string  `json:"timeline"            binding:"max=64"`
	SpecialRequirements *string `json:"specialRequirements" binding:"omitempty,max=4000"`
}

// Normalize trims surrounding whitespace from every text field and drops a
// blank SpecialRequirements.
func (in NewCustomOrder) Normalize() NewCustomOrder {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.GarmentType = strings.TrimSpace(in.GarmentType)
	in.FabricPreference = strings.TrimSpace(in.FabricPreference)
	in.Measurements = strings.TrimSpace(in.Measurements)
	in.Budget = strings.TrimSpace(in.Budget)
	in.Timeline = strings.TrimSpace(in.Timeline)
	if in.SpecialRequirements != nil {
		s := strings.TrimSpace(*in.SpecialRequirements)
		if s == "" {
			in.SpecialRequirements = nil
		} else {
			in.SpecialRequirements = &s
		}
	}
	return in
}

// Build materializes the order. Status is forced to pending and
// EstimatedPrice to nil regardless of input.
func (in NewCustomOrder) Build(id string, now time.Time) CustomOrder {
	o := CustomOrder{
		ID:               id,
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		GarmentType:      in.GarmentType,
		FabricPreference: in.FabricPreference,
		Measurements:     in.Measurements,
		Budget:           in.Budget,
		Timeline:         in.Timeline,
		Status:           OrderStatusPending,
		CreatedAt:        now,
	}
	if in.SpecialRequirements != nil && *in.SpecialRequirements != "" {
		v := *in.SpecialRequirements
		o.SpecialRequirements = &v
	}
	return o
}

// NewContact is the contact-form payload.
type NewContact struct {
	Name    string `json:"name"    binding:"required,max=120"`
	Email   string `json:"email"   binding:"required,email,max=254"`
	Phone   string `json:"phone"   binding:"max=32"`
	Subject string `json:"subject" binding:"max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

// Normalize trims surrounding whitespace from every field.
func (in NewContact) Normalize() NewContact {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
	return in
}

// Build materializes the contact.
func (in NewContact) Build(id string, now time.Time) Contact {
	return Contact{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: now,
	}
}
