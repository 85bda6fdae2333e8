package repo

import (
	"context"
	"fmt"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// ProductCreator is the slice of the store contract needed for seeding.
type ProductCreator interface {
	CreateProduct(ctx context.Context, in domain.NewProduct) (*domain.Product, error)
}

// SeedProducts returns the fixture catalog inserted at startup. The content
// is part of the service's observable startup state.
func SeedProducts() []domain.NewProduct {
	return []domain.NewProduct{
		{
			Name:           "Ankara Midi Dress",
			Description:    "Traditional print, modern silhouette",
			Category:       "african-prints",
			Type:           "ready",
			PriceKES:       15500,
			Images:         []string{"https://pixabay.com/get/g2ea41d46dfdfd9f45b86c1920d6f7f8d3c3f13c8f9bf26bf60b8541d85abc66849ff48b58aed533cb7c570b7e360a2a2083581262323da39aaaefbbe518b6197_1280.jpg"},
			AvailableSizes: []string{"S", "M", "L"},
			FabricOptions:  []string{"Ankara Cotton"},
			InStock:        intPtr(5),
			Featured:       strPtr(domain.FeaturedYes),
		},
		{
			Name:           "Kitenge Shirt",
			Description:    "Casual elegance for any occasion",
			Category:       "african-prints",
			Type:           "ready",
			PriceKES:       8900,
			Images:         []string{"https://images.unsplash.com/photo-1618077360395-f3068be8e001?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=500"},
			AvailableSizes: []string{"M", "L", "XL"},
			FabricOptions:  []string{"Kitenge Cotton"},
			InStock:        intPtr(8),
			Featured:       strPtr(domain.FeaturedYes),
		},
		{
			Name:           "Executive Blazer",
			Description:    "Professional with African flair",
			Category:       "suits",
			Type:           "ready",
			PriceKES:       22000,
			Images:         []string{"https://pixabay.com/get/gca699219ed6e7e08ae359a7739ec13c49d932778c8b5ea9bff80942d4730155a5f861282ff346afd429361890cdb05097899884adb4f83628acecc4097fa5c98_1280.jpg"},
			AvailableSizes: []string{"S", "M", "L"},
			FabricOptions:  []string{"Wool Blend"},
			InStock:        intPtr(3),
			Featured:       strPtr(domain.FeaturedYes),
		},
		{
			Name:           "Traditional Set",
			Description:    "Cultural heritage meets modern design",
			Category:       "traditional",
			Type:           "ready",
			PriceKES:       18500,
			Images:         []string{"https://pixabay.com/get/g63acc0ad1baca8d81b41db03a9b5195a7e35ce75b2e441bdcb22d1a6548149bd51435d0fafdda376745de506428a30dc21838c6d849ad68c6824589fdcd2f613_1280.jpg"},
			AvailableSizes: []string{"S", "M", "L"},
			FabricOptions:  []string{"Traditional Cotton"},
			InStock:        intPtr(4),
			Featured:       strPtr(domain.FeaturedYes),
		},
	}
}

// Seed inserts the fixture catalog through s.
func Seed(ctx context.Context, s ProductCreator) error {
	for _, p := range SeedProducts() {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			return fmt.Errorf("seed %q: %w", p.Name, err)
		}
	}
	return nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
