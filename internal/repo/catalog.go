package repo

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/tbourn/go-storefront-backend/internal/domain"
)

// catalogFile is the on-disk shape of an extra catalog:
//
//	products:
//	  - name: Dashiki Top
//	    description: Hand-finished embroidery
//	    category: african-prints
//	    type: ready
//	    priceKES: 6400
type catalogFile struct {
	Products []domain.NewProduct `yaml:"products"`
}

// LoadCatalog reads and validates a YAML catalog file. Products are checked
// against the same rules the API applies to creation inputs.
func LoadCatalog(path string) ([]domain.NewProduct, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	for i, p := range f.Products {
		if err := v.Struct(p); err != nil {
			return nil, fmt.Errorf("catalog %s: product %d (%q): %w", path, i, p.Name, err)
		}
	}
	return f.Products, nil
}

// ImportCatalog appends the products of the catalog at path through s and
// returns how many were created. An empty path is a no-op.
func ImportCatalog(ctx context.Context, s ProductCreator, path string) (int, error) {
	if path == "" {
		return 0, nil
	}
	products, err := LoadCatalog(path)
	if err != nil {
		return 0, err
	}
	for i, p := range products {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			return i, fmt.Errorf("import %q: %w", p.Name, err)
		}
	}
	return len(products), nil
}
