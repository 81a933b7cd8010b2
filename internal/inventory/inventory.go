// Package inventory holds the in-memory shoe inventory: the category
// registry, the brand → category lookup table and the product store,
// together with field validation, queries and the insert operation.
//
// An Inventory is owned by a single caller and is not safe for
// concurrent use.
package inventory

import (
	"github.com/go-playground/validator/v10"

	"github.com/matthieukhl/stockroom/internal/models"
)

// Inventory is the complete process-lifetime state of the shop.
type Inventory struct {
	categories  []string
	categorySet map[string]struct{}

	products     map[int]models.Product
	productOrder []int

	brands     map[string]string
	brandOrder []string

	validate *validator.Validate
}

// New creates an empty inventory whose category registry is fixed to
// categories. Duplicate category names are collapsed.
func New(categories []string) *Inventory {
	inv := &Inventory{
		categorySet: make(map[string]struct{}, len(categories)),
		products:    make(map[int]models.Product),
		brands:      make(map[string]string),
	}

	for _, c := range categories {
		if _, dup := inv.categorySet[c]; dup {
			continue
		}
		inv.categorySet[c] = struct{}{}
		inv.categories = append(inv.categories, c)
	}

	inv.validate = newValidate(inv)
	return inv
}

// Categories returns the registry in declaration order.
func (inv *Inventory) Categories() []string {
	out := make([]string, len(inv.categories))
	copy(out, inv.categories)
	return out
}

// IsCategory reports whether category is registered.
func (inv *Inventory) IsCategory(category string) bool {
	_, ok := inv.categorySet[category]
	return ok
}

// Products returns every stored product in insertion order.
func (inv *Inventory) Products() []models.Product {
	out := make([]models.Product, 0, len(inv.productOrder))
	for _, id := range inv.productOrder {
		out = append(out, inv.products[id])
	}
	return out
}

// Product looks up a product by id.
func (inv *Inventory) Product(id int) (models.Product, bool) {
	p, ok := inv.products[id]
	return p, ok
}

// Len returns the number of stored products.
func (inv *Inventory) Len() int {
	return len(inv.productOrder)
}

// Brands returns the brand → category table in insertion order.
func (inv *Inventory) Brands() []models.BrandCategory {
	out := make([]models.BrandCategory, 0, len(inv.brandOrder))
	for _, b := range inv.brandOrder {
		out = append(out, models.BrandCategory{Brand: b, Category: inv.brands[b]})
	}
	return out
}

// BrandCategory returns the category the lookup table holds for brand.
func (inv *Inventory) BrandCategory(brand string) (string, bool) {
	c, ok := inv.brands[brand]
	return c, ok
}

func (inv *Inventory) put(p models.Product) {
	if _, exists := inv.products[p.ID]; !exists {
		inv.productOrder = append(inv.productOrder, p.ID)
	}
	inv.products[p.ID] = p
}

// mapBrand adds brand to the lookup table. Existing entries are never
// overwritten.
func (inv *Inventory) mapBrand(brand, category string) bool {
	if _, exists := inv.brands[brand]; exists {
		return false
	}
	inv.brands[brand] = category
	inv.brandOrder = append(inv.brandOrder, brand)
	return true
}
