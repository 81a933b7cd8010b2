package inventory

import "github.com/matthieukhl/stockroom/internal/models"

// DefaultCategories is the reference category registry.
var DefaultCategories = []string{
	models.CategoryRunning,
	models.CategoryCasual,
	models.CategorySport,
	models.CategoryUrban,
	models.CategoryFormal,
	models.CategoryTrekking,
}

var seedProducts = []models.Product{
	{ID: 1, Name: "Nike", Price: 250000, Stock: 15, Category: models.CategoryRunning},
	{ID: 2, Name: "Puma", Price: 300000, Stock: 8, Category: models.CategoryCasual},
	{ID: 3, Name: "New Balance", Price: 450000, Stock: 12, Category: models.CategoryRunning},
	{ID: 4, Name: "Adidas", Price: 280000, Stock: 20, Category: models.CategorySport},
}

// Converse and Vans have no stored product; they are lookup data only.
var seedBrands = []models.BrandCategory{
	{Brand: "Nike", Category: models.CategoryRunning},
	{Brand: "Puma", Category: models.CategoryCasual},
	{Brand: "New Balance", Category: models.CategoryRunning},
	{Brand: "Adidas", Category: models.CategorySport},
	{Brand: "Converse", Category: models.CategoryCasual},
	{Brand: "Vans", Category: models.CategoryUrban},
}

// NewSeeded returns an inventory with the reference registry, products
// and brand table.
func NewSeeded() *Inventory {
	inv := New(DefaultCategories)
	inv.Seed()
	return inv
}

// Seed loads the reference products and brand table. Records whose
// category is not in the registry are skipped, as are product ids that
// are already taken. It returns the number of products loaded.
func (inv *Inventory) Seed() int {
	loaded := 0
	for _, p := range seedProducts {
		if !inv.IsCategory(p.Category) {
			continue
		}
		if _, taken := inv.products[p.ID]; taken {
			continue
		}
		inv.put(p)
		loaded++
	}

	for _, b := range seedBrands {
		if inv.IsCategory(b.Category) {
			inv.mapBrand(b.Brand, b.Category)
		}
	}
	return loaded
}
