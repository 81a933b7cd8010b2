package inventory

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matthieukhl/stockroom/internal/models"
)

// CategoryMatch is the result of a category search.
type CategoryMatch struct {
	Category string
	Products []models.Product
	// Brands lists every brand the lookup table assigns to Category,
	// whether or not a product with that name is stored.
	Brands []string
}

// FindByCategory returns the stored products in category, in store order.
func (inv *Inventory) FindByCategory(category string) (CategoryMatch, error) {
	if !inv.IsCategory(category) {
		return CategoryMatch{}, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	match := CategoryMatch{Category: category}
	for _, id := range inv.productOrder {
		if p := inv.products[id]; p.Category == category {
			match.Products = append(match.Products, p)
		}
	}
	for _, b := range inv.brandOrder {
		if inv.brands[b] == category {
			match.Brands = append(match.Brands, b)
		}
	}
	return match, nil
}

// Statistics aggregates the store. It is defined for an empty store.
func (inv *Inventory) Statistics() models.Statistics {
	stats := models.Statistics{
		TotalProducts:        len(inv.productOrder),
		CategoryCounts:       []models.CategoryCount{},
		RegisteredCategories: len(inv.categories),
		BrandMapSize:         len(inv.brandOrder),
		Brands:               inv.Brands(),
	}

	index := make(map[string]int)
	for _, id := range inv.productOrder {
		p := inv.products[id]
		stats.TotalInventoryValue += p.Value()

		i, seen := index[p.Category]
		if !seen {
			i = len(stats.CategoryCounts)
			index[p.Category] = i
			stats.CategoryCounts = append(stats.CategoryCounts, models.CategoryCount{Category: p.Category})
		}
		stats.CategoryCounts[i].Count++
	}
	return stats
}

// ExistsByName reports whether a stored product has name, ignoring case.
func (inv *Inventory) ExistsByName(name string) bool {
	_, ok := inv.FindByName(name)
	return ok
}

// FindByName returns the first stored product whose name matches name,
// ignoring case.
func (inv *Inventory) FindByName(name string) (models.Product, bool) {
	want := fold(name)
	for _, id := range inv.productOrder {
		if p := inv.products[id]; fold(p.Name) == want {
			return p, true
		}
	}
	return models.Product{}, false
}

// UniqueNamesLowercased returns the distinct lowercased product names in
// first-seen store order.
func (inv *Inventory) UniqueNamesLowercased() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(inv.productOrder))
	for _, id := range inv.productOrder {
		n := fold(inv.products[id].Name)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	return names
}

func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}
