package models

// CategoryCount is the number of stored products in one category.
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// Statistics aggregates the current inventory state.
type Statistics struct {
	TotalProducts        int             `json:"total_products" yaml:"total_products"`
	TotalInventoryValue  float64         `json:"total_inventory_value" yaml:"total_inventory_value"`
	CategoryCounts       []CategoryCount `json:"category_counts" yaml:"category_counts"` // first-seen store order, only categories present
	RegisteredCategories int             `json:"registered_categories" yaml:"registered_categories"`
	BrandMapSize         int             `json:"brand_map_size" yaml:"brand_map_size"`
	Brands               []BrandCategory `json:"brands" yaml:"brands"`
}

// CountFor returns the number of products in category, or 0 when absent.
func (s Statistics) CountFor(category string) int {
	for _, cc := range s.CategoryCounts {
		if cc.Category == category {
			return cc.Count
		}
	}
	return 0
}
