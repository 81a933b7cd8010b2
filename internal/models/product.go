package models

// Product is a single inventory record.
type Product struct {
	ID       int     `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Price    float64 `json:"price" yaml:"price"`
	Stock    int     `json:"stock" yaml:"stock"`
	Category string  `json:"category" yaml:"category"`
}

// Value returns price × stock.
func (p Product) Value() float64 {
	return p.Price * float64(p.Stock)
}

// BrandCategory is one entry of the brand → category lookup table.
type BrandCategory struct {
	Brand    string `json:"brand" yaml:"brand"`
	Category string `json:"category" yaml:"category"`
}

// Reference categories
const (
	CategoryRunning  = "Running"
	CategoryCasual   = "Casual"
	CategorySport    = "Deportivo"
	CategoryUrban    = "Urbano"
	CategoryFormal   = "Formal"
	CategoryTrekking = "Trekking"
)
