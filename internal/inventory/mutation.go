package inventory

import (
	"strings"

	"github.com/matthieukhl/stockroom/internal/models"
)

// InsertResult describes a successful insert.
type InsertResult struct {
	Product models.Product
	// BrandMapped is true when the brand was new to the lookup table.
	BrandMapped bool
}

// Insert stores a new product. A name that already exists, ignoring case,
// fails with a *DuplicateBrandError and leaves the inventory unchanged.
//
// The brand table only gains an entry when the name is not already a key;
// an existing entry keeps its category even if c.Category differs, so the
// store and the table may disagree afterwards.
func (inv *Inventory) Insert(c Candidate) (InsertResult, error) {
	c.Name = strings.TrimSpace(c.Name)
	if err := inv.checkCandidate(c); err != nil {
		return InsertResult{}, err
	}

	if existing, ok := inv.FindByName(c.Name); ok {
		return InsertResult{}, &DuplicateBrandError{Name: c.Name, Existing: existing}
	}

	p := models.Product{
		ID:       c.ID,
		Name:     c.Name,
		Price:    c.Price,
		Stock:    c.Stock,
		Category: c.Category,
	}
	inv.put(p)

	return InsertResult{
		Product:     p,
		BrandMapped: inv.mapBrand(p.Name, p.Category),
	}, nil
}
