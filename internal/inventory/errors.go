package inventory

import (
	"errors"
	"fmt"

	"github.com/matthieukhl/stockroom/internal/models"
)

var (
	ErrValidation      = errors.New("invalid field value")
	ErrInvalidCategory = errors.New("invalid category")
	ErrDuplicateBrand  = errors.New("brand already registered")
)

// ValidationError reports the first field of a candidate that was rejected.
type ValidationError struct {
	Field models.FieldKind
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// DuplicateBrandError is returned by Insert when a product with the same
// case-insensitive name is already stored.
type DuplicateBrandError struct {
	Name     string
	Existing models.Product
}

func (e *DuplicateBrandError) Error() string {
	return fmt.Sprintf("brand %q already registered as product %d (%s)", e.Name, e.Existing.ID, e.Existing.Name)
}

func (e *DuplicateBrandError) Unwrap() error {
	return ErrDuplicateBrand
}
