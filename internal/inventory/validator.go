package inventory

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/matthieukhl/stockroom/internal/models"
)

// Per-field rules. Name length is counted in characters on the untrimmed
// input.
const (
	idRule       = "gt=0"
	nameRule     = "required,notblank,max=20"
	priceRule    = "gt=0"
	stockRule    = "gte=0"
	categoryRule = "required,category"
)

// Candidate is a parsed product waiting to be inserted.
type Candidate struct {
	ID       int
	Name     string
	Price    float64
	Stock    int
	Category string
}

// RawCandidate holds the unparsed answers of the guided input, keyed by field.
type RawCandidate map[models.FieldKind]string

func newValidate(inv *Inventory) *validator.Validate {
	v := validator.New()
	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return inv.IsCategory(fl.Field().String())
	})
	return v
}

// Validate checks a raw field value. Unknown kinds and unparseable values
// are rejected. An id is only valid while no stored product uses it; ids
// are compared after parsing, so "01" and "1" collide.
func (inv *Inventory) Validate(kind models.FieldKind, raw string) bool {
	switch kind {
	case models.FieldID:
		id, err := parseInt(raw)
		if err != nil || inv.validate.Var(id, idRule) != nil {
			return false
		}
		_, taken := inv.products[id]
		return !taken
	case models.FieldName:
		return inv.validate.Var(raw, nameRule) == nil
	case models.FieldPrice:
		price, err := parsePrice(raw)
		return err == nil && inv.validate.Var(price, priceRule) == nil
	case models.FieldStock:
		stock, err := parseInt(raw)
		return err == nil && inv.validate.Var(stock, stockRule) == nil
	case models.FieldCategory:
		return inv.validate.Var(raw, categoryRule) == nil
	default:
		return false
	}
}

// ParseCandidate validates every field of raw and converts it to a
// Candidate. The name is trimmed.
func (inv *Inventory) ParseCandidate(raw RawCandidate) (Candidate, error) {
	for _, kind := range models.CandidateFields {
		if !inv.Validate(kind, raw[kind]) {
			return Candidate{}, &ValidationError{Field: kind, Value: raw[kind]}
		}
	}

	id, _ := parseInt(raw[models.FieldID])
	price, _ := parsePrice(raw[models.FieldPrice])
	stock, _ := parseInt(raw[models.FieldStock])

	return Candidate{
		ID:       id,
		Name:     strings.TrimSpace(raw[models.FieldName]),
		Price:    price,
		Stock:    stock,
		Category: raw[models.FieldCategory],
	}, nil
}

func (inv *Inventory) checkCandidate(c Candidate) error {
	fields := []struct {
		kind  models.FieldKind
		value any
		rule  string
	}{
		{models.FieldID, c.ID, idRule},
		{models.FieldName, c.Name, nameRule},
		{models.FieldPrice, c.Price, priceRule},
		{models.FieldStock, c.Stock, stockRule},
		{models.FieldCategory, c.Category, categoryRule},
	}

	for _, f := range fields {
		err := inv.validate.Var(f.value, f.rule)
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			return &ValidationError{Field: f.kind, Value: fmt.Sprint(f.value)}
		case err != nil:
			return fmt.Errorf("validate %s: %w", f.kind, err)
		}
	}

	if _, taken := inv.products[c.ID]; taken {
		return &ValidationError{Field: models.FieldID, Value: strconv.Itoa(c.ID)}
	}
	return nil
}

func parseInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

func parsePrice(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("price %q is not finite", raw)
	}
	return f, nil
}
