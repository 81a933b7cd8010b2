package inventory

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/stockroom/internal/models"
)

func TestInsert(t *testing.T) {
	inv := NewSeeded()

	res, err := inv.Insert(Candidate{ID: 5, Name: " Reebok ", Price: 210000, Stock: 0, Category: "Casual"})
	require.NoError(t, err)

	want := models.Product{ID: 5, Name: "Reebok", Price: 210000, Stock: 0, Category: "Casual"}
	assert.Equal(t, want, res.Product)
	assert.True(t, res.BrandMapped)

	got, ok := inv.Product(5)
	require.True(t, ok)
	assert.Equal(t, want, got)

	category, ok := inv.BrandCategory("Reebok")
	require.True(t, ok)
	assert.Equal(t, "Casual", category)

	products := inv.Products()
	assert.Equal(t, "Reebok", products[len(products)-1].Name)
}

func TestInsert_DuplicateBrand(t *testing.T) {
	inv := NewSeeded()
	before := inv.Statistics()

	_, err := inv.Insert(Candidate{ID: 5, Name: "NIKE", Price: 1, Stock: 1, Category: "Formal"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateBrand))

	var dup *DuplicateBrandError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 1, dup.Existing.ID)
	assert.Equal(t, "Nike", dup.Existing.Name)

	_, stored := inv.Product(5)
	assert.False(t, stored)
	assert.Equal(t, before, inv.Statistics())
}

func TestInsert_MappedBrandKeepsCategory(t *testing.T) {
	inv := NewSeeded()

	res, err := inv.Insert(Candidate{ID: 6, Name: "Converse", Price: 150000, Stock: 4, Category: "Formal"})
	require.NoError(t, err)
	assert.False(t, res.BrandMapped)

	stored, ok := inv.Product(6)
	require.True(t, ok)
	assert.Equal(t, "Formal", stored.Category)

	mapped, ok := inv.BrandCategory("Converse")
	require.True(t, ok)
	assert.Equal(t, "Casual", mapped)
	assert.Equal(t, 6, inv.Statistics().BrandMapSize)
}

func TestInsert_RejectsInvalidCandidate(t *testing.T) {
	tests := []struct {
		name  string
		c     Candidate
		field models.FieldKind
	}{
		{"taken id", Candidate{ID: 1, Name: "Fila", Price: 1, Stock: 1, Category: "Casual"}, models.FieldID},
		{"zero id", Candidate{ID: 0, Name: "Fila", Price: 1, Stock: 1, Category: "Casual"}, models.FieldID},
		{"blank name", Candidate{ID: 10, Name: "  ", Price: 1, Stock: 1, Category: "Casual"}, models.FieldName},
		{"free", Candidate{ID: 10, Name: "Fila", Price: 0, Stock: 1, Category: "Casual"}, models.FieldPrice},
		{"negative stock", Candidate{ID: 10, Name: "Fila", Price: 1, Stock: -1, Category: "Casual"}, models.FieldStock},
		{"unknown category", Candidate{ID: 10, Name: "Fila", Price: 1, Stock: 1, Category: "Sandalias"}, models.FieldCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewSeeded()

			_, err := inv.Insert(tt.c)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, 4, inv.Len())
		})
	}
}

func TestInsert_IDsStayUnique(t *testing.T) {
	inv := NewSeeded()

	for i, name := range []string{"Fila", "Asics", "Mizuno", "Saucony"} {
		_, err := inv.Insert(Candidate{ID: 10 + i, Name: name, Price: 100, Stock: 1, Category: "Running"})
		require.NoError(t, err)
	}
	_, err := inv.Insert(Candidate{ID: 10, Name: "Brooks", Price: 100, Stock: 1, Category: "Running"})
	require.Error(t, err)

	seen := make(map[int]bool)
	for _, p := range inv.Products() {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
	}
	assert.Len(t, seen, 8)
}

func TestSeed_SkipsUnregisteredCategories(t *testing.T) {
	inv := New([]string{"Running"})

	loaded := inv.Seed()

	assert.Equal(t, 2, loaded)
	assert.Equal(t, []string{"Nike", "New Balance"}, productNames(inv.Products()))
	assert.Equal(t, 2, inv.Statistics().BrandMapSize)
}

func TestInsert_AgreesWithFieldValidation(t *testing.T) {
	tests := []struct {
		name string
		c    Candidate
		kind models.FieldKind
		raw  string
	}{
		{"20 char name", Candidate{ID: 20, Name: strings.Repeat("B", 20), Price: 1, Stock: 0, Category: "Formal"}, models.FieldName, strings.Repeat("B", 20)},
		{"21 char name", Candidate{ID: 20, Name: strings.Repeat("B", 21), Price: 1, Stock: 0, Category: "Formal"}, models.FieldName, strings.Repeat("B", 21)},
		{"tiny price", Candidate{ID: 20, Name: "Fila", Price: 0.01, Stock: 0, Category: "Formal"}, models.FieldPrice, "0.01"},
		{"negative price", Candidate{ID: 20, Name: "Fila", Price: -0.01, Stock: 0, Category: "Formal"}, models.FieldPrice, "-0.01"},
		{"zero stock", Candidate{ID: 20, Name: "Fila", Price: 1, Stock: 0, Category: "Formal"}, models.FieldStock, "0"},
		{"negative stock", Candidate{ID: 20, Name: "Fila", Price: 1, Stock: -1, Category: "Formal"}, models.FieldStock, "-1"},
		{"unregistered category", Candidate{ID: 20, Name: "Fila", Price: 1, Stock: 0, Category: "formal"}, models.FieldCategory, "formal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewSeeded()
			valid := inv.Validate(tt.kind, tt.raw)

			_, err := inv.Insert(tt.c)

			if valid {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.kind, verr.Field)
		})
	}
}
