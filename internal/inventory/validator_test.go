package inventory

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matthieukhl/stockroom/internal/models"
)

func TestValidate(t *testing.T) {
	inv := NewSeeded()

	tests := []struct {
		name string
		kind models.FieldKind
		raw  string
		want bool
	}{
		{"id new", models.FieldID, "5", true},
		{"id taken", models.FieldID, "1", false},
		{"id taken with leading zero", models.FieldID, "01", false},
		{"id zero", models.FieldID, "0", false},
		{"id negative", models.FieldID, "-3", false},
		{"id not a number", models.FieldID, "abc", false},
		{"id fractional", models.FieldID, "2.5", false},
		{"id empty", models.FieldID, "", false},
		{"name empty", models.FieldName, "", false},
		{"name blank", models.FieldName, "   ", false},
		{"name 20 chars", models.FieldName, strings.Repeat("A", 20), true},
		{"name 21 chars", models.FieldName, strings.Repeat("A", 21), false},
		{"name padded past limit", models.FieldName, " " + strings.Repeat("A", 20), false},
		{"name multibyte 20 chars", models.FieldName, strings.Repeat("ñ", 20), true},
		{"price positive", models.FieldPrice, "199.99", true},
		{"price zero", models.FieldPrice, "0", false},
		{"price negative", models.FieldPrice, "-1", false},
		{"price text", models.FieldPrice, "cheap", false},
		{"price infinite", models.FieldPrice, "Inf", false},
		{"price NaN", models.FieldPrice, "NaN", false},
		{"stock zero", models.FieldStock, "0", true},
		{"stock positive", models.FieldStock, "12", true},
		{"stock negative", models.FieldStock, "-1", false},
		{"stock fractional", models.FieldStock, "1.5", false},
		{"category registered", models.FieldCategory, "Urbano", true},
		{"category wrong case", models.FieldCategory, "urbano", false},
		{"category unknown", models.FieldCategory, "Sandalias", false},
		{"category empty", models.FieldCategory, "", false},
		{"unknown kind", models.FieldKind(42), "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inv.Validate(tt.kind, tt.raw))
		})
	}
}

func TestValidate_HasNoSideEffects(t *testing.T) {
	inv := NewSeeded()
	before := inv.Statistics()

	for _, kind := range models.CandidateFields {
		inv.Validate(kind, "7")
	}

	assert.Equal(t, before, inv.Statistics())
}

func TestParseCandidate(t *testing.T) {
	inv := NewSeeded()

	c, err := inv.ParseCandidate(RawCandidate{
		models.FieldID:       " 7 ",
		models.FieldName:     "  Reebok ",
		models.FieldPrice:    "199000.5",
		models.FieldStock:    "3",
		models.FieldCategory: "Trekking",
	})
	require.NoError(t, err)

	assert.Equal(t, Candidate{ID: 7, Name: "Reebok", Price: 199000.5, Stock: 3, Category: "Trekking"}, c)
}

func TestParseCandidate_ReportsFirstInvalidField(t *testing.T) {
	inv := NewSeeded()

	_, err := inv.ParseCandidate(RawCandidate{
		models.FieldID:       "8",
		models.FieldName:     "Reebok",
		models.FieldPrice:    "free",
		models.FieldStock:    "-2",
		models.FieldCategory: "Trekking",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, models.FieldPrice, verr.Field)
	assert.Equal(t, "free", verr.Value)
}
