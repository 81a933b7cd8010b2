package models

// FieldKind identifies one of the product fields accepted by the guided input.
type FieldKind int

const (
	FieldID FieldKind = iota
	FieldName
	FieldPrice
	FieldStock
	FieldCategory
)

// CandidateFields is the order in which a new product is collected.
var CandidateFields = []FieldKind{FieldID, FieldName, FieldPrice, FieldStock, FieldCategory}

func (k FieldKind) String() string {
	switch k {
	case FieldID:
		return "id"
	case FieldName:
		return "name"
	case FieldPrice:
		return "price"
	case FieldStock:
		return "stock"
	case FieldCategory:
		return "category"
	default:
		return "unknown"
	}
}
