package session

import (
	"fmt"
	"strings"

	"github.com/matthieukhl/stockroom/internal/models"
)

type question struct {
	prompt    string
	rejection string
}

func (c *Controller) question(kind models.FieldKind) question {
	switch kind {
	case models.FieldID:
		return question{
			prompt:    "🆔 Product ID (positive integer):",
			rejection: "❌ Invalid ID. It must be a unique positive number.",
		}
	case models.FieldName:
		return question{
			prompt:    "🏷️  Shoe brand (max. 20 characters):",
			rejection: "❌ Invalid name. It cannot be empty and has at most 20 characters.",
		}
	case models.FieldPrice:
		return question{
			prompt:    "💰 Product price (positive number):",
			rejection: "❌ Invalid price. It must be a positive number.",
		}
	case models.FieldStock:
		return question{
			prompt:    "📦 Available stock (positive integer or 0):",
			rejection: "❌ Invalid stock. It must be a positive integer or 0.",
		}
	case models.FieldCategory:
		categories := strings.Join(c.inv.Categories(), ", ")
		return question{
			prompt:    fmt.Sprintf("🏷️  Category (%s):", categories),
			rejection: "❌ Invalid category. It must be one of: " + categories,
		}
	default:
		return question{
			prompt:    kind.String() + ":",
			rejection: "❌ Invalid value.",
		}
	}
}
