package special

import (
	"math"
	"time"
)

// Special is a promotional pricing override, independent of the regular menu
// catalog. DiscountPercent is derived from the two prices and recomputed
// whenever either changes.
type Special struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description" json:"description"`
	OriginalPrice   float64   `bson:"original_price" json:"original_price"`
	SpecialPrice    float64   `bson:"special_price" json:"special_price"`
	DiscountPercent int       `bson:"discount_percent" json:"discount_percent"`
	Image           string    `bson:"image,omitempty" json:"image,omitempty"`
	IsActive        bool      `bson:"is_active" json:"is_active"`
	Badge           string    `bson:"badge" json:"badge"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

const defaultBadge = "Today's Special"

// DiscountPercent derives the rounded discount for an original/special price
// pair.
func DiscountPercent(originalPrice, specialPrice float64) int {
	if originalPrice <= 0 {
		return 0
	}
	return int(math.Round(100 * (originalPrice - specialPrice) / originalPrice))
}

type CreateRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	OriginalPrice float64 `json:"original_price"`
	SpecialPrice  float64 `json:"special_price"`
	Image         string  `json:"image"`
	IsActive      *bool   `json:"is_active"`
	Badge         string  `json:"badge"`
}

// UpdateRequest carries only the fields to change; nil means leave as is.
type UpdateRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	OriginalPrice *float64 `json:"original_price"`
	SpecialPrice  *float64 `json:"special_price"`
	Image         *string  `json:"image"`
	IsActive      *bool    `json:"is_active"`
	Badge         *string  `json:"badge"`
}

func (u UpdateRequest) Empty() bool {
	return u.Name == nil && u.Description == nil && u.OriginalPrice == nil &&
		u.SpecialPrice == nil && u.Image == nil && u.IsActive == nil && u.Badge == nil
}
