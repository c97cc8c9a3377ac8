package menu

import "time"

type MenuItem struct {
	ID          string    `bson:"id" json:"id"`
	Category    string    `bson:"category" json:"category"`
	Name        string    `bson:"name" json:"name"`
	Price       float64   `bson:"price" json:"price"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	Available   bool      `bson:"available" json:"available"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type CreateRequest struct {
	Category    string  `json:"category" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Available   *bool   `json:"available"`
}

// UpdateRequest carries only the fields to change; nil means leave as is.
type UpdateRequest struct {
	Category    *string  `json:"category"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Available   *bool    `json:"available"`
}

func (u UpdateRequest) Empty() bool {
	return u.Category == nil && u.Name == nil && u.Price == nil &&
		u.Description == nil && u.Image == nil && u.Available == nil
}
