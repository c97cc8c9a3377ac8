package special

import "errors"

var (
	ErrSpecialNotFound = errors.New("special not found")
	ErrInvalidPricing  = errors.New("special price must be positive and below the original price")
)
