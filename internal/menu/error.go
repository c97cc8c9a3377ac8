package menu

import "errors"

var (
	ErrItemNotFound = errors.New("menu item not found")
	ErrInvalidPrice = errors.New("price must not be negative")
)
