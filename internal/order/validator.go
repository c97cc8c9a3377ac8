package order

import (
	"fmt"
	"strings"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/utils"
)

// ValidationError aggregates every violation found in an order request.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "order validation failed: " + strings.Join(e.Reasons, "; ")
}

// Validated carries the server-recomputed pricing and line items of an
// accepted order request, ready for persistence.
type Validated struct {
	Items   []CartItem
	Pricing Pricing
}

// Validate checks an order request, accumulating all violations instead of
// stopping at the first, and recomputes pricing from scratch.
func Validate(req CreateRequest) (*Validated, error) {
	var reasons []string

	orderType := OrderType(req.OrderType)
	if !orderType.Valid() {
		reasons = append(reasons, fmt.Sprintf("invalid order type %q", req.OrderType))
	}

	if len(req.CartItems) == 0 {
		reasons = append(reasons, "cart must not be empty")
	}
	for i, item := range req.CartItems {
		if item.Quantity <= 0 {
			reasons = append(reasons, fmt.Sprintf("item %d (%s): quantity must be greater than zero", i+1, item.ItemName))
		}
		if item.Price < 0 {
			reasons = append(reasons, fmt.Sprintf("item %d (%s): price must not be negative", i+1, item.ItemName))
		}
	}

	if name := strings.TrimSpace(req.CustomerName); len(name) < 2 {
		reasons = append(reasons, "customer name must be at least 2 characters")
	}

	phone := strings.NewReplacer(" ", "", "-", "").Replace(req.Phone)
	if len(phone) < 10 {
		reasons = append(reasons, "phone number must be at least 10 digits")
	}

	if orderType == TypeDelivery {
		if len(strings.TrimSpace(req.Address)) < 10 {
			reasons = append(reasons, "delivery address must be at least 10 characters")
		}
		if strings.TrimSpace(req.DeliveryArea) == "" {
			reasons = append(reasons, "delivery area is required for delivery orders")
		}
	}

	pricing := Price(req.CartItems, req.DeliveryArea, orderType)
	if !pricing.Serviceable() {
		reasons = append(reasons, "area not serviceable")
	}
	if orderType == TypeDelivery && pricing.Subtotal < MinimumDeliveryOrder {
		reasons = append(reasons, fmt.Sprintf("minimum order amount is %.0f", MinimumDeliveryOrder))
	}

	if len(reasons) > 0 {
		return nil, &ValidationError{Reasons: reasons}
	}

	items := make([]CartItem, 0, len(req.CartItems))
	for _, in := range req.CartItems {
		items = append(items, CartItem{
			ItemName: in.ItemName,
			Quantity: in.Quantity,
			Price:    in.Price,
			Subtotal: utils.Round2(in.Price * float64(in.Quantity)),
		})
	}

	return &Validated{Items: items, Pricing: pricing}, nil
}
