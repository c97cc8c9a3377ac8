package order

import (
	"strings"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/utils"
)

const (
	campusDeliveryCharge       = 20.0 // srm / potheri
	guduvancheryDeliveryCharge = 40.0

	// NotServiceable is the delivery-charge sentinel for areas outside the
	// serviceability table.
	NotServiceable = -1.0

	// MinimumDeliveryOrder is the minimum subtotal for delivery orders.
	MinimumDeliveryOrder = 199.0
)

type Pricing struct {
	Subtotal       float64 `json:"subtotal"`
	DeliveryCharge float64 `json:"delivery_charge"`
	Total          float64 `json:"total"`
}

func (p Pricing) Serviceable() bool {
	return p.DeliveryCharge >= 0
}

// DeliveryChargeFor looks up the delivery charge for an area by
// case-insensitive substring match. Pickup orders are always free.
func DeliveryChargeFor(area string, orderType OrderType) float64 {
	if orderType == TypePickup {
		return 0
	}

	a := strings.ToLower(area)
	switch {
	case strings.Contains(a, "srm"), strings.Contains(a, "potheri"):
		return campusDeliveryCharge
	case strings.Contains(a, "guduvanchery"):
		return guduvancheryDeliveryCharge
	default:
		return NotServiceable
	}
}

// Price is the single source of truth for order pricing: subtotal, delivery
// charge and total are computed here and nowhere else. It is pure and
// deterministic.
func Price(items []CartItemInput, area string, orderType OrderType) Pricing {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	subtotal = utils.Round2(subtotal)

	charge := DeliveryChargeFor(area, orderType)

	p := Pricing{Subtotal: subtotal, DeliveryCharge: charge}
	if p.Serviceable() {
		p.Total = utils.Round2(subtotal + charge)
	}
	return p
}
