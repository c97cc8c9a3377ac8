package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryChargeFor(t *testing.T) {
	tests := []struct {
		name      string
		area      string
		orderType OrderType
		want      float64
	}{
		{"SRMPhase", "SRM Phase 2", TypeDelivery, 20},
		{"PotheriLower", "potheri main road", TypeDelivery, 20},
		{"PotheriMixedCase", "POTHERI", TypeDelivery, 20},
		{"Guduvanchery", "Guduvanchery East", TypeDelivery, 40},
		{"UnknownArea", "Unknown Town", TypeDelivery, NotServiceable},
		{"EmptyArea", "", TypeDelivery, NotServiceable},
		{"PickupIgnoresArea", "Unknown Town", TypePickup, 0},
		{"PickupEmptyArea", "", TypePickup, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeliveryChargeFor(tt.area, tt.orderType))
		})
	}
}

func TestPrice(t *testing.T) {
	cart := []CartItemInput{
		{ItemName: "Paneer Tikka", Quantity: 2, Price: 120},
	}

	t.Run("DeliverySRM", func(t *testing.T) {
		p := Price(cart, "SRM Phase 2", TypeDelivery)
		assert.Equal(t, 240.0, p.Subtotal)
		assert.Equal(t, 20.0, p.DeliveryCharge)
		assert.Equal(t, 260.0, p.Total)
		assert.True(t, p.Serviceable())
	})

	t.Run("NotServiceable", func(t *testing.T) {
		p := Price(cart, "Unknown Town", TypeDelivery)
		assert.False(t, p.Serviceable())
		assert.Equal(t, 240.0, p.Subtotal)
	})

	t.Run("SubtotalRounding", func(t *testing.T) {
		p := Price([]CartItemInput{
			{ItemName: "Chai", Quantity: 3, Price: 10.333},
		}, "", TypePickup)
		assert.Equal(t, 31.0, p.Subtotal)
		assert.Equal(t, 0.0, p.DeliveryCharge)
		assert.Equal(t, 31.0, p.Total)
	})

	t.Run("TotalInvariant", func(t *testing.T) {
		p := Price(cart, "Guduvanchery", TypeDelivery)
		assert.Equal(t, p.Total, p.Subtotal+p.DeliveryCharge)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first := Price(cart, "Potheri", TypeDelivery)
		second := Price(cart, "Potheri", TypeDelivery)
		assert.Equal(t, first, second)
	})

	t.Run("EmptyCart", func(t *testing.T) {
		p := Price(nil, "Potheri", TypeDelivery)
		assert.Equal(t, 0.0, p.Subtotal)
		assert.Equal(t, 20.0, p.DeliveryCharge)
	})
}
