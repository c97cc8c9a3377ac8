package order

import "time"

type OrderType string

const (
	TypeDineIn   OrderType = "dine_in"
	TypeTakeaway OrderType = "takeaway"
	TypeDelivery OrderType = "delivery"
	TypePickup   OrderType = "pickup"
)

func (t OrderType) Valid() bool {
	switch t {
	case TypeDineIn, TypeTakeaway, TypeDelivery, TypePickup:
		return true
	}
	return false
}

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

// ValidStatus reports whether s is an allowed admin-facing order status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusOutForDelivery, StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// CartItem is an order line. Subtotal is always recomputed server-side as
// Quantity x Price, never trusted from the client.
type CartItem struct {
	ItemName string  `bson:"item_name" json:"item_name"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
	Subtotal float64 `bson:"subtotal" json:"subtotal"`
}

type Order struct {
	ID                string        `bson:"id" json:"id"`
	OrderNumber       string        `bson:"order_number" json:"order_number"`
	CustomerName      string        `bson:"customer_name" json:"customer_name"`
	Phone             string        `bson:"phone" json:"phone"`
	Address           string        `bson:"address" json:"address"`
	Landmark          string        `bson:"landmark,omitempty" json:"landmark,omitempty"`
	Notes             string        `bson:"notes,omitempty" json:"notes,omitempty"`
	OrderType         OrderType     `bson:"order_type" json:"order_type"`
	DeliveryArea      string        `bson:"delivery_area,omitempty" json:"delivery_area,omitempty"`
	Items             []CartItem    `bson:"cart_items" json:"cart_items"`
	Subtotal          float64       `bson:"subtotal" json:"subtotal"`
	DeliveryCharge    float64       `bson:"delivery_charge" json:"delivery_charge"`
	Total             float64       `bson:"total" json:"total"`
	PaymentMethod     string        `bson:"payment_method" json:"payment_method"`
	PaymentStatus     PaymentStatus `bson:"payment_status" json:"payment_status"`
	RazorpayOrderID   string        `bson:"razorpay_order_id,omitempty" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string        `bson:"razorpay_payment_id,omitempty" json:"razorpay_payment_id,omitempty"`
	Status            Status        `bson:"status" json:"status"`
	EstimatedTime     string        `bson:"estimated_time" json:"estimated_time"`
	CreatedAt         time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time     `bson:"updated_at" json:"updated_at"`
}

// CartItemInput is a client-supplied order line.
type CartItemInput struct {
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateRequest is an incoming order placement. Any client-supplied totals
// are ignored; pricing is recomputed by Validate.
type CreateRequest struct {
	CustomerName  string          `json:"customer_name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Landmark      string          `json:"landmark"`
	Notes         string          `json:"notes"`
	OrderType     string          `json:"order_type"`
	DeliveryArea  string          `json:"delivery_area"`
	PaymentMethod string          `json:"payment_method"`
	CartItems     []CartItemInput `json:"cart_items"`
}
