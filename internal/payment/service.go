package payment

import (
	"context"
	"math"
	"time"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/order"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutResponse is what the frontend needs to open the gateway widget.
type CheckoutResponse struct {
	GatewayOrderID string  `json:"razorpay_order_id"`
	OrderNumber    string  `json:"order_number"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	KeyID          string  `json:"key_id"`
}

type VerifyRequest struct {
	GatewayOrderID string `json:"razorpay_order_id" binding:"required"`
	PaymentID      string `json:"razorpay_payment_id" binding:"required"`
	Signature      string `json:"razorpay_signature" binding:"required"`
	OrderNumber    string `json:"order_number" binding:"required"`
}

type Service interface {
	// Checkout validates the order, persists it with a pending payment, then
	// creates the matching gateway order.
	Checkout(ctx context.Context, req order.CreateRequest) (*CheckoutResponse, error)
	// Verify checks the callback signature and settles the order's payment
	// status either way.
	Verify(ctx context.Context, req VerifyRequest) error
}

type service struct {
	orders  order.Repository
	gateway Gateway
}

func NewService(orders order.Repository, gateway Gateway) Service {
	return &service{orders: orders, gateway: gateway}
}

func (s *service) Checkout(ctx context.Context, req order.CreateRequest) (*CheckoutResponse, error) {
	if !s.gateway.Configured() {
		return nil, ErrGatewayUnavailable
	}

	log := logger.FromCtx(ctx)

	validated, err := order.Validate(req)
	if err != nil {
		log.Warn("checkout rejected", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	o := &order.Order{
		ID:             uuid.NewString(),
		OrderNumber:    utils.GenerateOrderNumber(),
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Address:        req.Address,
		Landmark:       req.Landmark,
		Notes:          req.Notes,
		OrderType:      order.OrderType(req.OrderType),
		DeliveryArea:   req.DeliveryArea,
		Items:          validated.Items,
		Subtotal:       validated.Pricing.Subtotal,
		DeliveryCharge: validated.Pricing.DeliveryCharge,
		Total:          validated.Pricing.Total,
		PaymentMethod:  "razorpay",
		PaymentStatus:  order.PaymentPending,
		Status:         order.StatusPending,
		EstimatedTime:  "45-60 minutes",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// The local record exists before the gateway order does, so a crash in
	// between can never leave a paid gateway order with no local trace.
	if err := s.orders.Insert(ctx, o); err != nil {
		return nil, err
	}

	amountPaise := int64(math.Round(o.Total * 100))
	gatewayOrderID, err := s.gateway.CreateOrder(ctx, amountPaise, "INR", o.OrderNumber)
	if err != nil {
		log.Error("gateway order creation failed",
			zap.String("order_number", o.OrderNumber),
			zap.Error(err),
		)
		if markErr := s.orders.MarkPaymentFailed(ctx, o.OrderNumber); markErr != nil {
			log.Error("failed to mark payment failed",
				zap.String("order_number", o.OrderNumber),
				zap.Error(markErr),
			)
		}
		return nil, err
	}

	if err := s.orders.AttachGatewayOrder(ctx, o.ID, gatewayOrderID); err != nil {
		return nil, err
	}

	log.Info("checkout created",
		zap.String("order_number", o.OrderNumber),
		zap.String("gateway_order_id", gatewayOrderID),
		zap.Float64("total", o.Total),
	)

	return &CheckoutResponse{
		GatewayOrderID: gatewayOrderID,
		OrderNumber:    o.OrderNumber,
		Amount:         o.Total,
		Currency:       "INR",
		KeyID:          s.gateway.KeyID(),
	}, nil
}

func (s *service) Verify(ctx context.Context, req VerifyRequest) error {
	if !s.gateway.Configured() {
		return ErrGatewayUnavailable
	}

	log := logger.FromCtx(ctx).With(
		zap.String("order_number", req.OrderNumber),
		zap.String("gateway_order_id", req.GatewayOrderID),
	)

	if !s.gateway.VerifySignature(req.GatewayOrderID, req.PaymentID, req.Signature) {
		// the payment must not stay pending after a failed verification
		if err := s.orders.MarkPaymentFailed(ctx, req.OrderNumber); err != nil {
			log.Error("failed to mark payment failed", zap.Error(err))
		}
		log.Warn("payment signature mismatch")
		return ErrInvalidSignature
	}

	if err := s.orders.MarkPaid(ctx, req.OrderNumber, req.PaymentID); err != nil {
		return err
	}

	log.Info("payment verified")
	return nil
}
