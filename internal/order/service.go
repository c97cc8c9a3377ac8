package order

import (
	"context"
	"time"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultEstimatedTime = "30-40 minutes"

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Order, error)
	List(ctx context.Context, status string, limit, skip int64) ([]*Order, error)
	GetByID(ctx context.Context, id string) (*Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*Order, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("order_type", req.OrderType),
		zap.Int("item_count", len(req.CartItems)),
	)

	validated, err := Validate(req)
	if err != nil {
		log.Warn("order rejected", zap.Error(err))
		return nil, err
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	now := time.Now().UTC()
	o := &Order{
		ID:             uuid.NewString(),
		OrderNumber:    utils.GenerateOrderNumber(),
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Address:        req.Address,
		Landmark:       req.Landmark,
		Notes:          req.Notes,
		OrderType:      OrderType(req.OrderType),
		DeliveryArea:   req.DeliveryArea,
		Items:          validated.Items,
		Subtotal:       validated.Pricing.Subtotal,
		DeliveryCharge: validated.Pricing.DeliveryCharge,
		Total:          validated.Pricing.Total,
		PaymentMethod:  paymentMethod,
		PaymentStatus:  PaymentPending,
		Status:         StatusPending,
		EstimatedTime:  defaultEstimatedTime,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Insert(ctx, o); err != nil {
		return nil, err
	}

	log.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("order_number", o.OrderNumber),
		zap.Float64("total", o.Total),
	)
	return o, nil
}

func (s *service) List(ctx context.Context, status string, limit, skip int64) ([]*Order, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if skip < 0 {
		skip = 0
	}
	return s.repo.List(ctx, Status(status), limit, skip)
}

func (s *service) GetByID(ctx context.Context, id string) (*Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	o, err := s.repo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status string) (*Order, error) {
	next := Status(status)
	if !ValidStatus(next) {
		return nil, ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order status updated",
		zap.String("order_id", id),
		zap.String("status", status),
	)
	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromCtx(ctx).Info("order deleted", zap.String("order_id", id))
	return nil
}
