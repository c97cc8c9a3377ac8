package special

import (
	"context"
	"time"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, activeOnly bool) ([]*Special, error)
	GetByID(ctx context.Context, id string) (*Special, error)
	Create(ctx context.Context, req CreateRequest) (*Special, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Special, error)
	Toggle(ctx context.Context, id string) (*Special, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validPricing(originalPrice, specialPrice float64) bool {
	return originalPrice > 0 && specialPrice > 0 && specialPrice < originalPrice
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]*Special, error) {
	return s.repo.List(ctx, activeOnly)
}

func (s *service) GetByID(ctx context.Context, id string) (*Special, error) {
	sp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, ErrSpecialNotFound
	}
	return sp, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Special, error) {
	if !validPricing(req.OriginalPrice, req.SpecialPrice) {
		return nil, ErrInvalidPricing
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	badge := req.Badge
	if badge == "" {
		badge = defaultBadge
	}

	now := time.Now().UTC()
	sp := &Special{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Description:     req.Description,
		OriginalPrice:   req.OriginalPrice,
		SpecialPrice:    req.SpecialPrice,
		DiscountPercent: DiscountPercent(req.OriginalPrice, req.SpecialPrice),
		Image:           req.Image,
		IsActive:        active,
		Badge:           badge,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Insert(ctx, sp); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("special created",
		zap.String("special_id", sp.ID),
		zap.String("name", sp.Name),
		zap.Int("discount_percent", sp.DiscountPercent),
	)
	return sp, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Special, error) {
	sp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Empty() {
		return sp, nil
	}

	if req.Name != nil {
		sp.Name = *req.Name
	}
	if req.Description != nil {
		sp.Description = *req.Description
	}
	if req.OriginalPrice != nil {
		sp.OriginalPrice = *req.OriginalPrice
	}
	if req.SpecialPrice != nil {
		sp.SpecialPrice = *req.SpecialPrice
	}
	if req.Image != nil {
		sp.Image = *req.Image
	}
	if req.IsActive != nil {
		sp.IsActive = *req.IsActive
	}
	if req.Badge != nil {
		sp.Badge = *req.Badge
	}

	if !validPricing(sp.OriginalPrice, sp.SpecialPrice) {
		return nil, ErrInvalidPricing
	}

	// discount always tracks the effective price pair
	sp.DiscountPercent = DiscountPercent(sp.OriginalPrice, sp.SpecialPrice)
	sp.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, sp); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("special updated", zap.String("special_id", id))
	return sp, nil
}

func (s *service) Toggle(ctx context.Context, id string) (*Special, error) {
	sp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next := !sp.IsActive
	if err := s.repo.SetActive(ctx, id, next); err != nil {
		return nil, err
	}
	sp.IsActive = next

	logger.FromCtx(ctx).Info("special toggled",
		zap.String("special_id", id),
		zap.Bool("is_active", next),
	)
	return sp, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromCtx(ctx).Info("special deleted", zap.String("special_id", id))
	return nil
}
