package menu

import (
	"context"
	"time"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, category string, availableOnly bool) ([]*MenuItem, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id string) (*MenuItem, error)
	Create(ctx context.Context, req CreateRequest) (*MenuItem, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*MenuItem, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, category string, availableOnly bool) ([]*MenuItem, error) {
	return s.repo.List(ctx, category, availableOnly)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*MenuItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*MenuItem, error) {
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	now := time.Now().UTC()
	item := &MenuItem{
		ID:          uuid.NewString(),
		Category:    req.Category,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Available:   available,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("menu item created",
		zap.String("item_id", item.ID),
		zap.String("name", item.Name),
		zap.String("category", item.Category),
	)
	return item, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*MenuItem, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	if !req.Empty() {
		if err := s.repo.Update(ctx, id, req); err != nil {
			return nil, err
		}
		logger.FromCtx(ctx).Info("menu item updated", zap.String("item_id", id))
	}

	return s.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromCtx(ctx).Info("menu item deleted", zap.String("item_id", id))
	return nil
}
