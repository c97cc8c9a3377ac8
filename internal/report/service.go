package report

import (
	"context"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/order"
)

// OrderStats is the slice of the order store the dashboard needs.
type OrderStats interface {
	CountOrders(ctx context.Context, status order.Status) (int64, error)
	CompletedRevenue(ctx context.Context) (float64, error)
}

// MenuStats is the slice of the menu store the dashboard needs.
type MenuStats interface {
	CountItems(ctx context.Context, available *bool) (int64, error)
	Categories(ctx context.Context) ([]string, error)
}

type Dashboard struct {
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	MenuItemsCount  int64   `json:"menu_items_count"`
}

type MenuStatistics struct {
	TotalItems       int64    `json:"total_items"`
	AvailableItems   int64    `json:"available_items"`
	UnavailableItems int64    `json:"unavailable_items"`
	Categories       []string `json:"categories"`
}

type Service interface {
	// Dashboard is always computed fresh, never cached.
	Dashboard(ctx context.Context) (*Dashboard, error)
	MenuStatistics(ctx context.Context) (*MenuStatistics, error)
}

type service struct {
	orders OrderStats
	menu   MenuStats
}

func NewService(orders OrderStats, menu MenuStats) Service {
	return &service{orders: orders, menu: menu}
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	total, err := s.orders.CountOrders(ctx, "")
	if err != nil {
		return nil, err
	}
	pending, err := s.orders.CountOrders(ctx, order.StatusPending)
	if err != nil {
		return nil, err
	}
	completed, err := s.orders.CountOrders(ctx, order.StatusCompleted)
	if err != nil {
		return nil, err
	}
	revenue, err := s.orders.CompletedRevenue(ctx)
	if err != nil {
		return nil, err
	}
	menuCount, err := s.menu.CountItems(ctx, nil)
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Debug("dashboard computed")

	return &Dashboard{
		TotalOrders:     total,
		PendingOrders:   pending,
		CompletedOrders: completed,
		TotalRevenue:    revenue,
		MenuItemsCount:  menuCount,
	}, nil
}

func (s *service) MenuStatistics(ctx context.Context) (*MenuStatistics, error) {
	total, err := s.menu.CountItems(ctx, nil)
	if err != nil {
		return nil, err
	}

	available := true
	availableCount, err := s.menu.CountItems(ctx, &available)
	if err != nil {
		return nil, err
	}

	unavailable := false
	unavailableCount, err := s.menu.CountItems(ctx, &unavailable)
	if err != nil {
		return nil, err
	}

	categories, err := s.menu.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return &MenuStatistics{
		TotalItems:       total,
		AvailableItems:   availableCount,
		UnavailableItems: unavailableCount,
		Categories:       categories,
	}, nil
}
