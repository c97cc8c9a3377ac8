package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/api"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/auth"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/config"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/db"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/menu"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/order"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/payment"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/report"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/special"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	client, database := db.Connect(cfg)
	defer db.Disconnect(client)

	authRepo := auth.NewRepository(database)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := auth.NewService(authRepo, tokens)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	menuRepo := menu.NewRepository(database)
	menuSvc := menu.NewService(menuRepo)

	specialRepo := special.NewRepository(database)
	specialSvc := special.NewService(specialRepo)

	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	paymentSvc := payment.NewService(orderRepo, gateway)

	reportSvc := report.NewService(orderRepo, menuRepo)

	router := api.NewRouter(api.Deps{
		Config:   cfg,
		Auth:     authSvc,
		Orders:   orderSvc,
		Menu:     menuSvc,
		Specials: specialSvc,
		Payments: paymentSvc,
		Reports:  reportSvc,
		DBPing: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.L().Info("server listening", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}
}
