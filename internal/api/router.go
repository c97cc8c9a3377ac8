package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/auth"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/config"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/menu"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/order"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/payment"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/report"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/special"
)

// Deps carries everything the router needs; main wires it up once.
type Deps struct {
	Config   *config.Config
	Auth     auth.Service
	Orders   order.Service
	Menu     menu.Service
	Specials special.Service
	Payments payment.Service
	Reports  report.Service

	// DBPing backs the authenticated deep health check; nil skips the probe.
	DBPing func(ctx context.Context) error
}

func NewRouter(deps Deps) *gin.Engine {
	if deps.Config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(RateLimit(newRateLimiter()))
	r.Use(cors.New(corsConfig(deps.Config.CORSOrigins)))

	authH := &authHandler{svc: deps.Auth}
	orderH := &orderHandler{svc: deps.Orders}
	menuH := &menuHandler{svc: deps.Menu}
	specialH := &specialHandler{svc: deps.Specials}
	paymentH := &paymentHandler{svc: deps.Payments}
	adminH := &adminHandler{reports: deps.Reports, dbPing: deps.DBPing}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/auth/login", authH.login)

		api.GET("/menu", menuH.list)
		api.GET("/menu/categories", menuH.categories)
		api.GET("/menu/:id", menuH.get)

		api.GET("/specials", specialH.list)
		api.GET("/specials/:id", specialH.get)

		api.POST("/orders", orderH.create)
		api.GET("/orders/:id", orderH.get)
		api.GET("/orders/number/:orderNumber", orderH.getByNumber)

		api.POST("/payment/create-order", paymentH.createOrder)
		api.POST("/payment/verify", paymentH.verify)
	}

	protected := api.Group("", RequireAuth(deps.Auth))
	{
		protected.GET("/auth/verify", authH.verify)
		protected.POST("/auth/logout", authH.logout)
		protected.POST("/auth/change-password", authH.changePassword)

		// The full order list exposes every customer's contact details, so
		// unlike single-order reads it stays behind auth.
		protected.GET("/orders", orderH.list)
		protected.PATCH("/orders/:id/status", orderH.updateStatus)
		protected.PUT("/orders/:id/status", orderH.updateStatus)
		protected.DELETE("/orders/:id", orderH.delete)

		protected.POST("/menu", menuH.create)
		protected.PATCH("/menu/:id", menuH.update)
		protected.DELETE("/menu/:id", menuH.delete)

		protected.GET("/specials/all", specialH.listAll)
		protected.POST("/specials", specialH.create)
		protected.PUT("/specials/:id", specialH.update)
		protected.PATCH("/specials/:id/toggle", specialH.toggle)
		protected.DELETE("/specials/:id", specialH.delete)

		protected.GET("/admin/dashboard", adminH.dashboard)
		protected.GET("/admin/orders", orderH.list)
		protected.PUT("/admin/orders/:id/status", orderH.updateStatus)
		protected.GET("/admin/menu/stats", adminH.menuStats)
		protected.POST("/admin/health", adminH.health)
	}

	return r
}

func corsConfig(origins string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if origins == "*" {
		// Credentials cannot be combined with a literal wildcard.
		cfg.AllowCredentials = false
		cfg.AllowAllOrigins = true
		return cfg
	}

	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	return cfg
}
