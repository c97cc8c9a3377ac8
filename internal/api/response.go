package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/auth"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/menu"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/order"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/payment"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/special"
)

// respondError translates domain errors into HTTP status codes. Anything not
// recognized becomes an opaque 500 so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	var validationErr *order.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "order validation failed",
			"errors": validationErr.Reasons,
		})
		return
	}

	var gatewayErr *payment.GatewayError
	if errors.As(err, &gatewayErr) {
		logger.FromCtx(c.Request.Context()).Error("payment gateway failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "payment gateway error"})
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrMalformedToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenInvalid),
		errors.Is(err, auth.ErrTokenStale):
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})

	case errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrPasswordReused),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, menu.ErrInvalidPrice),
		errors.Is(err, special.ErrInvalidPricing),
		errors.Is(err, payment.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})

	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, menu.ErrItemNotFound),
		errors.Is(err, special.ErrSpecialNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})

	case errors.Is(err, payment.ErrGatewayUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"detail": err.Error()})

	default:
		logger.FromCtx(c.Request.Context()).Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
}
