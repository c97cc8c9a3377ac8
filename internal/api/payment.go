package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/order"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/payment"
)

type paymentHandler struct {
	svc payment.Service
}

func (h *paymentHandler) createOrder(c *gin.Context) {
	var req order.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.svc.Checkout(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.FromCtx(c.Request.Context()).Info("gateway order created",
		zap.String("order_number", resp.OrderNumber),
		zap.Float64("amount", resp.Amount),
	)

	c.JSON(http.StatusCreated, resp)
}

func (h *paymentHandler) verify(c *gin.Context) {
	var req payment.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.svc.Verify(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	logger.FromCtx(c.Request.Context()).Info("payment verified",
		zap.String("order_number", req.OrderNumber),
	)

	c.JSON(http.StatusOK, gin.H{
		"detail":       "payment verified",
		"order_number": req.OrderNumber,
	})
}
