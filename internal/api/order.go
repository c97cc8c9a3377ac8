package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/logger"
	"github.com/Aswin-004/restaurant-ordering-platform/internal/order"
)

type orderHandler struct {
	svc order.Service
}

func (h *orderHandler) create(c *gin.Context) {
	var req order.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	o, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.FromCtx(c.Request.Context()).Info("order placed",
		zap.String("order_number", o.OrderNumber),
		zap.Float64("total", o.Total),
	)

	c.JSON(http.StatusCreated, o)
}

func (h *orderHandler) list(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	skip, _ := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)

	orders, err := h.svc.List(c.Request.Context(), c.Query("status"), limit, skip)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *orderHandler) get(c *gin.Context) {
	o, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *orderHandler) getByNumber(c *gin.Context) {
	o, err := h.svc.GetByNumber(c.Request.Context(), c.Param("orderNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *orderHandler) updateStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	o, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.FromCtx(c.Request.Context()).Info("order status updated",
		zap.String("order_id", c.Param("id")),
		zap.String("status", req.Status),
	)

	c.JSON(http.StatusOK, o)
}

func (h *orderHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "order deleted"})
}
