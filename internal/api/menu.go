package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/menu"
)

type menuHandler struct {
	svc menu.Service
}

func (h *menuHandler) list(c *gin.Context) {
	// Customers only ever see available items; the dashboard passes
	// available_only=false to manage the full catalog.
	availableOnly := c.DefaultQuery("available_only", "true") != "false"

	items, err := h.svc.List(c.Request.Context(), c.Query("category"), availableOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *menuHandler) categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *menuHandler) get(c *gin.Context) {
	item, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *menuHandler) create(c *gin.Context) {
	var req menu.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	item, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *menuHandler) update(c *gin.Context) {
	var req menu.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *menuHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "menu item deleted"})
}
