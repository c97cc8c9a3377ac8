package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aswin-004/restaurant-ordering-platform/internal/special"
)

type specialHandler struct {
	svc special.Service
}

func (h *specialHandler) list(c *gin.Context) {
	specials, err := h.svc.List(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, specials)
}

// listAll includes inactive specials and is only reachable behind auth.
func (h *specialHandler) listAll(c *gin.Context) {
	specials, err := h.svc.List(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, specials)
}

func (h *specialHandler) get(c *gin.Context) {
	sp, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *specialHandler) create(c *gin.Context) {
	var req special.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	sp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (h *specialHandler) update(c *gin.Context) {
	var req special.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	sp, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *specialHandler) toggle(c *gin.Context) {
	sp, err := h.svc.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *specialHandler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "special deleted"})
}
