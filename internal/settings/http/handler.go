package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/response"
	"github.com/itsjustvita/booking-calendar-sub000/internal/settings"
)

type Handler struct {
	service settings.Service
}

func NewHandler(service settings.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	all, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list settings"})
		return
	}

	items := make([]SettingResponse, len(all))
	for i, s := range all {
		items[i] = NewSettingResponse(s)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Get(c *gin.Context) {
	key := c.Param("key")

	s, err := h.service.Get(c.Request.Context(), key)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSettingResponse(s))
}

func (h *Handler) Set(c *gin.Context) {
	key := c.Param("key")

	var body SetSettingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.service.Set(c.Request.Context(), key, body.Value)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSettingResponse(s))
}

func (h *Handler) Delete(c *gin.Context) {
	key := c.Param("key")

	if err := h.service.Delete(c.Request.Context(), key); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
