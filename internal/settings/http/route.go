package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	settings := g.Group("/settings")
	settings.Use(authMiddleware, adminMiddleware)
	{
		settings.GET("", h.List)
		settings.GET("/:key", h.Get)
		settings.PUT("/:key", h.Set)
		settings.DELETE("/:key", h.Delete)
	}
}
