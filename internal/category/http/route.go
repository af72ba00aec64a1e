package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	categories := g.Group("/categories")
	categories.Use(authMiddleware)
	{
		categories.GET("", h.List)
		categories.GET("/:id", h.Get)
	}

	// Mutations are admin-only.
	admin := g.Group("/categories")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
