package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	photos := g.Group("/photos")
	photos.Use(authMiddleware)
	{
		photos.GET("", h.List)
		photos.GET("/:id", h.Get)
		photos.GET("/:id/file", h.ServeFile)
		photos.GET("/:id/thumbnail", h.ServeThumbnail)
		photos.POST("", h.Upload)
		photos.PATCH("/:id", h.UpdateCaption)
		photos.DELETE("/:id", h.Delete)
	}
}
