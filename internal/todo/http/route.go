package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	todos := g.Group("/todos")
	todos.Use(authMiddleware)
	{
		todos.GET("", h.List)
		todos.GET("/:id", h.Get)
		todos.POST("", h.Create)
		todos.PATCH("/:id", h.Update)
		todos.DELETE("/:id", h.Delete)

		// one flat level of comments below each todo
		todos.GET("/:id/comments", h.ListComments)
		todos.POST("/:id/comments", h.AddComment)
		todos.DELETE("/:id/comments/:commentId", h.DeleteComment)
	}
}
