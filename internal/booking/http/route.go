package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	bookings := g.Group("/bookings")
	bookings.Use(authMiddleware)
	{
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
		bookings.POST("", h.Create)
		bookings.PATCH("/:id", h.Update)
		bookings.DELETE("/:id", h.Delete)
	}

	calendar := g.Group("/calendar")
	calendar.Use(authMiddleware)
	{
		calendar.GET("/availability", h.CheckAvailability)
		calendar.GET("/:year", h.YearCalendar)
		calendar.GET("/:year/:month", h.MonthCalendar)
	}
}
