package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/itsjustvita/booking-calendar-sub000/internal/auth"
	"github.com/itsjustvita/booking-calendar-sub000/internal/booking"
	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/request"
	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	filter := booking.Filter{
		UserID:    req.UserID,
		Status:    req.Status,
		From:      req.From,
		To:        req.To,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	start, end, _ := parseDatePair(body.StartDate, body.EndDate)

	guests := body.GuestCount
	if guests == 0 {
		guests = 1
	}

	req := booking.CreateRequest{
		UserID:      userID,
		Title:       body.Title,
		GuestCount:  guests,
		StartDate:   start,
		EndDate:     end,
		ArrivalHalf: booking.DayHalf(body.ArrivalHalf),
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var body UpdateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	userID := auth.GetUserID(c)
	isAdmin := auth.GetIsAdmin(c)

	upd := booking.UpdateRequest{
		Title:      body.Title,
		GuestCount: body.GuestCount,
		Status:     body.Status,
	}
	if body.StartDate != nil {
		if t, err := time.Parse(dateLayout, *body.StartDate); err == nil {
			upd.StartDate = &t
		}
	}
	if body.EndDate != nil {
		if t, err := time.Parse(dateLayout, *body.EndDate); err == nil {
			upd.EndDate = &t
		}
	}
	if body.ArrivalHalf != nil {
		half := booking.DayHalf(*body.ArrivalHalf)
		upd.ArrivalHalf = &half
	}

	b, err := h.service.Update(c.Request.Context(), req.ID, upd, userID, isAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	userID := auth.GetUserID(c)
	isAdmin := auth.GetIsAdmin(c)

	if err := h.service.Delete(c.Request.Context(), req.ID, userID, isAdmin); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	start, end, err := parseDatePair(req.StartDate, req.EndDate)
	if err != nil || start.After(end) {
		response.Error(c, booking.ErrInvalidDateRange)
		return
	}

	free, err := h.service.CheckAvailability(c.Request.Context(), booking.DateRange{Start: start, End: end})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check availability"})
		return
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Available: free,
	})
}

func (h *Handler) MonthCalendar(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	days, err := h.service.MonthCalendar(c.Request.Context(), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build calendar"})
		return
	}

	items := make([]DayOccupancyResponse, len(days))
	for i, d := range days {
		items[i] = NewDayOccupancyResponse(d)
	}

	c.JSON(http.StatusOK, MonthCalendarResponse{
		Year:  year,
		Month: int(month),
		Days:  items,
	})
}

func (h *Handler) YearCalendar(c *gin.Context) {
	year, ok := parseYear(c)
	if !ok {
		return
	}

	months, stats, err := h.service.YearCalendar(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build calendar"})
		return
	}

	out := make(map[int][]DayOccupancyResponse, len(months))
	for m, days := range months {
		items := make([]DayOccupancyResponse, len(days))
		for i, d := range days {
			items[i] = NewDayOccupancyResponse(d)
		}
		out[int(m)] = items
	}

	c.JSON(http.StatusOK, YearCalendarResponse{
		Year:   year,
		Months: out,
		Stats: CalendarStatsResponse{
			BookingCount: stats.BookingCount,
			NightCount:   stats.NightCount,
			GuestTotal:   stats.GuestTotal,
			BusiestMonth: int(stats.BusiestMonth),
		},
	})
}

func parseYear(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, false
	}
	return year, true
}

func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	year, ok := parseYear(c)
	if !ok {
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return 0, 0, false
	}
	return year, time.Month(month), true
}
