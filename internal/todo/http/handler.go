package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/itsjustvita/booking-calendar-sub000/internal/auth"
	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/request"
	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/response"
	"github.com/itsjustvita/booking-calendar-sub000/internal/todo"
)

type Handler struct {
	service todo.Service
}

func NewHandler(service todo.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListTodosRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := todo.Filter{
		UserID:     req.UserID,
		CategoryID: req.CategoryID,
		Status:     req.Status,
		Page:       req.Page,
		PageSize:   req.PageSize,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	}

	todos, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list todos"})
		return
	}

	items := make([]TodoResponse, len(todos))
	for i, t := range todos {
		items[i] = NewTodoResponse(t)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateTodoRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	t, err := h.service.Create(c.Request.Context(), todo.CreateRequest{
		UserID:      userID,
		CategoryID:  body.CategoryID,
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewTodoResponse(t))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTodoResponse(t))
}

func (h *Handler) Update(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	var body UpdateTodoRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	isAdmin := auth.GetIsAdmin(c)

	t, err := h.service.Update(c.Request.Context(), req.ID, todo.UpdateRequest{
		CategoryID:  body.CategoryID,
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		DueDate:     body.DueDate,
		ClearDue:    body.ClearDue,
	}, userID, isAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTodoResponse(t))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
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

func (h *Handler) ListComments(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	comments, err := h.service.ListComments(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]CommentResponse, len(comments))
	for i, cm := range comments {
		items[i] = NewCommentResponse(cm)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) AddComment(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid todo id"})
		return
	}

	var body CreateCommentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	cm, err := h.service.AddComment(c.Request.Context(), req.ID, userID, body.Content)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewCommentResponse(cm))
}

func (h *Handler) DeleteComment(c *gin.Context) {
	commentID := c.Param("commentId")
	if _, err := uuid.Parse(commentID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	userID := auth.GetUserID(c)
	isAdmin := auth.GetIsAdmin(c)

	if err := h.service.DeleteComment(c.Request.Context(), commentID, userID, isAdmin); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
