package http

import (
	"time"

	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/request"
	"github.com/itsjustvita/booking-calendar-sub000/internal/todo"
)

// ListTodosRequest defines query parameters for listing todos.
type ListTodosRequest struct {
	request.ListParams
	UserID     string `form:"user_id" binding:"omitempty,uuid"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=open done"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=created_at due_date title status"`
}

type TodoResponse struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	UserName     string     `json:"user_name"`
	CategoryID   *string    `json:"category_id"`
	CategoryName *string    `json:"category_name"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	DueDate      *time.Time `json:"due_date"`
	CommentCount int        `json:"comment_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:           t.ID,
		UserID:       t.UserID,
		UserName:     t.UserName,
		CategoryID:   t.CategoryID,
		CategoryName: t.CategoryName,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
		DueDate:      t.DueDate,
		CommentCount: t.CommentCount,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type CreateTodoRequest struct {
	CategoryID  *string    `json:"category_id" binding:"omitempty,uuid"`
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"max=2000"`
	DueDate     *time.Time `json:"due_date" time_format:"2006-01-02"`
}

type UpdateTodoRequest struct {
	CategoryID  *string    `json:"category_id"`
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Status      *string    `json:"status" binding:"omitempty,oneof=open done"`
	DueDate     *time.Time `json:"due_date" time_format:"2006-01-02"`
	ClearDue    bool       `json:"clear_due_date"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	TodoID    string    `json:"todo_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCommentResponse(c *todo.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		TodoID:    c.TodoID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}
