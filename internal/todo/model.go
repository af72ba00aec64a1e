package todo

import (
	"net/http"
	"time"

	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "todo not found")
	ErrCommentNotFound  = apperror.New(http.StatusNotFound, "comment not found")
	ErrCategoryNotFound = apperror.New(http.StatusNotFound, "category not found")
	ErrTitleRequired    = apperror.New(http.StatusBadRequest, "title is required")
	ErrContentRequired  = apperror.New(http.StatusBadRequest, "content is required")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid todo status")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Status classifies a todo's completion state.
type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// Todo is a household task tracked for the cabin.
type Todo struct {
	ID           string
	UserID       string
	UserName     string
	CategoryID   *string
	CategoryName *string
	Title        string
	Description  string
	Status       Status
	DueDate      *time.Time
	CommentCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Comment is a single remark on a todo. Comments form one flat level under
// their todo; there is no nesting.
type Comment struct {
	ID        string
	TodoID    string
	UserID    string
	UserName  string
	Content   string
	CreatedAt time.Time
}

// Filter defines parameters for listing todos.
type Filter struct {
	UserID     string
	CategoryID string
	Status     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
