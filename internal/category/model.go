package category

import (
	"net/http"
	"time"

	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "category not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "name is required")
	ErrNameTaken    = apperror.New(http.StatusConflict, "category name already exists")
	ErrInUse        = apperror.New(http.StatusConflict, "category is still referenced by todos")
)

// Category groups todos, e.g. "maintenance" or "shopping".
type Category struct {
	ID        string
	Name      string
	Color     string // hex color used by calendar and list views
	CreatedAt time.Time
	UpdatedAt time.Time
}
