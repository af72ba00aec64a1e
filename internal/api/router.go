package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/itsjustvita/booking-calendar-sub000/internal/auth"
	"github.com/itsjustvita/booking-calendar-sub000/internal/booking"
	bookingHttp "github.com/itsjustvita/booking-calendar-sub000/internal/booking/http"
	"github.com/itsjustvita/booking-calendar-sub000/internal/category"
	categoryHttp "github.com/itsjustvita/booking-calendar-sub000/internal/category/http"
	"github.com/itsjustvita/booking-calendar-sub000/internal/photo"
	photoHttp "github.com/itsjustvita/booking-calendar-sub000/internal/photo/http"
	"github.com/itsjustvita/booking-calendar-sub000/internal/settings"
	settingsHttp "github.com/itsjustvita/booking-calendar-sub000/internal/settings/http"
	"github.com/itsjustvita/booking-calendar-sub000/internal/todo"
	todoHttp "github.com/itsjustvita/booking-calendar-sub000/internal/todo/http"
	"github.com/itsjustvita/booking-calendar-sub000/internal/user"
	userHttp "github.com/itsjustvita/booking-calendar-sub000/internal/user/http"
)

// Config holds everything the router needs to assemble middleware and routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	Logger       *zap.Logger

	UserService     user.Service
	BookingService  booking.Service
	TodoService     todo.Service
	CategoryService category.Service
	SettingsService settings.Service
	PhotoService    photo.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (logging, recovery, CORS, auth) and registers
// routes for every module under /v1.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: validates the request carries a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: further checks the token carries the admin role.
	adminMiddleware := RequireAdmin()

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	todoHandler := todoHttp.NewHandler(cfg.TodoService)
	categoryHandler := categoryHttp.NewHandler(cfg.CategoryService)
	settingsHandler := settingsHttp.NewHandler(cfg.SettingsService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
		todoHttp.RegisterRoutes(v1, todoHandler, authMiddleware)
		categoryHttp.RegisterRoutes(v1, categoryHandler, authMiddleware, adminMiddleware)
		settingsHttp.RegisterRoutes(v1, settingsHandler, authMiddleware, adminMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware)
	}

	return r
}
