package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/itsjustvita/booking-calendar-sub000/internal/api"
	"github.com/itsjustvita/booking-calendar-sub000/internal/auth"
	"github.com/itsjustvita/booking-calendar-sub000/internal/booking"
	"github.com/itsjustvita/booking-calendar-sub000/internal/category"
	"github.com/itsjustvita/booking-calendar-sub000/internal/photo"
	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/storage"
	"github.com/itsjustvita/booking-calendar-sub000/internal/settings"
	"github.com/itsjustvita/booking-calendar-sub000/internal/todo"
	"github.com/itsjustvita/booking-calendar-sub000/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	Logger       *zap.Logger
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	StorageDir   string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StorageDir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Settings module
	settingsRepo := settings.NewPgxRepository(cfg.DBPool)
	settingsService := settings.NewService(settingsRepo)

	// Booking module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, settingsService)

	// Todo module
	todoRepo := todo.NewPgxRepository(cfg.DBPool)
	todoService := todo.NewService(todoRepo)

	// Category module
	categoryRepo := category.NewPgxRepository(cfg.DBPool)
	categoryService := category.NewService(categoryRepo)

	// Photo module
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, store)

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		Logger:          cfg.Logger,
		UserService:     userService,
		BookingService:  bookingService,
		TodoService:     todoService,
		CategoryService: categoryService,
		SettingsService: settingsService,
		PhotoService:    photoService,
		JWTManager:      jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
