package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/soulofsrilanka/travel-api/internal/api/handler"
	"github.com/soulofsrilanka/travel-api/internal/api/middleware"
	"github.com/soulofsrilanka/travel-api/internal/core/ports"
	"github.com/soulofsrilanka/travel-api/internal/core/service"
	"github.com/soulofsrilanka/travel-api/internal/infrastructure/config"
	mongodb "github.com/soulofsrilanka/travel-api/internal/infrastructure/db/mongo"
	redisdb "github.com/soulofsrilanka/travel-api/internal/infrastructure/db/redis"
)

// guardedRoutes is the single declarative access table: route path to the
// role set allowed through. All role gating lives here, not in per-route
// conditionals.
var guardedRoutes = middleware.RouteRoles{
	"/api/vendor/dashboard": {"vendor", "admin"},
	"/api/admin/users":      {"admin"},
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, notifier ports.Notifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("travel"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hotelRepo := mongodb.NewHotelRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb)

	authService := service.NewAuthService(userRepo, notifier, cfg.JWTSecret, cfg.TokenTTL, log)
	hotelService := service.NewHotelService(hotelRepo, catalogCache, log)
	chatService := service.NewChatService(log)
	contentService := service.NewContentService()

	authHandler := handler.NewAuthHandler(authService)
	hotelHandler := handler.NewHotelHandler(hotelService)
	chatHandler := handler.NewChatHandler(chatService)
	contentHandler := handler.NewContentHandler(contentService)
	accountHandler := handler.NewAccountHandler(userRepo)

	// --- Public routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/hotels", hotelHandler.List)
	e.POST("/api/hotels", hotelHandler.Create) // unauthenticated, see HotelHandler.Create
	e.GET("/api/destinations", contentHandler.Destinations)
	e.GET("/api/blog", contentHandler.BlogPosts)
	e.POST("/api/chat", chatHandler.Message)

	// --- Role-gated routes ---
	gated := e.Group("", middleware.Auth(cfg.JWTSecret), middleware.Guard(guardedRoutes))
	gated.GET("/api/vendor/dashboard", accountHandler.VendorDashboard)
	gated.GET("/api/admin/users", accountHandler.ListUsers)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
