package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopwise/shopping-assistant/internal/api/handler"
	"github.com/shopwise/shopping-assistant/internal/api/middleware"
	"github.com/shopwise/shopping-assistant/internal/core/domain"
	"github.com/shopwise/shopping-assistant/internal/core/ports"
	"github.com/shopwise/shopping-assistant/internal/core/service"
	mongodb "github.com/shopwise/shopping-assistant/internal/infrastructure/db/mongo"
	redisdb "github.com/shopwise/shopping-assistant/internal/infrastructure/db/redis"
)

// Deps bundles the externally constructed dependencies the router composes.
type Deps struct {
	Mongo       *mongo.Database
	Redis       *redis.Client
	Backends    []ports.ModelClient
	Audit       ports.AuditSink
	JWTSecret   string
	Development bool
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("assistant"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.Mongo)
	statsCache := redisdb.NewStatsCache(deps.Redis, 30*time.Second, deps.Logger)

	authService := service.NewAuthService(userRepo, deps.JWTSecret, 24*time.Hour)
	userService := service.NewUserService(userRepo, statsCache, deps.Audit, deps.Logger)
	assistantService := service.NewAssistantService(deps.Backends, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(userService)
	assistantHandler := handler.NewAssistantHandler(assistantService, deps.Logger, deps.Development)

	authMW := middleware.Auth(deps.JWTSecret, userRepo)
	adminMW := middleware.RBAC(domain.RoleAdmin)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Shopping assistant (authenticated) ---
	shopping := e.Group("/api/shopping", authMW)
	shopping.POST("/assist", assistantHandler.Assist)
	shopping.POST("/assist/enhanced", assistantHandler.AssistEnhanced)

	// --- Admin directory (authenticated + admin role) ---
	admin := e.Group("/api/admin", authMW, adminMW)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PATCH("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/stats", adminHandler.Stats)

	return e
}
