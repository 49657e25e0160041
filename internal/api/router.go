package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/QaissAA/web-assignment3/internal/api/handler"
	"github.com/QaissAA/web-assignment3/internal/api/middleware"
	"github.com/QaissAA/web-assignment3/internal/core/service"
	shopmongo "github.com/QaissAA/web-assignment3/internal/infrastructure/db/mongo"
	shopredis "github.com/QaissAA/web-assignment3/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Any origin is allowed; the API is consumed by a browser frontend
	// served from elsewhere.
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("shop"))

	// --- Dependencies ---
	userRepo := shopmongo.NewUserRepository(db)
	productRepo := shopmongo.NewProductRepository(db)
	orderRepo := shopmongo.NewOrderRepository(db)
	denylist := shopredis.NewTokenDenylist(rdb)

	authService := service.NewAuthService(userRepo, jwtSecret, 24*time.Hour, log)
	catalogService := service.NewCatalogService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, log)

	authHandler := handler.NewAuthHandler(authService, denylist)
	productHandler := handler.NewProductHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	authMiddleware := middleware.Auth(jwtSecret, denylist)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/", healthHandler.Welcome)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Public API routes ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/products", productHandler.Create)
	apiGroup.GET("/products", productHandler.List)
	apiGroup.PUT("/products/:product_id", productHandler.Update)
	apiGroup.DELETE("/products/:product_id", productHandler.Delete)
	apiGroup.POST("/users/register", authHandler.Register)
	apiGroup.POST("/users/login", authHandler.Login)

	// --- Protected routes (valid bearer token required) ---
	apiGroup.POST("/users/logout", authHandler.Logout, authMiddleware)

	orders := apiGroup.Group("/orders", authMiddleware)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.PUT("/:order_id", orderHandler.UpdateStatus)

	return e
}
