package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maligai/backoffice-api/internal/config"
	"github.com/maligai/backoffice-api/internal/presentation/http/handler"
	"github.com/maligai/backoffice-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Billing *handler.BillingHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// Rendered receipts are served as static files
	router.Static("/bills", cfg.Billing.ReceiptDir)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerAuthRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerBillingRoutes(v1, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", h.Auth.Login)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/low-stock/email", h.Product.LowStockEmail)
		products.GET("/export", h.Product.Export)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerBillingRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.POST("/billing", h.Billing.Create)

	bills := v1.Group("/bills")
	{
		bills.GET("", h.Billing.List)
		bills.GET("/:id", h.Billing.Get)
		bills.GET("/:id/receipt", h.Billing.Receipt)
	}
}
