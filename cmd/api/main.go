package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maligai/backoffice-api/internal/application/service"
	"github.com/maligai/backoffice-api/internal/config"
	"github.com/maligai/backoffice-api/internal/infrastructure/database"
	"github.com/maligai/backoffice-api/internal/infrastructure/repository"
	"github.com/maligai/backoffice-api/internal/presentation/http/handler"
	"github.com/maligai/backoffice-api/internal/presentation/http/routes"
	"github.com/maligai/backoffice-api/pkg/mailer"
	"github.com/maligai/backoffice-api/pkg/receipt"
	"github.com/robfig/cron/v3"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to Postgres
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Connect to Mongo before serving so bills never hit an
	// uninitialized store
	mongoDB, err := database.NewMongoDB(&cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to mongo: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	billRepo := repository.NewBillRepository(mongoDB)

	// Initialize mail and receipt infrastructure
	mailService := mailer.New(mailer.Config{
		SMTPHost:     cfg.Mail.SMTPHost,
		SMTPPort:     cfg.Mail.SMTPPort,
		SMTPUsername: cfg.Mail.SMTPUsername,
		SMTPPassword: cfg.Mail.SMTPPassword,
		FromName:     cfg.Mail.FromName,
		FromEmail:    cfg.Mail.FromEmail,
	})
	renderer := receipt.NewRenderer(cfg.Billing.ReceiptDir, cfg.App.Name)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.Auth.BcryptCost)
	productService := service.NewProductService(productRepo, cfg.Alert.StockThreshold)
	billingService := service.NewBillingService(billRepo, productRepo, renderer, mailService, cfg.Billing.ReceiptDir)
	alertService := service.NewStockAlertService(productRepo, mailService, cfg.Alert.Recipient, cfg.Alert.StockThreshold)

	// Schedule the daily low-stock sweep
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Alert.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result, err := alertService.Sweep(ctx)
		if err != nil {
			log.Printf("Low stock sweep failed: %v", err)
			return
		}
		log.Printf("Low stock sweep: %s (matched=%d sent=%t)", result.Message, result.Matched, result.Sent)
	}); err != nil {
		log.Fatalf("Failed to schedule low stock sweep: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Initialize handlers and routes
	handlers := &routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Product: handler.NewProductHandler(productService, alertService),
		Billing: handler.NewBillingHandler(billingService),
	}
	router := routes.Setup(handlers, cfg)

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
