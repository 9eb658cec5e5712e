package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/eluxe/eluxe-backend/config"
	"github.com/eluxe/eluxe-backend/internal/catalog"
	"github.com/eluxe/eluxe-backend/internal/database"
	"github.com/eluxe/eluxe-backend/internal/guard"
	"github.com/eluxe/eluxe-backend/internal/middleware"
	"github.com/eluxe/eluxe-backend/internal/orders"
	"github.com/eluxe/eluxe-backend/internal/rabbitmq"
	"github.com/eluxe/eluxe-backend/internal/routes"
	"github.com/eluxe/eluxe-backend/internal/services"
	"github.com/eluxe/eluxe-backend/internal/store"
	workers "github.com/eluxe/eluxe-backend/internal/worker"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	log.Printf("Connected to database successfully")

	if err := database.Migrate(context.Background()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize services
	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.JWTExpiryHours)
	cryptoService := services.NewCryptoService(cfg.AppSecret)
	emailService := services.NewEmailService(cfg)
	notificationService := services.NewNotificationService(emailService)

	loginGuard := guard.New(store.NewPostgres())
	catalogService := catalog.NewService()
	orderService := orders.NewService(cryptoService, emailService)

	if err := catalogService.EnsureSeeded(context.Background()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:       "ELUXE API",
		CaseSensitive: true,
		StrictRouting: false,
		ServerHeader:  "ELUXE",
		ErrorHandler:  customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e any) {
			log.Printf("Panic recovered: %v", e)
			log.Printf("Request: %s %s", c.Method(), c.Path())
			log.Printf("Stack trace:\n%s", string(debug.Stack()))
		},
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} (${latency})\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// Setup RabbitMQ; the storefront degrades to synchronous email delivery
	// when no broker is configured.
	if cfg.RabbitMQURL != "" {
		if err := rabbitmq.SetupRabbitMQ(cfg.RabbitMQURL); err != nil {
			log.Printf("Failed to connect to RabbitMQ: %v", err)
		} else {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go func() {
				otpWorker := workers.NewOTPWorker(emailService)
				if err := otpWorker.StartWorker(ctx); err != nil {
					log.Printf("Worker failed: %v", err)
				}
			}()

			defer rabbitmq.Close()
		}
	}

	// Setup routes
	routes.SetupRoutes(app, cfg, loginGuard, jwtService, notificationService, catalogService, orderService)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting server on %s", addr)
	log.Printf("Environment: %s", cfg.Env)
	log.Printf("Allowed origins: %v", cfg.AllowedOrigins)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func customErrorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   "Error",
		"message": err.Error(),
	})
}
