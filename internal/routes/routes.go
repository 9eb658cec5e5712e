package routes

import (
	"github.com/eluxe/eluxe-backend/config"
	"github.com/eluxe/eluxe-backend/internal/catalog"
	"github.com/eluxe/eluxe-backend/internal/guard"
	"github.com/eluxe/eluxe-backend/internal/handlers"
	"github.com/eluxe/eluxe-backend/internal/middleware"
	"github.com/eluxe/eluxe-backend/internal/orders"
	"github.com/eluxe/eluxe-backend/internal/services"
	"github.com/gofiber/fiber/v3"
)

func SetupRoutes(
	app *fiber.App,
	cfg *config.Config,
	loginGuard *guard.Guard,
	jwtService *services.JWTService,
	notifier services.Notifier,
	catalogService *catalog.Service,
	orderService *orders.Service,
) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(loginGuard, jwtService, notifier, cfg)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "ELUXE API is running",
		})
	})

	// API group
	api := app.Group("/api")

	// ==================
	// Public Catalog Routes
	// ==================
	api.Get("/products", catalogHandler.List)
	api.Get("/products/:id", catalogHandler.Get)

	// ==================
	// Login Routes (rate limited per IP: the guard itself does not throttle)
	// ==================
	auth := api.Group("/auth", middleware.RateLimitMiddleware(cfg.OTPRateLimitMax))
	auth.Post("/login", authHandler.Login)
	auth.Post("/verify", authHandler.Verify)

	// ==================
	// Protected Routes (session token from a verified OTP)
	// ==================
	// Registered per route rather than via a prefixless group: an empty-prefix
	// group would mount the JWT check over the whole /api subtree and gate the
	// admin routes below with the wrong credential.
	authRequired := middleware.AuthMiddleware(jwtService)
	api.Post("/checkout", orderHandler.Checkout, authRequired)
	api.Get("/auth/me", authHandler.Me, authRequired)
	api.Post("/auth/logout", authHandler.Logout, authRequired)

	// ==================
	// Back-office Routes (shared admin key)
	// ==================
	admin := api.Group("/admin", middleware.AdminKeyMiddleware(cfg.AdminKeyHash))
	admin.Get("/orders", orderHandler.List)
	admin.Get("/orders/export", orderHandler.Export)
}
