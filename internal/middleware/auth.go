package middleware

import (
	"strings"

	"github.com/eluxe/eluxe-backend/internal/services"
	"github.com/gofiber/fiber/v3"
)

const (
	// ContextKeyIdentity is the key for the verified identity in context
	ContextKeyIdentity = "identity"
)

// AuthMiddleware creates a middleware that validates session tokens issued
// after OTP verification
func AuthMiddleware(jwtService *services.JWTService) fiber.Handler {
	return func(c fiber.Ctx) error {
		// Try to get token from Authorization header first
		authHeader := c.Get("Authorization")
		var token string

		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// If no token in header, try to get from cookie
		if token == "" {
			token = c.Cookies("token")
		}

		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Unauthorized",
				"message": "Authentication required",
			})
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Unauthorized",
				"message": "Invalid or expired token",
			})
		}

		c.Locals(ContextKeyIdentity, claims.Identity)

		return c.Next()
	}
}

// GetIdentity gets the verified identity from context
func GetIdentity(c fiber.Ctx) string {
	if identity, ok := c.Locals(ContextKeyIdentity).(string); ok {
		return identity
	}
	return ""
}
