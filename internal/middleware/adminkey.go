package middleware

import (
	"github.com/gofiber/fiber/v3"
	"golang.org/x/crypto/bcrypt"
)

// AdminKeyMiddleware guards back-office routes with a shared admin key. Only
// the bcrypt hash of the key lives in the environment; an empty hash keeps
// the routes switched off entirely.
func AdminKeyMiddleware(keyHash string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if keyHash == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":   "Forbidden",
				"message": "Admin access is not configured",
			})
		}

		key := c.Get("X-Admin-Key")
		if key == "" || bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "Unauthorized",
				"message": "Invalid admin key",
			})
		}

		return c.Next()
	}
}
