package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/eluxe/eluxe-backend/config"
	"github.com/eluxe/eluxe-backend/internal/guard"
	"github.com/eluxe/eluxe-backend/internal/middleware"
	"github.com/eluxe/eluxe-backend/internal/services"
	"github.com/gofiber/fiber/v3"
)

type AuthHandler struct {
	guard      *guard.Guard
	jwtService *services.JWTService
	notifier   services.Notifier
	cfg        *config.Config
}

func NewAuthHandler(g *guard.Guard, jwtService *services.JWTService, notifier services.Notifier, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		guard:      g,
		jwtService: jwtService,
		notifier:   notifier,
		cfg:        cfg,
	}
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email string `json:"email"`
}

// VerifyRequest represents the OTP verification payload
type VerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// Login starts a passwordless login: it asks the guard for a verification
// code and hands the code to the notification channel. The anomaly flag is
// returned so the storefront can warn the user that an alert was raised.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid request body",
		})
	}

	address, device := clientSignature(c)

	code, anomaly, err := h.guard.RequestLogin(c.Context(), req.Email, address, device)
	if err != nil {
		return h.guardError(c, err)
	}

	if anomaly {
		log.Printf("Security alert: anomalous login attempt for %s from %s (%s)", req.Email, address, device)
	}

	// Delivery is fire-and-forget: a broken mail path must not block login.
	if err := h.notifier.DeliverCode(req.Email, code, anomaly); err != nil {
		log.Printf("Failed to deliver verification code to %s: %v", req.Email, err)
	}

	resp := fiber.Map{
		"success":         true,
		"message":         "OTP sent to your email",
		"anomalyDetected": anomaly,
	}
	// Echo the code in development so the flow works without an SMTP setup.
	if h.cfg.IsDevelopment() {
		resp["otp"] = code
	}
	return c.JSON(resp)
}

// Verify consumes a candidate code. On success it refreshes the identity's
// trusted address/device baseline and issues a session token.
func (h *AuthHandler) Verify(c fiber.Ctx) error {
	var req VerifyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid request body",
		})
	}

	address, device := clientSignature(c)

	err := h.guard.ConsumeCode(c.Context(), req.Email, address, device, req.OTP)
	if err != nil {
		return h.guardError(c, err)
	}

	token, err := h.jwtService.GenerateToken(req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to generate token",
		})
	}

	h.setAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Verification successful",
		"token":   token,
	})
}

// Logout handles user logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// Me returns the identity behind the current session
func (h *AuthHandler) Me(c fiber.Ctx) error {
	identity := middleware.GetIdentity(c)
	if identity == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "Unauthorized",
			"message": "Not authenticated",
		})
	}

	return c.JSON(fiber.Map{
		"identity": identity,
	})
}

// clientSignature extracts the request's address and device signature for the
// guard. Header values from fiber alias fasthttp's reusable request buffer,
// so they must be copied before the guard persists them into the identity
// record; otherwise the stored baseline would mutate under later requests.
func clientSignature(c fiber.Ctx) (address, device string) {
	return strings.Clone(middleware.GetRealIP(c)), strings.Clone(c.Get("User-Agent"))
}

// guardError maps guard failures onto HTTP responses. Wrong code, unknown
// identity and no pending code all surface as the same generic message.
func (h *AuthHandler) guardError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, guard.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Missing required fields",
		})
	case errors.Is(err, guard.ErrInvalidCode):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid OTP",
		})
	case errors.Is(err, guard.ErrStoreUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "Service Unavailable",
			"message": "Please try again shortly",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Login failed",
		})
	}
}

// setAuthCookie sets the authentication cookie
func (h *AuthHandler) setAuthCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.jwtService.GetExpiry()),
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: "Lax",
	})
}
