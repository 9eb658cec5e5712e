package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/eluxe/eluxe-backend/internal/middleware"
	"github.com/eluxe/eluxe-backend/internal/models"
	"github.com/eluxe/eluxe-backend/internal/orders"
	"github.com/gofiber/fiber/v3"
)

type OrderHandler struct {
	orderService *orders.Service
}

func NewOrderHandler(orderService *orders.Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// CheckoutRequest represents the checkout payload
type CheckoutRequest struct {
	Items    []models.OrderItem `json:"items"`
	Total    float64            `json:"total"`
	Customer orders.Customer    `json:"customer"`
}

// Checkout places an order for the authenticated identity
func (h *OrderHandler) Checkout(c fiber.Ctx) error {
	var req CheckoutRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid request body",
		})
	}

	identity := middleware.GetIdentity(c)

	order, err := h.orderService.Create(c.Context(), identity, req.Customer, req.Items, req.Total)
	if err != nil {
		if errors.Is(err, orders.ErrEmptyCart) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "No items in cart",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to place order",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"orderId": order.Reference,
		"message": "Order placed successfully! Welcome to the ELUXE family.",
	})
}

// List returns all orders for the back office
func (h *OrderHandler) List(c fiber.Ctx) error {
	orderList, err := h.orderService.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to load orders",
		})
	}
	return c.JSON(fiber.Map{
		"orders": orderList,
	})
}

// Export streams all orders as an XLSX workbook
func (h *OrderHandler) Export(c fiber.Ctx) error {
	orderList, err := h.orderService.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to load orders",
		})
	}

	workbook, err := orders.BuildWorkbook(orderList)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to build export",
		})
	}

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to build export",
		})
	}

	filename := fmt.Sprintf("eluxe-orders-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
