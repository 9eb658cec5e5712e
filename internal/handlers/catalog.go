package handlers

import (
	"errors"
	"strconv"

	"github.com/eluxe/eluxe-backend/internal/catalog"
	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	catalogService *catalog.Service
}

func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// List returns the full product catalog
func (h *CatalogHandler) List(c fiber.Ctx) error {
	products, err := h.catalogService.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to load products",
		})
	}
	return c.JSON(products)
}

// Get returns one product by id
func (h *CatalogHandler) Get(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Bad Request",
			"message": "Invalid product id",
		})
	}

	product, err := h.catalogService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Not Found",
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal Server Error",
			"message": "Failed to load product",
		})
	}
	return c.JSON(product)
}
