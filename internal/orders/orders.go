// Package orders records checkouts. Payment capture happens with an external
// provider and is out of scope here; an order row is the storefront's own
// receipt of what was bought and by whom.
package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/eluxe/eluxe-backend/internal/database"
	"github.com/eluxe/eluxe-backend/internal/models"
	"github.com/eluxe/eluxe-backend/internal/services"
	"github.com/google/uuid"
)

// ErrEmptyCart is returned when a checkout arrives without items.
var ErrEmptyCart = errors.New("no items in cart")

// Customer is the shipping block collected at checkout.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

type Service struct {
	crypto       *services.CryptoService
	emailService *services.EmailService
}

func NewService(crypto *services.CryptoService, emailService *services.EmailService) *Service {
	return &Service{
		crypto:       crypto,
		emailService: emailService,
	}
}

// Create persists a new order and sends a best-effort confirmation email.
// Customer name and shipping fields are encrypted before they touch the
// database.
func (s *Service) Create(ctx context.Context, identity string, customer Customer, items []models.OrderItem, total float64) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order items: %w", err)
	}

	order := &models.Order{
		UUID:          uuid.New(),
		Reference:     NewReference(),
		Identity:      identity,
		CustomerEmail: customer.Email,
		Items:         itemsJSON,
		Total:         total,
		Status:        models.OrderStatusPlaced,
	}

	if order.CustomerNameEncrypted, err = s.crypto.Encrypt(customer.Name); err != nil {
		return nil, fmt.Errorf("failed to encrypt customer data: %w", err)
	}
	if order.ShippingAddressEncrypted, err = s.crypto.Encrypt(customer.Address); err != nil {
		return nil, fmt.Errorf("failed to encrypt customer data: %w", err)
	}
	if order.CityEncrypted, err = s.crypto.Encrypt(customer.City); err != nil {
		return nil, fmt.Errorf("failed to encrypt customer data: %w", err)
	}
	if order.ZipEncrypted, err = s.crypto.Encrypt(customer.Zip); err != nil {
		return nil, fmt.Errorf("failed to encrypt customer data: %w", err)
	}

	if _, err := database.DB.NewInsert().Model(order).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s (x%d)", item.Name, item.Quantity))
	}
	log.Printf("New order %s for %s, total $%.2f: %s",
		order.Reference, identity, total, strings.Join(lines, ", "))

	if customer.Email != "" {
		if err := s.emailService.SendOrderConfirmation(customer.Email, order.Reference, total); err != nil {
			log.Printf("Order %s: confirmation email failed: %v", order.Reference, err)
		}
	}

	return order, nil
}

// List returns all orders, newest first, with customer fields decrypted.
func (s *Service) List(ctx context.Context) ([]*models.Order, error) {
	var orderList []*models.Order
	err := database.DB.NewSelect().
		Model(&orderList).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	for _, order := range orderList {
		if err := s.decryptCustomer(order); err != nil {
			return nil, err
		}
	}
	return orderList, nil
}

func (s *Service) decryptCustomer(order *models.Order) error {
	var err error
	if order.CustomerName, err = s.crypto.Decrypt(order.CustomerNameEncrypted); err != nil {
		return fmt.Errorf("failed to decrypt order %s: %w", order.Reference, err)
	}
	if order.ShippingAddress, err = s.crypto.Decrypt(order.ShippingAddressEncrypted); err != nil {
		return fmt.Errorf("failed to decrypt order %s: %w", order.Reference, err)
	}
	if order.City, err = s.crypto.Decrypt(order.CityEncrypted); err != nil {
		return fmt.Errorf("failed to decrypt order %s: %w", order.Reference, err)
	}
	if order.Zip, err = s.crypto.Decrypt(order.ZipEncrypted); err != nil {
		return fmt.Errorf("failed to decrypt order %s: %w", order.Reference, err)
	}
	return nil
}
