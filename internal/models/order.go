package models

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Order statuses
const (
	OrderStatusPlaced = "placed"
)

type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	UUID      uuid.UUID `bun:"uuid,notnull,unique" json:"uuid"`
	Reference string    `bun:"reference,notnull,unique" json:"reference"`

	// Identity of the verified session that placed the order
	Identity string `bun:"identity,notnull" json:"identity"`

	// Customer block, encrypted at rest (decrypted by the service layer)
	CustomerNameEncrypted    string `bun:"customer_name_encrypted" json:"-"`
	CustomerEmail            string `bun:"customer_email" json:"customer_email"`
	ShippingAddressEncrypted string `bun:"shipping_address_encrypted" json:"-"`
	CityEncrypted            string `bun:"city_encrypted" json:"-"`
	ZipEncrypted             string `bun:"zip_encrypted" json:"-"`

	// Decrypted fields (not stored, populated by the service)
	CustomerName    string `bun:"-" json:"customer_name,omitempty"`
	ShippingAddress string `bun:"-" json:"shipping_address,omitempty"`
	City            string `bun:"-" json:"city,omitempty"`
	Zip             string `bun:"-" json:"zip,omitempty"`

	Items  json.RawMessage `bun:"items,type:jsonb" json:"items"`
	Total  float64         `bun:"total,notnull" json:"total"`
	Status string          `bun:"status,default:'placed'" json:"status"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:now()" json:"created_at"`
}

// OrderItem is one cart line, stored inside Order.Items as jsonb.
type OrderItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// BeforeInsert hook
var _ bun.BeforeInsertHook = (*Order)(nil)

func (o *Order) BeforeInsert(ctx context.Context, query *bun.InsertQuery) error {
	o.CreatedAt = time.Now()
	return nil
}
