package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Product is a single catalog entry. The catalog is effectively static: rows
// are seeded at startup when the table is empty and only read after that.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID          int64    `bun:"id,pk" json:"id"`
	Name        string   `bun:"name,notnull" json:"name"`
	Price       int64    `bun:"price,notnull" json:"price"`
	Image       string   `bun:"image" json:"image"`
	Description string   `bun:"description" json:"description"`
	Features    []string `bun:"features,type:jsonb,default:'[]'" json:"features"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:now()" json:"-"`
}
