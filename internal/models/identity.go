package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// IdentityRecord tracks the last known good login for an identity (an email
// address) plus the one outstanding verification code, if any.
//
// LastAddress and LastDeviceSignature are written only when a code is
// successfully consumed; a plain login attempt never moves the baseline. An
// empty LastAddress means the identity has never completed a verification, so
// there is nothing to compare an attempt against.
type IdentityRecord struct {
	bun.BaseModel `bun:"table:identity_records,alias:ir"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Identity string `bun:"identity,notnull,unique" json:"identity"`

	// Baseline from the last successful verification
	LastAddress         string `bun:"last_address,default:''" json:"-"`
	LastDeviceSignature string `bun:"last_device_signature,default:''" json:"-"`

	// Outstanding one-time code; empty when none is pending. Issuing a new
	// code overwrites this, which permanently invalidates the previous one.
	PendingCode string `bun:"pending_code,default:''" json:"-"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:now()" json:"updated_at"`
}

// BeforeInsert hook
var _ bun.BeforeInsertHook = (*IdentityRecord)(nil)

func (r *IdentityRecord) BeforeInsert(ctx context.Context, query *bun.InsertQuery) error {
	r.CreatedAt = time.Now()
	r.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate hook
var _ bun.BeforeUpdateHook = (*IdentityRecord)(nil)

func (r *IdentityRecord) BeforeUpdate(ctx context.Context, query *bun.UpdateQuery) error {
	r.UpdatedAt = time.Now()
	return nil
}

// Clone returns an independent copy, used by the in-memory store so callers
// can never mutate stored state behind its back.
func (r *IdentityRecord) Clone() *IdentityRecord {
	cp := *r
	return &cp
}
