// Package store holds the identity-record persistence behind a narrow
// interface so the login guard itself keeps no process-wide mutable state.
// The Postgres implementation is the real backend; the Memory implementation
// backs tests and single-process development runs.
package store

import (
	"context"
	"errors"

	"github.com/eluxe/eluxe-backend/internal/models"
)

// ErrNotFound is returned by Get when no record exists for the identity.
var ErrNotFound = errors.New("identity record not found")

// IdentityStore is the contract the login guard depends on.
//
// Put inserts the record or, when one already exists for the identity,
// replaces only its pending code. The verified baseline moves exclusively
// through CompareAndClear, so a login attempt racing a concurrent
// verification can never resurrect a stale baseline.
//
// CompareAndClear is the single-use consumption primitive: it must atomically
// clear the pending code and move the last-known baseline to the supplied
// address/device, but only if the pending code is non-empty and equals
// expectedCode exactly. It reports whether this caller won. Under concurrent
// consumption of the same code, at most one caller may ever see true.
type IdentityStore interface {
	Get(ctx context.Context, identity string) (*models.IdentityRecord, error)
	Put(ctx context.Context, record *models.IdentityRecord) error
	CompareAndClear(ctx context.Context, identity, expectedCode, address, deviceSignature string) (bool, error)
}
