// Package guard implements the login session guard: it tracks the last known
// good address/device per identity, flags attempts that deviate from that
// baseline, and issues and consumes single-use verification codes.
package guard

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"

	"github.com/eluxe/eluxe-backend/internal/models"
	"github.com/eluxe/eluxe-backend/internal/store"
)

var (
	// ErrInvalidInput reports a missing identity or candidate code.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCode covers unknown identity, no pending code, and a
	// mismatched candidate alike: callers must not be able to tell which
	// identities exist from the failure kind.
	ErrInvalidCode = errors.New("invalid code")

	// ErrStoreUnavailable wraps I/O failures from the identity store. The
	// guard never retries; retry policy belongs to the caller.
	ErrStoreUnavailable = errors.New("identity store unavailable")
)

// Guard evaluates login attempts against an external identity store. It keeps
// no state of its own, so any number of Guard instances across processes may
// share one store.
type Guard struct {
	store store.IdentityStore
}

func New(identityStore store.IdentityStore) *Guard {
	return &Guard{store: identityStore}
}

// RequestLogin records a login attempt for identity and issues a fresh
// verification code, replacing any code still outstanding. It returns the
// code for out-of-band delivery and whether the attempt deviates from the
// identity's last verified address/device.
//
// A never-verified identity can not produce an anomaly: there is no baseline
// to compare against. The baseline itself is only ever moved by ConsumeCode.
func (g *Guard) RequestLogin(ctx context.Context, identity, address, deviceSignature string) (string, bool, error) {
	if identity == "" {
		return "", false, fmt.Errorf("%w: identity is required", ErrInvalidInput)
	}

	record, err := g.store.Get(ctx, identity)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return "", false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		// First attempt for this identity; create the record lazily.
		record = &models.IdentityRecord{Identity: identity}
	}

	anomaly := record.LastAddress != "" &&
		(record.LastAddress != address || record.LastDeviceSignature != deviceSignature)

	code, err := generateCode()
	if err != nil {
		return "", false, fmt.Errorf("failed to generate verification code: %w", err)
	}

	record.PendingCode = code
	if err := g.store.Put(ctx, record); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return code, anomaly, nil
}

// ConsumeCode completes a login attempt. The candidate must byte-for-byte
// equal the identity's pending code; on a match the code is cleared and the
// address/device baseline is moved to the current request's values, both in
// one atomic store operation so a code can never be consumed twice.
//
// A failed attempt leaves the pending code untouched.
func (g *Guard) ConsumeCode(ctx context.Context, identity, address, deviceSignature, candidateCode string) error {
	if identity == "" {
		return fmt.Errorf("%w: identity is required", ErrInvalidInput)
	}
	if candidateCode == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	ok, err := g.store.CompareAndClear(ctx, identity, candidateCode, address, deviceSignature)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCode
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if !ok {
		return ErrInvalidCode
	}
	return nil
}

// codeSpan is the size of the 6-digit range [100000, 999999]. The lower bound
// keeps the code from ever carrying a leading zero.
const (
	codeMin  = 100000
	codeSpan = 900000
)

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
