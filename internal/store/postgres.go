package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eluxe/eluxe-backend/internal/database"
	"github.com/eluxe/eluxe-backend/internal/models"
)

// Postgres persists identity records through bun. CompareAndClear relies on a
// single conditional UPDATE, so the single-use guarantee holds across
// independent worker processes sharing one database.
type Postgres struct{}

func NewPostgres() *Postgres {
	return &Postgres{}
}

func (p *Postgres) Get(ctx context.Context, identity string) (*models.IdentityRecord, error) {
	record := new(models.IdentityRecord)
	err := database.DB.NewSelect().
		Model(record).
		Where("identity = ?", identity).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load identity record: %w", err)
	}
	return record, nil
}

func (p *Postgres) Put(ctx context.Context, record *models.IdentityRecord) error {
	_, err := database.DB.NewInsert().
		Model(record).
		On("CONFLICT (identity) DO UPDATE").
		Set("pending_code = EXCLUDED.pending_code").
		Set("updated_at = ?", time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save identity record: %w", err)
	}
	return nil
}

func (p *Postgres) CompareAndClear(ctx context.Context, identity, expectedCode, address, deviceSignature string) (bool, error) {
	// The WHERE clause makes this a conditional write: only the first
	// concurrent consumer finds the pending code still in place.
	res, err := database.DB.NewUpdate().
		Model((*models.IdentityRecord)(nil)).
		Set("pending_code = ''").
		Set("last_address = ?", address).
		Set("last_device_signature = ?", deviceSignature).
		Set("updated_at = ?", time.Now()).
		Where("identity = ?", identity).
		Where("pending_code <> ''").
		Where("pending_code = ?", expectedCode).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to consume pending code: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to consume pending code: %w", err)
	}
	return rows == 1, nil
}
