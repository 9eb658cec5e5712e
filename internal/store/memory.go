package store

import (
	"context"
	"sync"

	"github.com/eluxe/eluxe-backend/internal/models"
)

// Memory is an in-process IdentityStore. A single mutex serializes every
// state transition, which gives CompareAndClear its first-consumer-wins
// guarantee within one process.
type Memory struct {
	mu      sync.Mutex
	records map[string]*models.IdentityRecord
}

func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]*models.IdentityRecord),
	}
}

func (m *Memory) Get(ctx context.Context, identity string) (*models.IdentityRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[identity]
	if !ok {
		return nil, ErrNotFound
	}
	return record.Clone(), nil
}

func (m *Memory) Put(ctx context.Context, record *models.IdentityRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.records[record.Identity]; ok {
		existing.PendingCode = record.PendingCode
		return nil
	}
	m.records[record.Identity] = record.Clone()
	return nil
}

func (m *Memory) CompareAndClear(ctx context.Context, identity, expectedCode, address, deviceSignature string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[identity]
	if !ok {
		return false, nil
	}
	if record.PendingCode == "" || record.PendingCode != expectedCode {
		return false, nil
	}

	record.PendingCode = ""
	record.LastAddress = address
	record.LastDeviceSignature = deviceSignature
	return true, nil
}
