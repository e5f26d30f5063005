package storage

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Ananth-NQI/rga-chatbot/internal/models"
)

// MemoryStore holds all data in memory (tests and local runs)
type MemoryStore struct {
	records  map[int64]*models.Record
	pincodes map[string][]models.PincodeEntry // keyed by pincode

	// Mutexes for thread safety
	recordMu  sync.RWMutex
	pincodeMu sync.RWMutex
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:  make(map[int64]*models.Record),
		pincodes: make(map[string][]models.PincodeEntry),
	}
}

// Record operations

// GetRecordByAccount returns a copy so callers never observe a half-applied update
func (m *MemoryStore) GetRecordByAccount(accountNo int64) (*models.Record, error) {
	m.recordMu.RLock()
	defer m.recordMu.RUnlock()

	record, exists := m.records[accountNo]
	if !exists {
		return nil, fmt.Errorf("account %d: %w", accountNo, ErrRecordNotFound)
	}
	cp := *record
	return &cp, nil
}

func (m *MemoryStore) UpdateRecordAddress(accountNo int64, addr models.Address, updatedOn time.Time) error {
	m.recordMu.Lock()
	defer m.recordMu.Unlock()

	record, exists := m.records[accountNo]
	if !exists {
		return fmt.Errorf("account %d: %w", accountNo, ErrRecordNotFound)
	}
	record.ApplyAddress(addr, updatedOn)
	record.UpdatedAt = time.Now()
	return nil
}

// UpsertRecords keeps the address of accounts that already exist
func (m *MemoryStore) UpsertRecords(records []*models.Record) error {
	m.recordMu.Lock()
	defer m.recordMu.Unlock()

	now := time.Now()
	for _, r := range records {
		cp := *r
		if existing, ok := m.records[cp.AccountNo]; ok {
			cp.CreatedAt = existing.CreatedAt
			cp.ApplyAddress(existing.CurrentAddress(), time.Time{})
			cp.UpdatedOn = existing.UpdatedOn
		} else {
			cp.CreatedAt = now
		}
		cp.UpdatedAt = now
		m.records[cp.AccountNo] = &cp
	}
	return nil
}

func (m *MemoryStore) CountRecords() (int64, error) {
	m.recordMu.RLock()
	defer m.recordMu.RUnlock()
	return int64(len(m.records)), nil
}

// Pincode directory operations

func (m *MemoryStore) PincodeExists(pincode, state, cityContains string) (bool, error) {
	m.pincodeMu.RLock()
	defer m.pincodeMu.RUnlock()

	for _, e := range m.pincodes[pincode] {
		if e.State == state && strings.Contains(e.City, cityContains) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStore) ReplacePincodes(entries []models.PincodeEntry) error {
	m.pincodeMu.Lock()
	defer m.pincodeMu.Unlock()

	m.pincodes = make(map[string][]models.PincodeEntry)
	for i, e := range entries {
		e.ID = uint(i + 1)
		m.pincodes[e.Pincode] = append(m.pincodes[e.Pincode], e)
	}
	return nil
}

func (m *MemoryStore) CountPincodes() (int64, error) {
	m.pincodeMu.RLock()
	defer m.pincodeMu.RUnlock()

	var n int64
	for _, entries := range m.pincodes {
		n += int64(len(entries))
	}
	return n, nil
}
