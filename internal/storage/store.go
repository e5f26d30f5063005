package storage

import (
	"errors"
	"time"

	"github.com/Ananth-NQI/rga-chatbot/internal/models"
)

// ErrRecordNotFound is returned when no record carries the account number
var ErrRecordNotFound = errors.New("record not found")

// Store defines the interface for storage operations
type Store interface {
	// Record operations
	GetRecordByAccount(accountNo int64) (*models.Record, error)
	UpdateRecordAddress(accountNo int64, addr models.Address, updatedOn time.Time) error
	UpsertRecords(records []*models.Record) error
	CountRecords() (int64, error)

	// Pincode directory operations
	PincodeExists(pincode, state, cityContains string) (bool, error)
	ReplacePincodes(entries []models.PincodeEntry) error
	CountPincodes() (int64, error)
}
