package storage

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ananth-NQI/rga-chatbot/internal/models"
)

const batchSize = 500

// Columns refreshed from the records workbook on re-import
var sheetColumns = []string{
	"chatbot_status", "refund_date", "invoice_created_date", "dispatch_date",
	"delivered_date", "returned_date", "redispatched_date", "logistics",
	"docket_no", "logistics1", "new_docket_no", "remarks", "updated_at",
}

// DatabaseStore implements Store on top of GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// Migrate creates or updates the tables used by the store
func (d *DatabaseStore) Migrate() error {
	return d.db.AutoMigrate(&models.Record{}, &models.PincodeEntry{})
}

// Ping checks the underlying connection
func (d *DatabaseStore) Ping() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (d *DatabaseStore) GetRecordByAccount(accountNo int64) (*models.Record, error) {
	var record models.Record
	err := d.db.Where("account_no = ?", accountNo).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("account %d: %w", accountNo, ErrRecordNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account %d: %w", accountNo, err)
	}
	return &record, nil
}

// UpdateRecordAddress writes every address column in one UPDATE statement
func (d *DatabaseStore) UpdateRecordAddress(accountNo int64, addr models.Address, updatedOn time.Time) error {
	result := d.db.Model(&models.Record{}).
		Where("account_no = ?", accountNo).
		Updates(map[string]interface{}{
			"address1":        addr.Line1,
			"address2":        addr.Line2,
			"address3":        addr.City,
			"address4":        addr.State,
			"chatbot_pincode": addr.Pincode,
			"updated_on":      updatedOn,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update address for account %d: %w", accountNo, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("account %d: %w", accountNo, ErrRecordNotFound)
	}
	return nil
}

// UpsertRecords inserts new accounts and refreshes the sheet-owned columns of
// existing ones. Address columns of existing rows belong to the chatbot.
func (d *DatabaseStore) UpsertRecords(records []*models.Record) error {
	if len(records) == 0 {
		return nil
	}
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_no"}},
		DoUpdates: clause.AssignmentColumns(sheetColumns),
	}).CreateInBatches(records, batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert records: %w", err)
	}
	return nil
}

func (d *DatabaseStore) CountRecords() (int64, error) {
	var n int64
	err := d.db.Model(&models.Record{}).Count(&n).Error
	return n, err
}

func (d *DatabaseStore) PincodeExists(pincode, state, cityContains string) (bool, error) {
	var n int64
	err := d.db.Model(&models.PincodeEntry{}).
		Where("pincode = ? AND state = ? AND city LIKE ?", pincode, state, "%"+cityContains+"%").
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("failed to query pincode directory: %w", err)
	}
	return n > 0, nil
}

// ReplacePincodes swaps the whole directory inside one transaction
func (d *DatabaseStore) ReplacePincodes(entries []models.PincodeEntry) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.PincodeEntry{}).Error; err != nil {
			return fmt.Errorf("failed to clear pincode directory: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}
		for i := range entries {
			entries[i].ID = 0
		}
		if err := tx.CreateInBatches(&entries, batchSize).Error; err != nil {
			return fmt.Errorf("failed to insert pincode directory: %w", err)
		}
		return nil
	})
}

func (d *DatabaseStore) CountPincodes() (int64, error) {
	var n int64
	err := d.db.Model(&models.PincodeEntry{}).Count(&n).Error
	return n, err
}
