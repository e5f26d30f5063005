package models

import "strings"

// PincodeEntry is one row of the reference pincode directory.
// State and City are stored lower-cased and trimmed.
type PincodeEntry struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	State   string `json:"state" gorm:"index:idx_pincode_state_city,priority:2"`
	City    string `json:"city" gorm:"index:idx_pincode_state_city,priority:3"`
	Pincode string `json:"pincode" gorm:"index:idx_pincode_state_city,priority:1"`
}

func (PincodeEntry) TableName() string {
	return "pincode_directory"
}

// NewPincodeEntry normalizes raw directory values
func NewPincodeEntry(state, city, pincode string) PincodeEntry {
	return PincodeEntry{
		State:   strings.ToLower(strings.TrimSpace(state)),
		City:    strings.ToLower(strings.TrimSpace(city)),
		Pincode: strings.TrimSpace(pincode),
	}
}
