package services

import (
	"strings"

	"github.com/Ananth-NQI/rga-chatbot/internal/storage"
)

// Directory answers pincode/city/state questions against the reference data
type Directory struct {
	store storage.Store
}

// NewDirectory creates a directory lookup backed by the store
func NewDirectory(store storage.Store) *Directory {
	return &Directory{store: store}
}

// Matches reports whether some directory entry has this pincode, the given
// state and a city containing the given city text. State and city are
// compared case-insensitively.
func (d *Directory) Matches(pincode, state, city string) (bool, error) {
	return d.store.PincodeExists(
		strings.TrimSpace(pincode),
		strings.ToLower(strings.TrimSpace(state)),
		strings.ToLower(strings.TrimSpace(city)),
	)
}
