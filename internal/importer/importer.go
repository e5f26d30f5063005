package importer

import (
	"fmt"
	"log"

	"github.com/Ananth-NQI/rga-chatbot/internal/storage"
)

// Sources names the seed files; empty paths are skipped
type Sources struct {
	RecordsXLSX  string
	RecordsSheet string
	PincodeCSV   string
}

// Run loads the configured files into the store
func Run(store storage.Store, src Sources) error {
	if src.RecordsXLSX != "" {
		records, err := LoadRecordsWorkbook(src.RecordsXLSX, src.RecordsSheet)
		if err != nil {
			return err
		}
		if err := store.UpsertRecords(records); err != nil {
			return fmt.Errorf("failed to store records: %w", err)
		}
		log.Printf("✅ Workbook loaded successfully: %d records", len(records))
	}

	if src.PincodeCSV != "" {
		entries, err := LoadPincodeCSV(src.PincodeCSV)
		if err != nil {
			return err
		}
		if err := store.ReplacePincodes(entries); err != nil {
			return fmt.Errorf("failed to store pincode directory: %w", err)
		}
		log.Printf("✅ Pincode CSV loaded successfully: %d entries", len(entries))
	}

	return nil
}
