package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Ananth-NQI/rga-chatbot/internal/models"
)

// LoadPincodeCSV reads the reference directory file
func LoadPincodeCSV(path string) ([]models.PincodeEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pincode CSV %s: %w", path, err)
	}
	defer f.Close()
	return ParsePincodeCSV(f)
}

// ParsePincodeCSV parses a CSV whose header contains state, city and
// pincode columns in any order and case
func ParsePincodeCSV(r io.Reader) ([]models.PincodeEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read pincode CSV header: %w", err)
	}

	index := map[string]int{}
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	stateIdx, okState := index["state"]
	cityIdx, okCity := index["city"]
	pinIdx, okPin := index["pincode"]
	if !okState || !okCity || !okPin {
		return nil, fmt.Errorf("pincode CSV must contain state, city, pincode")
	}

	var entries []models.PincodeEntry
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pincode CSV line %d: %w", line, err)
		}
		get := func(i int) string {
			if i < len(row) {
				return row[i]
			}
			return ""
		}
		entries = append(entries, models.NewPincodeEntry(get(stateIdx), get(cityIdx), get(pinIdx)))
	}
	return entries, nil
}
