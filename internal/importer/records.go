package importer

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Ananth-NQI/rga-chatbot/internal/models"
)

// Column headers of the RGA status sheet
const (
	colAccountNo      = "Account No"
	colStatus         = "Chat Bot-Status"
	colRefundDate     = "Refund Date"
	colInvoiceDate    = "Invoice Created Date"
	colDispatchDate   = "Dispatch Date"
	colDeliveredDate  = "Delivered Date"
	colLogistics      = "Logistics"
	colDocketNo       = "Docket No"
	colLogistics1     = "Logistics1"
	colNewDocketNo    = "New Docket No"
	colReturnedDate   = "Returned Date"
	colRedispatchDate = "Redispatched Date"
	colRemarks        = "Remarks"
	colAddress1       = "Address 1"
	colAddress2       = "Address 2"
	colAddress3       = "Address 3"
	colAddress4       = "Address 4"
	colPincode        = "Chatbot Pincode"
	colUpdatedOn      = "Updated On"
)

// updatedOnLayout is how the sheet stores the last address update as text
const updatedOnLayout = "02-01-2006 15:04"

// dateLayout is the text form of date cells, date part first
const dateLayout = "2006-01-02 15:04:05"

// LoadRecordsWorkbook reads every record from the named sheet
func LoadRecordsWorkbook(path, sheet string) ([]*models.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	// Raw values keep date cells as serial numbers instead of locale display text
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	props, err := f.GetWorkbookProps()
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook properties: %w", err)
	}
	date1904 := props.Date1904 != nil && *props.Date1904
	return parseRecordRows(rows, date1904)
}

// ParseRecordRows maps sheet rows (header first) to records. Rows without an
// account number are skipped; optional columns may be absent. Date cells may
// be text or Excel serial numbers.
func ParseRecordRows(rows [][]string) ([]*models.Record, error) {
	return parseRecordRows(rows, false)
}

func parseRecordRows(rows [][]string, date1904 bool) ([]*models.Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.TrimSpace(h)] = i
	}
	if _, ok := index[colAccountNo]; !ok {
		return nil, fmt.Errorf("sheet has no %q column", colAccountNo)
	}

	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	date := func(row []string, name string) string {
		value := cell(row, name)
		if ts, ok := serialToTime(value, date1904); ok {
			return ts.Format(dateLayout)
		}
		return value
	}

	records := make([]*models.Record, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		raw := cell(row, colAccountNo)
		if raw == "" {
			continue
		}
		accountNo, err := parseAccountNo(raw)
		if err != nil {
			skipped++
			continue
		}

		record := &models.Record{
			AccountNo:          accountNo,
			Status:             cell(row, colStatus),
			RefundDate:         date(row, colRefundDate),
			InvoiceCreatedDate: date(row, colInvoiceDate),
			DispatchDate:       date(row, colDispatchDate),
			DeliveredDate:      date(row, colDeliveredDate),
			ReturnedDate:       date(row, colReturnedDate),
			RedispatchedDate:   date(row, colRedispatchDate),
			Logistics:          cell(row, colLogistics),
			DocketNo:           cell(row, colDocketNo),
			Logistics1:         cell(row, colLogistics1),
			NewDocketNo:        cell(row, colNewDocketNo),
			Remarks:            cell(row, colRemarks),
			Address1:           cell(row, colAddress1),
			Address2:           cell(row, colAddress2),
			Address3:           cell(row, colAddress3),
			Address4:           cell(row, colAddress4),
			ChatbotPincode:     cell(row, colPincode),
		}
		updatedOn := cell(row, colUpdatedOn)
		if ts, ok := serialToTime(updatedOn, date1904); ok {
			local := time.Date(ts.Year(), ts.Month(), ts.Day(), ts.Hour(), ts.Minute(), ts.Second(), 0, time.Local)
			record.UpdatedOn = &local
		} else if ts, err := time.ParseInLocation(updatedOnLayout, updatedOn, time.Local); err == nil {
			record.UpdatedOn = &ts
		}
		records = append(records, record)
	}

	if skipped > 0 {
		log.Printf("⚠️  Skipped %d rows with an invalid account number", skipped)
	}
	return records, nil
}

// serialToTime converts an Excel date serial ("45296.4270833") to wall-clock time
func serialToTime(value string, date1904 bool) (time.Time, bool) {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil || serial <= 0 {
		return time.Time{}, false
	}
	ts, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// parseAccountNo accepts "12345" and the "12345.0" form numeric cells can take
func parseAccountNo(raw string) (int64, error) {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, fmt.Errorf("invalid account number %q", raw)
	}
	return int64(f), nil
}
