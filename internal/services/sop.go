package services

import (
	"fmt"
	"strings"

	"github.com/Ananth-NQI/rga-chatbot/internal/models"
)

// LineBreak separates fields in a reply; the web UI renders it as HTML
const LineBreak = "<br>"

// StatusCategory groups status texts that share one SOP layout
type StatusCategory int

const (
	StatusOther StatusCategory = iota
	StatusDispatched
	StatusRedispatched
	StatusDelivered
	StatusInformational
)

var statusCategories = map[string]StatusCategory{
	"dispatched":                                StatusDispatched,
	"dispatched from warehouse":                 StatusDispatched,
	"redispatched":                              StatusRedispatched,
	"re-dispatched":                             StatusRedispatched,
	"delivered to the customer":                 StatusDelivered,
	"redeemed at btq":                           StatusInformational,
	"pincode - no services":                     StatusInformational,
	"invoice yet to prepare":                    StatusInformational,
	"ready for dispatch":                        StatusInformational,
	"due to cash memo":                          StatusInformational,
	"from store":                                StatusInformational,
	"out of india":                              StatusInformational,
	"unable to reach, due to incorrect address": StatusInformational,
	"nap - issue":                               StatusInformational,
}

var dashReplacer = strings.NewReplacer("–", "-", "—", "-")

// NormalizeStatus unifies dashes, trims and lower-cases a status text
func NormalizeStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(dashReplacer.Replace(status)))
}

// IsKYCStatus reports whether the status is a KYC case
func IsKYCStatus(status string) bool {
	return strings.Contains(NormalizeStatus(status), "kyc")
}

// ClassifyStatus maps a raw status text to its SOP category
func ClassifyStatus(status string) StatusCategory {
	normalized := NormalizeStatus(status)
	if category, ok := statusCategories[normalized]; ok {
		return category
	}
	if strings.Contains(normalized, "kyc") {
		return StatusInformational
	}
	return StatusOther
}

// RenderSOP formats the status summary shown after an account lookup
func RenderSOP(record *models.Record) string {
	acc := fmt.Sprintf("Account: %d", record.AccountNo)

	switch ClassifyStatus(record.Status) {
	case StatusDispatched:
		return strings.Join([]string{
			acc,
			"Refund Date: " + dateOnly(record.RefundDate),
			"Invoice Created: " + dateOnly(record.InvoiceCreatedDate),
			"Dispatched: " + dateOnly(record.DispatchDate),
			"Courier: " + record.Logistics,
			"Docket: " + record.DocketNo,
		}, LineBreak) + courierLink(record.Logistics)

	case StatusRedispatched:
		return strings.Join([]string{
			acc,
			"Returned: " + dateOnly(record.ReturnedDate),
			"Remarks: " + record.Remarks,
			"Re-dispatched: " + dateOnly(record.RedispatchedDate),
			"Courier: " + record.Logistics1,
			"New Docket: " + record.NewDocketNo,
		}, LineBreak) + courierLink(record.Logistics1)

	case StatusDelivered:
		return strings.Join([]string{
			acc,
			"Status: " + record.Status,
			"Delivered Date: " + dateOnly(record.DeliveredDate),
		}, LineBreak)

	case StatusInformational:
		return acc + LineBreak + "Status: " + record.Status

	default:
		// Renders the same layout as the informational list
		return acc + LineBreak + "Status: " + record.Status
	}
}

// ForLog flattens a reply onto one line for the audit log
func ForLog(text string) string {
	return strings.ReplaceAll(text, LineBreak, " | ")
}

// dateOnly drops the time part of a sheet date ("2024-03-01 00:00:00")
func dateOnly(value string) string {
	return strings.SplitN(value, " ", 2)[0]
}

func courierLink(courier string) string {
	name := strings.ToLower(courier)
	switch {
	case name == "":
		return ""
	case strings.Contains(name, "blue"):
		return LineBreak + `<a href="https://bluedart.com" target="_blank">Track on Bluedart</a>`
	case strings.Contains(name, "sequel"):
		return LineBreak + `<a href="https://sequelglobal.com" target="_blank">Track on Sequel</a>`
	}
	return ""
}
