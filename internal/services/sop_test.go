package services

import (
	"strings"
	"testing"

	"github.com/Ananth-NQI/rga-chatbot/internal/models"
)

func TestRenderSOP(t *testing.T) {
	tests := []struct {
		name   string
		record models.Record
		want   string
	}{
		{
			name: "dispatched with bluedart",
			record: models.Record{
				AccountNo: 12345, Status: "Dispatched ",
				RefundDate: "2024-01-02 00:00:00", InvoiceCreatedDate: "2024-01-03", DispatchDate: "2024-01-05 00:00:00",
				Logistics: "Blue Dart", DocketNo: "BD1",
			},
			want: "Account: 12345<br>Refund Date: 2024-01-02<br>Invoice Created: 2024-01-03<br>Dispatched: 2024-01-05<br>Courier: Blue Dart<br>Docket: BD1" +
				`<br><a href="https://bluedart.com" target="_blank">Track on Bluedart</a>`,
		},
		{
			name:   "dispatched from warehouse unknown courier",
			record: models.Record{AccountNo: 7, Status: "DISPATCHED FROM WAREHOUSE", Logistics: "DTDC", DocketNo: "D9"},
			want:   "Account: 7<br>Refund Date: <br>Invoice Created: <br>Dispatched: <br>Courier: DTDC<br>Docket: D9",
		},
		{
			name: "redispatched with em dash and sequel",
			record: models.Record{
				AccountNo: 8, Status: "Re—Dispatched",
				ReturnedDate: "2024-02-01 00:00:00", Remarks: "Door locked", RedispatchedDate: "2024-02-10 08:00:00",
				Logistics: "Blue Dart", Logistics1: "SEQUEL", NewDocketNo: "SQ1",
			},
			want: "Account: 8<br>Returned: 2024-02-01<br>Remarks: Door locked<br>Re-dispatched: 2024-02-10<br>Courier: SEQUEL<br>New Docket: SQ1" +
				`<br><a href="https://sequelglobal.com" target="_blank">Track on Sequel</a>`,
		},
		{
			name:   "delivered",
			record: models.Record{AccountNo: 9, Status: "Delivered to the Customer", DeliveredDate: "2024-03-09 18:30:00"},
			want:   "Account: 9<br>Status: Delivered to the Customer<br>Delivered Date: 2024-03-09",
		},
		{
			name:   "extra list keeps raw status",
			record: models.Record{AccountNo: 10, Status: "Pincode – No Services"},
			want:   "Account: 10<br>Status: Pincode – No Services",
		},
		{
			name:   "kyc",
			record: models.Record{AccountNo: 11, Status: "KYC Pending"},
			want:   "Account: 11<br>Status: KYC Pending",
		},
		{
			name:   "unknown status",
			record: models.Record{AccountNo: 12, Status: "Lost in transit"},
			want:   "Account: 12<br>Status: Lost in transit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderSOP(&tt.record)
			if got != tt.want {
				t.Errorf("RenderSOP() =\n%s\nwant\n%s", got, tt.want)
			}
			if again := RenderSOP(&tt.record); again != got {
				t.Error("RenderSOP is not idempotent")
			}
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status string
		want   StatusCategory
	}{
		{"dispatched", StatusDispatched},
		{"  Dispatched From Warehouse", StatusDispatched},
		{"Redispatched", StatusRedispatched},
		{"re–dispatched", StatusRedispatched},
		{"delivered to the customer", StatusDelivered},
		{"Unable to reach, due to incorrect address", StatusInformational},
		{"NAP — Issue", StatusInformational},
		{"Awaiting e-KYC docs", StatusInformational},
		{"", StatusOther},
		{"delivered", StatusOther},
	}
	for _, tt := range tests {
		if got := ClassifyStatus(tt.status); got != tt.want {
			t.Errorf("ClassifyStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestIsKYCStatus(t *testing.T) {
	for _, s := range []string{"KYC Pending", "pending kyc", "Re-KYC"} {
		if !IsKYCStatus(s) {
			t.Errorf("IsKYCStatus(%q) = false", s)
		}
	}
	if IsKYCStatus("Dispatched") {
		t.Error("Dispatched is not a KYC case")
	}
}

func TestForLog(t *testing.T) {
	got := ForLog("Account: 1<br>Status: x")
	if got != "Account: 1 | Status: x" {
		t.Errorf("ForLog = %q", got)
	}
	if strings.Contains(got, LineBreak) {
		t.Error("line break survived")
	}
}
