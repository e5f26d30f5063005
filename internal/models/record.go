package models

import "time"

// Record is one row of the RGA status sheet, keyed by account number
type Record struct {
	AccountNo int64  `json:"account_no" gorm:"column:account_no;primaryKey;autoIncrement:false"`
	Status    string `json:"status" gorm:"column:chatbot_status"` // "Chat Bot-Status" column, free text

	// Status-dependent fields, kept as the raw sheet text (dates may carry a time part)
	RefundDate         string `json:"refund_date" gorm:"column:refund_date"`
	InvoiceCreatedDate string `json:"invoice_created_date" gorm:"column:invoice_created_date"`
	DispatchDate       string `json:"dispatch_date" gorm:"column:dispatch_date"`
	DeliveredDate      string `json:"delivered_date" gorm:"column:delivered_date"`
	ReturnedDate       string `json:"returned_date" gorm:"column:returned_date"`
	RedispatchedDate   string `json:"redispatched_date" gorm:"column:redispatched_date"`
	Logistics          string `json:"logistics" gorm:"column:logistics"`   // first courier
	DocketNo           string `json:"docket_no" gorm:"column:docket_no"`   // first tracking number
	Logistics1         string `json:"logistics1" gorm:"column:logistics1"` // courier used on redispatch
	NewDocketNo        string `json:"new_docket_no" gorm:"column:new_docket_no"`
	Remarks            string `json:"remarks" gorm:"column:remarks"`

	// Address written by the chatbot
	Address1       string     `json:"address1" gorm:"column:address1"` // plot / door
	Address2       string     `json:"address2" gorm:"column:address2"` // street
	Address3       string     `json:"address3" gorm:"column:address3"` // city
	Address4       string     `json:"address4" gorm:"column:address4"` // state
	ChatbotPincode string     `json:"chatbot_pincode" gorm:"column:chatbot_pincode"`
	UpdatedOn      *time.Time `json:"updated_on" gorm:"column:updated_on"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name stable regardless of the struct name
func (Record) TableName() string {
	return "rga_records"
}

// Address is the set of fields collected during an address update
type Address struct {
	Line1   string `json:"line1"` // plot / door
	Line2   string `json:"line2"` // street
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// ApplyAddress overwrites the address fields of the record
func (r *Record) ApplyAddress(addr Address, updatedOn time.Time) {
	r.Address1 = addr.Line1
	r.Address2 = addr.Line2
	r.Address3 = addr.City
	r.Address4 = addr.State
	r.ChatbotPincode = addr.Pincode
	r.UpdatedOn = &updatedOn
}

// CurrentAddress returns the address stored on the record
func (r *Record) CurrentAddress() Address {
	return Address{
		Line1:   r.Address1,
		Line2:   r.Address2,
		City:    r.Address3,
		State:   r.Address4,
		Pincode: r.ChatbotPincode,
	}
}
