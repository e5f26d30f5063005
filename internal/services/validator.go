package services

import (
	"fmt"
	"regexp"

	"github.com/Ananth-NQI/rga-chatbot/internal/models"
)

// AddressField identifies the field being collected
type AddressField int

const (
	FieldLine1 AddressField = iota
	FieldLine2
	FieldCity
	FieldState
	FieldPincode
)

var fieldNames = map[AddressField]string{
	FieldLine1:   "LINE1",
	FieldLine2:   "LINE2",
	FieldCity:    "CITY",
	FieldState:   "STATE",
	FieldPincode: "PINCODE",
}

var fieldPrompts = map[AddressField]string{
	FieldLine1:   "Enter Plot / Door:",
	FieldLine2:   "Enter Street:",
	FieldCity:    "Enter City:",
	FieldState:   "Enter State:",
	FieldPincode: "Enter Pincode:",
}

func (f AddressField) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FIELD(%d)", int(f))
}

// Prompt is the question asked when the field is next
func (f AddressField) Prompt() string {
	return fieldPrompts[f]
}

// Next returns the field collected after f; false after the pincode
func (f AddressField) Next() (AddressField, bool) {
	if f >= FieldPincode {
		return f, false
	}
	return f + 1, true
}

// set stores value in the matching draft field
func (f AddressField) set(addr *models.Address, value string) {
	switch f {
	case FieldLine1:
		addr.Line1 = value
	case FieldLine2:
		addr.Line2 = value
	case FieldCity:
		addr.City = value
	case FieldState:
		addr.State = value
	case FieldPincode:
		addr.Pincode = value
	}
}

// Validation messages shown to the user
const (
	MsgNoEmojis        = "Emojis are not allowed."
	MsgNoSpecialChars  = "Special characters are not allowed."
	MsgOnlyLetters     = "Only letters allowed."
	MsgPincodeDigits   = "Pincode must be 6 digits."
	MsgPincodeMismatch = "Pincode does not match City & State."
)

var (
	emojiPattern   = regexp.MustCompile(`[\x{1F600}-\x{1FAFF}]`)
	linePattern    = regexp.MustCompile(`^[A-Za-z0-9 /-]+$`)
	lettersPattern = regexp.MustCompile(`^[A-Za-z ]+$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// Validator checks address field input
type Validator struct {
	directory *Directory
}

// NewValidator creates a validator using the given directory for pincodes
func NewValidator(directory *Directory) *Validator {
	return &Validator{directory: directory}
}

// Validate checks value for field. The first failing rule wins and its
// message is returned with ok=false. err is set only when the directory
// itself could not be queried.
func (v *Validator) Validate(field AddressField, value string, draft models.Address) (ok bool, message string, err error) {
	if emojiPattern.MatchString(value) {
		return false, MsgNoEmojis, nil
	}

	switch field {
	case FieldLine1, FieldLine2:
		if !linePattern.MatchString(value) {
			return false, MsgNoSpecialChars, nil
		}
	case FieldCity, FieldState:
		if !lettersPattern.MatchString(value) {
			return false, MsgOnlyLetters, nil
		}
	case FieldPincode:
		if !pincodePattern.MatchString(value) {
			return false, MsgPincodeDigits, nil
		}
		found, err := v.directory.Matches(value, draft.State, draft.City)
		if err != nil {
			return false, "", fmt.Errorf("pincode lookup for %s: %w", value, err)
		}
		if !found {
			return false, MsgPincodeMismatch, nil
		}
	default:
		return false, "", fmt.Errorf("unknown address field %v", field)
	}

	return true, "", nil
}
