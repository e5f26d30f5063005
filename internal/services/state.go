package services

import "github.com/Ananth-NQI/rga-chatbot/internal/models"

// Mode is the service line chosen at the start of a conversation
type Mode string

const (
	ModeNone Mode = ""
	ModeRGA  Mode = "RGA"
	ModeECOM Mode = "ECOM"
)

// Awaiting tells what the next utterance is expected to be
type Awaiting int

const (
	AwaitNone Awaiting = iota
	AwaitAccount
	AwaitUpdateChoice
	AwaitField
)

func (a Awaiting) String() string {
	switch a {
	case AwaitAccount:
		return "ACCOUNT"
	case AwaitUpdateChoice:
		return "UPDATE_CHOICE"
	case AwaitField:
		return "FIELD"
	}
	return "NONE"
}

// SessionState is the conversation state of one session. Field and Draft
// are only meaningful while Awaiting == AwaitField.
type SessionState struct {
	Mode          Mode
	Awaiting      Awaiting
	Field         AddressField
	ActiveAccount *int64
	Draft         models.Address
}

// Reset returns the state to its zero value
func (s *SessionState) Reset() {
	*s = SessionState{}
}

// selectMode starts a new conversation in the given mode
func (s *SessionState) selectMode(mode Mode) {
	s.Reset()
	s.Mode = mode
	s.Awaiting = AwaitAccount
}

// startAddressFlow begins collecting a new address from the first field
func (s *SessionState) startAddressFlow() {
	s.Awaiting = AwaitField
	s.Field = FieldLine1
	s.Draft = models.Address{}
}

// finishAddressFlow leaves the collection flow and hands back the draft
func (s *SessionState) finishAddressFlow() models.Address {
	draft := s.Draft
	s.Awaiting = AwaitNone
	s.Field = FieldLine1
	s.Draft = models.Address{}
	return draft
}
