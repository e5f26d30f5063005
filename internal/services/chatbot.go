package services

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/Ananth-NQI/rga-chatbot/internal/models"
	"github.com/Ananth-NQI/rga-chatbot/internal/storage"
)

// Bot replies
const (
	MsgInvalidAccount = "Invalid account number."
	MsgRecordNotFound = "Record not found."
	MsgAskUpdate      = "Would you like to update the address?"
	MsgDeclineUpdate  = "Okay. Thank you. Have a great day."
	MsgYesOrNo        = "Please reply Yes or No."
	MsgSelectMode     = "Please start by selecting RGA or ECOM."
	MsgAddressUpdated = "Address updated successfully."
	MsgInternalError  = "Internal error occurred."
)

// Reply is the outcome of one chat turn
type Reply struct {
	Reply     string `json:"reply"`
	AskUpdate bool   `json:"ask_update,omitempty"`
}

// ChatService runs the RGA/ECOM conversation
type ChatService struct {
	store     storage.Store
	sessions  *SessionManager
	validator *Validator
	audit     AuditLog
	now       func() time.Time
}

// NewChatService wires the conversation to its store, sessions and audit log
func NewChatService(store storage.Store, sessions *SessionManager, audit AuditLog) *ChatService {
	return &ChatService{
		store:     store,
		sessions:  sessions,
		validator: NewValidator(NewDirectory(store)),
		audit:     audit,
		now:       time.Now,
	}
}

// HandleMessage processes one utterance for the session and returns the
// reply. It never fails: faults become MsgInternalError and are logged.
func (c *ChatService) HandleMessage(sessionID, channel, message string) Reply {
	session := c.sessions.GetOrCreateSession(sessionID, channel)

	session.mu.Lock()
	defer session.mu.Unlock()

	msg := strings.TrimSpace(message)
	c.audit.Append(LevelInfo, "User message: "+msg)

	reply := c.safeStep(&session.state, msg)

	c.audit.Append(LevelInfo, "BOT Response: "+ForLog(reply.Reply))
	return reply
}

func (c *ChatService) safeStep(state *SessionState, msg string) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			c.audit.Append(LevelError, fmt.Sprintf("panic while handling %q: %v\n%s", msg, r, debug.Stack()))
			reply = Reply{Reply: MsgInternalError}
		}
	}()

	result, err := c.step(state, msg)
	if err != nil {
		c.audit.Append(LevelError, fmt.Sprintf("turn failed for %q: %v", msg, err))
		return Reply{Reply: MsgInternalError}
	}
	return result
}

func (c *ChatService) step(state *SessionState, msg string) (Reply, error) {
	// Mode selection interrupts whatever was in progress
	if mode, ok := parseMode(msg); ok {
		state.selectMode(mode)
		return Reply{Reply: fmt.Sprintf("%s selected. Enter Account Number.", mode)}, nil
	}

	switch state.Awaiting {
	case AwaitField:
		return c.handleField(state, msg)
	case AwaitUpdateChoice:
		return c.handleUpdateChoice(state, msg), nil
	case AwaitAccount:
		return c.handleAccount(state, msg)
	}

	return Reply{Reply: MsgSelectMode}, nil
}

func (c *ChatService) handleAccount(state *SessionState, msg string) (Reply, error) {
	if !isDigits(msg) {
		return Reply{Reply: MsgInvalidAccount}, nil
	}

	accountNo, err := strconv.ParseInt(msg, 10, 64)
	if err != nil {
		// Out of int64 range, so no record can carry it
		return Reply{Reply: MsgRecordNotFound}, nil
	}

	record, err := c.store.GetRecordByAccount(accountNo)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return Reply{Reply: MsgRecordNotFound}, nil
	}
	if err != nil {
		return Reply{}, err
	}

	state.ActiveAccount = &accountNo
	state.Awaiting = AwaitNone

	sop := RenderSOP(record)
	if state.Mode == ModeRGA && IsKYCStatus(record.Status) {
		state.Awaiting = AwaitUpdateChoice
		return Reply{
			Reply:     sop + LineBreak + LineBreak + MsgAskUpdate,
			AskUpdate: true,
		}, nil
	}

	return Reply{Reply: sop}, nil
}

func (c *ChatService) handleUpdateChoice(state *SessionState, msg string) Reply {
	switch strings.ToLower(msg) {
	case "yes":
		state.startAddressFlow()
		return Reply{Reply: state.Field.Prompt()}
	case "no":
		state.Awaiting = AwaitNone
		return Reply{Reply: MsgDeclineUpdate}
	}
	return Reply{Reply: MsgYesOrNo}
}

func (c *ChatService) handleField(state *SessionState, msg string) (Reply, error) {
	ok, problem, err := c.validator.Validate(state.Field, msg, state.Draft)
	if err != nil {
		return Reply{}, err
	}
	if !ok {
		return Reply{Reply: problem}, nil
	}

	state.Field.set(&state.Draft, msg)
	if next, more := state.Field.Next(); more {
		state.Field = next
		return Reply{Reply: next.Prompt()}, nil
	}

	draft := state.finishAddressFlow()
	if state.ActiveAccount == nil {
		return Reply{}, fmt.Errorf("address collected without an active account")
	}

	result, err := c.commitAddress(*state.ActiveAccount, draft)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Reply: result}, nil
}

// commitAddress overwrites the record's address and stamps the update time
func (c *ChatService) commitAddress(accountNo int64, addr models.Address) (string, error) {
	if err := c.store.UpdateRecordAddress(accountNo, addr, c.now()); err != nil {
		return "", fmt.Errorf("failed to commit address for account %d: %w", accountNo, err)
	}
	c.audit.Append(LevelInfo, fmt.Sprintf("Address updated for Account %d", accountNo))
	return MsgAddressUpdated, nil
}

func parseMode(msg string) (Mode, bool) {
	switch mode := Mode(strings.ToUpper(msg)); mode {
	case ModeRGA, ModeECOM:
		return mode, true
	}
	return ModeNone, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
