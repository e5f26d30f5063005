package services

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Ananth-NQI/rga-chatbot/internal/models"
	"github.com/Ananth-NQI/rga-chatbot/internal/storage"
)

// memoryAudit collects audit lines for assertions
type memoryAudit struct {
	mu    sync.Mutex
	lines []string
}

func (m *memoryAudit) Append(level, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, "["+level+"] "+message)
}

func (m *memoryAudit) contains(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.lines {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// failingStore serves reads from a MemoryStore but fails every address write
type failingStore struct {
	*storage.MemoryStore
}

func (f failingStore) UpdateRecordAddress(int64, models.Address, time.Time) error {
	return errors.New("disk full")
}

// panickyStore panics on lookups
type panickyStore struct {
	*storage.MemoryStore
}

func (panickyStore) GetRecordByAccount(int64) (*models.Record, error) {
	panic("index corrupted")
}

func seededStore(t *testing.T) *storage.MemoryStore {
	t.Helper()
	store := storage.NewMemoryStore()
	records := []*models.Record{
		{
			AccountNo:          12345,
			Status:             "Dispatched",
			RefundDate:         "2024-01-02 00:00:00",
			InvoiceCreatedDate: "2024-01-03 10:15:00",
			DispatchDate:       "2024-01-05 00:00:00",
			Logistics:          "Blue Dart",
			DocketNo:           "BD998877",
		},
		{AccountNo: 22222, Status: "KYC Pending"},
		{
			AccountNo:        33333,
			Status:           "Re–dispatched",
			ReturnedDate:     "2024-02-01 00:00:00",
			Remarks:          "Door locked",
			RedispatchedDate: "2024-02-10 00:00:00",
			Logistics1:       "Sequel Logistics",
			NewDocketNo:      "SQ1122",
		},
		{AccountNo: 44444, Status: "Delivered to the customer", DeliveredDate: "2024-03-09 18:30:00"},
		{AccountNo: 55555, Status: "Ready for dispatch"},
	}
	if err := store.UpsertRecords(records); err != nil {
		t.Fatalf("seed records: %v", err)
	}
	pincodes := []models.PincodeEntry{
		models.NewPincodeEntry("Karnataka", "Bangalore Urban", "560001"),
		models.NewPincodeEntry("Tamil Nadu", "Chennai", "600001"),
		models.NewPincodeEntry(" Tamil Nadu ", "Chennai North", "600001"),
	}
	if err := store.ReplacePincodes(pincodes); err != nil {
		t.Fatalf("seed pincodes: %v", err)
	}
	return store
}

func newTestChat(t *testing.T, store storage.Store) (*ChatService, *SessionManager, *memoryAudit) {
	t.Helper()
	sessions := NewSessionManager(30 * time.Minute)
	audit := &memoryAudit{}
	chat := NewChatService(store, sessions, audit)
	chat.now = func() time.Time { return time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC) }
	return chat, sessions, audit
}

// converse sends each message in turn and returns the replies
func converse(chat *ChatService, sessionID string, messages ...string) []Reply {
	replies := make([]Reply, 0, len(messages))
	for _, m := range messages {
		replies = append(replies, chat.HandleMessage(sessionID, ChannelWeb, m))
	}
	return replies
}
