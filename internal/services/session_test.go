package services

import (
	"testing"
	"time"
)

func TestSessionExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	sm := NewSessionManager(30 * time.Minute)
	sm.now = func() time.Time { return now }

	first := sm.GetOrCreateSession("web-1", ChannelWeb)
	first.state.selectMode(ModeRGA)

	now = now.Add(20 * time.Minute)
	if again := sm.GetOrCreateSession("web-1", ChannelWeb); again != first {
		t.Fatal("live session was replaced")
	}

	// Activity pushed expiry to 10:50
	now = now.Add(29 * time.Minute)
	if _, err := sm.GetSession("web-1"); err != nil {
		t.Fatalf("session should still be live: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := sm.GetSession("web-1"); err == nil {
		t.Fatal("expected expired session")
	}
	fresh := sm.GetOrCreateSession("web-1", ChannelWeb)
	if fresh == first || fresh.State().Mode != ModeNone {
		t.Error("expired session state leaked into the new one")
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	sm := NewSessionManager(10 * time.Minute)
	sm.now = func() time.Time { return now }

	sm.GetOrCreateSession("old", ChannelWeb)
	now = now.Add(8 * time.Minute)
	sm.GetOrCreateSession("new", ChannelWhatsApp)
	now = now.Add(5 * time.Minute)

	if removed := sm.CleanupExpiredSessions(); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if n := sm.GetSessionStats().ActiveSessions; n != 1 {
		t.Errorf("active = %d, want 1", n)
	}
	stats := sm.GetSessionStats()
	if stats.TotalSessions != 1 || stats.SessionsByChannel[ChannelWhatsApp] != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
