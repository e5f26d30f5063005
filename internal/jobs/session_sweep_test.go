package jobs

import (
	"testing"
	"time"

	"github.com/Ananth-NQI/rga-chatbot/internal/services"
)

func TestSweepRemovesExpiredSessions(t *testing.T) {
	sessions := services.NewSessionManager(time.Millisecond)
	sessions.GetOrCreateSession("a", services.ChannelWeb)
	time.Sleep(5 * time.Millisecond)

	job := NewSessionSweepJob(sessions, time.Hour)
	if removed := job.SweepOnce(); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
}

func TestStartStop(t *testing.T) {
	sessions := services.NewSessionManager(time.Millisecond)
	sessions.GetOrCreateSession("a", services.ChannelWeb)

	job := NewSessionSweepJob(sessions, 2*time.Millisecond)
	job.Start()
	job.Start() // second start is a no-op

	deadline := time.Now().Add(time.Second)
	for sessions.GetSessionStats().TotalSessions != 0 && time.Now().Before(deadline) {
		time.Sleep(2 * time.Millisecond)
	}
	job.Stop()
	job.Stop()

	if n := sessions.GetSessionStats().TotalSessions; n != 0 {
		t.Errorf("sessions left = %d", n)
	}
}
