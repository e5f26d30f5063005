package jobs

import (
	"log"
	"sync"
	"time"

	"github.com/Ananth-NQI/rga-chatbot/internal/services"
)

// SessionSweepJob periodically drops idle chat sessions
type SessionSweepJob struct {
	sessions *services.SessionManager
	interval time.Duration

	mu        sync.Mutex
	isRunning bool
	stop      chan struct{}
	done      chan struct{}
}

// NewSessionSweepJob creates a sweeper; it does nothing until Start
func NewSessionSweepJob(sessions *services.SessionManager, interval time.Duration) *SessionSweepJob {
	return &SessionSweepJob{
		sessions: sessions,
		interval: interval,
	}
}

// Start begins sweeping in the background
func (j *SessionSweepJob) Start() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.isRunning {
		log.Println("Session sweep already running")
		return
	}
	j.isRunning = true
	j.stop = make(chan struct{})
	j.done = make(chan struct{})

	go j.run(j.stop, j.done)
	log.Printf("Session sweep started (every %v)", j.interval)
}

// Stop halts the sweeper and waits for it to exit
func (j *SessionSweepJob) Stop() {
	j.mu.Lock()
	if !j.isRunning {
		j.mu.Unlock()
		return
	}
	j.isRunning = false
	close(j.stop)
	done := j.done
	j.mu.Unlock()

	<-done
	log.Println("Session sweep stopped")
}

// SweepOnce removes expired sessions now
func (j *SessionSweepJob) SweepOnce() int {
	removed := j.sessions.CleanupExpiredSessions()
	if removed > 0 {
		log.Printf("Cleaned up %d expired sessions", removed)
	}
	return removed
}

func (j *SessionSweepJob) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.SweepOnce()
		case <-stop:
			return
		}
	}
}
