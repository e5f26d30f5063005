package services

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Session channels
const (
	ChannelWeb      = "web"
	ChannelWhatsApp = "whatsapp"
)

// Session is one conversation. Its mutex is held for the whole of a turn,
// so turns of the same session never interleave.
type Session struct {
	SessionID  string    `json:"session_id"`
	Channel    string    `json:"channel"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
	ExpiresAt  time.Time `json:"expires_at"`

	mu    sync.Mutex
	state SessionState
}

// State returns a copy of the conversation state
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SessionManager manages chat sessions
type SessionManager struct {
	sessions   map[string]*Session // In-memory session storage
	mu         sync.RWMutex
	sessionTTL time.Duration
	now        func() time.Time
}

// NewSessionManager creates a new session manager
func NewSessionManager(sessionTTL time.Duration) *SessionManager {
	return &SessionManager{
		sessions:   make(map[string]*Session),
		sessionTTL: sessionTTL,
		now:        time.Now,
	}
}

// GetOrCreateSession returns the live session for the key, creating a fresh
// one when none exists or the old one expired
func (sm *SessionManager) GetOrCreateSession(sessionID, channel string) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	if existing, exists := sm.sessions[sessionID]; exists && now.Before(existing.ExpiresAt) {
		existing.LastActive = now
		existing.ExpiresAt = now.Add(sm.sessionTTL)
		return existing
	}

	session := &Session{
		SessionID:  sessionID,
		Channel:    channel,
		CreatedAt:  now,
		LastActive: now,
		ExpiresAt:  now.Add(sm.sessionTTL),
	}
	sm.sessions[sessionID] = session
	log.Printf("Session created for %s (%s)", sessionID, channel)

	return session
}

// GetSession retrieves an active session
func (sm *SessionManager) GetSession(sessionID string) (*Session, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, fmt.Errorf("session not found")
	}
	if sm.now().After(session.ExpiresAt) {
		return nil, fmt.Errorf("session expired")
	}
	return session, nil
}

// CleanupExpiredSessions drops every session past its expiry and returns
// how many were removed
func (sm *SessionManager) CleanupExpiredSessions() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	removed := 0
	for id, session := range sm.sessions {
		if now.After(session.ExpiresAt) {
			delete(sm.sessions, id)
			removed++
		}
	}
	return removed
}

// SessionStats provides session statistics
type SessionStats struct {
	ActiveSessions    int            `json:"active_sessions"`
	TotalSessions     int            `json:"total_sessions"`
	SessionsByChannel map[string]int `json:"sessions_by_channel"`
}

// GetSessionStats returns current session statistics
func (sm *SessionManager) GetSessionStats() *SessionStats {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	stats := &SessionStats{
		TotalSessions:     len(sm.sessions),
		SessionsByChannel: make(map[string]int),
	}

	now := sm.now()
	for _, session := range sm.sessions {
		if now.Before(session.ExpiresAt) {
			stats.ActiveSessions++
			stats.SessionsByChannel[session.Channel]++
		}
	}
	return stats
}
