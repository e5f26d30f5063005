package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateSessionID generates a random, URL-safe session identifier
func GenerateSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return "SES" + hex.EncodeToString(buf), nil
}

// FallbackSessionID is used only if the random source fails
func FallbackSessionID() string {
	return fmt.Sprintf("SES%d", time.Now().UnixNano())
}
