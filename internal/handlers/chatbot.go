package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ananth-NQI/rga-chatbot/internal/services"
	"github.com/Ananth-NQI/rga-chatbot/internal/utils"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "chat_session"
)

// ChatbotHandler serves the web chat endpoint
type ChatbotHandler struct {
	chat       *services.ChatService
	sessionTTL time.Duration
}

// NewChatbotHandler creates a new chatbot handler
func NewChatbotHandler(chat *services.ChatService, sessionTTL time.Duration) *ChatbotHandler {
	return &ChatbotHandler{
		chat:       chat,
		sessionTTL: sessionTTL,
	}
}

// ChatRequest is the body of POST /chatbot
type ChatRequest struct {
	Message string `json:"message"`
}

// Handle runs one chat turn
func (h *ChatbotHandler) Handle(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		// Treat an unreadable body like an empty message
		log.Printf("⚠️  Invalid chatbot payload: %v", err)
		req.Message = ""
	}

	reply := h.chat.HandleMessage(h.sessionID(c), services.ChannelWeb, req.Message)
	return c.JSON(reply)
}

// sessionID uses the server-issued cookie first. The X-Session-ID header is
// for trusted server-side callers that cannot keep cookies: whoever sends an
// id continues that conversation. A new cookie is issued when neither is present.
func (h *ChatbotHandler) sessionID(c *fiber.Ctx) string {
	if id := c.Cookies(sessionCookie); id != "" {
		return "web:" + id
	}
	if id := c.Get(sessionHeader); id != "" {
		return "web:" + id
	}

	id, err := utils.GenerateSessionID()
	if err != nil {
		log.Printf("⚠️  %v", err)
		id = utils.FallbackSessionID()
	}
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return "web:" + id
}
