package services

import (
	"log"
	"regexp"
	"strings"
)

// MessageSender delivers a text reply to a WhatsApp number
type MessageSender interface {
	SendWhatsAppMessage(to string, message string) error
}

// WhatsAppService runs chat turns for WhatsApp senders
type WhatsAppService struct {
	chat   *ChatService
	sender MessageSender
}

// NewWhatsAppService creates a new WhatsApp service. sender may be nil, in
// which case replies are only logged.
func NewWhatsAppService(chat *ChatService, sender MessageSender) *WhatsAppService {
	return &WhatsAppService{
		chat:   chat,
		sender: sender,
	}
}

// ProcessMessage runs one turn for the sender and returns the reply
// formatted for WhatsApp
func (w *WhatsAppService) ProcessMessage(from, message string) string {
	phone := strings.TrimPrefix(from, "whatsapp:")

	log.Printf("📱 Processing message from %s", phone)

	reply := w.chat.HandleMessage("whatsapp:"+phone, ChannelWhatsApp, message)
	return FormatForWhatsApp(reply.Reply)
}

// Respond processes the message and sends the reply back to the sender
func (w *WhatsAppService) Respond(from, message string) (string, error) {
	response := w.ProcessMessage(from, message)
	phone := strings.TrimPrefix(from, "whatsapp:")

	if w.sender == nil {
		log.Printf("📤 Response (not sent - Twilio not configured): %s", response)
		return response, nil
	}
	if err := w.sender.SendWhatsAppMessage(phone, response); err != nil {
		return response, err
	}
	return response, nil
}

var anchorPattern = regexp.MustCompile(`<a href="([^"]*)"[^>]*>([^<]*)</a>`)

// FormatForWhatsApp turns the HTML-ish web reply into plain text
func FormatForWhatsApp(text string) string {
	text = anchorPattern.ReplaceAllString(text, "$2: $1")
	return strings.ReplaceAll(text, LineBreak, "\n")
}
