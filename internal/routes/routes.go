package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Ananth-NQI/rga-chatbot/internal/config"
	"github.com/Ananth-NQI/rga-chatbot/internal/handlers"
	"github.com/Ananth-NQI/rga-chatbot/internal/middleware"
)

// Handlers groups everything the router needs
type Handlers struct {
	Chatbot  *handlers.ChatbotHandler
	WhatsApp *handlers.WhatsAppHandler
	Health   *handlers.HealthHandler
}

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, cfg *config.Config, h Handlers) {
	app.Get("/health", h.Health.Check)

	// Chat endpoint used by the web UI
	app.Post("/chatbot", h.Chatbot.Handle)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")
	if cfg.IsDevelopment() || cfg.DisableWebhookValidation {
		// Development: Skip validation for ngrok
		webhooks.Post("/whatsapp", h.WhatsApp.HandleWebhook)
		log.Println("⚠️  WhatsApp webhook validation DISABLED")
	} else {
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(cfg.Twilio.AuthToken), h.WhatsApp.HandleWebhook)
	}

	// ========== TEST ROUTES (Development Only) ==========
	if cfg.IsDevelopment() {
		app.Post("/test/whatsapp", h.WhatsApp.HandleTestWebhook)
	}

	// Web UI and its assets
	app.Static("/", cfg.StaticDir, fiber.Static{
		Index: cfg.IndexFile,
	})
}
