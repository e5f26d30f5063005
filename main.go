package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Ananth-NQI/rga-chatbot/database"
	"github.com/Ananth-NQI/rga-chatbot/internal/config"
	"github.com/Ananth-NQI/rga-chatbot/internal/handlers"
	"github.com/Ananth-NQI/rga-chatbot/internal/importer"
	"github.com/Ananth-NQI/rga-chatbot/internal/jobs"
	"github.com/Ananth-NQI/rga-chatbot/internal/routes"
	"github.com/Ananth-NQI/rga-chatbot/internal/services"
	"github.com/Ananth-NQI/rga-chatbot/internal/storage"
)

const version = "1.0.0"

func main() {
	config.LoadDotEnv()
	cfg := config.Load()

	// Initialize storage
	var store storage.Store
	var ping func() error

	if cfg.UseMemoryStore {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		db, err := database.Connect(cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		dbStore := storage.NewDatabaseStore(db)
		log.Println("🔄 Running database migrations...")
		if err := dbStore.Migrate(); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = dbStore
		ping = dbStore.Ping
	}

	// Seed records and the pincode directory from files when configured
	err := importer.Run(store, importer.Sources{
		RecordsXLSX:  cfg.RecordsXLSX,
		RecordsSheet: cfg.RecordsSheet,
		PincodeCSV:   cfg.PincodeCSV,
	})
	if err != nil {
		log.Fatal("Failed to import seed data:", err)
	}

	auditLog, err := services.NewFileAuditLog(cfg.LogFile)
	if err != nil {
		log.Fatal("Failed to open audit log:", err)
	}
	defer auditLog.Close()

	sessionManager := services.NewSessionManager(cfg.SessionTTL)
	chatService := services.NewChatService(store, sessionManager, auditLog)

	// WhatsApp replies go out through Twilio when configured
	var sender services.MessageSender
	if twilioService, err := services.NewTwilioService(cfg.Twilio); err != nil {
		log.Println("⚠️  Twilio credentials not found - WhatsApp replies will only be logged")
	} else {
		sender = twilioService
		log.Println("✅ Twilio service initialized")
	}
	whatsappService := services.NewWhatsAppService(chatService, sender)

	sweepJob := jobs.NewSessionSweepJob(sessionManager, 5*time.Minute)
	sweepJob.Start()

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "RGA Chatbot v" + version,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Session-ID",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	routes.SetupRoutes(app, cfg, routes.Handlers{
		Chatbot:  handlers.NewChatbotHandler(chatService, cfg.SessionTTL),
		WhatsApp: handlers.NewWhatsAppHandler(whatsappService),
		Health:   handlers.NewHealthHandler(version, cfg.StorageType(), store, sessionManager, ping),
	})

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("🛑 Gracefully shutting down...")
		sweepJob.Stop()
		_ = app.Shutdown()
	}()

	log.Println("========================================")
	log.Printf("🚀 RGA Chatbot starting on port %s", cfg.Port)
	log.Printf("📊 Storage: %s", cfg.StorageType())
	log.Printf("🌍 Environment: %s", cfg.Environment)
	log.Printf("📱 WhatsApp: %s", whatsAppStatus(sender))
	log.Println("========================================")

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Println("Server stopped:", err)
	}
}

func whatsAppStatus(sender services.MessageSender) string {
	if sender == nil {
		return "Not configured"
	}
	return "Configured"
}
