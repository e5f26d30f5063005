package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings, read from the environment
type Config struct {
	Port        string
	Environment string

	UseMemoryStore bool
	Database       DatabaseConfig

	// Seed files loaded at startup (optional)
	RecordsXLSX  string
	RecordsSheet string
	PincodeCSV   string

	LogFile    string
	StaticDir  string
	IndexFile  string
	SessionTTL time.Duration

	Twilio                   TwilioConfig
	DisableWebhookValidation bool
}

// DatabaseConfig describes the PostgreSQL connection
type DatabaseConfig struct {
	User                   string
	Pass                   string
	Name                   string
	Host                   string
	Port                   string
	InstanceConnectionName string // Cloud SQL, connect via unix socket when set
}

// TwilioConfig holds the WhatsApp sender credentials
type TwilioConfig struct {
	AccountSID   string
	AuthToken    string
	WhatsAppFrom string // Format: "whatsapp:+14155238886"
}

// Configured reports whether WhatsApp replies can be sent
func (t TwilioConfig) Configured() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.WhatsAppFrom != ""
}

// LoadDotEnv loads .env files for local development. On Cloud Run the
// environment is already populated.
func LoadDotEnv() {
	if os.Getenv("INSTANCE_CONNECTION_NAME") != "" {
		return
	}
	if err := godotenv.Load(".env"); err != nil {
		if err = godotenv.Load("environments/.env.development"); err != nil {
			log.Println("⚠️  No .env file found - checking environment variables")
		}
	}
}

// Load builds a Config from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "production"),
		UseMemoryStore: getBool("USE_MEMORY_STORE"),
		Database: DatabaseConfig{
			User:                   getEnv("DB_USER", "postgres"),
			Pass:                   os.Getenv("DB_PASS"),
			Name:                   getEnv("DB_NAME", "rga_bot"),
			Host:                   getEnv("DB_HOST", "localhost"),
			Port:                   getEnv("DB_PORT", "5432"),
			InstanceConnectionName: os.Getenv("INSTANCE_CONNECTION_NAME"),
		},
		RecordsXLSX:  os.Getenv("RECORDS_XLSX"),
		RecordsSheet: getEnv("RECORDS_SHEET", "RGA status"),
		PincodeCSV:   os.Getenv("PINCODE_CSV"),
		LogFile:      getEnv("LOG_FILE", "chatbot.log"),
		StaticDir:    getEnv("STATIC_DIR", "./public"),
		IndexFile:    getEnv("INDEX_FILE", "web1.html"),
		SessionTTL:   time.Duration(getInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
		Twilio: TwilioConfig{
			AccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
			WhatsAppFrom: os.Getenv("TWILIO_WHATSAPP_FROM"),
		},
		DisableWebhookValidation: getBool("DISABLE_WEBHOOK_VALIDATION"),
	}
}

// IsDevelopment is true for local runs
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// StorageType describes the configured backend for health output
func (c *Config) StorageType() string {
	if c.UseMemoryStore {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string) bool {
	return os.Getenv(key) == "true"
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("⚠️  Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
