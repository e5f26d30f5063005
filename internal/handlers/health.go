package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ananth-NQI/rga-chatbot/internal/services"
	"github.com/Ananth-NQI/rga-chatbot/internal/storage"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	Version     string
	StorageType string
	store       storage.Store
	sessions    *services.SessionManager
	ping        func() error // nil when the store has no connection to check
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version, storageType string, store storage.Store, sessions *services.SessionManager, ping func() error) *HealthHandler {
	return &HealthHandler{
		Version:     version,
		StorageType: storageType,
		store:       store,
		sessions:    sessions,
		ping:        ping,
	}
}

// Check returns the health status of the service
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK
	dbStatus := "not used"

	if h.ping != nil {
		dbStatus = "connected"
		if err := h.ping(); err != nil {
			status = "unhealthy"
			statusCode = fiber.StatusServiceUnavailable
			dbStatus = "error: " + err.Error()
		}
	}

	// Get counts
	data := fiber.Map{}
	if n, err := h.store.CountRecords(); err != nil {
		data["records"] = "error: " + err.Error()
	} else {
		data["records"] = n
	}
	if n, err := h.store.CountPincodes(); err != nil {
		data["pincodes"] = "error: " + err.Error()
	} else {
		data["pincodes"] = n
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status":   status,
		"service":  "RGA Chatbot",
		"version":  h.Version,
		"storage":  h.StorageType,
		"database": dbStatus,
		"data":     data,
		"sessions": h.sessions.GetSessionStats(),
	})
}
