package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

// Pinger *sql.DB'nin health için kullanılan kısmı
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler liveness + DB bağlantı kontrolü
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Check GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	now := time.Now().Format(time.RFC3339)
	if err := h.db.PingContext(ctx); err != nil {
		return &errors.HTTPError{
			StatusCode: http.StatusServiceUnavailable,
			ErrorCode:  errors.CodeServiceDown,
			Message:    "Veritabanına ulaşılamıyor",
			Extra: map[string]interface{}{
				"status":   "unhealthy",
				"database": "disconnected",
			},
		}
	}

	writeSuccess(w, http.StatusOK, "HEALTHY", "Servis çalışıyor", models.HealthStatus{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: now,
	})
	return nil
}
