package handlers

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/middleware"
)

// SnapshotProvider anlık sayaç görüntüsü verir
type SnapshotProvider interface {
	Snapshot() *middleware.MetricsSnapshot
}

type MetricsHandler struct {
	metrics SnapshotProvider
}

func NewMetricsHandler(metrics SnapshotProvider) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

// Get GET /metrics
func (h *MetricsHandler) Get(w http.ResponseWriter, r *http.Request) error {
	writeSuccess(w, http.StatusOK, "METRICS_RETRIEVED", "Metrikler getirildi", h.metrics.Snapshot())
	return nil
}
