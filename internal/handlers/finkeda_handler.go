package handlers

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/models"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

// FinkedaHandler finkeda ayar endpoint'leri
type FinkedaHandler struct {
	finkedaService interfaces.FinkedaServiceInterface
	validator      *validation.Validator
}

func NewFinkedaHandler(finkedaService interfaces.FinkedaServiceInterface, validator *validation.Validator) *FinkedaHandler {
	return &FinkedaHandler{finkedaService: finkedaService, validator: validator}
}

// Get GET /finkeda-settings. Ayar yoksa hata değil: success=true, data=null, statusCode=404.
func (h *FinkedaHandler) Get(w http.ResponseWriter, r *http.Request) error {
	settings, err := h.finkedaService.GetLatest(r.Context())
	if err != nil {
		return err
	}
	if settings == nil {
		writeEnvelope(w, http.StatusOK, http.StatusNotFound, "FINKEDA_SETTINGS_NOT_FOUND", "Finkeda ayarı bulunamadı", nil)
		return nil
	}
	writeSuccess(w, http.StatusOK, "FINKEDA_SETTINGS_RETRIEVED", "Finkeda ayarları getirildi", settings)
	return nil
}

func (h *FinkedaHandler) History(w http.ResponseWriter, r *http.Request) error {
	history, err := h.finkedaService.History(r.Context())
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "FINKEDA_HISTORY_RETRIEVED", "Finkeda ayar geçmişi getirildi", history)
	return nil
}

// Update PUT /finkeda-settings (upsert)
func (h *FinkedaHandler) Update(w http.ResponseWriter, r *http.Request) error {
	var req models.UpdateFinkedaSettingsRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	settings, err := h.finkedaService.Update(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "FINKEDA_SETTINGS_UPDATED", "Finkeda ayarları güncellendi", settings)
	return nil
}
