package handlers

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/models"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

type ReportHandler struct {
	reportService interfaces.ReportServiceInterface
	validator     *validation.Validator
}

func NewReportHandler(reportService interfaces.ReportServiceInterface, validator *validation.Validator) *ReportHandler {
	return &ReportHandler{reportService: reportService, validator: validator}
}

// Generate POST /reports/generate; PDF base64 olarak döner
func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) error {
	var req models.GenerateReportRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	report, err := h.reportService.Generate(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "REPORT_GENERATED", "Rapor oluşturuldu", report)
	return nil
}
