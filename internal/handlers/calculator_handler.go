package handlers

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/calculator"
	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

// CalculatorHandler ücret hesaplayıcı endpoint'leri; sonuçlar saklanmaz
type CalculatorHandler struct {
	calculatorService interfaces.CalculatorServiceInterface
	validator         *validation.Validator
}

func NewCalculatorHandler(calculatorService interfaces.CalculatorServiceInterface, validator *validation.Validator) *CalculatorHandler {
	return &CalculatorHandler{calculatorService: calculatorService, validator: validator}
}

// Simple POST /calculator/simple
func (h *CalculatorHandler) Simple(w http.ResponseWriter, r *http.Request) error {
	var in calculator.SimpleInput
	if err := decodeBody(w, r, h.validator, &in); err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CALCULATION_COMPLETED", "Hesaplama tamamlandı", h.calculatorService.Simple(in))
	return nil
}

// Finkeda POST /calculator/finkeda
func (h *CalculatorHandler) Finkeda(w http.ResponseWriter, r *http.Request) error {
	var in calculator.FinkedaInput
	if err := decodeBody(w, r, h.validator, &in); err != nil {
		return err
	}
	quote, err := h.calculatorService.Finkeda(r.Context(), in)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CALCULATION_COMPLETED", "Hesaplama tamamlandı", quote)
	return nil
}
