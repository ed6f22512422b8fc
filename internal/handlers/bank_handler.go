package handlers

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/models"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

// BankHandler banka HTTP isteklerini yönetir
type BankHandler struct {
	bankService interfaces.BankServiceInterface
	validator   *validation.Validator
}

// NewBankHandler yeni handler oluşturur
func NewBankHandler(bankService interfaces.BankServiceInterface, validator *validation.Validator) *BankHandler {
	return &BankHandler{bankService: bankService, validator: validator}
}

// List GET /banks
func (h *BankHandler) List(w http.ResponseWriter, r *http.Request) error {
	banks, err := h.bankService.List(r.Context())
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "BANKS_RETRIEVED", "Bankalar getirildi", banks)
	return nil
}

// Paginate GET /banks/paginated
func (h *BankHandler) Paginate(w http.ResponseWriter, r *http.Request) error {
	p, err := listParams(r)
	if err != nil {
		return err
	}
	page, err := h.bankService.Paginate(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "BANKS_RETRIEVED", "Bankalar getirildi", page)
	return nil
}

// Autocomplete GET /banks/autocomplete
func (h *BankHandler) Autocomplete(w http.ResponseWriter, r *http.Request) error {
	p, err := autocompleteParams(r)
	if err != nil {
		return err
	}
	result, err := h.bankService.Autocomplete(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "BANK_SUGGESTIONS_RETRIEVED", "Banka önerileri getirildi", result)
	return nil
}

// Create POST /banks
func (h *BankHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req models.CreateBankRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	bank, err := h.bankService.Create(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusCreated, "BANK_CREATED", "Banka oluşturuldu", bank)
	return nil
}

// Update PUT /banks
func (h *BankHandler) Update(w http.ResponseWriter, r *http.Request) error {
	var req models.UpdateBankRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	bank, err := h.bankService.Update(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "BANK_UPDATED", "Banka güncellendi", bank)
	return nil
}

// Delete DELETE /banks
func (h *BankHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	var req models.IDRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	if err := h.bankService.Delete(r.Context(), req.ID); err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "BANK_DELETED", "Banka silindi", models.DeleteResponse{ID: req.ID, Deleted: true})
	return nil
}
