package handlers

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/models"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

// ProfilerBankHandler profiler banka HTTP isteklerini yönetir
type ProfilerBankHandler struct {
	profilerBankService interfaces.ProfilerBankServiceInterface
	validator           *validation.Validator
}

// NewProfilerBankHandler yeni handler oluşturur
func NewProfilerBankHandler(profilerBankService interfaces.ProfilerBankServiceInterface, validator *validation.Validator) *ProfilerBankHandler {
	return &ProfilerBankHandler{profilerBankService: profilerBankService, validator: validator}
}

// List GET /profiler/banks
func (h *ProfilerBankHandler) List(w http.ResponseWriter, r *http.Request) error {
	items, err := h.profilerBankService.List(r.Context())
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILER_BANKS_RETRIEVED", "Profiler bankalar getirildi", items)
	return nil
}

// Paginate GET /profiler/banks/paginated
func (h *ProfilerBankHandler) Paginate(w http.ResponseWriter, r *http.Request) error {
	p, err := listParams(r)
	if err != nil {
		return err
	}
	page, err := h.profilerBankService.Paginate(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILER_BANKS_RETRIEVED", "Profiler bankalar getirildi", page)
	return nil
}

// Autocomplete GET /profiler/banks/autocomplete
func (h *ProfilerBankHandler) Autocomplete(w http.ResponseWriter, r *http.Request) error {
	p, err := autocompleteParams(r)
	if err != nil {
		return err
	}
	result, err := h.profilerBankService.Autocomplete(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILER_BANK_SUGGESTIONS_RETRIEVED", "Profiler banka önerileri getirildi", result)
	return nil
}

// Create POST /profiler/banks
func (h *ProfilerBankHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req models.CreateProfilerBankRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	item, err := h.profilerBankService.Create(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusCreated, "PROFILER_BANK_CREATED", "Profiler banka oluşturuldu", item)
	return nil
}

// Update PUT /profiler/banks
func (h *ProfilerBankHandler) Update(w http.ResponseWriter, r *http.Request) error {
	var req models.UpdateProfilerBankRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	item, err := h.profilerBankService.Update(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILER_BANK_UPDATED", "Profiler banka güncellendi", item)
	return nil
}

// Delete DELETE /profiler/banks
func (h *ProfilerBankHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	var req models.IDRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	if err := h.profilerBankService.Delete(r.Context(), req.ID); err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILER_BANK_DELETED", "Profiler banka silindi", models.DeleteResponse{ID: req.ID, Deleted: true})
	return nil
}
