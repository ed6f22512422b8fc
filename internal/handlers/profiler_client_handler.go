package handlers

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/models"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

// ProfilerClientHandler profiler müşteri HTTP isteklerini yönetir
type ProfilerClientHandler struct {
	profilerClientService interfaces.ProfilerClientServiceInterface
	validator             *validation.Validator
}

// NewProfilerClientHandler yeni handler oluşturur
func NewProfilerClientHandler(profilerClientService interfaces.ProfilerClientServiceInterface, validator *validation.Validator) *ProfilerClientHandler {
	return &ProfilerClientHandler{profilerClientService: profilerClientService, validator: validator}
}

// List GET /profiler/clients
func (h *ProfilerClientHandler) List(w http.ResponseWriter, r *http.Request) error {
	items, err := h.profilerClientService.List(r.Context())
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILER_CLIENTS_RETRIEVED", "Profiler müşteriler getirildi", items)
	return nil
}

// Paginate GET /profiler/clients/paginated
func (h *ProfilerClientHandler) Paginate(w http.ResponseWriter, r *http.Request) error {
	p, err := listParams(r)
	if err != nil {
		return err
	}
	page, err := h.profilerClientService.Paginate(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILER_CLIENTS_RETRIEVED", "Profiler müşteriler getirildi", page)
	return nil
}

// Autocomplete GET /profiler/clients/autocomplete
func (h *ProfilerClientHandler) Autocomplete(w http.ResponseWriter, r *http.Request) error {
	p, err := autocompleteParams(r)
	if err != nil {
		return err
	}
	result, err := h.profilerClientService.Autocomplete(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILER_CLIENT_SUGGESTIONS_RETRIEVED", "Profiler müşteri önerileri getirildi", result)
	return nil
}

// Create POST /profiler/clients
func (h *ProfilerClientHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req models.CreateProfilerClientRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	item, err := h.profilerClientService.Create(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusCreated, "PROFILER_CLIENT_CREATED", "Profiler müşteri oluşturuldu", item)
	return nil
}

// Update PUT /profiler/clients
func (h *ProfilerClientHandler) Update(w http.ResponseWriter, r *http.Request) error {
	var req models.UpdateProfilerClientRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	item, err := h.profilerClientService.Update(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILER_CLIENT_UPDATED", "Profiler müşteri güncellendi", item)
	return nil
}

// Delete DELETE /profiler/clients
func (h *ProfilerClientHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	var req models.IDRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	if err := h.profilerClientService.Delete(r.Context(), req.ID); err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILER_CLIENT_DELETED", "Profiler müşteri silindi", models.DeleteResponse{ID: req.ID, Deleted: true})
	return nil
}
