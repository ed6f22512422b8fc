package handlers

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/models"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

// ClientHandler müşteri HTTP isteklerini yönetir
type ClientHandler struct {
	clientService interfaces.ClientServiceInterface
	validator     *validation.Validator
}

// NewClientHandler yeni handler oluşturur
func NewClientHandler(clientService interfaces.ClientServiceInterface, validator *validation.Validator) *ClientHandler {
	return &ClientHandler{clientService: clientService, validator: validator}
}

// List GET /clients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) error {
	items, err := h.clientService.List(r.Context())
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CLIENTS_RETRIEVED", "Müşteriler getirildi", items)
	return nil
}

// Paginate GET /clients/paginated
func (h *ClientHandler) Paginate(w http.ResponseWriter, r *http.Request) error {
	p, err := listParams(r)
	if err != nil {
		return err
	}
	page, err := h.clientService.Paginate(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CLIENTS_RETRIEVED", "Müşteriler getirildi", page)
	return nil
}

// Autocomplete GET /clients/autocomplete
func (h *ClientHandler) Autocomplete(w http.ResponseWriter, r *http.Request) error {
	p, err := autocompleteParams(r)
	if err != nil {
		return err
	}
	result, err := h.clientService.Autocomplete(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CLIENT_SUGGESTIONS_RETRIEVED", "Müşteri önerileri getirildi", result)
	return nil
}

// Create POST /clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req models.CreateClientRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	item, err := h.clientService.Create(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusCreated, "CLIENT_CREATED", "Müşteri oluşturuldu", item)
	return nil
}

// Update PUT /clients
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) error {
	var req models.UpdateClientRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	item, err := h.clientService.Update(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CLIENT_UPDATED", "Müşteri güncellendi", item)
	return nil
}

// Delete DELETE /clients
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	var req models.IDRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	if err := h.clientService.Delete(r.Context(), req.ID); err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CLIENT_DELETED", "Müşteri silindi", models.DeleteResponse{ID: req.ID, Deleted: true})
	return nil
}
