package handlers

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/models"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

// CardHandler kart HTTP isteklerini yönetir
type CardHandler struct {
	cardService interfaces.CardServiceInterface
	validator   *validation.Validator
}

// NewCardHandler yeni handler oluşturur
func NewCardHandler(cardService interfaces.CardServiceInterface, validator *validation.Validator) *CardHandler {
	return &CardHandler{cardService: cardService, validator: validator}
}

// List GET /cards
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) error {
	items, err := h.cardService.List(r.Context())
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CARDS_RETRIEVED", "Kartlar getirildi", items)
	return nil
}

// Paginate GET /cards/paginated
func (h *CardHandler) Paginate(w http.ResponseWriter, r *http.Request) error {
	p, err := listParams(r)
	if err != nil {
		return err
	}
	page, err := h.cardService.Paginate(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CARDS_RETRIEVED", "Kartlar getirildi", page)
	return nil
}

// Autocomplete GET /cards/autocomplete
func (h *CardHandler) Autocomplete(w http.ResponseWriter, r *http.Request) error {
	p, err := autocompleteParams(r)
	if err != nil {
		return err
	}
	result, err := h.cardService.Autocomplete(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CARD_SUGGESTIONS_RETRIEVED", "Kart önerileri getirildi", result)
	return nil
}

// Create POST /cards
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req models.CreateCardRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	item, err := h.cardService.Create(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusCreated, "CARD_CREATED", "Kart oluşturuldu", item)
	return nil
}

// Update PUT /cards
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) error {
	var req models.UpdateCardRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	item, err := h.cardService.Update(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CARD_UPDATED", "Kart güncellendi", item)
	return nil
}

// Delete DELETE /cards
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	var req models.IDRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	if err := h.cardService.Delete(r.Context(), req.ID); err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "CARD_DELETED", "Kart silindi", models.DeleteResponse{ID: req.ID, Deleted: true})
	return nil
}
