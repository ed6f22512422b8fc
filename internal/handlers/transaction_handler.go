package handlers

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/models"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

// TransactionHandler ana defter transaction HTTP isteklerini yönetir.
// Transaction'ların doğal adı olmadığı için autocomplete yoktur.
type TransactionHandler struct {
	transactionService interfaces.TransactionServiceInterface
	validator          *validation.Validator
}

// NewTransactionHandler yeni handler oluşturur
func NewTransactionHandler(transactionService interfaces.TransactionServiceInterface, validator *validation.Validator) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, validator: validator}
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) error {
	txs, err := h.transactionService.List(r.Context())
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "TRANSACTIONS_RETRIEVED", "Transaction'lar getirildi", txs)
	return nil
}

// Paginate GET /transactions/paginated; filtreler query string'den
func (h *TransactionHandler) Paginate(w http.ResponseWriter, r *http.Request) error {
	p, err := listParams(r)
	if err != nil {
		return err
	}
	filter, err := transactionFilter(r)
	if err != nil {
		return err
	}

	page, err := h.transactionService.Paginate(r.Context(), p, filter)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "TRANSACTIONS_RETRIEVED", "Transaction'lar getirildi", page)
	return nil
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req models.CreateTransactionRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}

	tx, err := h.transactionService.Create(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusCreated, "TRANSACTION_CREATED", "Transaction oluşturuldu", tx)
	return nil
}

func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) error {
	var req models.UpdateTransactionRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}

	tx, err := h.transactionService.Update(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "TRANSACTION_UPDATED", "Transaction güncellendi", tx)
	return nil
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	var req models.IDRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	if err := h.transactionService.Delete(r.Context(), req.ID); err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "TRANSACTION_DELETED", "Transaction silindi", models.DeleteResponse{ID: req.ID, Deleted: true})
	return nil
}
