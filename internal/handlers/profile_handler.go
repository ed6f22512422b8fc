package handlers

import (
	"net/http"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/models"
	"github.com/onerilhan/bookkeeping-api/internal/validation"
)

// ProfileHandler profiler profile ve hareket HTTP isteklerini yönetir
type ProfileHandler struct {
	profileService interfaces.ProfileServiceInterface
	validator      *validation.Validator
}

// NewProfileHandler yeni handler oluşturur
func NewProfileHandler(profileService interfaces.ProfileServiceInterface, validator *validation.Validator) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, validator: validator}
}

// List GET /profiler/profiles
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) error {
	profiles, err := h.profileService.List(r.Context())
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILES_RETRIEVED", "Profiller getirildi", profiles)
	return nil
}

// Paginate GET /profiler/profiles/paginated
func (h *ProfileHandler) Paginate(w http.ResponseWriter, r *http.Request) error {
	p, err := listParams(r)
	if err != nil {
		return err
	}
	filter, err := profileFilter(r)
	if err != nil {
		return err
	}

	page, err := h.profileService.Paginate(r.Context(), p, filter)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILES_RETRIEVED", "Profiller getirildi", page)
	return nil
}

// Dashboard GET /profiler/profiles/dashboard
func (h *ProfileHandler) Dashboard(w http.ResponseWriter, r *http.Request) error {
	p, err := listParams(r)
	if err != nil {
		return err
	}

	page, err := h.profileService.Dashboard(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "DASHBOARD_RETRIEVED", "Dashboard profilleri getirildi", page)
	return nil
}

// Autocomplete GET /profiler/profiles/autocomplete
func (h *ProfileHandler) Autocomplete(w http.ResponseWriter, r *http.Request) error {
	p, err := autocompleteParams(r)
	if err != nil {
		return err
	}
	result, err := h.profileService.Autocomplete(r.Context(), p)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILE_SUGGESTIONS_RETRIEVED", "Profile önerileri getirildi", result)
	return nil
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var req models.CreateProfileRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	profile, err := h.profileService.Create(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusCreated, "PROFILE_CREATED", "Profile oluşturuldu", profile)
	return nil
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) error {
	var req models.UpdateProfileRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	profile, err := h.profileService.Update(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILE_UPDATED", "Profile güncellendi", profile)
	return nil
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	var req models.IDRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	if err := h.profileService.Delete(r.Context(), req.ID); err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILE_DELETED", "Profile silindi", models.DeleteResponse{ID: req.ID, Deleted: true})
	return nil
}

// MarkDone PUT /profiler/profiles/mark-done
func (h *ProfileHandler) MarkDone(w http.ResponseWriter, r *http.Request) error {
	var req models.IDRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	profile, err := h.profileService.MarkDone(r.Context(), req.ID)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILE_MARKED_DONE", "Profile done olarak işaretlendi", profile)
	return nil
}

// AddTransaction POST /profiler/transactions
func (h *ProfileHandler) AddTransaction(w http.ResponseWriter, r *http.Request) error {
	var req models.CreateProfilerTransactionRequest
	if err := decodeBody(w, r, h.validator, &req); err != nil {
		return err
	}
	result, err := h.profileService.AddTransaction(r.Context(), &req)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusCreated, "PROFILER_TRANSACTION_CREATED", "Profiler hareketi eklendi", result)
	return nil
}

// PaginateTransactions GET /profiler/transactions/paginated
func (h *ProfileHandler) PaginateTransactions(w http.ResponseWriter, r *http.Request) error {
	p, err := listParams(r)
	if err != nil {
		return err
	}
	filter, err := profilerTransactionFilter(r)
	if err != nil {
		return err
	}

	page, err := h.profileService.PaginateTransactions(r.Context(), p, filter)
	if err != nil {
		return err
	}
	writeSuccess(w, http.StatusOK, "PROFILER_TRANSACTIONS_RETRIEVED", "Profiler hareketleri getirildi", page)
	return nil
}
