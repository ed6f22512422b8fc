package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/ledger"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

// ProfileService profiler ledger işlemleri için servis.
// Bakiye kuralları ledger paketindedir; burada akış ve kontroller var.
type ProfileService struct {
	profileRepo interfaces.ProfileRepositoryInterface
}

// NewProfileService yeni servis oluşturur
func NewProfileService(profileRepo interfaces.ProfileRepositoryInterface) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) List(ctx context.Context) ([]*models.ProfilerProfile, error) {
	return s.profileRepo.List(ctx)
}

func (s *ProfileService) Paginate(ctx context.Context, p listing.Params, f models.ProfileFilter) (*listing.Page[*models.ProfilerProfile], error) {
	f.Dashboard = false
	return s.profileRepo.Paginate(ctx, p, f)
}

// Dashboard active ve kalan bakiyesi sıfırdan büyük profiller
func (s *ProfileService) Dashboard(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerProfile], error) {
	return s.profileRepo.Paginate(ctx, p, models.ProfileFilter{Dashboard: true})
}

func (s *ProfileService) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return s.profileRepo.Autocomplete(ctx, p)
}

// Create yeni profile oluşturur; bakiyeler sıfır, status active
func (s *ProfileService) Create(ctx context.Context, req *models.CreateProfileRequest) (*models.ProfilerProfile, error) {
	req.CreditCardNumber = strings.TrimSpace(req.CreditCardNumber)
	if req.CreditCardNumber == "" {
		return nil, errors.NewValidationError("credit_card_number", req.CreditCardNumber, "boş olmayan kart numarası")
	}
	if !req.PrePlannedDepositAmount.IsPositive() {
		return nil, errors.NewValidationError("pre_planned_deposit_amount", req.PrePlannedDepositAmount.String(), "0'dan büyük")
	}

	profile, err := s.profileRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("profile_id", profile.ID).
		Int64("client_id", profile.ClientID).
		Str("planned", profile.PrePlannedDepositAmount.String()).
		Msg("Profile oluşturuldu")
	return profile, nil
}

// Update kısmi güncelleme
func (s *ProfileService) Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfilerProfile, error) {
	if req.CreditCardNumber != nil {
		number := strings.TrimSpace(*req.CreditCardNumber)
		if number == "" {
			return nil, errors.NewValidationError("credit_card_number", *req.CreditCardNumber, "boş olmayan kart numarası")
		}
		req.CreditCardNumber = &number
	}
	return s.profileRepo.Update(ctx, req)
}

// Delete hareketi olan profile'ı silmez; bu durum NotFound değil database hatasıdır
func (s *ProfileService) Delete(ctx context.Context, id int64) error {
	count, err := s.profileRepo.CountTransactions(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewDatabaseError(fmt.Sprintf("Profile silinemez: %d hareket bağlı", count), nil)
	}

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("profile_id", id).Msg("Profile silindi")
	return nil
}

// MarkDone profile'ı done yapar. Zaten done ise sessizce başarılı dönmez.
func (s *ProfileService) MarkDone(ctx context.Context, id int64) (*models.ProfilerProfile, error) {
	updated, err := s.profileRepo.MarkDone(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !updated {
		if err := ledger.CanTransition(profile.Status, models.ProfileStatusDone); err != nil {
			return nil, err
		}
	}

	log.Info().
		Int64("profile_id", id).
		Str("remaining", profile.RemainingBalance.String()).
		Msg("Profile done olarak işaretlendi")
	return profile, nil
}

// AddTransaction profile'a yatırma/çekme ekler. Done profile hareket kabul etmez.
func (s *ProfileService) AddTransaction(ctx context.Context, req *models.CreateProfilerTransactionRequest) (*models.ProfilerTransactionResult, error) {
	profile, err := s.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if err := ledger.AcceptsTransactions(profile.Status); err != nil {
		return nil, err
	}

	posting, err := ledger.NewPosting(req.TransactionType, req.Amount)
	if err != nil {
		return nil, err
	}

	charges := ledger.NormalizeCharges(req.TransactionType, req.WithdrawChargesPercentage, req.WithdrawChargesAmount)
	created, err := s.profileRepo.AddTransaction(ctx, req, posting, charges)
	if err != nil {
		return nil, err
	}

	updated, err := s.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("profile_id", req.ProfileID).
		Int64("transaction_id", created.ID).
		Str("type", req.TransactionType).
		Str("amount", req.Amount.String()).
		Str("remaining", updated.RemainingBalance.String()).
		Msg("Profiler hareketi uygulandı")

	return &models.ProfilerTransactionResult{Transaction: created, Profile: updated}, nil
}

func (s *ProfileService) PaginateTransactions(ctx context.Context, p listing.Params, f models.ProfilerTransactionFilter) (*listing.Page[*models.ProfilerTransaction], error) {
	return s.profileRepo.PaginateTransactions(ctx, p, f)
}
