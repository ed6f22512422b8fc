package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

// ProfilerBankService profiler banka işlemleri
type ProfilerBankService struct {
	bankRepo interfaces.ProfilerBankRepositoryInterface
}

func NewProfilerBankService(bankRepo interfaces.ProfilerBankRepositoryInterface) *ProfilerBankService {
	return &ProfilerBankService{bankRepo: bankRepo}
}

func (s *ProfilerBankService) List(ctx context.Context) ([]*models.ProfilerBank, error) {
	return s.bankRepo.List(ctx)
}

func (s *ProfilerBankService) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerBank], error) {
	return s.bankRepo.Paginate(ctx, p)
}

func (s *ProfilerBankService) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return s.bankRepo.Autocomplete(ctx, p)
}

func (s *ProfilerBankService) Create(ctx context.Context, req *models.CreateProfilerBankRequest) (*models.ProfilerBank, error) {
	req.BankName = strings.TrimSpace(req.BankName)
	if req.BankName == "" {
		return nil, errors.NewValidationError("bank_name", req.BankName, "boş olmayan banka adı")
	}
	return s.bankRepo.Create(ctx, req)
}

func (s *ProfilerBankService) Update(ctx context.Context, req *models.UpdateProfilerBankRequest) (*models.ProfilerBank, error) {
	req.BankName = strings.TrimSpace(req.BankName)
	if req.BankName == "" {
		return nil, errors.NewValidationError("bank_name", req.BankName, "boş olmayan banka adı")
	}
	return s.bankRepo.Update(ctx, req)
}

// Delete bankaya bağlı profile varsa reddeder
func (s *ProfilerBankService) Delete(ctx context.Context, id int64) error {
	count, err := s.bankRepo.CountProfiles(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewDatabaseError(fmt.Sprintf("Profiler banka silinemez: %d profile bağlı", count), nil)
	}
	if err := s.bankRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("profiler_bank_id", id).Msg("Profiler banka silindi")
	return nil
}
