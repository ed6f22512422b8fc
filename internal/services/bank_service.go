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

// BankService banka işlemleri için servis
type BankService struct {
	bankRepo interfaces.BankRepositoryInterface
}

// NewBankService yeni servis oluşturur
func NewBankService(bankRepo interfaces.BankRepositoryInterface) *BankService {
	return &BankService{bankRepo: bankRepo}
}

func (s *BankService) List(ctx context.Context) ([]*models.Bank, error) {
	return s.bankRepo.List(ctx)
}

func (s *BankService) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Bank], error) {
	return s.bankRepo.Paginate(ctx, p)
}

func (s *BankService) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return s.bankRepo.Autocomplete(ctx, p)
}

// Create yeni banka oluşturur
func (s *BankService) Create(ctx context.Context, req *models.CreateBankRequest) (*models.Bank, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, errors.NewValidationError("name", req.Name, "boş olmayan banka adı")
	}

	bank, err := s.bankRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("bank_id", bank.ID).Str("name", bank.Name).Msg("Banka oluşturuldu")
	return bank, nil
}

// Update banka adını günceller
func (s *BankService) Update(ctx context.Context, req *models.UpdateBankRequest) (*models.Bank, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, errors.NewValidationError("name", req.Name, "boş olmayan banka adı")
	}
	return s.bankRepo.Update(ctx, req)
}

// Delete bağlı transaction yoksa bankayı siler.
// Kontrol ve silme ayrı sorgulardır; arada dar bir yarış penceresi vardır.
func (s *BankService) Delete(ctx context.Context, id int64) error {
	count, err := s.bankRepo.CountTransactions(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewDatabaseError(fmt.Sprintf("Banka silinemez: %d transaction bağlı", count), nil)
	}

	if err := s.bankRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("bank_id", id).Msg("Banka silindi")
	return nil
}
