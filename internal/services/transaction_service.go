package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/ledger"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

// TransactionService ana defter transaction işlemleri için servis
type TransactionService struct {
	transactionRepo interfaces.TransactionRepositoryInterface
}

// NewTransactionService yeni servis oluşturur
func NewTransactionService(transactionRepo interfaces.TransactionRepositoryInterface) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

func (s *TransactionService) List(ctx context.Context) ([]*models.Transaction, error) {
	return s.transactionRepo.List(ctx)
}

func (s *TransactionService) Paginate(ctx context.Context, p listing.Params, f models.TransactionFilter) (*listing.Page[*models.Transaction], error) {
	return s.transactionRepo.Paginate(ctx, p, f)
}

// Create yeni transaction oluşturur. Ücretler sadece çekmede saklanır.
func (s *TransactionService) Create(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	charges := ledger.NormalizeCharges(req.TransactionType, req.WithdrawChargesPercentage, req.WithdrawChargesAmount)

	tx, err := s.transactionRepo.Create(ctx, req, charges)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("transaction_id", tx.ID).
		Str("type", tx.TransactionType).
		Int64("client_id", tx.ClientID).
		Str("amount", tx.TransactionAmount.String()).
		Msg("Transaction oluşturuldu")

	return tx, nil
}

// Update kısmi güncelleme; gönderilmeyen alanlar eski değerini korur
func (s *TransactionService) Update(ctx context.Context, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	return s.transactionRepo.Update(ctx, req)
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if err := s.transactionRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Int64("transaction_id", id).Msg("Transaction silindi")
	return nil
}
