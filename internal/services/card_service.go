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

// CardService kart işlemleri
type CardService struct {
	cardRepo interfaces.CardRepositoryInterface
}

func NewCardService(cardRepo interfaces.CardRepositoryInterface) *CardService {
	return &CardService{cardRepo: cardRepo}
}

func (s *CardService) List(ctx context.Context) ([]*models.Card, error) {
	return s.cardRepo.List(ctx)
}

func (s *CardService) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Card], error) {
	return s.cardRepo.Paginate(ctx, p)
}

func (s *CardService) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return s.cardRepo.Autocomplete(ctx, p)
}

func (s *CardService) Create(ctx context.Context, req *models.CreateCardRequest) (*models.Card, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, errors.NewValidationError("name", req.Name, "boş olmayan kart adı")
	}
	return s.cardRepo.Create(ctx, req)
}

func (s *CardService) Update(ctx context.Context, req *models.UpdateCardRequest) (*models.Card, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, errors.NewValidationError("name", req.Name, "boş olmayan kart adı")
	}
	return s.cardRepo.Update(ctx, req)
}

// Delete karta bağlı transaction varsa reddeder
func (s *CardService) Delete(ctx context.Context, id int64) error {
	count, err := s.cardRepo.CountTransactions(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewDatabaseError(fmt.Sprintf("Kart silinemez: %d transaction bağlı", count), nil)
	}
	if err := s.cardRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("card_id", id).Msg("Kart silindi")
	return nil
}
