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

// ClientService müşteri işlemleri için servis
type ClientService struct {
	clientRepo interfaces.ClientRepositoryInterface
}

// NewClientService yeni servis oluşturur
func NewClientService(clientRepo interfaces.ClientRepositoryInterface) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

func (s *ClientService) List(ctx context.Context) ([]*models.Client, error) {
	return s.clientRepo.List(ctx)
}

func (s *ClientService) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Client], error) {
	return s.clientRepo.Paginate(ctx, p)
}

func (s *ClientService) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return s.clientRepo.Autocomplete(ctx, p)
}

// Create yeni müşteri oluşturur
func (s *ClientService) Create(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, errors.NewValidationError("name", req.Name, "boş olmayan müşteri adı")
	}

	client, err := s.clientRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("client_id", client.ID).Msg("Müşteri oluşturuldu")
	return client, nil
}

// Update kısmi güncelleme
func (s *ClientService) Update(ctx context.Context, req *models.UpdateClientRequest) (*models.Client, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.NewValidationError("name", *req.Name, "boş olmayan müşteri adı")
		}
		req.Name = &name
	}
	return s.clientRepo.Update(ctx, req)
}

// Delete müşterinin transaction'ı varsa reddeder
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	count, err := s.clientRepo.CountTransactions(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewDatabaseError(fmt.Sprintf("Müşteri silinemez: %d transaction bağlı", count), nil)
	}

	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("client_id", id).Msg("Müşteri silindi")
	return nil
}
