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

// ProfilerClientService profiler müşteri işlemleri için servis
type ProfilerClientService struct {
	clientRepo interfaces.ProfilerClientRepositoryInterface
}

// NewProfilerClientService yeni servis oluşturur
func NewProfilerClientService(clientRepo interfaces.ProfilerClientRepositoryInterface) *ProfilerClientService {
	return &ProfilerClientService{clientRepo: clientRepo}
}

func (s *ProfilerClientService) List(ctx context.Context) ([]*models.ProfilerClient, error) {
	return s.clientRepo.List(ctx)
}

func (s *ProfilerClientService) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerClient], error) {
	return s.clientRepo.Paginate(ctx, p)
}

func (s *ProfilerClientService) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return s.clientRepo.Autocomplete(ctx, p)
}

// Create yeni profiler müşterisi oluşturur
func (s *ProfilerClientService) Create(ctx context.Context, req *models.CreateProfilerClientRequest) (*models.ProfilerClient, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, errors.NewValidationError("name", req.Name, "boş olmayan müşteri adı")
	}

	client, err := s.clientRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("profiler_client_id", client.ID).Msg("Profiler müşteri oluşturuldu")
	return client, nil
}

func (s *ProfilerClientService) Update(ctx context.Context, req *models.UpdateProfilerClientRequest) (*models.ProfilerClient, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.NewValidationError("name", *req.Name, "boş olmayan müşteri adı")
		}
		req.Name = &name
	}
	return s.clientRepo.Update(ctx, req)
}

// Delete müşterinin profile'ı varsa reddeder
func (s *ProfilerClientService) Delete(ctx context.Context, id int64) error {
	count, err := s.clientRepo.CountProfiles(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewDatabaseError(fmt.Sprintf("Profiler müşteri silinemez: %d profile bağlı", count), nil)
	}
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("profiler_client_id", id).Msg("Profiler müşteri silindi")
	return nil
}
