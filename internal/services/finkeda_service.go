package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

// FinkedaService finkeda ücret ayarları
type FinkedaService struct {
	finkedaRepo interfaces.FinkedaRepositoryInterface
}

func NewFinkedaService(finkedaRepo interfaces.FinkedaRepositoryInterface) *FinkedaService {
	return &FinkedaService{finkedaRepo: finkedaRepo}
}

// GetLatest ayar yoksa nil, nil
func (s *FinkedaService) GetLatest(ctx context.Context) (*models.FinkedaSettings, error) {
	return s.finkedaRepo.GetLatest(ctx)
}

func (s *FinkedaService) History(ctx context.Context) ([]*models.FinkedaSettingsHistory, error) {
	return s.finkedaRepo.History(ctx)
}

// Update ayarları upsert eder, eski değerler history'de kalır
func (s *FinkedaService) Update(ctx context.Context, req *models.UpdateFinkedaSettingsRequest) (*models.FinkedaSettings, error) {
	settings, err := s.finkedaRepo.Upsert(ctx, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("settings_id", settings.ID).
		Str("rupay", settings.RupayCardChargeAmount.String()).
		Str("master", settings.MasterCardChargeAmount.String()).
		Msg("Finkeda ayarları güncellendi")
	return settings, nil
}
