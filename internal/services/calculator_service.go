package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/onerilhan/bookkeeping-api/internal/calculator"
	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// CalculatorService ücret hesaplayıcıları. Simple saf, Finkeda ayarları okur.
type CalculatorService struct {
	finkedaRepo interfaces.FinkedaRepositoryInterface
}

func NewCalculatorService(finkedaRepo interfaces.FinkedaRepositoryInterface) *CalculatorService {
	return &CalculatorService{finkedaRepo: finkedaRepo}
}

func (s *CalculatorService) Simple(in calculator.SimpleInput) calculator.SimpleQuote {
	return calculator.Simple(in)
}

// Finkeda ayar satırı yoksa kart oranı 0 alınır ve SettingsMissing işaretlenir
func (s *CalculatorService) Finkeda(ctx context.Context, in calculator.FinkedaInput) (*calculator.FinkedaQuote, error) {
	settings, err := s.finkedaRepo.GetLatest(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		log.Warn().Str("card_type", in.CardType).Msg("Finkeda ayarı yok, kart oranı 0 kabul edildi")
		quote := calculator.Finkeda(in, decimal.Zero)
		quote.SettingsMissing = true
		return &quote, nil
	}

	var cardRate decimal.Decimal
	switch in.CardType {
	case calculator.CardTypeRupay:
		cardRate = settings.RupayCardChargeAmount
	case calculator.CardTypeMaster:
		cardRate = settings.MasterCardChargeAmount
	default:
		return nil, errors.NewValidationError("card_type", in.CardType, "rupay veya master")
	}

	quote := calculator.Finkeda(in, cardRate)
	return &quote, nil
}
