package services

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
	"github.com/onerilhan/bookkeeping-api/internal/report"
)

const reportDateLayout = "2006-01-02"

// ReportService PDF rapor üretimi
type ReportService struct {
	transactionRepo interfaces.TransactionRepositoryInterface
	now             func() time.Time
}

// NewReportService yeni servis oluşturur
func NewReportService(transactionRepo interfaces.TransactionRepositoryInterface) *ReportService {
	return &ReportService{transactionRepo: transactionRepo, now: time.Now}
}

// Generate tarih aralığındaki hareketleri müşteri bazında PDF'e döker
func (s *ReportService) Generate(ctx context.Context, req *models.GenerateReportRequest) (*models.ReportResponse, error) {
	start, err := time.Parse(reportDateLayout, req.StartDate)
	if err != nil {
		return nil, errors.NewValidationError("startDate", req.StartDate, "YYYY-MM-DD")
	}
	end, err := time.Parse(reportDateLayout, req.EndDate)
	if err != nil {
		return nil, errors.NewValidationError("endDate", req.EndDate, "YYYY-MM-DD")
	}
	if start.After(end) {
		return nil, errors.NewValidationError("endDate", req.EndDate, "startDate'ten önce olmayan tarih")
	}

	txs, err := s.transactionRepo.ListForReport(ctx, req.StartDate, req.EndDate, req.ClientID)
	if err != nil {
		return nil, err
	}

	grouped := report.Group(req.StartDate, req.EndDate, txs)
	content, err := report.Render(grouped, s.now())
	if err != nil {
		return nil, errors.NewDatabaseError("Rapor oluşturulamadı", err)
	}

	log.Info().
		Str("start", req.StartDate).
		Str("end", req.EndDate).
		Int("transactions", grouped.TransactionCount()).
		Int("clients", len(grouped.Sections)).
		Msg("Rapor oluşturuldu")

	return &models.ReportResponse{
		PDFContent:       base64.StdEncoding.EncodeToString(content),
		FileName:         report.FileName(req.StartDate, req.EndDate),
		TransactionCount: grouped.TransactionCount(),
		ClientCount:      len(grouped.Sections),
	}, nil
}
