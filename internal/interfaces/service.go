// internal/interfaces/service.go
package interfaces

import (
	"context"

	"github.com/onerilhan/bookkeeping-api/internal/calculator"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

// BankServiceInterface banka business logic için interface
type BankServiceInterface interface {
	List(ctx context.Context) ([]*models.Bank, error)
	Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Bank], error)
	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)
	Create(ctx context.Context, req *models.CreateBankRequest) (*models.Bank, error)
	Update(ctx context.Context, req *models.UpdateBankRequest) (*models.Bank, error)

	// Delete bağlı transaction varsa reddeder
	Delete(ctx context.Context, id int64) error
}

// CardServiceInterface kart business logic için interface
type CardServiceInterface interface {
	List(ctx context.Context) ([]*models.Card, error)
	Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Card], error)
	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)
	Create(ctx context.Context, req *models.CreateCardRequest) (*models.Card, error)
	Update(ctx context.Context, req *models.UpdateCardRequest) (*models.Card, error)
	Delete(ctx context.Context, id int64) error
}

// ClientServiceInterface müşteri business logic için interface
type ClientServiceInterface interface {
	List(ctx context.Context) ([]*models.Client, error)
	Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Client], error)
	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)
	Create(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error)
	Update(ctx context.Context, req *models.UpdateClientRequest) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionServiceInterface ana defter business logic için interface
type TransactionServiceInterface interface {
	List(ctx context.Context) ([]*models.Transaction, error)
	Paginate(ctx context.Context, p listing.Params, f models.TransactionFilter) (*listing.Page[*models.Transaction], error)
	Create(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error)
	Update(ctx context.Context, req *models.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

// ProfilerBankServiceInterface profiler banka business logic için interface
type ProfilerBankServiceInterface interface {
	List(ctx context.Context) ([]*models.ProfilerBank, error)
	Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerBank], error)
	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)
	Create(ctx context.Context, req *models.CreateProfilerBankRequest) (*models.ProfilerBank, error)
	Update(ctx context.Context, req *models.UpdateProfilerBankRequest) (*models.ProfilerBank, error)
	Delete(ctx context.Context, id int64) error
}

// ProfilerClientServiceInterface profiler müşteri business logic için interface
type ProfilerClientServiceInterface interface {
	List(ctx context.Context) ([]*models.ProfilerClient, error)
	Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerClient], error)
	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)
	Create(ctx context.Context, req *models.CreateProfilerClientRequest) (*models.ProfilerClient, error)
	Update(ctx context.Context, req *models.UpdateProfilerClientRequest) (*models.ProfilerClient, error)
	Delete(ctx context.Context, id int64) error
}

// ProfileServiceInterface profiler ledger business logic için interface
type ProfileServiceInterface interface {
	List(ctx context.Context) ([]*models.ProfilerProfile, error)
	Paginate(ctx context.Context, p listing.Params, f models.ProfileFilter) (*listing.Page[*models.ProfilerProfile], error)

	// Dashboard active ve kalan bakiyesi pozitif profiller
	Dashboard(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerProfile], error)

	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)
	Create(ctx context.Context, req *models.CreateProfileRequest) (*models.ProfilerProfile, error)
	Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfilerProfile, error)
	Delete(ctx context.Context, id int64) error

	// MarkDone active -> done; done profile için hata döner
	MarkDone(ctx context.Context, id int64) (*models.ProfilerProfile, error)

	// AddTransaction yatırma/çekme uygular
	AddTransaction(ctx context.Context, req *models.CreateProfilerTransactionRequest) (*models.ProfilerTransactionResult, error)

	PaginateTransactions(ctx context.Context, p listing.Params, f models.ProfilerTransactionFilter) (*listing.Page[*models.ProfilerTransaction], error)
}

// FinkedaServiceInterface finkeda ayarları için interface
type FinkedaServiceInterface interface {
	// GetLatest ayar yoksa nil, nil döner
	GetLatest(ctx context.Context) (*models.FinkedaSettings, error)
	History(ctx context.Context) ([]*models.FinkedaSettingsHistory, error)
	Update(ctx context.Context, req *models.UpdateFinkedaSettingsRequest) (*models.FinkedaSettings, error)
}

// CalculatorServiceInterface ücret hesaplayıcıları için interface
type CalculatorServiceInterface interface {
	Simple(in calculator.SimpleInput) calculator.SimpleQuote

	// Finkeda kart oranını güncel ayarlardan okur
	Finkeda(ctx context.Context, in calculator.FinkedaInput) (*calculator.FinkedaQuote, error)
}

// ReportServiceInterface PDF rapor üretimi için interface
type ReportServiceInterface interface {
	Generate(ctx context.Context, req *models.GenerateReportRequest) (*models.ReportResponse, error)
}
