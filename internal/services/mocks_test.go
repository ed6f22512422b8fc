package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/ledger"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

// MockBankRepository, BankRepositoryInterface için sahte (mock) bir yapıdır.
type MockBankRepository struct {
	mock.Mock
}

var _ interfaces.BankRepositoryInterface = (*MockBankRepository)(nil)

func (m *MockBankRepository) Create(ctx context.Context, req *models.CreateBankRequest) (*models.Bank, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bank), args.Error(1)
}
func (m *MockBankRepository) GetByID(ctx context.Context, id int64) (*models.Bank, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bank), args.Error(1)
}
func (m *MockBankRepository) Update(ctx context.Context, req *models.UpdateBankRequest) (*models.Bank, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bank), args.Error(1)
}
func (m *MockBankRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockBankRepository) List(ctx context.Context) ([]*models.Bank, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Bank), args.Error(1)
}
func (m *MockBankRepository) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Bank], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Page[*models.Bank]), args.Error(1)
}
func (m *MockBankRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.AutocompleteResult), args.Error(1)
}
func (m *MockBankRepository) CountTransactions(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransactionRepository, TransactionRepositoryInterface için sahte (mock) bir yapıdır.
type MockTransactionRepository struct {
	mock.Mock
}

var _ interfaces.TransactionRepositoryInterface = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) Create(ctx context.Context, req *models.CreateTransactionRequest, charges ledger.Charges) (*models.Transaction, error) {
	args := m.Called(ctx, req, charges)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}
func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}
func (m *MockTransactionRepository) Update(ctx context.Context, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}
func (m *MockTransactionRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockTransactionRepository) List(ctx context.Context) ([]*models.Transaction, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Transaction), args.Error(1)
}
func (m *MockTransactionRepository) Paginate(ctx context.Context, p listing.Params, f models.TransactionFilter) (*listing.Page[*models.Transaction], error) {
	args := m.Called(ctx, p, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Page[*models.Transaction]), args.Error(1)
}
func (m *MockTransactionRepository) ListForReport(ctx context.Context, startDate, endDate string, clientID *int64) ([]*models.Transaction, error) {
	args := m.Called(ctx, startDate, endDate, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}

// MockProfileRepository, ProfileRepositoryInterface için sahte (mock) bir yapıdır.
type MockProfileRepository struct {
	mock.Mock
}

var _ interfaces.ProfileRepositoryInterface = (*MockProfileRepository)(nil)

func (m *MockProfileRepository) Create(ctx context.Context, req *models.CreateProfileRequest) (*models.ProfilerProfile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfilerProfile), args.Error(1)
}
func (m *MockProfileRepository) GetByID(ctx context.Context, id int64) (*models.ProfilerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfilerProfile), args.Error(1)
}
func (m *MockProfileRepository) Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfilerProfile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfilerProfile), args.Error(1)
}
func (m *MockProfileRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockProfileRepository) List(ctx context.Context) ([]*models.ProfilerProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.ProfilerProfile), args.Error(1)
}
func (m *MockProfileRepository) Paginate(ctx context.Context, p listing.Params, f models.ProfileFilter) (*listing.Page[*models.ProfilerProfile], error) {
	args := m.Called(ctx, p, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Page[*models.ProfilerProfile]), args.Error(1)
}
func (m *MockProfileRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.AutocompleteResult), args.Error(1)
}
func (m *MockProfileRepository) MarkDone(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockProfileRepository) CountTransactions(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockProfileRepository) AddTransaction(ctx context.Context, req *models.CreateProfilerTransactionRequest, posting ledger.Posting, charges ledger.Charges) (*models.ProfilerTransaction, error) {
	args := m.Called(ctx, req, posting, charges)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfilerTransaction), args.Error(1)
}
func (m *MockProfileRepository) PaginateTransactions(ctx context.Context, p listing.Params, f models.ProfilerTransactionFilter) (*listing.Page[*models.ProfilerTransaction], error) {
	args := m.Called(ctx, p, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Page[*models.ProfilerTransaction]), args.Error(1)
}

// MockFinkedaRepository, FinkedaRepositoryInterface için sahte (mock) bir yapıdır.
type MockFinkedaRepository struct {
	mock.Mock
}

var _ interfaces.FinkedaRepositoryInterface = (*MockFinkedaRepository)(nil)

func (m *MockFinkedaRepository) GetLatest(ctx context.Context) (*models.FinkedaSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FinkedaSettings), args.Error(1)
}
func (m *MockFinkedaRepository) Upsert(ctx context.Context, req *models.UpdateFinkedaSettingsRequest) (*models.FinkedaSettings, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FinkedaSettings), args.Error(1)
}
func (m *MockFinkedaRepository) History(ctx context.Context) ([]*models.FinkedaSettingsHistory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.FinkedaSettingsHistory), args.Error(1)
}

// MockCardRepository, CardRepositoryInterface için sahte (mock) bir yapıdır.
type MockCardRepository struct {
	mock.Mock
}

var _ interfaces.CardRepositoryInterface = (*MockCardRepository)(nil)

func (m *MockCardRepository) Create(ctx context.Context, req *models.CreateCardRequest) (*models.Card, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}
func (m *MockCardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}
func (m *MockCardRepository) Update(ctx context.Context, req *models.UpdateCardRequest) (*models.Card, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}
func (m *MockCardRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCardRepository) List(ctx context.Context) ([]*models.Card, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Card), args.Error(1)
}
func (m *MockCardRepository) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Card], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Page[*models.Card]), args.Error(1)
}
func (m *MockCardRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.AutocompleteResult), args.Error(1)
}
func (m *MockCardRepository) CountTransactions(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockClientRepository, ClientRepositoryInterface için sahte (mock) bir yapıdır.
type MockClientRepository struct {
	mock.Mock
}

var _ interfaces.ClientRepositoryInterface = (*MockClientRepository)(nil)

func (m *MockClientRepository) Create(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}
func (m *MockClientRepository) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}
func (m *MockClientRepository) Update(ctx context.Context, req *models.UpdateClientRequest) (*models.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}
func (m *MockClientRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Client), args.Error(1)
}
func (m *MockClientRepository) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Client], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Page[*models.Client]), args.Error(1)
}
func (m *MockClientRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.AutocompleteResult), args.Error(1)
}
func (m *MockClientRepository) CountTransactions(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockProfilerBankRepository, ProfilerBankRepositoryInterface için sahte (mock) bir yapıdır.
type MockProfilerBankRepository struct {
	mock.Mock
}

var _ interfaces.ProfilerBankRepositoryInterface = (*MockProfilerBankRepository)(nil)

func (m *MockProfilerBankRepository) Create(ctx context.Context, req *models.CreateProfilerBankRequest) (*models.ProfilerBank, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfilerBank), args.Error(1)
}
func (m *MockProfilerBankRepository) GetByID(ctx context.Context, id int64) (*models.ProfilerBank, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfilerBank), args.Error(1)
}
func (m *MockProfilerBankRepository) Update(ctx context.Context, req *models.UpdateProfilerBankRequest) (*models.ProfilerBank, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfilerBank), args.Error(1)
}
func (m *MockProfilerBankRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockProfilerBankRepository) List(ctx context.Context) ([]*models.ProfilerBank, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.ProfilerBank), args.Error(1)
}
func (m *MockProfilerBankRepository) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerBank], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Page[*models.ProfilerBank]), args.Error(1)
}
func (m *MockProfilerBankRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.AutocompleteResult), args.Error(1)
}
func (m *MockProfilerBankRepository) CountProfiles(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockProfilerClientRepository, ProfilerClientRepositoryInterface için sahte (mock) bir yapıdır.
type MockProfilerClientRepository struct {
	mock.Mock
}

var _ interfaces.ProfilerClientRepositoryInterface = (*MockProfilerClientRepository)(nil)

func (m *MockProfilerClientRepository) Create(ctx context.Context, req *models.CreateProfilerClientRequest) (*models.ProfilerClient, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfilerClient), args.Error(1)
}
func (m *MockProfilerClientRepository) GetByID(ctx context.Context, id int64) (*models.ProfilerClient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfilerClient), args.Error(1)
}
func (m *MockProfilerClientRepository) Update(ctx context.Context, req *models.UpdateProfilerClientRequest) (*models.ProfilerClient, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProfilerClient), args.Error(1)
}
func (m *MockProfilerClientRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockProfilerClientRepository) List(ctx context.Context) ([]*models.ProfilerClient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.ProfilerClient), args.Error(1)
}
func (m *MockProfilerClientRepository) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerClient], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Page[*models.ProfilerClient]), args.Error(1)
}
func (m *MockProfilerClientRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.AutocompleteResult), args.Error(1)
}
func (m *MockProfilerClientRepository) CountProfiles(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
