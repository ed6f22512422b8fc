// internal/interfaces/repository.go
package interfaces

import (
	"context"

	"github.com/onerilhan/bookkeeping-api/internal/ledger"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

// BankRepositoryInterface banka database işlemleri için interface
type BankRepositoryInterface interface {
	// Create yeni banka oluşturur
	Create(ctx context.Context, req *models.CreateBankRequest) (*models.Bank, error)

	// GetByID ID ile banka getirir
	GetByID(ctx context.Context, id int64) (*models.Bank, error)

	// Update banka adını günceller
	Update(ctx context.Context, req *models.UpdateBankRequest) (*models.Bank, error)

	// Delete bankayı siler; referans kontrolü service'tedir
	Delete(ctx context.Context, id int64) error

	// List tüm bankalar (transaction sayısıyla)
	List(ctx context.Context) ([]*models.Bank, error)

	// Paginate listing engine üzerinden sayfalı liste
	Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Bank], error)

	// Autocomplete typeahead önerileri
	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)

	// CountTransactions bankaya bağlı transaction sayısı
	CountTransactions(ctx context.Context, id int64) (int64, error)
}

// CardRepositoryInterface kart database işlemleri için interface
type CardRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateCardRequest) (*models.Card, error)
	GetByID(ctx context.Context, id int64) (*models.Card, error)
	Update(ctx context.Context, req *models.UpdateCardRequest) (*models.Card, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Card, error)
	Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Card], error)
	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)
	CountTransactions(ctx context.Context, id int64) (int64, error)
}

// ClientRepositoryInterface müşteri database işlemleri için interface
type ClientRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error)
	GetByID(ctx context.Context, id int64) (*models.Client, error)

	// Update kısmi güncelleme; nil alanlar korunur
	Update(ctx context.Context, req *models.UpdateClientRequest) (*models.Client, error)

	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Client, error)
	Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Client], error)
	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)
	CountTransactions(ctx context.Context, id int64) (int64, error)
}

// TransactionRepositoryInterface ana defter transaction işlemleri için interface
type TransactionRepositoryInterface interface {
	// Create ücretleri normalize edilmiş transaction ekler
	Create(ctx context.Context, req *models.CreateTransactionRequest, charges ledger.Charges) (*models.Transaction, error)

	GetByID(ctx context.Context, id int64) (*models.Transaction, error)

	// Update kısmi güncelleme; nil alanlar korunur
	Update(ctx context.Context, req *models.UpdateTransactionRequest) (*models.Transaction, error)

	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Transaction, error)
	Paginate(ctx context.Context, p listing.Params, f models.TransactionFilter) (*listing.Page[*models.Transaction], error)

	// ListForReport tarih aralığındaki transaction'lar, müşteri ve tarihe göre sıralı
	ListForReport(ctx context.Context, startDate, endDate string, clientID *int64) ([]*models.Transaction, error)
}

// ProfilerBankRepositoryInterface profiler banka işlemleri için interface
type ProfilerBankRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateProfilerBankRequest) (*models.ProfilerBank, error)
	GetByID(ctx context.Context, id int64) (*models.ProfilerBank, error)
	Update(ctx context.Context, req *models.UpdateProfilerBankRequest) (*models.ProfilerBank, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.ProfilerBank, error)
	Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerBank], error)
	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)

	// CountProfiles bankaya bağlı profile sayısı
	CountProfiles(ctx context.Context, id int64) (int64, error)
}

// ProfilerClientRepositoryInterface profiler müşteri işlemleri için interface
type ProfilerClientRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateProfilerClientRequest) (*models.ProfilerClient, error)
	GetByID(ctx context.Context, id int64) (*models.ProfilerClient, error)
	Update(ctx context.Context, req *models.UpdateProfilerClientRequest) (*models.ProfilerClient, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.ProfilerClient, error)
	Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.ProfilerClient], error)
	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)
	CountProfiles(ctx context.Context, id int64) (int64, error)
}

// ProfileRepositoryInterface profiler profile ve hareket işlemleri için interface
type ProfileRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateProfileRequest) (*models.ProfilerProfile, error)
	GetByID(ctx context.Context, id int64) (*models.ProfilerProfile, error)

	// Update kısmi güncelleme; client, bakiye ve status değişmez
	Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfilerProfile, error)

	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.ProfilerProfile, error)
	Paginate(ctx context.Context, p listing.Params, f models.ProfileFilter) (*listing.Page[*models.ProfilerProfile], error)
	Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error)

	// MarkDone sadece active profile'ı done yapar; false dönerse hiçbir satır değişmemiştir
	MarkDone(ctx context.Context, id int64) (bool, error)

	// CountTransactions profile'a bağlı hareket sayısı
	CountTransactions(ctx context.Context, id int64) (int64, error)

	// AddTransaction hareketi ekler ve posting'in toplamını aynı DB transaction'ında artırır
	AddTransaction(ctx context.Context, req *models.CreateProfilerTransactionRequest, posting ledger.Posting, charges ledger.Charges) (*models.ProfilerTransaction, error)

	// PaginateTransactions profiler hareketlerini listeler
	PaginateTransactions(ctx context.Context, p listing.Params, f models.ProfilerTransactionFilter) (*listing.Page[*models.ProfilerTransaction], error)
}

// FinkedaRepositoryInterface finkeda ayarları için interface
type FinkedaRepositoryInterface interface {
	// GetLatest güncel ayar satırı; yoksa nil, nil
	GetLatest(ctx context.Context) (*models.FinkedaSettings, error)

	// Upsert yoksa oluşturur, varsa günceller ve history'ye ekler
	Upsert(ctx context.Context, req *models.UpdateFinkedaSettingsRequest) (*models.FinkedaSettings, error)

	// History en yeni önce
	History(ctx context.Context) ([]*models.FinkedaSettingsHistory, error)
}
