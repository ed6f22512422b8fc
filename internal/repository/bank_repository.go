package repository

import (
	"context"
	"database/sql"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

var bankColumns = "b.id, b.name, (SELECT COUNT(*) FROM transactions t WHERE t.bank_id = b.id) AS transaction_count, " +
	timestampColumns("b")

var bankListing = &listing.Spec{
	Entity:        "banka",
	Select:        bankColumns,
	From:          "banks b",
	IDColumn:      "b.id",
	NameColumn:    "b.name",
	SearchColumns: []string{"b.name"},
	SortColumns: map[string]string{
		"name":              "LOWER(b.name)",
		"create_date":       "b.create_date",
		"transaction_count": "transaction_count",
	},
	DefaultSort:  "name",
	DefaultOrder: listing.Asc,
}

var bankSuggestions = &listing.AutocompleteSpec{
	Entity:   "banka",
	From:     "banks",
	IDColumn: "id",
	NameExpr: "name",
}

// BankRepository, BankRepositoryInterface'in somut halidir.
type BankRepository struct {
	db *sql.DB
}

// NewBankRepository yeni bir repository oluşturur ve arayüz olarak döndürür.
func NewBankRepository(db *sql.DB) interfaces.BankRepositoryInterface {
	return &BankRepository{db: db}
}

func scanBank(row listing.RowScanner) (*models.Bank, error) {
	var b models.Bank
	err := row.Scan(&b.ID, &b.Name, &b.TransactionCount, &b.CreateDate, &b.CreateTime, &b.ModifyDate, &b.ModifyTime)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create yeni banka oluşturur
func (r *BankRepository) Create(ctx context.Context, req *models.CreateBankRequest) (*models.Bank, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `INSERT INTO banks (name) VALUES ($1) RETURNING id`, req.Name).Scan(&id)
	if err != nil {
		return nil, classifyWriteError(err, "banka oluşturulamadı")
	}
	return r.GetByID(ctx, id)
}

// GetByID ID ile banka getirir
func (r *BankRepository) GetByID(ctx context.Context, id int64) (*models.Bank, error) {
	query := `SELECT ` + bankColumns + ` FROM banks b WHERE b.id = $1`

	bank, err := scanBank(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, "banka", id)
	}
	return bank, nil
}

// Update banka adını günceller
func (r *BankRepository) Update(ctx context.Context, req *models.UpdateBankRequest) (*models.Bank, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE banks SET name = $1, `+touchColumns+` WHERE id = $2`,
		req.Name, req.ID)
	if err != nil {
		return nil, classifyWriteError(err, "banka güncellenemedi")
	}
	if err := expectOneRow(result, "banka", req.ID); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, req.ID)
}

// Delete bankayı siler
func (r *BankRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM banks WHERE id = $1`, id)
	if err != nil {
		return errors.NewDatabaseError("banka silinemedi", err)
	}
	return expectOneRow(result, "banka", id)
}

// List tüm bankaları isim sırasıyla getirir
func (r *BankRepository) List(ctx context.Context) ([]*models.Bank, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+bankColumns+` FROM banks b ORDER BY LOWER(b.name) ASC, b.id ASC`)
	if err != nil {
		return nil, errors.NewDatabaseError("bankalar getirilemedi", err)
	}
	defer rows.Close()

	banks, err := listing.Collect(rows, scanBank)
	if err != nil {
		return nil, errors.NewDatabaseError("banka satırı okunamadı", err)
	}
	return banks, nil
}

// Paginate sayfalı banka listesi
func (r *BankRepository) Paginate(ctx context.Context, p listing.Params) (*listing.Page[*models.Bank], error) {
	return listing.Run(ctx, r.db, bankListing, p, scanBank)
}

// Autocomplete banka önerileri
func (r *BankRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return listing.RunAutocomplete(ctx, r.db, bankSuggestions, p)
}

// CountTransactions bankaya bağlı transaction sayısı
func (r *BankRepository) CountTransactions(ctx context.Context, id int64) (int64, error) {
	return countRows(r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions WHERE bank_id = $1`, id), "banka transaction'ları")
}
