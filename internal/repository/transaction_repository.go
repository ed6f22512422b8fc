package repository

import (
	"context"
	"database/sql"

	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/ledger"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

var transactionColumns = "t.id, t.transaction_type, t.client_id, cl.name, t.bank_id, b.name, t.card_id, c.name, " +
	"t.transaction_amount, t.withdraw_charges_percentage, t.withdraw_charges_amount, t.remark, " +
	timestampColumns("t")

const transactionFrom = "transactions t " +
	"JOIN clients cl ON cl.id = t.client_id " +
	"LEFT JOIN banks b ON b.id = t.bank_id " +
	"LEFT JOIN cards c ON c.id = t.card_id"

var transactionListing = &listing.Spec{
	Entity:        "transaction",
	Select:        transactionColumns,
	From:          transactionFrom,
	IDColumn:      "t.id",
	NameColumn:    "cl.name",
	SearchColumns: []string{"cl.name", "b.name", "c.name", "t.remark", "t.transaction_type"},
	SortColumns: map[string]string{
		"create_date":        "(t.create_date + t.create_time)",
		"transaction_amount": "t.transaction_amount",
		"transaction_type":   "t.transaction_type",
		"client_name":        "LOWER(cl.name)",
	},
	DefaultSort:  "create_date",
	DefaultOrder: listing.Desc,
}

// TransactionRepository, TransactionRepositoryInterface'in somut halidir.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository, yeni bir repository oluşturur ve arayüz olarak döndürür.
func NewTransactionRepository(db *sql.DB) interfaces.TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

func scanTransaction(row listing.RowScanner) (*models.Transaction, error) {
	var tx models.Transaction
	err := row.Scan(
		&tx.ID,
		&tx.TransactionType,
		&tx.ClientID,
		&tx.ClientName,
		&tx.BankID,
		&tx.BankName,
		&tx.CardID,
		&tx.CardName,
		&tx.TransactionAmount,
		&tx.WithdrawChargesPercentage,
		&tx.WithdrawChargesAmount,
		&tx.Remark,
		&tx.CreateDate,
		&tx.CreateTime,
		&tx.ModifyDate,
		&tx.ModifyTime,
	)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// Create yeni transaction oluşturur
func (r *TransactionRepository) Create(ctx context.Context, req *models.CreateTransactionRequest, charges ledger.Charges) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (
			transaction_type, client_id, bank_id, card_id, transaction_amount,
			withdraw_charges_percentage, withdraw_charges_amount, remark
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		req.TransactionType,
		req.ClientID,
		req.BankID,
		req.CardID,
		req.TransactionAmount,
		charges.Percentage,
		charges.Amount,
		req.Remark,
	).Scan(&id)
	if err != nil {
		return nil, classifyWriteError(err, "transaction oluşturulamadı")
	}

	return r.GetByID(ctx, id)
}

// GetByID ID ile transaction getirir
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM ` + transactionFrom + ` WHERE t.id = $1`

	tx, err := scanTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, "transaction", id)
	}
	return tx, nil
}

// Update kısmi güncelleme. Tip deposit olursa ücretler sıfırlanır.
func (r *TransactionRepository) Update(ctx context.Context, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	query := `
		UPDATE transactions SET
			transaction_type = COALESCE($1, transaction_type),
			client_id = COALESCE($2, client_id),
			bank_id = COALESCE($3, bank_id),
			card_id = COALESCE($4, card_id),
			transaction_amount = COALESCE($5, transaction_amount),
			withdraw_charges_percentage = CASE WHEN COALESCE($1, transaction_type) = 'deposit' THEN 0
				ELSE COALESCE($6, withdraw_charges_percentage) END,
			withdraw_charges_amount = CASE WHEN COALESCE($1, transaction_type) = 'deposit' THEN 0
				ELSE COALESCE($7, withdraw_charges_amount) END,
			remark = COALESCE($8, remark),
			` + touchColumns + `
		WHERE id = $9
	`

	result, err := r.db.ExecContext(ctx, query,
		req.TransactionType,
		req.ClientID,
		req.BankID,
		req.CardID,
		req.TransactionAmount,
		req.WithdrawChargesPercentage,
		req.WithdrawChargesAmount,
		req.Remark,
		req.ID,
	)
	if err != nil {
		return nil, classifyWriteError(err, "transaction güncellenemedi")
	}
	if err := expectOneRow(result, "transaction", req.ID); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, req.ID)
}

// Delete transaction'ı siler
func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return errors.NewDatabaseError("transaction silinemedi", err)
	}
	return expectOneRow(result, "transaction", id)
}

// List tüm transaction'lar, en yeni önce
func (r *TransactionRepository) List(ctx context.Context) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM ` + transactionFrom +
		` ORDER BY t.create_date DESC, t.create_time DESC, t.id DESC`

	return r.query(ctx, query, "transaction'lar getirilemedi")
}

// Paginate filtreli sayfalı liste
func (r *TransactionRepository) Paginate(ctx context.Context, p listing.Params, f models.TransactionFilter) (*listing.Page[*models.Transaction], error) {
	p.Filters = append(p.Filters, transactionFilters(f)...)
	return listing.Run(ctx, r.db, transactionListing, p, scanTransaction)
}

// ListForReport rapor için tarih aralığı; müşteri, sonra zaman sırası
func (r *TransactionRepository) ListForReport(ctx context.Context, startDate, endDate string, clientID *int64) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM ` + transactionFrom + `
		WHERE t.create_date >= $1 AND t.create_date <= $2
		  AND ($3::INTEGER IS NULL OR t.client_id = $3)
		ORDER BY LOWER(cl.name) ASC, cl.id ASC, t.create_date ASC, t.create_time ASC, t.id ASC`

	return r.query(ctx, query, "rapor transaction'ları getirilemedi", startDate, endDate, clientID)
}

func (r *TransactionRepository) query(ctx context.Context, query, message string, args ...interface{}) ([]*models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewDatabaseError(message, err)
	}
	defer rows.Close()

	transactions, err := listing.Collect(rows, scanTransaction)
	if err != nil {
		return nil, errors.NewDatabaseError(message, err)
	}
	return transactions, nil
}

// transactionFilters query filtrelerini listing koşullarına çevirir
func transactionFilters(f models.TransactionFilter) []listing.Filter {
	var filters []listing.Filter

	if f.TransactionType != "" {
		filters = append(filters, listing.Equals("transaction_type", "t.transaction_type", f.TransactionType))
	}
	filters = withRange(filters, "amount", "t.transaction_amount", decimalBound(f.MinAmount), decimalBound(f.MaxAmount))
	filters = withRange(filters, "date", "t.create_date", stringBound(f.StartDate), stringBound(f.EndDate))
	if len(f.BankIDs) > 0 {
		filters = append(filters, listing.In("bank_ids", "t.bank_id", f.BankIDs))
	}
	if len(f.ClientIDs) > 0 {
		filters = append(filters, listing.In("client_ids", "t.client_id", f.ClientIDs))
	}
	if len(f.CardIDs) > 0 {
		filters = append(filters, listing.In("card_ids", "t.card_id", f.CardIDs))
	}

	return filters
}
