package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/onerilhan/bookkeeping-api/internal/db"
	"github.com/onerilhan/bookkeeping-api/internal/interfaces"
	"github.com/onerilhan/bookkeeping-api/internal/ledger"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

// remainingExpr kalan bakiye; saklanmaz, sorguda ve Go'da hesaplanır
const remainingExpr = "(p.current_balance - p.total_withdrawn_amount)"

var profileColumns = "p.id, p.client_id, pc.name, p.bank_id, pb.bank_name, p.credit_card_number, " +
	"p.pre_planned_deposit_amount, p.current_balance, p.total_withdrawn_amount, " +
	"p.carry_forward_enabled, p.status, p.marked_done_at, p.notes, " +
	"(SELECT COUNT(*) FROM profiler_transactions pt WHERE pt.profile_id = p.id) AS transaction_count, " +
	timestampColumns("p")

const profileFrom = "profiler_profiles p " +
	"JOIN profiler_clients pc ON pc.id = p.client_id " +
	"JOIN profiler_banks pb ON pb.id = p.bank_id"

var profileListing = &listing.Spec{
	Entity:        "profile",
	Select:        profileColumns,
	From:          profileFrom,
	IDColumn:      "p.id",
	NameColumn:    "pc.name",
	SearchColumns: []string{"pc.name", "pb.bank_name", "p.credit_card_number", "p.notes"},
	SortColumns: map[string]string{
		"client_name":                "LOWER(pc.name)",
		"bank_name":                  "LOWER(pb.bank_name)",
		"create_date":                "(p.create_date + p.create_time)",
		"pre_planned_deposit_amount": "p.pre_planned_deposit_amount",
		"current_balance":            "p.current_balance",
		"remaining_balance":          remainingExpr,
		"status":                     "p.status",
	},
	DefaultSort:  "client_name",
	DefaultOrder: listing.Asc,
}

var profileSuggestions = &listing.AutocompleteSpec{
	Entity:   "profile",
	From:     "profiler_profiles p JOIN profiler_clients pc ON pc.id = p.client_id",
	IDColumn: "p.id",
	NameExpr: "pc.name || ' - ' || p.credit_card_number",
}

var profilerTransactionColumns = "pt.id, pt.profile_id, pc.name, pb.bank_name, p.credit_card_number, " +
	"pt.transaction_type, pt.amount, pt.withdraw_charges_percentage, pt.withdraw_charges_amount, pt.notes, " +
	timestampColumns("pt")

const profilerTransactionFrom = "profiler_transactions pt " +
	"JOIN profiler_profiles p ON p.id = pt.profile_id " +
	"JOIN profiler_clients pc ON pc.id = p.client_id " +
	"JOIN profiler_banks pb ON pb.id = p.bank_id"

var profilerTransactionListing = &listing.Spec{
	Entity:        "profiler transaction",
	Select:        profilerTransactionColumns,
	From:          profilerTransactionFrom,
	IDColumn:      "pt.id",
	NameColumn:    "pc.name",
	SearchColumns: []string{"pc.name", "pb.bank_name", "p.credit_card_number", "pt.notes"},
	SortColumns: map[string]string{
		"create_date": "(pt.create_date + pt.create_time)",
		"amount":      "pt.amount",
	},
	DefaultSort:  "create_date",
	DefaultOrder: listing.Desc,
}

// ProfileRepository profiler profile'ları ve hareketleri
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository yeni bir repository oluşturur ve arayüz olarak döndürür.
func NewProfileRepository(db *sql.DB) interfaces.ProfileRepositoryInterface {
	return &ProfileRepository{db: db}
}

// scanProfile satırı okur ve kalan bakiyeyi iki koşan toplamdan hesaplar
func scanProfile(row listing.RowScanner) (*models.ProfilerProfile, error) {
	var p models.ProfilerProfile
	err := row.Scan(
		&p.ID,
		&p.ClientID,
		&p.ClientName,
		&p.BankID,
		&p.BankName,
		&p.CreditCardNumber,
		&p.PrePlannedDepositAmount,
		&p.CurrentBalance,
		&p.TotalWithdrawnAmount,
		&p.CarryForwardEnabled,
		&p.Status,
		&p.MarkedDoneAt,
		&p.Notes,
		&p.TransactionCount,
		&p.CreateDate,
		&p.CreateTime,
		&p.ModifyDate,
		&p.ModifyTime,
	)
	if err != nil {
		return nil, err
	}

	p.RemainingBalance = ledger.Balances{Current: p.CurrentBalance, Withdrawn: p.TotalWithdrawnAmount}.Remaining()
	return &p, nil
}

func scanProfilerTransaction(row listing.RowScanner) (*models.ProfilerTransaction, error) {
	var t models.ProfilerTransaction
	err := row.Scan(
		&t.ID,
		&t.ProfileID,
		&t.ClientName,
		&t.BankName,
		&t.CreditCardNumber,
		&t.TransactionType,
		&t.Amount,
		&t.WithdrawChargesPercentage,
		&t.WithdrawChargesAmount,
		&t.Notes,
		&t.CreateDate,
		&t.CreateTime,
		&t.ModifyDate,
		&t.ModifyTime,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create yeni profile oluşturur; bakiyeler sıfır, status active başlar
func (r *ProfileRepository) Create(ctx context.Context, req *models.CreateProfileRequest) (*models.ProfilerProfile, error) {
	query := `
		INSERT INTO profiler_profiles (
			client_id, bank_id, credit_card_number, pre_planned_deposit_amount,
			carry_forward_enabled, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		req.ClientID,
		req.BankID,
		req.CreditCardNumber,
		req.PrePlannedDepositAmount,
		req.CarryForwardEnabled,
		req.Notes,
	).Scan(&id)
	if err != nil {
		return nil, classifyWriteError(err, "profile oluşturulamadı")
	}

	return r.GetByID(ctx, id)
}

// GetByID ID ile profile getirir
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*models.ProfilerProfile, error) {
	profile, err := scanProfile(r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM `+profileFrom+` WHERE p.id = $1`, id))
	if err != nil {
		return nil, notFoundOr(err, "profile", id)
	}
	return profile, nil
}

// Update kısmi güncelleme. client_id, bakiyeler ve status burada değişmez.
func (r *ProfileRepository) Update(ctx context.Context, req *models.UpdateProfileRequest) (*models.ProfilerProfile, error) {
	query := `
		UPDATE profiler_profiles SET
			bank_id = COALESCE($1, bank_id),
			credit_card_number = COALESCE($2, credit_card_number),
			pre_planned_deposit_amount = COALESCE($3, pre_planned_deposit_amount),
			carry_forward_enabled = COALESCE($4, carry_forward_enabled),
			notes = COALESCE($5, notes),
			` + touchColumns + `
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		req.BankID,
		req.CreditCardNumber,
		req.PrePlannedDepositAmount,
		req.CarryForwardEnabled,
		req.Notes,
		req.ID,
	)
	if err != nil {
		return nil, classifyWriteError(err, "profile güncellenemedi")
	}
	if err := expectOneRow(result, "profile", req.ID); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, req.ID)
}

// Delete profile'ı siler; hareket kontrolü service'te yapılır
func (r *ProfileRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiler_profiles WHERE id = $1`, id)
	if err != nil {
		return errors.NewDatabaseError("profile silinemedi", err)
	}
	return expectOneRow(result, "profile", id)
}

// List tüm profile'lar
func (r *ProfileRepository) List(ctx context.Context) ([]*models.ProfilerProfile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM `+profileFrom+` ORDER BY LOWER(pc.name) ASC, p.id ASC`)
	if err != nil {
		return nil, errors.NewDatabaseError("profile'lar getirilemedi", err)
	}
	defer rows.Close()

	profiles, err := listing.Collect(rows, scanProfile)
	if err != nil {
		return nil, errors.NewDatabaseError("profile satırı okunamadı", err)
	}
	return profiles, nil
}

// Paginate filtreli sayfalı liste (dashboard dahil)
func (r *ProfileRepository) Paginate(ctx context.Context, p listing.Params, f models.ProfileFilter) (*listing.Page[*models.ProfilerProfile], error) {
	p.Filters = append(p.Filters, profileFilters(f)...)
	return listing.Run(ctx, r.db, profileListing, p, scanProfile)
}

// Autocomplete "müşteri - kart" önerileri
func (r *ProfileRepository) Autocomplete(ctx context.Context, p listing.AutocompleteParams) (*listing.AutocompleteResult, error) {
	return listing.RunAutocomplete(ctx, r.db, profileSuggestions, p)
}

// MarkDone WHERE status='active' koruması ile done'a geçirir
func (r *ProfileRepository) MarkDone(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE profiler_profiles
		SET status = 'done', marked_done_at = NOW(), ` + touchColumns + `
		WHERE id = $1 AND status = 'active'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, errors.NewDatabaseError("profile done yapılamadı", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewDatabaseError("profile sonucu okunamadı", err)
	}
	return affected == 1, nil
}

// CountTransactions profile'a bağlı hareket sayısı
func (r *ProfileRepository) CountTransactions(ctx context.Context, id int64) (int64, error) {
	return countRows(r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiler_transactions WHERE profile_id = $1`, id), "profile hareketleri")
}

// AddTransaction posting'in kolonunu artırır ve hareketi ekler; ikisi birlikte commit edilir.
// Güncelleme status='active' şartlıdır, done profile'a hareket yazılamaz.
func (r *ProfileRepository) AddTransaction(ctx context.Context, req *models.CreateProfilerTransactionRequest, posting ledger.Posting, charges ledger.Charges) (*models.ProfilerTransaction, error) {
	switch posting.Column {
	case ledger.ColumnCurrentBalance, ledger.ColumnTotalWithdrawn:
	default:
		return nil, errors.NewValidationError("transaction_type", req.TransactionType, "deposit veya withdraw")
	}

	var id int64
	err := db.WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		bump := fmt.Sprintf(`UPDATE profiler_profiles SET %[1]s = %[1]s + $1, %[2]s WHERE id = $2 AND status = 'active'`, posting.Column, touchColumns)
		result, err := tx.ExecContext(ctx, bump, posting.Amount, req.ProfileID)
		if err != nil {
			return errors.NewDatabaseError("profile bakiyesi güncellenemedi", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return errors.NewDatabaseError("profile sonucu okunamadı", err)
		}
		if affected == 0 {
			return ledger.AcceptsTransactions(models.ProfileStatusDone)
		}

		insert := `
			INSERT INTO profiler_transactions (
				profile_id, transaction_type, amount,
				withdraw_charges_percentage, withdraw_charges_amount, notes
			)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`
		err = tx.QueryRowContext(ctx, insert,
			req.ProfileID,
			req.TransactionType,
			req.Amount,
			charges.Percentage,
			charges.Amount,
			req.Notes,
		).Scan(&id)
		if err != nil {
			return classifyWriteError(err, "profiler transaction oluşturulamadı")
		}
		return nil
	})
	if err != nil {
		return nil, keepAPIError(err, "profiler transaction kaydedilemedi")
	}

	query := `SELECT ` + profilerTransactionColumns + ` FROM ` + profilerTransactionFrom + ` WHERE pt.id = $1`
	created, err := scanProfilerTransaction(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, "profiler transaction", id)
	}
	return created, nil
}

// PaginateTransactions profiler hareketlerini listeler
func (r *ProfileRepository) PaginateTransactions(ctx context.Context, p listing.Params, f models.ProfilerTransactionFilter) (*listing.Page[*models.ProfilerTransaction], error) {
	var filters []listing.Filter
	if f.ProfileID != nil {
		filters = append(filters, listing.Equals("profile_id", "pt.profile_id", *f.ProfileID))
	}
	if f.TransactionType != "" {
		filters = append(filters, listing.Equals("transaction_type", "pt.transaction_type", f.TransactionType))
	}
	filters = withRange(filters, "date", "pt.create_date", stringBound(f.StartDate), stringBound(f.EndDate))

	p.Filters = append(p.Filters, filters...)
	return listing.Run(ctx, r.db, profilerTransactionListing, p, scanProfilerTransaction)
}

// profileFilters profile filtrelerini listing koşullarına çevirir
func profileFilters(f models.ProfileFilter) []listing.Filter {
	var filters []listing.Filter

	if f.Dashboard {
		filters = append(filters, listing.Raw("dashboard", "p.status = 'active' AND "+remainingExpr+" > 0"))
	}
	if f.Status != "" {
		filters = append(filters, listing.Equals("status", "p.status", f.Status))
	}
	if f.CarryForwardEnabled != nil {
		filters = append(filters, listing.Flag("carry_forward_enabled", "p.carry_forward_enabled", *f.CarryForwardEnabled))
	}
	if f.ClientID != nil {
		filters = append(filters, listing.Equals("client_id", "p.client_id", *f.ClientID))
	}
	if f.BankID != nil {
		filters = append(filters, listing.Equals("bank_id", "p.bank_id", *f.BankID))
	}
	filters = withRange(filters, "balance", remainingExpr, decimalBound(f.MinBalance), decimalBound(f.MaxBalance))
	filters = withRange(filters, "deposit_amount", "p.pre_planned_deposit_amount", decimalBound(f.MinDepositAmount), decimalBound(f.MaxDepositAmount))

	return filters
}
