package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onerilhan/bookkeeping-api/internal/ledger"
	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

var profileRowColumns = []string{
	"id", "client_id", "client_name", "bank_id", "bank_name", "credit_card_number",
	"pre_planned_deposit_amount", "current_balance", "total_withdrawn_amount",
	"carry_forward_enabled", "status", "marked_done_at", "notes", "transaction_count",
	"create_date", "create_time", "modify_date", "modify_time",
}

var profilerTransactionRowColumns = []string{
	"id", "profile_id", "client_name", "bank_name", "credit_card_number",
	"transaction_type", "amount", "withdraw_charges_percentage", "withdraw_charges_amount", "notes",
	"create_date", "create_time", "modify_date", "modify_time",
}

func TestProfileRepository_GetByID_ComputesRemaining(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM profiler_profiles p JOIN profiler_clients pc ON pc.id = p.client_id JOIN profiler_banks pb ON pb.id = p.bank_id WHERE p.id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(profileRowColumns).AddRow(
			1, 2, "Ravi", 3, "SBI", "XXXX-4321",
			"5000.00", "3500.00", "1100.00",
			false, "active", nil, nil, 5,
			"2024-02-01", "11:00:00", nil, nil,
		))

	profile, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.True(t, profile.RemainingBalance.Equal(decimal.NewFromInt(2400)))
	assert.Equal(t, "Ravi", profile.ClientName)
	assert.Equal(t, int64(5), profile.TransactionCount)
}

func TestProfileRepository_MarkDone_GuardsActiveStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND status = 'active'")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.MarkDone(context.Background(), 4)

	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_AddTransaction_Deposit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	req := &models.CreateProfilerTransactionRequest{
		ProfileID:       1,
		TransactionType: models.TransactionTypeDeposit,
		Amount:          decimal.NewFromInt(1000),
	}
	charges := ledger.NormalizeCharges(req.TransactionType, nil, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE profiler_profiles SET current_balance = current_balance + $1, modify_date = CURRENT_DATE, modify_time = LOCALTIME(0) WHERE id = $2 AND status = 'active'")).
		WithArgs("1000", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO profiler_transactions").
		WithArgs(int64(1), "deposit", "1000", "0", "0", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE pt.id = $1")).
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows(profilerTransactionRowColumns).AddRow(
			10, 1, "Ravi", "SBI", "XXXX-4321", "deposit", "1000.00", "0", "0", nil,
			"2024-02-02", "12:00:00", nil, nil,
		))

	posting, err := ledger.NewPosting(req.TransactionType, req.Amount)
	require.NoError(t, err)

	created, err := repo.AddTransaction(context.Background(), req, posting, charges)

	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.True(t, created.Amount.Equal(decimal.NewFromInt(1000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_AddTransaction_WithdrawBumpsWithdrawnTotal(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	pct := decimal.NewFromFloat(1.5)
	req := &models.CreateProfilerTransactionRequest{
		ProfileID:                 1,
		TransactionType:           models.TransactionTypeWithdraw,
		Amount:                    decimal.NewFromInt(800),
		WithdrawChargesPercentage: &pct,
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET total_withdrawn_amount = total_withdrawn_amount + $1")).
		WithArgs("800", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO profiler_transactions").
		WithArgs(int64(1), "withdraw", "800", "1.5", "0", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE pt.id = $1")).
		WillReturnRows(sqlmock.NewRows(profilerTransactionRowColumns).AddRow(
			11, 1, "Ravi", "SBI", "XXXX-4321", "withdraw", "800.00", "1.50", "0", nil,
			"2024-02-02", "12:00:00", nil, nil,
		))

	posting, err := ledger.NewPosting(req.TransactionType, req.Amount)
	require.NoError(t, err)

	_, err = repo.AddTransaction(context.Background(), req, posting, ledger.NormalizeCharges(req.TransactionType, &pct, nil))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_AddTransaction_DoneProfileRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	req := &models.CreateProfilerTransactionRequest{
		ProfileID:       1,
		TransactionType: models.TransactionTypeDeposit,
		Amount:          decimal.NewFromInt(10),
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE profiler_profiles SET current_balance").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	posting := ledger.Posting{Column: ledger.ColumnCurrentBalance, Amount: req.Amount}
	_, err := repo.AddTransaction(context.Background(), req, posting, ledger.Charges{})

	var validationErr *errors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "profile_id", validationErr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Posting dışı bir kolon SQL'e hiç ulaşmaz
func TestProfileRepository_AddTransaction_RejectsUnknownColumn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	req := &models.CreateProfilerTransactionRequest{ProfileID: 1, TransactionType: "refund", Amount: decimal.NewFromInt(10)}
	posting := ledger.Posting{Column: "plan_amount", Amount: req.Amount}

	_, err := repo.AddTransaction(context.Background(), req, posting, ledger.Charges{})

	var validationErr *errors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_PaginateDashboard(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (p.status = 'active' AND (p.current_balance - p.total_withdrawn_amount) > 0)")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY LOWER(pc.name) ASC, p.id ASC LIMIT $1 OFFSET $2")).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(profileRowColumns))

	page, err := repo.Paginate(context.Background(), listing.Params{Page: 1, Limit: 10}, models.ProfileFilter{Dashboard: true})

	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.Equal(t, true, page.FiltersApplied["dashboard"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileFilters(t *testing.T) {
	carry := true
	clientID := int64(4)
	minBalance := decimal.NewFromInt(100)

	filters := profileFilters(models.ProfileFilter{
		Status:              models.ProfileStatusActive,
		CarryForwardEnabled: &carry,
		ClientID:            &clientID,
		MinBalance:          &minBalance,
	})

	keys := make([]string, len(filters))
	for i, f := range filters {
		keys[i] = f.Key()
	}
	assert.Equal(t, []string{"status", "carry_forward_enabled", "client_id", "balance"}, keys)
	assert.Equal(t, map[string]interface{}{"min": "100"}, filters[3].Applied())
}
