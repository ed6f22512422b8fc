package listing

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

type bankRow struct {
	ID   int64
	Name string
}

func scanBankRow(row RowScanner) (bankRow, error) {
	var b bankRow
	err := row.Scan(&b.ID, &b.Name)
	return b, err
}

func TestRun_CountThenPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(DISTINCT b.id\) FROM banks b WHERE`).
		WithArgs("%hdfc%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT b.id, b.name FROM banks b WHERE`).
		WithArgs("%hdfc%", "hdfc", 2, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "HDFC Bank").
			AddRow(2, "HDFC Corporate Bank"))

	page, err := Run(context.Background(), db, bankSpec(), Params{Page: 1, Limit: 2, Search: "hdfc"}, scanBankRow)

	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, "HDFC Bank", page.Data[0].Name)
	assert.Equal(t, int64(3), page.Pagination.TotalCount)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.True(t, page.Pagination.HasNextPage)
	assert.False(t, page.Pagination.HasPreviousPage)
	assert.Equal(t, "name", page.SortApplied.SortBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_CountFailureIsDatabaseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnError(assert.AnError)

	_, err = Run(context.Background(), db, bankSpec(), Params{Page: 1, Limit: 10}, scanBankRow)

	var dbErr *errors.DatabaseError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, "bank sayısı alınamadı", dbErr.PublicMessage())
}

func TestRun_EmptyResultHasEmptySlice(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT b.id").WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	page, err := Run(context.Background(), db, bankSpec(), Params{Page: 1, Limit: 10}, scanBankRow)

	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Equal(t, 0, page.Pagination.TotalPages)
}

// Geçersiz parametrede veritabanına hiç gidilmez
func TestRun_InvalidParamsNeverQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_, err = Run(context.Background(), db, bankSpec(), Params{Page: 1, Limit: 10, SortBy: "password"}, scanBankRow)

	var valErr *errors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "sort_by", valErr.Field)
	assert.NoError(t, mock.ExpectationsWereMet())
}
