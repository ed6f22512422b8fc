package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

var clientRowColumns = []string{"id", "name", "email", "mobile", "address", "notes", "transaction_count",
	"create_date", "create_time", "modify_date", "modify_time"}

// Arama terimi tek bound parametre olarak dört kolonda aranır
func TestClientRepository_Paginate_SearchesAllColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)

	where := `WHERE (cl.name ILIKE $1 ESCAPE '\' OR cl.email ILIKE $1 ESCAPE '\' ` +
		`OR cl.mobile ILIKE $1 ESCAPE '\' OR cl.notes ILIKE $1 ESCAPE '\')`

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(DISTINCT cl.id) FROM clients cl " + where)).
		WithArgs("%9876%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(where+" ORDER BY CASE WHEN LOWER(cl.name) = LOWER($2) THEN 0 ELSE 1 END, LOWER(cl.name) ASC, cl.id ASC LIMIT $3 OFFSET $4")).
		WithArgs("%9876%", "9876", 10, 0).
		WillReturnRows(sqlmock.NewRows(clientRowColumns).
			AddRow(4, "Ravi Kumar", nil, "9876543210", nil, "kart müşterisi", 2, "2024-02-10", "11:00:00", nil, nil))

	page, err := repo.Paginate(context.Background(), listing.Params{Page: 1, Limit: 10, Search: " 9876 "})

	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Ravi Kumar", page.Data[0].Name)
	assert.Equal(t, "9876543210", *page.Data[0].Mobile)
	assert.Nil(t, page.Data[0].Email)
	assert.Equal(t, int64(2), page.Data[0].TransactionCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Gönderilmeyen alanlar NULL bağlanır ve COALESCE eski değeri korur
func TestClientRepository_Update_Partial(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("name = COALESCE($1, name), email = COALESCE($2, email), mobile = COALESCE($3, mobile)")).
		WithArgs(nil, nil, "9876543210", nil, nil, int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM clients cl WHERE cl.id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(clientRowColumns).
			AddRow(4, "Ravi Kumar", "ravi@example.com", "9876543210", nil, nil, 0, "2024-02-10", "11:00:00", "2024-03-01", "09:30:00"))

	client, err := repo.Update(context.Background(), &models.UpdateClientRequest{ID: 4, Mobile: strPtr("9876543210")})

	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", client.Name)
	assert.Equal(t, "ravi@example.com", *client.Email)
	assert.Equal(t, "2024-03-01", *client.ModifyDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectExec("UPDATE clients SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), &models.UpdateClientRequest{ID: 99, Name: strPtr("Yok")})

	var nfErr *errors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_CountTransactions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transactions WHERE client_id = $1")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountTransactions(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCardRepository_CountTransactions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCardRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM transactions WHERE card_id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountTransactions(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
