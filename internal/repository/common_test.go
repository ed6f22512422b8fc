package repository

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

func TestClassifyWriteError_UniqueViolation(t *testing.T) {
	err := classifyWriteError(&pq.Error{Code: pqUniqueViolation, Table: "banks", Constraint: "banks_name_key"}, "banka oluşturulamadı")

	var validationErr *errors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "name", validationErr.Field)
}

func TestClassifyWriteError_ForeignKeyViolation(t *testing.T) {
	err := classifyWriteError(&pq.Error{Code: pqForeignKeyViolation, Table: "transactions", Constraint: "transactions_client_id_fkey"}, "x")

	var validationErr *errors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "client_id", validationErr.Field)
}

func TestClassifyWriteError_Other(t *testing.T) {
	err := classifyWriteError(assert.AnError, "banka oluşturulamadı")

	var dbErr *errors.DatabaseError
	require.ErrorAs(t, err, &dbErr)
	assert.Equal(t, "banka oluşturulamadı", dbErr.PublicMessage())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestTimestampColumns(t *testing.T) {
	assert.Equal(t,
		"TO_CHAR(b.create_date, 'YYYY-MM-DD'), TO_CHAR(b.create_time, 'HH24:MI:SS'), TO_CHAR(b.modify_date, 'YYYY-MM-DD'), TO_CHAR(b.modify_time, 'HH24:MI:SS')",
		timestampColumns("b"))
}
