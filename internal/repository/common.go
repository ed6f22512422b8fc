package repository

import (
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// PostgreSQL hata kodları
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

// touchColumns güncellemede modify alanlarını doldurur
const touchColumns = "modify_date = CURRENT_DATE, modify_time = LOCALTIME(0)"

// timestampColumns alias için ayrık tarih/saat kolonlarını string olarak seçer
func timestampColumns(alias string) string {
	return fmt.Sprintf(
		"TO_CHAR(%[1]s.create_date, 'YYYY-MM-DD'), TO_CHAR(%[1]s.create_time, 'HH24:MI:SS'), "+
			"TO_CHAR(%[1]s.modify_date, 'YYYY-MM-DD'), TO_CHAR(%[1]s.modify_time, 'HH24:MI:SS')",
		alias,
	)
}

// classifyWriteError insert/update hatalarını API hatasına çevirir.
// Unique ve FK ihlalleri kullanıcı girdisi hatasıdır, gerisi database hatası.
func classifyWriteError(err error, message string) error {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return errors.NewValidationError(constraintField(pqErr, "_key"), nil, "benzersiz değer")
		case pqForeignKeyViolation:
			return errors.NewValidationError(constraintField(pqErr, "_fkey"), nil, "mevcut bir kaydın id'si")
		case pqCheckViolation:
			return errors.NewValidationError(constraintField(pqErr, "_check"), nil, "izin verilen değer")
		}
	}
	return errors.NewDatabaseError(message, err)
}

// constraintField "transactions_client_id_fkey" -> "client_id"
func constraintField(pqErr *pq.Error, suffix string) string {
	field := strings.TrimSuffix(pqErr.Constraint, suffix)
	field = strings.TrimPrefix(field, pqErr.Table+"_")
	if field == "" {
		return "body"
	}
	return field
}

// expectOneRow 0 etkilenen satırı NotFound'a çevirir
func expectOneRow(result sql.Result, resource string, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError(resource+" sonucu okunamadı", err)
	}
	if affected == 0 {
		return errors.NewNotFoundError(resource, id)
	}
	return nil
}

// notFoundOr sql.ErrNoRows'u NotFound'a, diğerlerini database hatasına çevirir
func notFoundOr(err error, resource string, id int64) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NewNotFoundError(resource, id)
	}
	return errors.NewDatabaseError(resource+" getirilemedi", err)
}

// countRows tek bir COUNT sorgusu çalıştırır
func countRows(row *sql.Row, resource string) (int64, error) {
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, errors.NewDatabaseError(resource+" sayılamadı", err)
	}
	return count, nil
}

// decimalBound nil pointer'ı filtre için nil'e çevirir
func decimalBound(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}

// stringBound boş string'i filtre için nil'e çevirir
func stringBound(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// withRange en az bir uç varsa range filtresi ekler
func withRange(filters []listing.Filter, key, column string, min, max interface{}) []listing.Filter {
	if min == nil && max == nil {
		return filters
	}
	return append(filters, listing.Range(key, column, min, max))
}

// keepAPIError API hatalarını olduğu gibi bırakır, diğerlerini database hatasına sarar
func keepAPIError(err error, message string) error {
	var apiErr errors.APIError
	if stderrors.As(err, &apiErr) {
		return err
	}
	return errors.NewDatabaseError(message, err)
}
