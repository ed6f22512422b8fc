package listing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/onerilhan/bookkeeping-api/internal/db"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// RowScanner *sql.Row ve *sql.Rows ortak arayüzü
type RowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanFunc tek satırı modele çevirir
type ScanFunc[T any] func(row RowScanner) (T, error)

// Run önce count sonra sayfa sorgusunu çalıştırır. Geçersiz parametre
// hiçbir sorgu çalışmadan ValidationError döner. İki sorgu aynı transaction'da değildir; eşzamanlı yazmalarda total_count ile
// sayfa içeriği tutarsız olabilir.
func Run[T any](ctx context.Context, q db.Querier, spec *Spec, p Params, scan ScanFunc[T]) (*Page[T], error) {
	if err := p.Validate(spec); err != nil {
		return nil, err
	}
	p = p.Normalize(spec)
	query := Build(spec, p)

	var total int64
	if err := q.QueryRowContext(ctx, query.CountSQL, query.CountArgs...).Scan(&total); err != nil {
		return nil, errors.NewDatabaseError(fmt.Sprintf("%s sayısı alınamadı", spec.Entity), err)
	}

	rows, err := q.QueryContext(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, errors.NewDatabaseError(fmt.Sprintf("%s listesi alınamadı", spec.Entity), err)
	}
	defer rows.Close()

	items, err := collect(rows, scan)
	if err != nil {
		return nil, errors.NewDatabaseError(fmt.Sprintf("%s satırı okunamadı", spec.Entity), err)
	}

	log.Debug().
		Str("entity", spec.Entity).
		Int("page", p.Page).
		Int("limit", p.Limit).
		Int64("total", total).
		Int("returned", len(items)).
		Msg("Listeleme tamamlandı")

	return newPage(p, items, total), nil
}

// collect satırları tarar
func collect[T any](rows *sql.Rows, scan ScanFunc[T]) ([]T, error) {
	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Collect sayfasız listelerde de aynı tarama döngüsünü kullanır
func Collect[T any](rows *sql.Rows, scan ScanFunc[T]) ([]T, error) {
	items, err := collect(rows, scan)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
