package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/onerilhan/bookkeeping-api/internal/db"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// Autocomplete sınırları
const (
	DefaultAutocompleteLimit = 5
	MaxAutocompleteLimit     = 10
)

// AutocompleteSpec typeahead kaynağı. NameExpr hesaplanmış bir ifade olabilir.
type AutocompleteSpec struct {
	Entity   string
	From     string
	IDColumn string
	NameExpr string
}

// AutocompleteParams typeahead isteği
type AutocompleteParams struct {
	Search string
	Limit  int
}

// Validate limit [1,10] dışındaysa reddeder
func (p *AutocompleteParams) Validate() error {
	if p.Limit < 1 || p.Limit > MaxAutocompleteLimit {
		return errors.NewValidationError("limit", p.Limit, "1 ile 10 arasında tam sayı")
	}
	return nil
}

// Suggestion tek öneri
type Suggestion struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AutocompleteResult typeahead yanıtı
type AutocompleteResult struct {
	Data         []Suggestion `json:"data"`
	SearchQuery  string       `json:"search_query"`
	ResultCount  int          `json:"result_count"`
	LimitApplied int          `json:"limit_applied"`
}

// BuildAutocomplete öneri sorgusunu üretir.
// Arama varsa sıra: tam eşleşme, önek, içerir; her grup içinde isim, sonra id.
func BuildAutocomplete(spec *AutocompleteSpec, p AutocompleteParams) (string, []interface{}) {
	search := strings.TrimSpace(p.Search)
	limit := p.Limit
	if limit < 1 {
		limit = DefaultAutocompleteLimit
	}
	if limit > MaxAutocompleteLimit {
		limit = MaxAutocompleteLimit
	}

	a := &args{}
	var sql strings.Builder
	fmt.Fprintf(&sql, "SELECT id, name FROM (SELECT %s AS id, %s AS name FROM %s) AS candidates",
		spec.IDColumn, spec.NameExpr, spec.From)

	if search == "" {
		fmt.Fprintf(&sql, " ORDER BY LOWER(name) ASC, id ASC LIMIT %s", a.add(limit))
		return sql.String(), a.values
	}

	contains := a.add(containsPattern(search))
	exact := a.add(strings.ToLower(search))
	prefix := a.add(strings.ToLower(likeEscaper.Replace(search)) + "%")

	fmt.Fprintf(&sql, ` WHERE name ILIKE %s ESCAPE '\'`, contains)
	fmt.Fprintf(&sql, ` ORDER BY CASE WHEN LOWER(name) = %s THEN 1 WHEN LOWER(name) LIKE %s ESCAPE '\' THEN 2 ELSE 3 END, LOWER(name) ASC, id ASC`,
		exact, prefix)
	fmt.Fprintf(&sql, " LIMIT %s", a.add(limit))

	return sql.String(), a.values
}

// RunAutocomplete öneri sorgusunu çalıştırır. Limit verilmemişse (0) varsayılan
// kullanılır; [1,10] dışı limit sorgu çalışmadan ValidationError döner.
func RunAutocomplete(ctx context.Context, q db.Querier, spec *AutocompleteSpec, p AutocompleteParams) (*AutocompleteResult, error) {
	if p.Limit == 0 {
		p.Limit = DefaultAutocompleteLimit
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.Search = strings.TrimSpace(p.Search)

	query, queryArgs := BuildAutocomplete(spec, p)
	rows, err := q.QueryContext(ctx, query, queryArgs...)
	if err != nil {
		return nil, errors.NewDatabaseError(fmt.Sprintf("%s önerileri alınamadı", spec.Entity), err)
	}
	defer rows.Close()

	suggestions, err := Collect(rows, func(row RowScanner) (Suggestion, error) {
		var s Suggestion
		err := row.Scan(&s.ID, &s.Name)
		return s, err
	})
	if err != nil {
		return nil, errors.NewDatabaseError(fmt.Sprintf("%s önerisi okunamadı", spec.Entity), err)
	}

	return &AutocompleteResult{
		Data:         suggestions,
		SearchQuery:  p.Search,
		ResultCount:  len(suggestions),
		LimitApplied: p.Limit,
	}, nil
}
