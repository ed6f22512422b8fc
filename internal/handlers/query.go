package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/onerilhan/bookkeeping-api/internal/listing"
	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
	"github.com/onerilhan/bookkeeping-api/internal/models"
)

const dateLayout = "2006-01-02"

// listParams page/limit/search/sort_by/sort_order okur. Eksik değerler varsayılan,
// sayı olmayan değerler ValidationError. Aralık kontrolü listing engine'dedir.
func listParams(r *http.Request) (listing.Params, error) {
	q := r.URL.Query()
	p := listing.Params{
		Page:      listing.DefaultPage,
		Limit:     listing.DefaultLimit,
		Search:    strings.TrimSpace(q.Get("search")),
		SortBy:    strings.TrimSpace(q.Get("sort_by")),
		SortOrder: listing.SortOrder(strings.ToLower(strings.TrimSpace(q.Get("sort_order")))),
	}

	var err error
	if p.Page, err = intParam(q, "page", listing.DefaultPage, "1 veya daha büyük tam sayı"); err != nil {
		return p, err
	}
	if p.Limit, err = intParam(q, "limit", listing.DefaultLimit, "1 ile 100 arasında tam sayı"); err != nil {
		return p, err
	}
	return p, nil
}

// autocompleteParams search ve limit okur; limit [1,10] dışı reddedilir
func autocompleteParams(r *http.Request) (listing.AutocompleteParams, error) {
	q := r.URL.Query()
	limit, err := intParam(q, "limit", listing.DefaultAutocompleteLimit, "1 ile 10 arasında tam sayı")
	if err != nil {
		return listing.AutocompleteParams{}, err
	}

	p := listing.AutocompleteParams{Search: strings.TrimSpace(q.Get("search")), Limit: limit}
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func intParam(q url.Values, key string, def int, expected string) (int, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.NewValidationError(key, raw, expected)
	}
	return n, nil
}

func int64Param(q url.Values, key string) (*int64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return nil, errors.NewValidationError(key, raw, "pozitif tam sayı")
	}
	return &n, nil
}

// idListParam "1,2,3" biçimindeki listeyi okur
func idListParam(q url.Values, key string) ([]int64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil || n <= 0 {
			return nil, errors.NewValidationError(key, raw, "virgülle ayrılmış pozitif id listesi")
		}
		ids = append(ids, n)
	}
	return ids, nil
}

func decimalParam(q url.Values, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.NewValidationError(key, raw, "sayı")
	}
	return &d, nil
}

func boolParam(q url.Values, key string) (*bool, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.NewValidationError(key, raw, "true veya false")
	}
	return &b, nil
}

func dateParam(q url.Values, key string) (string, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return "", nil
	}
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return "", errors.NewValidationError(key, raw, "YYYY-MM-DD")
	}
	return raw, nil
}

func transactionTypeParam(q url.Values, key string) (string, error) {
	raw := strings.ToLower(strings.TrimSpace(q.Get(key)))
	switch raw {
	case "", models.TransactionTypeDeposit, models.TransactionTypeWithdraw:
		return raw, nil
	default:
		return "", errors.NewValidationError(key, raw, "deposit veya withdraw")
	}
}

// transactionFilter ana defter filtrelerini okur
func transactionFilter(r *http.Request) (models.TransactionFilter, error) {
	q := r.URL.Query()
	var f models.TransactionFilter
	var err error

	if f.TransactionType, err = transactionTypeParam(q, "transaction_type"); err != nil {
		return f, err
	}
	if f.MinAmount, err = decimalParam(q, "min_amount"); err != nil {
		return f, err
	}
	if f.MaxAmount, err = decimalParam(q, "max_amount"); err != nil {
		return f, err
	}
	if f.StartDate, err = dateParam(q, "start_date"); err != nil {
		return f, err
	}
	if f.EndDate, err = dateParam(q, "end_date"); err != nil {
		return f, err
	}
	if f.BankIDs, err = idListParam(q, "bank_ids"); err != nil {
		return f, err
	}
	if f.ClientIDs, err = idListParam(q, "client_ids"); err != nil {
		return f, err
	}
	if f.CardIDs, err = idListParam(q, "card_ids"); err != nil {
		return f, err
	}
	return f, nil
}

// profileFilter profile listeleme filtrelerini okur
func profileFilter(r *http.Request) (models.ProfileFilter, error) {
	q := r.URL.Query()
	var f models.ProfileFilter
	var err error

	switch status := strings.ToLower(strings.TrimSpace(q.Get("status"))); status {
	case "", models.ProfileStatusActive, models.ProfileStatusDone:
		f.Status = status
	default:
		return f, errors.NewValidationError("status", status, "active veya done")
	}

	if f.CarryForwardEnabled, err = boolParam(q, "carry_forward_enabled"); err != nil {
		return f, err
	}
	if f.ClientID, err = int64Param(q, "client_id"); err != nil {
		return f, err
	}
	if f.BankID, err = int64Param(q, "bank_id"); err != nil {
		return f, err
	}
	if f.MinBalance, err = decimalParam(q, "min_balance"); err != nil {
		return f, err
	}
	if f.MaxBalance, err = decimalParam(q, "max_balance"); err != nil {
		return f, err
	}
	if f.MinDepositAmount, err = decimalParam(q, "min_deposit_amount"); err != nil {
		return f, err
	}
	if f.MaxDepositAmount, err = decimalParam(q, "max_deposit_amount"); err != nil {
		return f, err
	}
	return f, nil
}

func profilerTransactionFilter(r *http.Request) (models.ProfilerTransactionFilter, error) {
	q := r.URL.Query()
	var f models.ProfilerTransactionFilter
	var err error

	if f.ProfileID, err = int64Param(q, "profile_id"); err != nil {
		return f, err
	}
	if f.TransactionType, err = transactionTypeParam(q, "transaction_type"); err != nil {
		return f, err
	}
	if f.StartDate, err = dateParam(q, "start_date"); err != nil {
		return f, err
	}
	if f.EndDate, err = dateParam(q, "end_date"); err != nil {
		return f, err
	}
	return f, nil
}
