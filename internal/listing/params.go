package listing

import (
	"strings"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// Sayfalama sınırları
const (
	DefaultPage  = 1
	DefaultLimit = 50
	MaxLimit     = 100
)

// SortOrder sıralama yönü
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Params bir listeleme isteğinin doğrulanmış girdileri
type Params struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder SortOrder
	Filters   []Filter
}

// Validate API sınırında çağrılır; aralık dışı değer reddedilir, kırpılmaz
func (p *Params) Validate(spec *Spec) error {
	if p.Page < 1 {
		return errors.NewValidationError("page", p.Page, "1 veya daha büyük tam sayı")
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return errors.NewValidationError("limit", p.Limit, "1 ile 100 arasında tam sayı")
	}
	if p.SortBy != "" {
		if _, ok := spec.SortColumns[p.SortBy]; !ok {
			return errors.NewValidationError("sort_by", p.SortBy, "şunlardan biri: "+strings.Join(spec.SortKeys(), ", "))
		}
	}
	if p.SortOrder != "" && p.SortOrder != Asc && p.SortOrder != Desc {
		return errors.NewValidationError("sort_order", string(p.SortOrder), "asc veya desc")
	}
	return nil
}

// Normalize varsayılanları doldurur ve sınırları kırpar.
// Service katmanı doğrulanmamış girdiye karşı da bunu çağırır.
func (p Params) Normalize(spec *Spec) Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	p.Search = strings.TrimSpace(p.Search)

	if _, ok := spec.SortColumns[p.SortBy]; !ok {
		p.SortBy = spec.DefaultSort
	}
	if p.SortOrder != Asc && p.SortOrder != Desc {
		p.SortOrder = spec.DefaultOrder
		if p.SortOrder == "" {
			p.SortOrder = Asc
		}
	}
	return p
}

// Offset sayfanın ilk satır indeksi
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}
