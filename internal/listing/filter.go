package listing

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Filter WHERE'e eklenen tek bir koşul. Değerler her zaman bind parametresi olur.
type Filter interface {
	// Key filtrenin istekteki adı (filters_applied anahtarı)
	Key() string
	// Applied yanıtta gösterilecek değer
	Applied() interface{}
	predicate(a *args) string
}

// args sıralı $n parametre toplayıcı
type args struct {
	values []interface{}
}

func (a *args) add(v interface{}) string {
	a.values = append(a.values, v)
	return fmt.Sprintf("$%d", len(a.values))
}

// Equals kolon = değer
func Equals(key, column string, value interface{}) Filter {
	return equalsFilter{key: key, column: column, value: value}
}

type equalsFilter struct {
	key    string
	column string
	value  interface{}
}

func (f equalsFilter) Key() string          { return f.key }
func (f equalsFilter) Applied() interface{} { return f.value }
func (f equalsFilter) predicate(a *args) string {
	return fmt.Sprintf("%s = %s", f.column, a.add(f.value))
}

// Range kolon >= min AND kolon <= max; nil uç uygulanmaz
func Range(key, column string, min, max interface{}) Filter {
	return rangeFilter{key: key, column: column, min: min, max: max}
}

type rangeFilter struct {
	key    string
	column string
	min    interface{}
	max    interface{}
}

func (f rangeFilter) Key() string { return f.key }

func (f rangeFilter) Applied() interface{} {
	applied := map[string]interface{}{}
	if f.min != nil {
		applied["min"] = f.min
	}
	if f.max != nil {
		applied["max"] = f.max
	}
	return applied
}

func (f rangeFilter) predicate(a *args) string {
	var parts []string
	if f.min != nil {
		parts = append(parts, fmt.Sprintf("%s >= %s", f.column, a.add(f.min)))
	}
	if f.max != nil {
		parts = append(parts, fmt.Sprintf("%s <= %s", f.column, a.add(f.max)))
	}
	return strings.Join(parts, " AND ")
}

// In kolon = ANY($n); boş küme filtre uygulamaz
func In(key, column string, ids []int64) Filter {
	return inFilter{key: key, column: column, ids: ids}
}

type inFilter struct {
	key    string
	column string
	ids    []int64
}

func (f inFilter) Key() string          { return f.key }
func (f inFilter) Applied() interface{} { return f.ids }
func (f inFilter) predicate(a *args) string {
	if len(f.ids) == 0 {
		return ""
	}
	return fmt.Sprintf("%s = ANY(%s)", f.column, a.add(pq.Array(f.ids)))
}

// Flag boolean kolon eşitliği
func Flag(key, column string, value bool) Filter {
	return flagFilter{key: key, column: column, value: value}
}

type flagFilter struct {
	key    string
	column string
	value  bool
}

func (f flagFilter) Key() string          { return f.key }
func (f flagFilter) Applied() interface{} { return f.value }
func (f flagFilter) predicate(a *args) string {
	return fmt.Sprintf("%s = %s", f.column, a.add(f.value))
}

// Raw kullanıcı girdisi içermeyen sabit koşul (ör. dashboard)
func Raw(key, condition string) Filter {
	return rawFilter{key: key, condition: condition}
}

type rawFilter struct {
	key       string
	condition string
}

func (f rawFilter) Key() string              { return f.key }
func (f rawFilter) Applied() interface{}     { return true }
func (f rawFilter) predicate(_ *args) string { return f.condition }
