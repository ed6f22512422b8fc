package listing

import (
	"fmt"
	"strings"
)

// Query çalıştırılmaya hazır veri ve count sorguları
type Query struct {
	SQL       string
	Args      []interface{}
	CountSQL  string
	CountArgs []interface{}
}

// likeEscaper LIKE joker karakterlerini kaçırır
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern ILIKE için %term% deseni
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// Build normalize edilmiş parametrelerden sorguları üretir
func Build(spec *Spec, p Params) Query {
	p = p.Normalize(spec)

	a := &args{}
	where := whereClause(spec, p, a)

	countArgs := make([]interface{}, len(a.values))
	copy(countArgs, a.values)

	var countSQL strings.Builder
	fmt.Fprintf(&countSQL, "SELECT COUNT(DISTINCT %s) FROM %s", spec.IDColumn, spec.From)
	if where != "" {
		countSQL.WriteString(" WHERE " + where)
	}

	var sql strings.Builder
	fmt.Fprintf(&sql, "SELECT %s FROM %s", spec.Select, spec.From)
	if where != "" {
		sql.WriteString(" WHERE " + where)
	}
	sql.WriteString(" ORDER BY " + orderClause(spec, p, a))
	fmt.Fprintf(&sql, " LIMIT %s OFFSET %s", a.add(p.Limit), a.add(p.Offset()))

	return Query{
		SQL:       sql.String(),
		Args:      a.values,
		CountSQL:  countSQL.String(),
		CountArgs: countArgs,
	}
}

// whereClause arama ve filtre koşullarını AND ile birleştirir
func whereClause(spec *Spec, p Params, a *args) string {
	var conditions []string

	if p.Search != "" && len(spec.SearchColumns) > 0 {
		placeholder := a.add(containsPattern(p.Search))
		ors := make([]string, len(spec.SearchColumns))
		for i, column := range spec.SearchColumns {
			ors[i] = fmt.Sprintf(`%s ILIKE %s ESCAPE '\'`, column, placeholder)
		}
		conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
	}

	for _, filter := range p.Filters {
		if condition := filter.predicate(a); condition != "" {
			conditions = append(conditions, "("+condition+")")
		}
	}

	return strings.Join(conditions, " AND ")
}

// orderClause arama varken tam eşleşmeyi öne alır, sonra seçilen sıralama, en son id
func orderClause(spec *Spec, p Params, a *args) string {
	var parts []string

	if p.Search != "" && spec.NameColumn != "" {
		parts = append(parts, fmt.Sprintf("CASE WHEN LOWER(%s) = LOWER(%s) THEN 0 ELSE 1 END", spec.NameColumn, a.add(p.Search)))
	}

	direction := "ASC"
	if p.SortOrder == Desc {
		direction = "DESC"
	}
	if expr, ok := spec.SortColumns[p.SortBy]; ok {
		parts = append(parts, expr+" "+direction)
	}

	parts = append(parts, spec.IDColumn+" ASC")
	return strings.Join(parts, ", ")
}
