package listing

// Pagination sayfa metadatası
type Pagination struct {
	CurrentPage     int   `json:"current_page"`
	PerPage         int   `json:"per_page"`
	TotalCount      int64 `json:"total_count"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

// SortApplied uygulanan sıralama
type SortApplied struct {
	SortBy    string    `json:"sort_by"`
	SortOrder SortOrder `json:"sort_order"`
}

// Page bir listeleme sonucu
type Page[T any] struct {
	Data           []T                    `json:"data"`
	Pagination     Pagination             `json:"pagination"`
	SortApplied    SortApplied            `json:"sort_applied"`
	SearchApplied  *string                `json:"search_applied,omitempty"`
	FiltersApplied map[string]interface{} `json:"filters_applied,omitempty"`
}

// NewPagination toplam kayıttan sayfa metadatasını hesaplar
func NewPagination(page, limit int, totalCount int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((totalCount + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		CurrentPage:     page,
		PerPage:         limit,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}

// newPage boş data yerine [] dönmesi için slice'ı başlatır
func newPage[T any](p Params, rows []T, total int64) *Page[T] {
	if rows == nil {
		rows = []T{}
	}
	page := &Page[T]{
		Data:        rows,
		Pagination:  NewPagination(p.Page, p.Limit, total),
		SortApplied: SortApplied{SortBy: p.SortBy, SortOrder: p.SortOrder},
	}
	if p.Search != "" {
		search := p.Search
		page.SearchApplied = &search
	}
	if len(p.Filters) > 0 {
		page.FiltersApplied = make(map[string]interface{}, len(p.Filters))
		for _, filter := range p.Filters {
			page.FiltersApplied[filter.Key()] = filter.Applied()
		}
	}
	return page
}
