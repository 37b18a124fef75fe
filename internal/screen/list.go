package screen

import (
	"context"
	"sync"

	"github.com/translogica/tms-console/internal/api"
	"github.com/translogica/tms-console/internal/view"
)

// List is the search/filter/paginate screen. Pagination totals are mirrored
// from the server envelope, never computed from row counts. Any change to
// the search term or a filter resets the page to 1 before the next read.
type List[T any] struct {
	client *api.Client
	path   string
	idOf   func(T) int64

	mu         sync.Mutex
	seq        uint64
	query      api.ListQuery
	phase      Phase
	rows       []T
	total      int
	totalPages int
	errMsg     string
}

func NewList[T any](client *api.Client, path string, pageSize int, idOf func(T) int64) *List[T] {
	return &List[T]{
		client: client,
		path:   path,
		idOf:   idOf,
		query: api.ListQuery{
			Page:     1,
			PageSize: pageSize,
			Filters:  map[string]string{},
		},
		phase:      PhaseLoading,
		totalPages: 1,
	}
}

// Init seeds the query before the first Load. It never triggers a read;
// later query changes go through Search, SetFilter and GoToPage.
func (l *List[T]) Init(search string, filters map[string]string, page int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query.SearchTerm = search
	for key, value := range filters {
		if value != "" {
			l.query.Filters[key] = value
		}
	}
	if page > 0 {
		l.query.Page = page
	}
}

// Load issues a read for the current query state.
func (l *List[T]) Load(ctx context.Context) {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	query := l.query
	query.Filters = copyFilters(l.query.Filters)
	l.phase = PhaseLoading
	l.mu.Unlock()

	var rows []T
	pagination, err := l.client.List(ctx, l.path, query, &rows)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		// A newer request superseded this one; drop the stale response.
		return
	}
	if err != nil {
		l.phase = PhaseError
		l.errMsg = view.ErrorMessage(err)
		return
	}

	l.phase = PhaseLoaded
	l.errMsg = ""
	l.rows = rows
	if pagination != nil {
		l.total = pagination.Total
		l.totalPages = pagination.TotalPages
	} else {
		// Bare-array endpoints carry no metadata; the page is everything.
		l.total = len(rows)
		l.totalPages = 1
	}
	if l.totalPages < 1 {
		l.totalPages = 1
	}
}

// Search replaces the free-text term, resets to page 1 and reloads.
func (l *List[T]) Search(ctx context.Context, term string) {
	l.mu.Lock()
	l.query.SearchTerm = term
	l.query.Page = 1
	l.mu.Unlock()
	l.Load(ctx)
}

// SetFilter replaces one filter value, resets to page 1 and reloads. An
// empty value removes the filter.
func (l *List[T]) SetFilter(ctx context.Context, key, value string) {
	l.mu.Lock()
	if value == "" {
		delete(l.query.Filters, key)
	} else {
		l.query.Filters[key] = value
	}
	l.query.Page = 1
	l.mu.Unlock()
	l.Load(ctx)
}

// ClearFilters drops the search term and every filter, then reloads.
func (l *List[T]) ClearFilters(ctx context.Context) {
	l.mu.Lock()
	l.query.SearchTerm = ""
	l.query.Filters = map[string]string{}
	l.query.Page = 1
	l.mu.Unlock()
	l.Load(ctx)
}

// GoToPage clamps into [1, totalPages]; a page already displayed is not
// refetched.
func (l *List[T]) GoToPage(ctx context.Context, page int) {
	l.mu.Lock()
	if page < 1 {
		page = 1
	}
	if page > l.totalPages {
		page = l.totalPages
	}
	if page == l.query.Page {
		l.mu.Unlock()
		return
	}
	l.query.Page = page
	l.mu.Unlock()
	l.Load(ctx)
}

func (l *List[T]) NextPage(ctx context.Context) { l.GoToPage(ctx, l.Page()+1) }
func (l *List[T]) PrevPage(ctx context.Context) { l.GoToPage(ctx, l.Page()-1) }

// DeleteRow gates a row deletion behind the confirmer. On success the row
// leaves local state without a re-fetch.
func (l *List[T]) DeleteRow(ctx context.Context, id int64, confirm Confirmer, prompt string) bool {
	if !confirm.Confirm(prompt) {
		return false
	}
	if err := l.client.Delete(ctx, l.path, id); err != nil {
		l.mu.Lock()
		l.errMsg = view.ErrorMessage(err)
		l.mu.Unlock()
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.rows[:0]
	for _, row := range l.rows {
		if l.idOf(row) != id {
			kept = append(kept, row)
		}
	}
	if len(kept) < len(l.rows) && l.total > 0 {
		l.total--
	}
	l.rows = kept
	l.errMsg = ""
	return true
}

func (l *List[T]) Rows() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rows
}

func (l *List[T]) Phase() Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase
}

func (l *List[T]) Message() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMsg
}

func (l *List[T]) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query.Page
}

func (l *List[T]) PageSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query.PageSize
}

func (l *List[T]) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

func (l *List[T]) TotalPages() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.totalPages
}

// CanPrev and CanNext drive the disabled state of pagination controls.
func (l *List[T]) CanPrev() bool { return l.Page() > 1 }
func (l *List[T]) CanNext() bool { return l.Page() < l.TotalPages() }

// Summary is the "Affichage de X à Y sur N résultats" footer.
func (l *List[T]) Summary() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return view.RangeSummary(l.query.Page, l.query.PageSize, l.total)
}

func copyFilters(filters map[string]string) map[string]string {
	copied := make(map[string]string, len(filters))
	for key, value := range filters {
		copied[key] = value
	}
	return copied
}
