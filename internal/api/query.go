package api

import (
	"net/url"
	"strconv"
	"strings"
)

// ListQuery is the collection-read parameter set shared by every list
// screen: free-text search, resource-specific filters, pagination.
type ListQuery struct {
	Page       int
	PageSize   int
	SearchTerm string
	Filters    map[string]string
}

// Values encodes the query as request parameters. Empty values are
// omitted so the server applies its own defaults.
func (q ListQuery) Values() url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if term := strings.TrimSpace(q.SearchTerm); term != "" {
		values.Set("search_term", term)
	}
	for key, value := range q.Filters {
		if strings.TrimSpace(value) == "" {
			continue
		}
		values.Set(key, value)
	}
	return values
}
