package stub

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// record is one mock entity, kept schemaless the way the original mock
// arrays were.
type record = map[string]any

// collection is one resource's in-memory dataset.
type collection struct {
	nextID     int64
	items      []record
	searchKeys []string
	filterKeys []string
}

// Store holds every resource collection behind one lock. It stands in for
// the real backend during development; nothing survives a restart.
type Store struct {
	mu          sync.Mutex
	collections map[string]*collection
}

// ListResult mirrors the pagination envelope of the REST contract.
type ListResult struct {
	Items      []record
	Total      int
	TotalPages int
}

func (s *Store) resources() []string {
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List applies search, filters and pagination the way the target backend
// does: substring search over the declared keys, equality filters, then
// page slicing.
func (s *Store) List(resource, search string, filters map[string]string, page, pageSize int) (ListResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[resource]
	if !ok {
		return ListResult{}, false
	}

	matched := make([]record, 0, len(col.items))
	for _, item := range col.items {
		if !matchesSearch(item, col.searchKeys, search) {
			continue
		}
		if !matchesFilters(item, filters) {
			continue
		}
		matched = append(matched, item)
	}

	total := len(matched)
	if pageSize < 1 {
		pageSize = 20
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	pageItems := make([]record, end-start)
	for i, item := range matched[start:end] {
		pageItems[i] = cloneRecord(item)
	}
	return ListResult{Items: pageItems, Total: total, TotalPages: totalPages}, true
}

func (s *Store) Get(resource string, id int64) (record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[resource]
	if !ok {
		return nil, false
	}
	for _, item := range col.items {
		if recordID(item) == id {
			return cloneRecord(item), true
		}
	}
	return nil, false
}

// Create assigns the next id server-side; a client-sent id is discarded.
func (s *Store) Create(resource string, item record) (record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[resource]
	if !ok {
		return nil, false
	}
	created := cloneRecord(item)
	created["id"] = col.nextID
	col.nextID++
	col.items = append(col.items, created)
	return cloneRecord(created), true
}

// Update is a full-object replace; the id stays what the path said.
func (s *Store) Update(resource string, id int64, item record) (record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[resource]
	if !ok {
		return nil, false
	}
	for i, existing := range col.items {
		if recordID(existing) != id {
			continue
		}
		updated := cloneRecord(item)
		updated["id"] = id
		col.items[i] = updated
		return cloneRecord(updated), true
	}
	return nil, false
}

func (s *Store) Delete(resource string, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	col, ok := s.collections[resource]
	if !ok {
		return false
	}
	for i, item := range col.items {
		if recordID(item) == id {
			col.items = append(col.items[:i], col.items[i+1:]...)
			return true
		}
	}
	return false
}

func recordID(item record) int64 {
	switch value := item["id"].(type) {
	case int64:
		return value
	case int:
		return int64(value)
	case float64:
		return int64(value)
	default:
		return 0
	}
}

func matchesSearch(item record, keys []string, search string) bool {
	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return true
	}
	for _, key := range keys {
		if text, ok := item[key].(string); ok {
			if strings.Contains(strings.ToLower(text), search) {
				return true
			}
		}
	}
	return false
}

func matchesFilters(item record, filters map[string]string) bool {
	for key, want := range filters {
		if want == "" {
			continue
		}
		got, ok := item[key]
		if !ok {
			return false
		}
		if fmt.Sprintf("%v", got) != want {
			return false
		}
	}
	return true
}

func cloneRecord(item record) record {
	copied := make(record, len(item))
	for key, value := range item {
		copied[key] = value
	}
	return copied
}
