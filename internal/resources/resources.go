// Package resources wires each REST resource through the generic screens:
// base path, filter keys, renderers, form fields. One descriptor per
// resource, consumed by the console commands.
package resources

import (
	"strconv"

	"github.com/translogica/tms-console/internal/api"
	"github.com/translogica/tms-console/internal/screen"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Row is one labelled line of a detail screen.
type Row struct {
	Label string
	Value string
}

// Resource describes how one entity type maps onto the list, detail, form
// and delete screens.
type Resource[T any] struct {
	Name         string // console verb, matches the REST path segment
	Path         string // REST base path
	Title        string
	NotFoundMsg  string
	DeletePrompt string
	Filters      []string
	ID           func(T) int64
	ListHeader   []string
	ListRow      func(T) []string
	DetailRows   func(T) []Row
	FormFields   []screen.Field
}

func (r Resource[T]) List(client *api.Client, pageSize int) *screen.List[T] {
	return screen.NewList[T](client, r.Path, pageSize, r.ID)
}

func (r Resource[T]) Detail(client *api.Client) *screen.Detail[T] {
	return screen.NewDetail[T](client, r.Path, r.NotFoundMsg)
}

func (r Resource[T]) Form(client *api.Client, navigate func()) *screen.Form {
	return screen.NewForm(client, r.Path, r.FormFields, navigate)
}
