package screen

import (
	"context"
	"errors"
	"sync"

	"github.com/translogica/tms-console/internal/api"
	"github.com/translogica/tms-console/internal/view"
)

// Detail reads one entity and holds the result. A failed load leaves the
// screen in error until a fresh Load; there is no automatic retry.
type Detail[T any] struct {
	client      *api.Client
	path        string
	notFoundMsg string

	mu     sync.Mutex
	seq    uint64
	phase  Phase
	entity T
	errMsg string
}

func NewDetail[T any](client *api.Client, path, notFoundMsg string) *Detail[T] {
	return &Detail[T]{
		client:      client,
		path:        path,
		notFoundMsg: notFoundMsg,
		phase:       PhaseLoading,
	}
}

// Load fetches the entity by id. When loads overlap, only the most recently
// started one is allowed to write the result; stale responses are dropped.
func (d *Detail[T]) Load(ctx context.Context, id int64) {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.phase = PhaseLoading
	d.mu.Unlock()

	var entity T
	err := d.client.Get(ctx, d.path, id, &entity)

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq {
		return
	}
	switch {
	case err == nil:
		d.phase = PhaseLoaded
		d.entity = entity
		d.errMsg = ""
	case errors.Is(err, api.ErrNotFound):
		d.phase = PhaseNotFound
		d.errMsg = d.notFoundMsg
	default:
		d.phase = PhaseError
		d.errMsg = view.ErrorMessage(err)
	}
}

func (d *Detail[T]) Phase() Phase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phase
}

// Entity is only meaningful when Phase is PhaseLoaded.
func (d *Detail[T]) Entity() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.entity
}

// Message is the error or not-found text to render in place of content.
func (d *Detail[T]) Message() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errMsg
}
