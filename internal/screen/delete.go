package screen

import (
	"context"

	"github.com/translogica/tms-console/internal/api"
	"github.com/translogica/tms-console/internal/view"
)

// DeleteResult is what a detail screen renders after a delete attempt.
type DeleteResult struct {
	Deleted bool
	ErrMsg  string
}

// Delete is the cross-cutting delete action: the confirmer must answer yes
// before any network call goes out. On success navigate runs (back to the
// list screen); on failure the error is surfaced and nothing navigates.
func Delete(ctx context.Context, client *api.Client, path string, id int64, confirm Confirmer, prompt string, navigate func()) DeleteResult {
	if !confirm.Confirm(prompt) {
		return DeleteResult{}
	}
	if err := client.Delete(ctx, path, id); err != nil {
		return DeleteResult{ErrMsg: view.ErrorMessage(err)}
	}
	if navigate != nil {
		navigate()
	}
	return DeleteResult{Deleted: true}
}
