// Package screen holds the view-state machines every resource screen is
// built from: a detail reader, an edit/create form, a paginated list and a
// confirmation-gated delete. Screens own their state in isolation; nothing
// is shared between two screen instances.
package screen

// Phase is the lifecycle tag rendering switches on.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseLoaded
	PhaseError
	PhaseNotFound
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	case PhaseNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// Confirmer gates destructive actions. The terminal prompt implements it;
// tests substitute canned answers.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }
