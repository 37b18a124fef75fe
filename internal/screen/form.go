package screen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/translogica/tms-console/internal/api"
	"github.com/translogica/tms-console/internal/view"
)

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldDate
	FieldSelect
)

// Field declares one form input: its wire name, how raw input is coerced,
// and whether submission requires it.
type Field struct {
	Name     string
	Kind     FieldKind
	Required bool
	Options  []string // FieldSelect only
	Default  any
}

// Form mirrors the in-progress entity being created or edited. Values hold
// the whole object; submission serializes all of it, prefilled fields
// included. State is guarded by the same per-screen mutex the other
// screens use.
type Form struct {
	client   *api.Client
	path     string
	fields   []Field
	byName   map[string]Field
	navigate func()

	mu         sync.Mutex
	id         *int64
	values     map[string]any
	phase      Phase
	errMsg     string
	submitting bool
}

// NewForm starts a create form from field defaults. navigate runs after a
// successful submission, normally back to the resource's list screen.
func NewForm(client *api.Client, path string, fields []Field, navigate func()) *Form {
	f := &Form{
		client:   client,
		path:     path,
		fields:   fields,
		byName:   make(map[string]Field, len(fields)),
		values:   make(map[string]any, len(fields)),
		phase:    PhaseLoaded,
		navigate: navigate,
	}
	for _, field := range fields {
		f.byName[field.Name] = field
		if field.Default != nil {
			f.values[field.Name] = field.Default
		}
	}
	return f
}

// Prefill switches the form to edit mode, loading current values from the
// entity at id. Load failures follow the detail-screen states.
func (f *Form) Prefill(ctx context.Context, id int64) {
	f.mu.Lock()
	f.phase = PhaseLoading
	f.mu.Unlock()

	var entity map[string]any
	err := f.client.Get(ctx, f.path, id, &entity)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			f.phase = PhaseNotFound
			f.errMsg = view.MsgGenericError
			return
		}
		f.phase = PhaseError
		f.errMsg = view.ErrorMessage(err)
		return
	}

	f.id = &id
	for _, field := range f.fields {
		if value, ok := entity[field.Name]; ok && value != nil {
			f.values[field.Name] = value
		}
	}
	f.phase = PhaseLoaded
	f.errMsg = ""
}

// SetField updates exactly one value from raw terminal input. Numeric
// fields coerce to float64, or to null when cleared.
func (f *Form) SetField(name, raw string) error {
	field, ok := f.byName[name]
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	switch field.Kind {
	case FieldNumber:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			f.values[name] = nil
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return fmt.Errorf("field %q expects a number", name)
		}
		f.values[name] = parsed
	case FieldSelect:
		if len(field.Options) > 0 && raw != "" {
			found := false
			for _, option := range field.Options {
				if option == raw {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("field %q expects one of %s", name, strings.Join(field.Options, ", "))
			}
		}
		f.values[name] = raw
	default:
		f.values[name] = raw
	}
	return nil
}

// Submit serializes the whole form state and issues POST (create) or PUT
// (edit). On failure the entered values stay put so the user can retry.
// The returned flag reports whether navigation happened. A submission
// already in flight makes Submit a no-op.
func (f *Form) Submit(ctx context.Context) bool {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return false
	}
	if err := f.checkRequired(); err != nil {
		f.errMsg = err.Error()
		f.mu.Unlock()
		return false
	}
	f.submitting = true
	body := f.copyValues()
	id := f.id
	f.mu.Unlock()

	var err error
	if id != nil {
		err = f.client.Update(ctx, f.path, *id, body, nil)
	} else {
		err = f.client.Create(ctx, f.path, body, nil)
	}

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.errMsg = view.ErrorMessage(err)
		f.mu.Unlock()
		return false
	}
	f.errMsg = ""
	f.mu.Unlock()

	if f.navigate != nil {
		f.navigate()
	}
	return true
}

// checkRequired runs under f.mu.
func (f *Form) checkRequired() error {
	missing := make([]string, 0)
	for _, field := range f.fields {
		if !field.Required {
			continue
		}
		value, ok := f.values[field.Name]
		if !ok || value == nil {
			missing = append(missing, field.Name)
			continue
		}
		if text, isText := value.(string); isText && strings.TrimSpace(text) == "" {
			missing = append(missing, field.Name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("champs obligatoires manquants : %s", strings.Join(missing, ", "))
	}
	return nil
}

// Values returns a copy of the full form state.
func (f *Form) Values() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyValues()
}

// copyValues runs under f.mu.
func (f *Form) copyValues() map[string]any {
	copied := make(map[string]any, len(f.values))
	for key, value := range f.values {
		copied[key] = value
	}
	return copied
}

func (f *Form) Phase() Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *Form) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

func (f *Form) Editing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id != nil
}

func (f *Form) Fields() []Field { return f.fields }

// EncodeState is a debugging aid: the exact body a submission would send.
func (f *Form) EncodeState() ([]byte, error) {
	return json.Marshal(f.Values())
}
