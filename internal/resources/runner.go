package resources

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"github.com/translogica/tms-console/internal/api"
	"github.com/translogica/tms-console/internal/export"
	"github.com/translogica/tms-console/internal/screen"
)

// Deps is everything a console operation needs to run a screen.
type Deps struct {
	Client   *api.Client
	Out      io.Writer
	Confirm  screen.Confirmer
	PageSize int
	Log      zerolog.Logger
	Excel    *export.ExcelGenerator
	PDF      *export.PDFGenerator
}

// ListOptions carries the query state a list screen starts from.
type ListOptions struct {
	Page    int
	Search  string
	Filters map[string]string
}

// Runner is the non-generic face of a resource, one per entity type.
type Runner interface {
	Name() string
	Title() string
	FilterKeys() []string
	RunList(ctx context.Context, deps Deps, opts ListOptions) error
	RunShow(ctx context.Context, deps Deps, id int64) error
	RunCreate(ctx context.Context, deps Deps, assignments []string) error
	RunEdit(ctx context.Context, deps Deps, id int64, assignments []string) error
	RunDelete(ctx context.Context, deps Deps, id int64) error
	RunExportList(ctx context.Context, deps Deps, opts ListOptions, path string) error
	RunExportDetail(ctx context.Context, deps Deps, id int64, path string) error
}

// Runner adapts the descriptor for the command dispatcher.
func (r Resource[T]) Runner() Runner {
	return runner[T]{res: r}
}

type runner[T any] struct {
	res Resource[T]
}

func (r runner[T]) Name() string         { return r.res.Name }
func (r runner[T]) Title() string        { return r.res.Title }
func (r runner[T]) FilterKeys() []string { return r.res.Filters }

func (r runner[T]) RunList(ctx context.Context, deps Deps, opts ListOptions) error {
	list := r.res.List(deps.Client, deps.PageSize)
	list.Init(opts.Search, opts.Filters, opts.Page)
	list.Load(ctx)
	r.renderList(deps.Out, list)
	return nil
}

func (r runner[T]) RunShow(ctx context.Context, deps Deps, id int64) error {
	detail := r.res.Detail(deps.Client)
	detail.Load(ctx, id)
	r.renderDetail(deps.Out, detail)
	return nil
}

func (r runner[T]) RunCreate(ctx context.Context, deps Deps, assignments []string) error {
	navigated := false
	form := r.res.Form(deps.Client, func() { navigated = true })
	if err := applyAssignments(form, assignments); err != nil {
		return err
	}
	if !form.Submit(ctx) {
		fmt.Fprintln(deps.Out, form.Message())
		return nil
	}
	fmt.Fprintln(deps.Out, "Enregistré.")
	if navigated {
		return r.RunList(ctx, deps, ListOptions{})
	}
	return nil
}

func (r runner[T]) RunEdit(ctx context.Context, deps Deps, id int64, assignments []string) error {
	navigated := false
	form := r.res.Form(deps.Client, func() { navigated = true })
	form.Prefill(ctx, id)
	switch form.Phase() {
	case screen.PhaseNotFound:
		fmt.Fprintln(deps.Out, r.res.NotFoundMsg)
		return nil
	case screen.PhaseError:
		fmt.Fprintln(deps.Out, form.Message())
		return nil
	}
	if err := applyAssignments(form, assignments); err != nil {
		return err
	}
	if !form.Submit(ctx) {
		fmt.Fprintln(deps.Out, form.Message())
		return nil
	}
	fmt.Fprintln(deps.Out, "Enregistré.")
	if navigated {
		return r.RunList(ctx, deps, ListOptions{})
	}
	return nil
}

func (r runner[T]) RunDelete(ctx context.Context, deps Deps, id int64) error {
	result := screen.Delete(ctx, deps.Client, r.res.Path, id, deps.Confirm, r.res.DeletePrompt, nil)
	switch {
	case result.Deleted:
		fmt.Fprintln(deps.Out, "Supprimé.")
		return r.RunList(ctx, deps, ListOptions{})
	case result.ErrMsg != "":
		fmt.Fprintln(deps.Out, result.ErrMsg)
	default:
		fmt.Fprintln(deps.Out, "Suppression annulée.")
	}
	return nil
}

func (r runner[T]) RunExportList(ctx context.Context, deps Deps, opts ListOptions, path string) error {
	list := r.res.List(deps.Client, deps.PageSize)
	list.Init(opts.Search, opts.Filters, opts.Page)
	list.Load(ctx)
	if list.Phase() != screen.PhaseLoaded {
		fmt.Fprintln(deps.Out, list.Message())
		return nil
	}

	rows := make([][]string, 0, len(list.Rows()))
	for _, row := range list.Rows() {
		rows = append(rows, r.res.ListRow(row))
	}
	content, err := deps.Excel.Generate(r.res.Title, r.res.ListHeader, rows)
	if err != nil {
		return fmt.Errorf("export excel: %w", err)
	}

	if path == "" {
		path = export.FileName(r.res.Name, "xlsx", time.Now())
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	deps.Log.Info().Str("resource", r.res.Name).Str("file", path).Msg("list exported")
	fmt.Fprintf(deps.Out, "Export écrit dans %s\n", path)
	return nil
}

func (r runner[T]) RunExportDetail(ctx context.Context, deps Deps, id int64, path string) error {
	detail := r.res.Detail(deps.Client)
	detail.Load(ctx, id)
	if detail.Phase() != screen.PhaseLoaded {
		fmt.Fprintln(deps.Out, detail.Message())
		return nil
	}

	rows := r.res.DetailRows(detail.Entity())
	lines := make([]export.Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, export.Line{Label: row.Label, Value: row.Value})
	}
	content, err := deps.PDF.Generate(r.res.Title, lines)
	if err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}

	if path == "" {
		path = export.FileName(fmt.Sprintf("%s-%d", r.res.Name, id), "pdf", time.Now())
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	deps.Log.Info().Str("resource", r.res.Name).Str("file", path).Msg("detail exported")
	fmt.Fprintf(deps.Out, "Export écrit dans %s\n", path)
	return nil
}

func (r runner[T]) renderList(out io.Writer, list *screen.List[T]) {
	switch list.Phase() {
	case screen.PhaseError:
		fmt.Fprintln(out, list.Message())
		return
	case screen.PhaseLoading:
		fmt.Fprintln(out, "Chargement...")
		return
	}

	fmt.Fprintln(out, r.res.Title)
	writer := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(writer, strings.Join(r.res.ListHeader, "\t"))
	for _, row := range list.Rows() {
		fmt.Fprintln(writer, strings.Join(r.res.ListRow(row), "\t"))
	}
	writer.Flush()
	fmt.Fprintln(out, list.Summary())
	if list.TotalPages() > 1 {
		fmt.Fprintf(out, "Page %d/%d\n", list.Page(), list.TotalPages())
	}
}

func (r runner[T]) renderDetail(out io.Writer, detail *screen.Detail[T]) {
	switch detail.Phase() {
	case screen.PhaseError, screen.PhaseNotFound:
		fmt.Fprintln(out, detail.Message())
		return
	case screen.PhaseLoading:
		fmt.Fprintln(out, "Chargement...")
		return
	}

	fmt.Fprintln(out, r.res.Title)
	writer := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	for _, row := range r.res.DetailRows(detail.Entity()) {
		fmt.Fprintf(writer, "%s\t%s\n", row.Label, row.Value)
	}
	writer.Flush()
}

func applyAssignments(form *screen.Form, assignments []string) error {
	for _, assignment := range assignments {
		name, value, found := strings.Cut(assignment, "=")
		if !found {
			return fmt.Errorf("argument %q: expected field=value", assignment)
		}
		if err := form.SetField(strings.TrimSpace(name), value); err != nil {
			return err
		}
	}
	return nil
}
