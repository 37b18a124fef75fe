package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/translogica/tms-console/internal/api"
	"github.com/translogica/tms-console/internal/config"
	"github.com/translogica/tms-console/internal/export"
	"github.com/translogica/tms-console/internal/logger"
	"github.com/translogica/tms-console/internal/resources"
	"github.com/translogica/tms-console/internal/session"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(cfg.Environment)

	store := session.NewStore(cfg.Session.FilePath)
	if err := store.Load(); err != nil {
		return err
	}

	registry := resources.Registry()
	if len(args) == 0 {
		usage(out, registry)
		return nil
	}

	switch args[0] {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: tms-console login <token>")
		}
		if err := store.Login(args[1]); err != nil {
			return err
		}
		fmt.Fprintln(out, "Session ouverte.")
		return nil
	case "logout":
		if err := store.Logout(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Session fermée.")
		return nil
	case "help", "-h", "--help":
		usage(out, registry)
		return nil
	}

	runner, ok := registry[args[0]]
	if !ok {
		return fmt.Errorf("ressource inconnue %q (voir tms-console help)", args[0])
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: tms-console %s <list|show|create|edit|delete|export|export-pdf>", runner.Name())
	}

	deps := resources.Deps{
		Client:   api.NewClient(cfg.API.BaseURL, cfg.API.RequestTimeout, store, log),
		Out:      out,
		PageSize: cfg.List.PageSize,
		Log:      log,
		Excel:    export.NewExcelGenerator(),
		PDF:      export.NewPDFGenerator(),
	}

	action := args[1]
	rest := args[2:]
	flags, positional, err := splitArgs(rest)
	if err != nil {
		return err
	}
	deps.Confirm = newConfirmer(out, flags.assumeYes)

	ctx := context.Background()
	opts := resources.ListOptions{Page: flags.page, Search: flags.search, Filters: flags.filters}

	switch action {
	case "list":
		return runner.RunList(ctx, deps, opts)
	case "show":
		id, err := requireID(positional)
		if err != nil {
			return err
		}
		return runner.RunShow(ctx, deps, id)
	case "create":
		return runner.RunCreate(ctx, deps, positional)
	case "edit":
		id, err := requireID(positional)
		if err != nil {
			return err
		}
		return runner.RunEdit(ctx, deps, id, positional[1:])
	case "delete":
		id, err := requireID(positional)
		if err != nil {
			return err
		}
		return runner.RunDelete(ctx, deps, id)
	case "export":
		return runner.RunExportList(ctx, deps, opts, flags.out)
	case "export-pdf":
		id, err := requireID(positional)
		if err != nil {
			return err
		}
		return runner.RunExportDetail(ctx, deps, id, flags.out)
	default:
		return fmt.Errorf("action inconnue %q", action)
	}
}

type cmdFlags struct {
	page      int
	search    string
	filters   map[string]string
	out       string
	assumeYes bool
}

// splitArgs separates --flags from positional arguments (ids and
// field=value assignments).
func splitArgs(args []string) (cmdFlags, []string, error) {
	flags := cmdFlags{filters: map[string]string{}}
	positional := make([]string, 0, len(args))

	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			positional = append(positional, arg)
			continue
		}
		name, value, _ := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		switch name {
		case "page":
			page, err := strconv.Atoi(value)
			if err != nil {
				return flags, nil, fmt.Errorf("--page expects a number")
			}
			flags.page = page
		case "search":
			flags.search = value
		case "filter":
			key, filterValue, found := strings.Cut(value, "=")
			if !found {
				return flags, nil, fmt.Errorf("--filter expects key=value")
			}
			flags.filters[key] = filterValue
		case "out":
			flags.out = value
		case "yes":
			flags.assumeYes = true
		default:
			return flags, nil, fmt.Errorf("option inconnue --%s", name)
		}
	}
	return flags, positional, nil
}

func requireID(positional []string) (int64, error) {
	if len(positional) == 0 {
		return 0, fmt.Errorf("identifiant requis")
	}
	id, err := strconv.ParseInt(positional[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("identifiant invalide %q", positional[0])
	}
	return id, nil
}

type terminalConfirmer struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func newConfirmer(out io.Writer, assumeYes bool) *terminalConfirmer {
	return &terminalConfirmer{in: bufio.NewReader(os.Stdin), out: out, assumeYes: assumeYes}
}

func (t *terminalConfirmer) Confirm(prompt string) bool {
	if t.assumeYes {
		return true
	}
	fmt.Fprintf(t.out, "%s [o/N] ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "o", "oui", "y", "yes":
		return true
	default:
		return false
	}
}

func usage(out io.Writer, registry map[string]resources.Runner) {
	fmt.Fprintln(out, "Usage : tms-console <ressource> <action> [options]")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Actions : list, show <id>, create champ=valeur..., edit <id> champ=valeur...,")
	fmt.Fprintln(out, "          delete <id>, export [--out=fichier], export-pdf <id> [--out=fichier]")
	fmt.Fprintln(out, "Options : --page=N --search=TERME --filter=clé=valeur --yes")
	fmt.Fprintln(out, "Session : tms-console login <jeton> | tms-console logout")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Ressources :")

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-18s %s\n", name, registry[name].Title())
	}
}
