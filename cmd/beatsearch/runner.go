package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"beatsite/internal/catalog"
	"beatsite/internal/render"
	"beatsite/internal/search"
	"beatsite/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

var (
	// ErrMissingQuery is returned when search is run without a query.
	ErrMissingQuery = errors.New("missing search query")
	// ErrNotInCatalog is returned when activate names an entry the catalog lacks.
	ErrNotInCatalog = errors.New("entry not in catalog")
)

// Runner holds the dependencies of every command and provides one method per command action.
type Runner struct {
	catalog *catalog.Catalog
	logger  *log.Logger
	output  io.Writer
	palette render.Palette
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Catalog *catalog.Catalog
	Logger  *log.Logger
	Output  io.Writer
	Palette *render.Palette
}

// NewRunner creates a Runner, filling unset options with defaults.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	palette := render.PlainPalette()
	if opts.Palette != nil {
		palette = *opts.Palette
	}

	return &Runner{
		catalog: opts.Catalog,
		logger:  opts.Logger,
		output:  opts.Output,
		palette: palette,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range []func(*Runner) *cli.Command{
		searchCommand, activateCommand, catalogCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}
	return commands
}

// engine searches the --catalog file when one is given, else the runner's catalog.
func (r *Runner) engine(cmd *cli.Command) (*search.Engine, error) {
	path := cmd.String("catalog")
	if path == "" {
		return search.NewEngine(r.catalog), nil
	}

	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("catalog loaded", "path", path, "entries", c.Len())
	return search.NewEngine(c), nil
}

// Search prints the grouped results for the command's arguments joined by spaces.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := strings.Join(cmd.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return ErrMissingQuery
	}

	engine, err := r.engine(cmd)
	if err != nil {
		return err
	}

	result := engine.Search(query)
	if cmd.Bool("json") {
		return r.writeJSON(result)
	}
	if result.State == search.StateIgnore {
		r.logger.Warn("query too short", "query", query, "min", search.MinQueryLength)
		return nil
	}
	return render.WriteText(r.output, result, r.palette)
}

// Activate prints what selecting the named entry does.
func (r *Runner) Activate(ctx context.Context, cmd *cli.Command) error {
	kind, err := catalog.ParseKind(cmd.String("kind"))
	if err != nil {
		return err
	}

	engine, err := r.engine(cmd)
	if err != nil {
		return err
	}

	title := cmd.String("title")
	entry, ok := engine.Catalog().Lookup(kind, title)
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrNotInCatalog, kind, title)
	}

	action := search.Activate(entry)
	if cmd.Bool("json") {
		return r.writeJSON(action)
	}
	return r.writePlain("%s\n%s after %s\n", r.palette.Success.Render(action.Message), action.Target, action.ScrollDelay)
}

// Catalog lists the catalog entries, optionally of one kind.
func (r *Runner) Catalog(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.engine(cmd)
	if err != nil {
		return err
	}

	entries := engine.Catalog().Entries()
	if raw := cmd.String("kind"); raw != "" {
		kind, err := catalog.ParseKind(raw)
		if err != nil {
			return err
		}
		filtered := make([]catalog.Entry, 0, len(entries))
		for _, e := range entries {
			if e.Kind == kind {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries)
	}
	for _, e := range entries {
		if err := r.writePlain("%-6s  %s  %s\n", e.Kind, r.palette.Title.Render(e.Title), r.palette.Detail.Render(render.Detail(e))); err != nil {
			return err
		}
	}
	return nil
}

// TUI runs the interactive search box until ctrl+c.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.engine(cmd)
	if err != nil {
		return err
	}

	// Log lines would tear the alternate screen.
	r.logger.SetOutput(io.Discard)

	model := tui.New(engine,
		tui.WithPalette(r.palette),
		tui.WithToastTTL(cmd.Duration("toast-ttl")),
	)
	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func (r *Runner) writeJSON(data any) error {
	output, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := r.output.Write(append(output, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.output, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
