// Package todolist implements the list operations behind each command.
package todolist

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/hay-kot/todolist/internal/core/config"
	"github.com/hay-kot/todolist/internal/core/logging"
	"github.com/hay-kot/todolist/internal/core/styles"
	"github.com/hay-kot/todolist/internal/core/todo"
)

// StdinSource is the copy source that reads from standard input.
const StdinSource = "-"

// Options configures how a ListService talks to the user.
type Options struct {
	// Out receives user-facing output. Defaults to os.Stdout.
	Out io.Writer
	// In is read when copying from StdinSource. Defaults to os.Stdin.
	In io.Reader
	// Style is the list rendering used by Run. Defaults to numbered.
	Style config.ListStyle
	// Color enables lipgloss styling of position prefixes.
	Color bool
}

// ListService performs exactly one list operation per Command against a
// todo.Store.
type ListService struct {
	store todo.Store
	out   io.Writer
	in    io.Reader
	style config.ListStyle
	color bool
	log   zerolog.Logger
}

// NewListService creates a new ListService.
func NewListService(store todo.Store, opts Options, log zerolog.Logger) *ListService {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Style == "" {
		opts.Style = config.ListStyleNumbered
	}

	return &ListService{
		store: store,
		out:   opts.Out,
		in:    opts.In,
		style: opts.Style,
		color: opts.Color,
		log:   log,
	}
}

// Run dispatches cmd to the matching operation. Unknown kinds fail with
// todo.ErrUnrecognizedCommand.
func (s *ListService) Run(ctx context.Context, cmd todo.Command) error {
	ctx = logging.WithCommand(ctx, string(cmd.Kind))

	switch cmd.Kind {
	case todo.KindNew:
		return s.New(ctx)
	case todo.KindList:
		return s.List(ctx, s.style)
	case todo.KindAdd:
		return s.Add(ctx, cmd.Item)
	case todo.KindCopy:
		return s.Copy(ctx, cmd.Source)
	case todo.KindDelete:
		_, err := s.Delete(ctx, cmd.Index)
		return err
	default:
		s.log.Debug().Ctx(ctx).Msg("unrecognized command")
		return todo.UnrecognizedError(cmd.Kind)
	}
}

// New truncates the list, creating it if needed.
func (s *ListService) New(ctx context.Context) error {
	if err := s.store.Create(ctx); err != nil {
		return fmt.Errorf("create list: %w", err)
	}

	s.log.Debug().Ctx(ctx).Msg("created list")
	_, _ = fmt.Fprintln(s.out, "Created new todo list")
	return nil
}

// Entries loads the list with computed positions.
func (s *ListService) Entries(ctx context.Context) ([]todo.Entry, error) {
	lines, err := s.store.Lines(ctx)
	if err != nil {
		return nil, fmt.Errorf("read list: %w", err)
	}
	return todo.Entries(lines), nil
}

// List prints the list. Numbered style writes one "<pos>. <text>" line per
// item; raw style copies the file contents verbatim.
func (s *ListService) List(ctx context.Context, style config.ListStyle) error {
	if style == config.ListStyleRaw {
		data, err := s.store.Raw(ctx)
		if err != nil {
			return fmt.Errorf("read list: %w", err)
		}

		s.log.Debug().Ctx(ctx).Int("bytes", len(data)).Msg("listing raw file")
		if _, err := s.out.Write(data); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	entries, err := s.Entries(ctx)
	if err != nil {
		return err
	}

	s.log.Debug().Ctx(ctx).Int("items", len(entries)).Msg("listing items")

	for _, e := range entries {
		prefix := fmt.Sprintf("%d.", e.Position)
		if s.color {
			prefix = styles.PositionStyle.Render(prefix)
		}
		if _, err := fmt.Fprintf(s.out, "%s %s\n", prefix, e.Text); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// Add appends item as a new line. Item content is not validated; an empty
// item produces a blank line.
func (s *ListService) Add(ctx context.Context, item string) error {
	if err := s.store.Append(ctx, item); err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	s.log.Debug().Ctx(ctx).Int("bytes", len(item)).Msg("appended item")
	return nil
}

// Copy reads source fully and appends its raw contents to the list. Source
// StdinSource reads standard input, which must not be a terminal.
func (s *ListService) Copy(ctx context.Context, source string) error {
	data, err := s.readSource(source)
	if err != nil {
		return fmt.Errorf("copy %s: %w", source, err)
	}

	if err := s.store.AppendRaw(ctx, data); err != nil {
		return fmt.Errorf("copy %s: %w", source, err)
	}

	s.log.Debug().Ctx(ctx).Str("source", source).Int("bytes", len(data)).Msg("copied file into list")
	return nil
}

// Delete removes the item at index and returns its text. Positions of the
// following items shift down by one.
func (s *ListService) Delete(ctx context.Context, index int) (string, error) {
	removed, err := s.store.Remove(ctx, index)
	if err != nil {
		return "", fmt.Errorf("delete item: %w", err)
	}

	s.log.Debug().Ctx(ctx).Int("index", index).Msg("deleted item")
	return removed, nil
}

func (s *ListService) readSource(source string) ([]byte, error) {
	if source != StdinSource {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", todo.ErrIO, err)
		}
		return data, nil
	}

	if f, ok := s.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("%w: stdin is a terminal; pipe content in or pass a file path", todo.ErrUsage)
	}

	data, err := io.ReadAll(s.in)
	if err != nil {
		return nil, fmt.Errorf("%w: read stdin: %w", todo.ErrIO, err)
	}
	return data, nil
}
