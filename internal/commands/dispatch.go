package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/core/styles"
	"github.com/hay-kot/todolist/internal/core/todo"
	"github.com/hay-kot/todolist/internal/todolist"
)

// tokens rebuilds the invocation as typed: program name, command name, then
// the command's positional arguments.
func tokens(c *cli.Command) []string {
	return append([]string{c.Root().Name, c.Name}, c.Args().Slice()...)
}

// parse runs the command parser over args and labels failures.
func parse(args []string) (todo.Command, error) {
	command, err := todo.Parse(args)
	if err != nil {
		return todo.Command{}, fmt.Errorf("problem parsing arguments: %w", err)
	}
	return command, nil
}

// dispatch parses args and runs the resulting command against app.
func dispatch(ctx context.Context, c *cli.Command, app *todolist.App, args []string) error {
	command, err := parse(args)
	if err != nil {
		return err
	}

	announce(app, c.Root().Writer)

	if err := app.List.Run(ctx, command); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	return nil
}

// announce reports the home directory fallback on w. Commands producing
// machine-readable output pass the error writer.
func announce(app *todolist.App, w io.Writer) {
	if !app.Location.Fallback() {
		return
	}

	notice := app.Location.Notice
	if isTerminal(w) {
		notice = styles.NoticeStyle.Render(notice)
	}
	_, _ = fmt.Fprintln(w, notice)
}
