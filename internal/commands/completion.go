package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/todolist"
)

// PositionCompleter returns a ShellCompleteFunc that suggests the positions
// of the current list items. Nothing is suggested once a position has been
// typed or when the list cannot be read.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func PositionCompleter(app *todolist.App) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args != nil && args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
			}
			return
		}

		if app.List == nil {
			return
		}

		entries, err := app.List.Entries(ctx)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, e := range entries {
			_, _ = fmt.Fprintln(w, e.Position)
		}
	}
}
