package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/todolist"
)

type DeleteCmd struct {
	flags *Flags
	app   *todolist.App
}

// NewDeleteCmd creates a new delete command
func NewDeleteCmd(flags *Flags, app *todolist.App) *DeleteCmd {
	return &DeleteCmd{flags: flags, app: app}
}

// Register adds the delete command to the application
func (cmd *DeleteCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "delete",
		Usage:     "Remove the item at a position",
		UsageText: "todolist delete <index>",
		Description: `Removes the item at the given zero-based position, as printed by "todolist list".
Items after it move up one position.`,
		// A negative index must reach the parser instead of being read as a flag.
		SkipFlagParsing: true,
		ShellComplete:   PositionCompleter(cmd.app),
		HideHelpCommand: true,
		Action:          cmd.run,
	})

	return app
}

func (cmd *DeleteCmd) run(ctx context.Context, c *cli.Command) error {
	return dispatch(ctx, c, cmd.app, tokens(c))
}
