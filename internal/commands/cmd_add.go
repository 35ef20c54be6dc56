package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/todolist"
)

type AddCmd struct {
	flags *Flags
	app   *todolist.App
}

// NewAddCmd creates a new add command
func NewAddCmd(flags *Flags, app *todolist.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Append an item to the list",
		UsageText: "todolist add <words...>",
		Description: `Appends one item to the end of the list. All remaining words are joined
with single spaces, so quoting is optional:

  todolist add buy milk
  todolist add "buy milk"`,
		// Items may start with "-"; everything after the command name is item text.
		SkipFlagParsing: true,
		HideHelpCommand: true,
		Action:          cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	return dispatch(ctx, c, cmd.app, tokens(c))
}
