package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/todolist"
)

type NewCmd struct {
	flags *Flags
	app   *todolist.App
}

// NewNewCmd creates a new new command
func NewNewCmd(flags *Flags, app *todolist.App) *NewCmd {
	return &NewCmd{flags: flags, app: app}
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Create an empty todo list",
		UsageText: "todolist new",
		Description: `Creates the list file, truncating it if it already exists.

Every other command expects the list to exist, so run this first.`,
		HideHelpCommand: true,
		Action:          cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	return dispatch(ctx, c, cmd.app, tokens(c))
}
