package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/todolist"
)

type CopyCmd struct {
	flags *Flags
	app   *todolist.App
}

// NewCopyCmd creates a new copy command
func NewCopyCmd(flags *Flags, app *todolist.App) *CopyCmd {
	return &CopyCmd{flags: flags, app: app}
}

// Register adds the copy command to the application
func (cmd *CopyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "copy",
		Usage:     "Append the contents of another file to the list",
		UsageText: "todolist copy <path|->",
		Description: `Reads the file at <path> and appends its contents to the list unchanged.
Pass "-" to read from standard input. Arguments after the path are ignored.

Examples:
  todolist copy ~/groceries.txt
  grep TODO main.go | todolist copy -`,
		SkipFlagParsing: true,
		HideHelpCommand: true,
		Action:          cmd.run,
	})

	return app
}

func (cmd *CopyCmd) run(ctx context.Context, c *cli.Command) error {
	return dispatch(ctx, c, cmd.app, tokens(c))
}
