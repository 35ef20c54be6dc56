package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/core/config"
	"github.com/hay-kot/todolist/internal/core/logging"
	"github.com/hay-kot/todolist/internal/todolist"
	"github.com/hay-kot/todolist/pkg/iojson"
)

type ListCmd struct {
	flags *Flags
	app   *todolist.App

	// flags
	raw        bool
	jsonOutput bool
}

// NewListCmd creates a new list command
func NewListCmd(flags *Flags, app *todolist.App) *ListCmd {
	return &ListCmd{flags: flags, app: app}
}

// Register adds the list command to the application
func (cmd *ListCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "list",
		Usage:     "Print every item with its position",
		UsageText: "todolist list [--raw | --json]",
		Description: `Prints one line per item, prefixed with its zero-based position.
Positions are recomputed on every run; they shift after a delete.

Use --raw to print the list file verbatim, or --json for one JSON object per item.
The default rendering can be changed with list.style in the config file.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print the list file contents without positions",
				Destination: &cmd.raw,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		HideHelpCommand: true,
		Action:          cmd.run,
	})

	return app
}

func (cmd *ListCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.raw && cmd.jsonOutput {
		return fmt.Errorf("--raw and --json cannot be combined")
	}

	if !cmd.raw && !cmd.jsonOutput {
		return dispatch(ctx, c, cmd.app, tokens(c))
	}

	command, err := parse(tokens(c))
	if err != nil {
		return err
	}
	ctx = logging.WithCommand(ctx, string(command.Kind))

	if cmd.raw {
		announce(cmd.app, c.Root().Writer)
		if err := cmd.app.List.List(ctx, config.ListStyleRaw); err != nil {
			return fmt.Errorf("application error: %w", err)
		}
		return nil
	}

	announce(cmd.app, c.Root().ErrWriter)

	entries, err := cmd.app.List.Entries(ctx)
	if err != nil {
		return fmt.Errorf("application error: %w", err)
	}

	log.Debug().Ctx(ctx).Int("items", len(entries)).Msg("listing items as json")

	for _, e := range entries {
		if err := iojson.WriteLine(c.Root().Writer, e); err != nil {
			return err
		}
	}
	return nil
}
