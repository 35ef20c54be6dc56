package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/todolist/internal/todolist"
	"github.com/hay-kot/todolist/pkg/iojson"
)

type ConfigCmd struct {
	flags  *Flags
	app    *todolist.App
	format string
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags, app *todolist.App) *ConfigCmd {
	return &ConfigCmd{flags: flags, app: app}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration inspection commands",
		Description: `The config file is validated on every run; an invalid file stops the command
with one error per offending field.`,
		Commands: []*cli.Command{
			{
				Name:        "show",
				Usage:       "Print the effective configuration",
				UsageText:   "todolist config show [--format yaml|json]",
				Description: "Prints the configuration after defaults are applied.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (yaml, json)",
						Value:       "yaml",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runShow,
			},
			{
				Name:        "path",
				Usage:       "Print the config file and list file locations",
				UsageText:   "todolist config path",
				Description: "Prints where the config is read from and which list file commands operate on.",
				Action:      cmd.runPath,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runShow(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer

	switch cmd.format {
	case "json":
		return iojson.WriteWith(w, c.Root().ErrWriter, cmd.app.Config)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cmd.app.Config); err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid format %q: must be one of yaml, json", cmd.format)
	}
}

func (cmd *ConfigCmd) runPath(ctx context.Context, c *cli.Command) error {
	w := c.Root().Writer

	configPath := cmd.flags.ConfigPath
	if configPath == "" {
		configPath = "(none)"
	}

	_, _ = fmt.Fprintf(w, "config: %s\n", configPath)
	_, _ = fmt.Fprintf(w, "list:   %s\n", cmd.app.Location.Path)
	return nil
}
