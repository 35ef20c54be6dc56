package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/todolist/internal/core/config"
	"github.com/hay-kot/todolist/internal/core/logging"
	"github.com/hay-kot/todolist/internal/core/styles"
	"github.com/hay-kot/todolist/internal/store/textfile"
	"github.com/hay-kot/todolist/internal/todolist"
	"github.com/hay-kot/todolist/pkg/logutils"
)

// NewRootCmd builds the top-level command. Its Before hook configures logging,
// loads the config, resolves the list file once, and populates app; its Action
// routes bare or unknown invocations through the command parser.
func NewRootCmd(flags *Flags, app *todolist.App, version string) *cli.Command {
	var logCloser func()

	return &cli.Command{
		Name:      "todolist",
		Usage:     "Keep a personal todo list in a plain-text file",
		UsageText: "todolist [global options] command [arguments]",
		Description: `todolist stores one item per line in ~/todo_list (or ./todo_list when the
home directory cannot be found).

Run 'todolist new' once to create the list, then add, list, copy and delete items.
` + todoUsage,
		Version:               version,
		EnableShellCompletion: true,
		// help and completion are not list commands; both must reach the parser.
		HideHelpCommand:            true,
		ShellCompletionCommandName: completionCommandName,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TODOLIST_LOG_LEVEL"),
				Value:       "warn",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to stderr)",
				Sources:     cli.EnvVars("TODOLIST_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TODOLIST_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "file",
				Aliases:     []string{"f"},
				Usage:       "path to the list file (overrides dir and file_name from config)",
				Sources:     cli.EnvVars("TODOLIST_FILE"),
				Destination: &flags.ListFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.Theme)
			styles.SetTheme(palette)

			w := c.Root().Writer
			location := cfg.StoragePath(flags.ListFile, os.UserHomeDir)
			if location.Fallback() {
				log.Info().Str("path", location.Path).Msg(location.Notice)
			}

			svc := todolist.NewListService(
				textfile.New(location.Path),
				todolist.Options{
					Out:   w,
					In:    c.Root().Reader,
					Style: cfg.List.Style,
					Color: isTerminal(w),
				},
				logging.Component("list-service"),
			)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*app = *todolist.NewApp(svc, cfg, location)

			return logging.WithListPath(ctx, location.Path), nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return dispatch(ctx, c, app, append([]string{c.Name}, c.Args().Slice()...))
		},
	}
}

// completionCommandName replaces the library's "completion" command so that
// word stays an unrecognized list command.
const completionCommandName = "__completion"

const todoUsage = `
Commands accepted by the list parser:
  new              truncate/create the list
  list             print all items with their position
  add <words...>   append an item
  copy <path>      append the contents of another file
  delete <index>   remove the item at a zero-based position`

// FormatError renders the final error for w, colored when w is a terminal.
func FormatError(w io.Writer, err error) string {
	if isTerminal(w) {
		return styles.ErrorStyle.Render(err.Error())
	}
	return err.Error()
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
