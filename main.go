package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/hay-kot/todolist/internal/commands"
	"github.com/hay-kot/todolist/internal/todolist"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, build() reads
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		flags = &commands.Flags{}
		app   = &todolist.App{}
	)

	root := commands.NewRootCmd(flags, app, build())

	root = commands.NewNewCmd(flags, app).Register(root)
	root = commands.NewListCmd(flags, app).Register(root)
	root = commands.NewAddCmd(flags, app).Register(root)
	root = commands.NewCopyCmd(flags, app).Register(root)
	root = commands.NewDeleteCmd(flags, app).Register(root)
	root = commands.NewConfigCmd(flags, app).Register(root)

	exitCode := 0
	runErr := root.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println(commands.FormatError(os.Stdout, runErr))
		exitCode = 1
	}

	os.Exit(exitCode)
}
