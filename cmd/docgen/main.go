// Command docgen generates CLI reference documentation from the todolist
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"

	docs "github.com/urfave/cli-docs/v3"

	"github.com/hay-kot/todolist/internal/commands"
	"github.com/hay-kot/todolist/internal/todolist"
)

func main() {
	flags := &commands.Flags{}
	app := &todolist.App{}

	root := commands.NewRootCmd(flags, app, "dev")
	root = commands.NewNewCmd(flags, app).Register(root)
	root = commands.NewListCmd(flags, app).Register(root)
	root = commands.NewAddCmd(flags, app).Register(root)
	root = commands.NewCopyCmd(flags, app).Register(root)
	root = commands.NewDeleteCmd(flags, app).Register(root)
	root = commands.NewConfigCmd(flags, app).Register(root)

	md, err := docs.ToMarkdown(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error generating docs: %v\n", err)
		os.Exit(1)
	}

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.WriteFile(outPath, []byte(md), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}
