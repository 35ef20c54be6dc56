package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/todolist/internal/core/styles"
)

// Validate checks that the configuration is valid. Problems are reported as
// criterio.FieldErrors keyed by YAML path.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("dir", c.Dir, isDirectoryOrNotExist),
		criterio.Run("file_name", c.FileName, isPlainFileName),
		criterio.Run("list.style", c.List.Style, isKnownStyle),
		criterio.Run("theme", c.Theme, isKnownTheme),
	)
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
// A missing directory surfaces later as an i/o error from the list operation.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func isPlainFileName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("cannot be empty")
	case name == "." || name == "..":
		return fmt.Errorf("%q is not a file name", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%q must not contain a path separator; use dir instead", name)
	}
	return nil
}

func isKnownStyle(style ListStyle) error {
	if !style.IsValid() {
		return fmt.Errorf("invalid style %q: must be one of %s, %s", style, ListStyleNumbered, ListStyleRaw)
	}
	return nil
}

func isKnownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q: must be one of %s", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}
