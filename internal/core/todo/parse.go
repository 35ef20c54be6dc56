package todo

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse validates invocation tokens into a Command. Token 0 is the program
// name and is skipped; token 1 names the command.
//
// Unknown command names are not rejected here. They parse into a Command with
// that Kind and fail at dispatch with ErrUnrecognizedCommand.
func Parse(args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, usageError()
	}

	cmd := Command{Kind: Kind(args[1])}

	switch cmd.Kind {
	case KindAdd:
		if len(args) < 3 {
			return Command{}, usageError()
		}
		cmd.Item = strings.Join(args[2:], " ")
	case KindCopy:
		if len(args) < 3 {
			return Command{}, usageError()
		}
		cmd.Source = args[2]
	case KindDelete:
		if len(args) < 3 {
			return Command{}, usageError()
		}
		index, err := ParseIndex(args[2])
		if err != nil {
			return Command{}, err
		}
		cmd.Index = index
	}

	return cmd, nil
}

// ParseIndex parses a zero-based list position. Signs, whitespace and
// non-decimal input are rejected with ErrParse.
func ParseIndex(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, fmt.Errorf("%w %q: must be a non-negative integer", ErrParse, s)
	}
	return int(n), nil
}

func usageError() error {
	return fmt.Errorf("%w. %s", ErrUsage, Usage)
}

// UnrecognizedError builds the dispatch error for an unknown command name.
func UnrecognizedError(kind Kind) error {
	return fmt.Errorf("%w %q. %s", ErrUnrecognizedCommand, string(kind), Usage)
}
