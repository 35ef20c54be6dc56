package todo

import (
	"context"
	"errors"
)

var (
	// ErrUsage is returned when an invocation has too few arguments.
	ErrUsage = errors.New("not enough arguments")
	// ErrParse is returned when a delete index is not a non-negative integer.
	ErrParse = errors.New("invalid index")
	// ErrUnrecognizedCommand is returned when dispatching an unknown command name.
	ErrUnrecognizedCommand = errors.New("unrecognized command")
	// ErrIndexOutOfBounds is returned when a delete index is past the end of the list.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrIO wraps any underlying filesystem failure.
	ErrIO = errors.New("i/o error")
)

// Store defines persistence for a single todo list file.
// Implementations wrap filesystem failures with ErrIO.
type Store interface {
	// Create truncates the list, creating the file if needed.
	Create(ctx context.Context) error

	// Lines returns every line of the list in order, without terminators.
	// The list must already exist.
	Lines(ctx context.Context) ([]string, error)

	// Raw returns the list file contents unmodified.
	Raw(ctx context.Context) ([]byte, error)

	// Append writes line followed by a newline to the end of the list.
	Append(ctx context.Context, line string) error

	// AppendRaw writes data to the end of the list as is.
	AppendRaw(ctx context.Context, data []byte) error

	// Remove deletes the line at index and rewrites the list, returning the
	// removed line. Returns ErrIndexOutOfBounds, leaving the file untouched,
	// when index is not a valid position.
	Remove(ctx context.Context, index int) (string, error)
}
