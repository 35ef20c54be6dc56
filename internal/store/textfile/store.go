// Package textfile implements todo.Store on a newline-delimited text file.
package textfile

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/todolist/internal/core/todo"
)

// Store implements todo.Store with one item per line in a plain-text file.
//
// There is no locking: two processes that rewrite the same file concurrently
// can lose items.
type Store struct {
	path string
}

var _ todo.Store = (*Store)(nil)

// New creates a store for the list file at path. The file is not touched
// until an operation runs.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the list file location.
func (s *Store) Path() string {
	return s.path
}

// Create truncates the list file, creating it if it does not exist. The parent
// directory must exist.
func (s *Store) Create(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(s.path, nil, 0o644); err != nil {
		return ioError(err)
	}
	return nil
}

// Lines reads the whole list. A missing final newline is tolerated and CRLF
// terminators are read as line ends.
func (s *Store) Lines(ctx context.Context) ([]string, error) {
	data, err := s.Raw(ctx)
	if err != nil {
		return nil, err
	}
	return SplitLines(data), nil
}

// Raw returns the list file contents.
func (s *Store) Raw(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, ioError(err)
	}
	return data, nil
}

// Append writes line and a newline terminator at the end of the list. The
// list file must already exist.
func (s *Store) Append(ctx context.Context, line string) error {
	return s.AppendRaw(ctx, []byte(line+"\n"))
}

// AppendRaw writes data at the end of the list without any line processing.
// The list file must already exist.
func (s *Store) AppendRaw(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return ioError(err)
	}

	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return ioError(err)
	}
	return nil
}

// Remove deletes the line at index and truncate-rewrites the remaining lines
// in order, each newline terminated. An out of range index leaves the file
// untouched. The rewrite is not atomic: a crash after truncation loses the
// list.
func (s *Store) Remove(ctx context.Context, index int) (string, error) {
	lines, err := s.Lines(ctx)
	if err != nil {
		return "", err
	}

	if index < 0 || index >= len(lines) {
		return "", fmt.Errorf("%w: %d (list has %d items)", todo.ErrIndexOutOfBounds, index, len(lines))
	}

	removed := lines[index]
	lines = append(lines[:index], lines[index+1:]...)

	if err := s.rewrite(lines); err != nil {
		return "", err
	}
	return removed, nil
}

func (s *Store) rewrite(lines []string) error {
	f, err := os.Create(s.path)
	if err != nil {
		return ioError(err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err = w.WriteString(line + "\n"); err != nil {
			break
		}
	}
	if err == nil {
		err = w.Flush()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return ioError(err)
	}
	return nil
}

// SplitLines splits list file contents into lines without terminators. A
// trailing newline does not produce an empty final line; blank lines in the
// middle of the file are kept.
func SplitLines(data []byte) []string {
	if len(data) == 0 {
		return []string{}
	}

	data = bytes.TrimSuffix(data, []byte("\n"))
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func ioError(err error) error {
	return fmt.Errorf("%w: %w", todo.ErrIO, err)
}
