package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/todolist/internal/core/todo"
	"github.com/hay-kot/todolist/internal/todolist"
)

type testCLI struct {
	out        *bytes.Buffer
	errOut     *bytes.Buffer
	in         *strings.Reader
	listPath   string
	configPath string
	app        *todolist.App
	flags      *Flags

	// homeless omits --file so the list path comes from home directory
	// resolution.
	homeless bool
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	dir := t.TempDir()
	return &testCLI{
		out:        &bytes.Buffer{},
		errOut:     &bytes.Buffer{},
		in:         strings.NewReader(""),
		listPath:   filepath.Join(dir, todo.DefaultFileName),
		configPath: filepath.Join(dir, "config.yaml"),
	}
}

// run executes a fresh command tree, as a new process would, and returns what
// the invocation printed.
func (tc *testCLI) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	tc.flags = &Flags{}
	tc.app = &todolist.App{}

	root := NewRootCmd(tc.flags, tc.app, "test")
	root.Writer = tc.out
	root.ErrWriter = tc.errOut
	root.Reader = tc.in

	root = NewNewCmd(tc.flags, tc.app).Register(root)
	root = NewListCmd(tc.flags, tc.app).Register(root)
	root = NewAddCmd(tc.flags, tc.app).Register(root)
	root = NewCopyCmd(tc.flags, tc.app).Register(root)
	root = NewDeleteCmd(tc.flags, tc.app).Register(root)
	root = NewConfigCmd(tc.flags, tc.app).Register(root)

	tc.out.Reset()
	tc.errOut.Reset()
	full := []string{"todolist", "--config", tc.configPath}
	if !tc.homeless {
		full = append(full, "--file", tc.listPath)
	}
	full = append(full, args...)
	err := root.Run(context.Background(), full)
	return tc.out.String(), err
}

func (tc *testCLI) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := tc.run(t, args...)
	require.NoError(t, err)
	return out
}

func TestCLI_NewThenList(t *testing.T) {
	tc := newTestCLI(t)

	assert.Equal(t, "Created new todo list\n", tc.mustRun(t, "new"))
	assert.Empty(t, tc.mustRun(t, "list"))
}

func TestCLI_AddThenList(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")

	assert.Empty(t, tc.mustRun(t, "add", "buy", "milk"))
	tc.mustRun(t, "add", "walk the dog")

	assert.Equal(t, "0. buy milk\n1. walk the dog\n", tc.mustRun(t, "list"))
}

func TestCLI_AddItemStartingWithDash(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")

	tc.mustRun(t, "add", "-5", "degrees")

	assert.Equal(t, "0. -5 degrees\n", tc.mustRun(t, "list"))
}

func TestCLI_Delete(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")
	for _, item := range []string{"a", "b", "c"} {
		tc.mustRun(t, "add", item)
	}

	tc.mustRun(t, "delete", "1")

	assert.Equal(t, "0. a\n1. c\n", tc.mustRun(t, "list"))
}

func TestCLI_DeleteOutOfBounds(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")
	tc.mustRun(t, "add", "a")

	_, err := tc.run(t, "delete", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, todo.ErrIndexOutOfBounds)
	assert.True(t, strings.HasPrefix(err.Error(), "application error: "), err.Error())

	assert.Equal(t, "0. a\n", tc.mustRun(t, "list"))
}

func TestCLI_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: todo.ErrUsage},
		{name: "add without item", args: []string{"add"}, wantErr: todo.ErrUsage},
		{name: "copy without path", args: []string{"copy"}, wantErr: todo.ErrUsage},
		{name: "delete without index", args: []string{"delete"}, wantErr: todo.ErrUsage},
		{name: "delete non-numeric", args: []string{"delete", "one"}, wantErr: todo.ErrParse},
		{name: "delete negative", args: []string{"delete", "-1"}, wantErr: todo.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCLI(t)

			_, err := tc.run(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, strings.HasPrefix(err.Error(), "problem parsing arguments: "), err.Error())
		})
	}
}

func TestCLI_UnrecognizedCommand(t *testing.T) {
	for _, name := range []string{"frobnicate", "help", "h", "completion", "LIST"} {
		t.Run(name, func(t *testing.T) {
			tc := newTestCLI(t)

			out, err := tc.run(t, name)
			require.Error(t, err)
			assert.ErrorIs(t, err, todo.ErrUnrecognizedCommand)
			assert.Contains(t, err.Error(), todo.Usage)
			assert.True(t, strings.HasPrefix(err.Error(), "application error: "), err.Error())
			assert.Empty(t, out)
		})
	}
}

func TestCLI_AddReservedWords(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")

	tc.mustRun(t, "add", "help")
	tc.mustRun(t, "add", "h", "me")

	assert.Equal(t, "0. help\n1. h me\n", tc.mustRun(t, "list"))
}

func TestCLI_ListWithoutNew(t *testing.T) {
	tc := newTestCLI(t)

	_, err := tc.run(t, "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, todo.ErrIO)
}

func TestCLI_Copy(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")
	tc.mustRun(t, "add", "existing")

	src := filepath.Join(t.TempDir(), "groceries")
	require.NoError(t, os.WriteFile(src, []byte("x\ny\n"), 0o644))

	tc.mustRun(t, "copy", src, "ignored")

	data, err := os.ReadFile(tc.listPath)
	require.NoError(t, err)
	assert.Equal(t, "existing\nx\ny\n", string(data))
}

func TestCLI_CopyStdin(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")

	tc.in = strings.NewReader("piped item\n")
	tc.mustRun(t, "copy", "-")

	assert.Equal(t, "0. piped item\n", tc.mustRun(t, "list"))
}

func TestCLI_ListRaw(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")
	tc.mustRun(t, "add", "a")
	tc.mustRun(t, "add", "b")

	assert.Equal(t, "a\nb\n", tc.mustRun(t, "list", "--raw"))
}

func TestCLI_ListJSON(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")
	tc.mustRun(t, "add", "a")
	tc.mustRun(t, "add", "b")

	out := tc.mustRun(t, "list", "--json")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var entry todo.Entry
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, todo.Entry{Position: 1, Text: "b"}, entry)
}

func TestCLI_ListRawAndJSON(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")

	_, err := tc.run(t, "list", "--raw", "--json")
	assert.Error(t, err)
}

func TestCLI_ConfigStyleRaw(t *testing.T) {
	tc := newTestCLI(t)
	require.NoError(t, os.WriteFile(tc.configPath, []byte("list:\n  style: raw\n"), 0o644))
	tc.mustRun(t, "new")
	tc.mustRun(t, "add", "a")

	assert.Equal(t, "a\n", tc.mustRun(t, "list"))
}

func TestCLI_InvalidConfig(t *testing.T) {
	tc := newTestCLI(t)
	require.NoError(t, os.WriteFile(tc.configPath, []byte("list:\n  style: fancy\n"), 0o644))

	_, err := tc.run(t, "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")

	_, statErr := os.Stat(tc.listPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCLI_ConfigPath(t *testing.T) {
	tc := newTestCLI(t)

	out := tc.mustRun(t, "config", "path")

	assert.Contains(t, out, "config: "+tc.configPath)
	assert.Contains(t, out, "list:   "+tc.listPath)
}

func TestCLI_ConfigShow(t *testing.T) {
	tc := newTestCLI(t)

	out := tc.mustRun(t, "config", "show", "--format", "json")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, todo.DefaultFileName, got["file_name"])

	out = tc.mustRun(t, "config", "show")
	assert.Contains(t, out, "file_name: todo_list")

	_, err := tc.run(t, "config", "show", "--format", "toml")
	assert.Error(t, err)
}

func TestPositionCompleter(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")
	tc.mustRun(t, "add", "a")
	tc.mustRun(t, "add", "b")

	var buf bytes.Buffer
	cmd := &cli.Command{Name: "delete", Writer: &buf}

	PositionCompleter(tc.app)(context.Background(), cmd)

	assert.Equal(t, "0\n1\n", buf.String())
}

func TestPositionCompleter_UnreadableList(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "config", "path")

	var buf bytes.Buffer
	cmd := &cli.Command{Name: "delete", Writer: &buf}

	PositionCompleter(tc.app)(context.Background(), cmd)

	assert.Empty(t, buf.String())
}

func TestFormatError_NonTerminal(t *testing.T) {
	err := todo.UnrecognizedError("frobnicate")

	assert.Equal(t, err.Error(), FormatError(&bytes.Buffer{}, err))
}

func TestCLI_HomeFallbackNotice(t *testing.T) {
	t.Setenv("HOME", "")
	t.Chdir(t.TempDir())

	tc := newTestCLI(t)
	tc.homeless = true

	assert.Equal(t, todo.HomeNotice+"\nCreated new todo list\n", tc.mustRun(t, "new"))
	_, err := os.Stat(todo.DefaultFileName)
	require.NoError(t, err)

	tc.mustRun(t, "add", "a")

	out := tc.mustRun(t, "list", "--json")
	var entry todo.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	assert.Equal(t, todo.Entry{Position: 0, Text: "a"}, entry)
	assert.Equal(t, todo.HomeNotice+"\n", tc.errOut.String())

	out = tc.mustRun(t, "config", "show", "--format", "json")
	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
}

func TestCLI_ListJSONLogsCommand(t *testing.T) {
	tc := newTestCLI(t)
	tc.mustRun(t, "new")
	tc.mustRun(t, "add", "a")

	logFile := filepath.Join(t.TempDir(), "todolist.log")
	tc.mustRun(t, "--log-level", "debug", "--log-file", logFile, "list", "--json")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)

	var found bool
	for _, line := range bytes.Split(bytes.TrimSpace(data), []byte("\n")) {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		if entry["message"] == "listing items as json" {
			found = true
			assert.Equal(t, "list", entry["command"])
			assert.Equal(t, tc.listPath, entry["list_path"])
		}
	}
	assert.True(t, found, "expected a debug line for the json listing")
}
