package logging

import "context"

type contextKey string

const (
	commandKey  contextKey = "command"
	listPathKey contextKey = "list_path"
)

// WithCommand adds the dispatched command name to the context.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// WithListPath adds the resolved list file path to the context.
func WithListPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, listPathKey, path)
}

// GetCommand retrieves the command name from the context.
// Returns empty string if not present.
func GetCommand(ctx context.Context) string {
	if v, ok := ctx.Value(commandKey).(string); ok {
		return v
	}
	return ""
}

// GetListPath retrieves the list file path from the context.
// Returns empty string if not present.
func GetListPath(ctx context.Context) string {
	if v, ok := ctx.Value(listPathKey).(string); ok {
		return v
	}
	return ""
}
