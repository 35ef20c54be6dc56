// Package todo defines the todo list domain: typed commands, the error kinds an
// invocation can fail with, and the persistence interface for the list file.
package todo

// Usage is the one-line command summary attached to usage and dispatch errors.
const Usage = "Usage: list, new, add [name], copy [path], delete [index]"

// DefaultFileName is the list file name joined onto the storage directory.
const DefaultFileName = "todo_list"

// Kind names the operation a Command performs.
type Kind string

const (
	KindNew    Kind = "new"
	KindList   Kind = "list"
	KindAdd    Kind = "add"
	KindCopy   Kind = "copy"
	KindDelete Kind = "delete"
)

// IsValid reports whether k is one of the known command kinds.
// Matching is case sensitive.
func (k Kind) IsValid() bool {
	switch k {
	case KindNew, KindList, KindAdd, KindCopy, KindDelete:
		return true
	default:
		return false
	}
}

// Command is a validated invocation. Only the payload field belonging to Kind
// is meaningful: Item for add, Source for copy, Index for delete.
//
// A Command with an unknown Kind is still a valid parse result; it is rejected
// when dispatched.
type Command struct {
	Kind   Kind
	Item   string
	Source string
	Index  int
}

// Entry is a single list line paired with its zero-based position. Positions
// are recomputed on every load and are not stable across deletes.
type Entry struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
}

// Entries pairs every line with its position.
func Entries(lines []string) []Entry {
	entries := make([]Entry, len(lines))
	for i, line := range lines {
		entries[i] = Entry{Position: i, Text: line}
	}
	return entries
}
