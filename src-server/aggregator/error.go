package aggregator

import (
	"fmt"
	"sort"
	"strings"
)

// A static table that could be read but not understood. Unlike transport
// failures these are returned to the caller, since the bundled data itself
// is broken.
type TableError struct {
	msg  string
	args map[string]any
}

// Create a new table error. An "error" arg is exposed through Unwrap.
func NewTableError(msg string, args map[string]any) *TableError {
	if args == nil {
		args = make(map[string]any)
	}
	return &TableError{
		msg:  msg,
		args: args,
	}
}

// Get the error message, args sorted by key
func (e *TableError) Error() string {
	keys := make([]string, 0, len(e.args))
	for key := range e.args {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(e.msg)
	if len(keys) > 0 {
		sb.WriteString(" |")
	}
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf(" %s: %v", key, e.args[key]))
	}
	return sb.String()
}

// Get a single detail of the error
func (e *TableError) Arg(key string) any {
	return e.args[key]
}

func (e *TableError) Unwrap() error {
	if err, ok := e.args["error"].(error); ok {
		return err
	}
	return nil
}
