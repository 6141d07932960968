package translation

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage reports conflicting or missing command-line modes.
	ErrUsage = errors.New("usage error")
	// ErrSchema reports a tabular header without a usable id column.
	ErrSchema = errors.New("schema error")
	// ErrEmptyInput reports that there is nothing to convert.
	ErrEmptyInput = errors.New("empty input")
)

// ParseError reports malformed tabular or mapping input.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError reports a filesystem failure. Op names the attempted operation,
// for example "read", "write" or "mkdir".
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
