package translation

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected token")
	err := fmt.Errorf("failed to read locales: %w", &ParseError{Path: "locales/en.json", Err: cause})

	var perr *ParseError
	if assert.ErrorAs(t, err, &perr) {
		assert.Equal(t, "locales/en.json", perr.Path)
	}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "locales/en.json")
}

func TestIOError(t *testing.T) {
	err := &IOError{Op: "write", Path: "out/en.json", Err: fs.ErrPermission}

	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "failed to write out/en.json: permission denied", err.Error())
}

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("%w: no id column in header [name en]", ErrSchema)

	assert.ErrorIs(t, err, ErrSchema)
	assert.NotErrorIs(t, err, ErrEmptyInput)
}
