package internal

import (
	"bytes"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// Version is the locconv release, overridden at build time via -ldflags
var Version = "dev"

// WriteFileAtomic replaces path with data through a temporary file in the
// same directory, so readers never observe a partially written file.
// perm applies when the file is created; an existing file keeps its mode.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	_, statErr := os.Stat(path)
	created := os.IsNotExist(statErr)

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}

	if created {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("failed to set permissions: %w", err)
		}
	}
	return nil
}
