package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Existing moves path, a file or a directory, into an "archive" directory
// next to it, named after path plus a timestamp. It returns the new location,
// or an empty string when path does not exist.
func Existing(path string) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to inspect %s: %w", path, err)
	}

	// Get parent directory and create archive path
	path = filepath.Clean(path)
	archiveDir := filepath.Join(filepath.Dir(path), "archive")

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", stem, time.Now().Format("20060102-150405"), ext))

	// Check if archive already exists (two runs within one second)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", stem, time.Now().Format("20060102-150405.000000"), ext))
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}

	return archivePath, nil
}
