package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateLocaleDirectory writes one file per entry of files (file name to
// content) into a fresh temporary directory and returns its path
func CreateLocaleDirectory(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		CreateTestFile(t, filepath.Join(dir, name), []byte(content))
	}

	return dir
}

// ReadFile returns the content of path as a string
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has expected content
func AssertFileContent(t *testing.T, path string, expected []byte) {
	t.Helper()

	actual, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !bytes.Equal(actual, expected) {
		t.Errorf("File content mismatch in %s\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}

// CompareDirectories checks that two directories hold the same files with
// byte-identical content
func CompareDirectories(t *testing.T, dir1, dir2 string) {
	t.Helper()

	entries1, err := os.ReadDir(dir1)
	if err != nil {
		t.Fatalf("Failed to read directory %s: %v", dir1, err)
	}
	entries2, err := os.ReadDir(dir2)
	if err != nil {
		t.Fatalf("Failed to read directory %s: %v", dir2, err)
	}

	if len(entries1) != len(entries2) {
		t.Errorf("Entry count mismatch: %d in %s vs %d in %s", len(entries1), dir1, len(entries2), dir2)
	}

	for _, entry := range entries1 {
		path2 := filepath.Join(dir2, entry.Name())
		if _, err := os.Stat(path2); err != nil {
			t.Errorf("File missing in second directory: %s", entry.Name())
			continue
		}
		if entry.IsDir() {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir1, entry.Name()))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", entry.Name(), err)
		}
		AssertFileContent(t, path2, content)
	}
}
