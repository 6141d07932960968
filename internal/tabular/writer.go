package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"codeberg.org/snonux/locconv/internal"
	"codeberg.org/snonux/locconv/internal/translation"
)

const (
	dirPermissions  = 0755
	filePermissions = 0644
)

// Write serializes the table as CSV: the header first, then one record per
// row. Absent cells are written as empty fields.
func Write(w io.Writer, table *Table) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(table.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, column := range table.Columns {
			record[i], _ = row.Get(column)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile replaces the file at path with the serialized table, creating
// the parent directory when needed.
func WriteFile(path string, table *Table) error {
	var buf bytes.Buffer
	if err := Write(&buf, table); err != nil {
		return &translation.IOError{Op: "encode", Path: path, Err: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return &translation.IOError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	if err := internal.WriteFileAtomic(path, buf.Bytes(), filePermissions); err != nil {
		return &translation.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
