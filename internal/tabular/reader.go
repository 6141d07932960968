package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"codeberg.org/snonux/locconv/internal/translation"
)

// ReadFile parses the CSV file at path
func ReadFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &translation.IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	table, err := Read(file)
	if err != nil {
		return nil, &translation.ParseError{Path: path, Err: err}
	}
	return table, nil
}

// Read parses CSV from r. A leading byte order mark is dropped and header
// names are trimmed. Records shorter than the header leave the trailing
// cells absent; fields beyond the header are ignored. An input without a
// header yields an empty table.
func Read(r io.Reader) (*Table, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &Table{}, nil
	}
	if err != nil {
		return nil, err
	}

	table := &Table{}
	names := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		names[i] = name
		// Repeated header names collapse into one column; the rightmost cell wins.
		if !seen[name] {
			seen[name] = true
			table.Columns = append(table.Columns, name)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(Row, len(names))
		for i, field := range record {
			if i >= len(names) {
				break
			}
			row[names[i]] = field
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
