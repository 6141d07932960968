package processor

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/locconv/internal/schema"
	"codeberg.org/snonux/locconv/internal/tabular"
	"codeberg.org/snonux/locconv/internal/translation"
)

// KeyColumn is the id column written to tabular output
const KeyColumn = "key"

// ToMappings builds one mapping per locale column of table. Cell values are
// trimmed; absent cells store nothing. When a key repeats, the later row
// wins. Rows without a key are skipped.
func ToMappings(table *tabular.Table, classification schema.Classification, logger zerolog.Logger) (*translation.Catalog, error) {
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("%w: no data rows", translation.ErrEmptyInput)
	}

	catalog := translation.NewCatalog()
	for _, locale := range classification.Locales {
		catalog.Mapping(locale)
	}

	seen := make(map[string]int, len(table.Rows))
	for i, row := range table.Rows {
		key, ok := row.Get(classification.IDColumn)
		if !ok || strings.TrimSpace(key) == "" {
			logger.Warn().
				Int("row", i+1).
				Str("column", classification.IDColumn).
				Msg("Skipping row without key")
			continue
		}

		if previous, dup := seen[key]; dup {
			logger.Debug().
				Str("key", key).
				Int("row", i+1).
				Int("previous_row", previous).
				Msg("Duplicate key, later row wins")
		}
		seen[key] = i + 1

		for _, locale := range classification.Locales {
			value, ok := row.Get(locale)
			if !ok {
				continue
			}
			catalog.Mapping(locale).Set(key, strings.TrimSpace(value))
		}
	}

	return catalog, nil
}

// UnionKeys returns every key of catalog once, in the order first seen
// while walking the locales in load order
func UnionKeys(catalog *translation.Catalog) []string {
	var keys []string
	seen := make(map[string]struct{})

	for _, locale := range catalog.Locales() {
		m, _ := catalog.Lookup(locale)
		for _, key := range m.Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	return keys
}

// ToRows builds one tabular row per union key with a column per locale.
// A key missing from a locale leaves that cell absent.
func ToRows(catalog *translation.Catalog) (*tabular.Table, error) {
	locales := catalog.Locales()

	columns := make([]string, 0, len(locales)+1)
	columns = append(columns, KeyColumn)
	for _, locale := range locales {
		if locale == KeyColumn {
			return nil, fmt.Errorf("%w: locale %q collides with the %q column", translation.ErrSchema, locale, KeyColumn)
		}
		columns = append(columns, locale)
	}

	table := &tabular.Table{Columns: columns}
	for _, key := range UnionKeys(catalog) {
		row := tabular.Row{KeyColumn: key}
		for _, locale := range locales {
			m, _ := catalog.Lookup(locale)
			if value, ok := m.Get(key); ok {
				row[locale] = value
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
