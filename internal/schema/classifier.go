package schema

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/locconv/internal/translation"
)

// reservedPrefix marks metadata columns that never become locales
const reservedPrefix = "_"

// DefaultIDColumns are the column names recognised as the key column
var DefaultIDColumns = []string{"id", "key", "hash"}

// Classification is the result of inspecting a header row
type Classification struct {
	IDColumn string
	Locales  []string
}

// Classifier detects the id column and the locale columns of a header
type Classifier struct {
	idNames map[string]struct{}
}

// NewClassifier creates a classifier for the given reserved id names.
// An empty list falls back to DefaultIDColumns.
func NewClassifier(idNames []string) *Classifier {
	if len(idNames) == 0 {
		idNames = DefaultIDColumns
	}

	names := make(map[string]struct{}, len(idNames))
	for _, name := range idNames {
		names[name] = struct{}{}
	}

	return &Classifier{idNames: names}
}

// Classify picks the id column of header and returns every other column that
// is not reserved as a locale, in header order. Blank column names, as left
// by a trailing comma in the header, are reserved too.
//
// An exact match on a reserved id name wins over an underscore-prefixed one,
// so ["_id", "key", "en"] selects "key".
func (c *Classifier) Classify(header []string) (Classification, error) {
	if len(header) == 0 {
		return Classification{}, fmt.Errorf("%w: header has no columns", translation.ErrSchema)
	}

	idColumn, ok := c.findIDColumn(header)
	if !ok {
		return Classification{}, fmt.Errorf("%w: no id column in header %v", translation.ErrSchema, header)
	}

	var locales []string
	for _, column := range header {
		if column == idColumn || isReserved(column) {
			continue
		}
		locales = append(locales, column)
	}

	return Classification{IDColumn: idColumn, Locales: locales}, nil
}

func (c *Classifier) findIDColumn(header []string) (string, bool) {
	for _, column := range header {
		if c.isIDName(column) {
			return column, true
		}
	}

	for _, column := range header {
		if name, found := strings.CutPrefix(column, reservedPrefix); found && c.isIDName(name) {
			return column, true
		}
	}

	return "", false
}

func (c *Classifier) isIDName(name string) bool {
	_, ok := c.idNames[name]
	return ok
}

func isReserved(column string) bool {
	return column == "" || strings.HasPrefix(column, reservedPrefix)
}
