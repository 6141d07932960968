package tabular

// Row is one record keyed by column name. A column missing from the map is
// an absent cell, which is different from a cell holding the empty string.
type Row map[string]string

// Get returns the cell for column and whether it is present
func (r Row) Get(column string) (string, bool) {
	value, ok := r[column]
	return value, ok
}

// Table is a parsed tabular file. Every row shares the Columns of the header.
type Table struct {
	Columns []string
	Rows    []Row
}
