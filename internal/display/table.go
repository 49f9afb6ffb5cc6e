package display

// Table is the tabular structure handed to a Sink. Rows are pre-formatted
// strings; truncation and row capping happen at render time based on the
// ambient Settings, not here.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table with the given title and columns.
func NewTable(title string, columns ...string) *Table {
	return &Table{
		Title:   title,
		Columns: columns,
	}
}

// Append adds one row. Short rows are padded with empty cells so every row
// matches the column count.
func (t *Table) Append(cells ...string) {
	for len(cells) < len(t.Columns) {
		cells = append(cells, "")
	}
	t.Rows = append(t.Rows, cells)
}
