package report

import "fmt"

// Table is one rendered report: a service label, an optional caption, column
// headers, string cells and free-form summary lines printed after the rows.
type Table struct {
	Service string
	Caption string
	Headers []string
	Rows    [][]string
	Summary []string
}

func NewTable(service string, headers ...string) *Table {
	return &Table{Service: service, Headers: headers}
}

// AddRow appends a row, padding or truncating it to the header width.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.Headers))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

func (t *Table) AddSummary(format string, args ...any) {
	t.Summary = append(t.Summary, fmt.Sprintf(format, args...))
}

func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Title is the caption, or "<service>: <n> rows" when none is set.
func (t *Table) Title() string {
	if t.Caption != "" {
		return t.Caption
	}
	return fmt.Sprintf("%s: %d rows", t.Service, t.NumRows())
}

// Records returns the rows as header-keyed maps.
func (t *Table) Records() []map[string]string {
	records := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			record[h] = row[i]
		}
		records = append(records, record)
	}
	return records
}
