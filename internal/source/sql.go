package source

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// loadSQL runs a query against a SQLite database file and renders the
// result set as aligned text lines: a header row, a separator, then one
// line per row. NULLs render as empty cells.
func (l *Loader) loadSQL(dsn, query string) ([]string, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", query, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", query, err)
	}

	table := [][]string{cols}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = formatSQLValue(v)
		}
		table = append(table, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query %q: %w", query, err)
	}
	if len(table) == 1 && len(cols) == 0 {
		return nil, fmt.Errorf("%q: %w", query, ErrNoLines)
	}

	return renderTable(table), nil
}

func formatSQLValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// renderTable left-aligns each column to its widest cell and inserts a
// dashed separator under the header.
func renderTable(table [][]string) []string {
	widths := make([]int, len(table[0]))
	for _, row := range table {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	formatRow := func(row []string) string {
		parts := make([]string, len(row))
		for i, cell := range row {
			parts[i] = cell + strings.Repeat(" ", widths[i]-len(cell))
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	lines := make([]string, 0, len(table)+1)
	lines = append(lines, formatRow(table[0]))

	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	lines = append(lines, strings.TrimRight(strings.Join(dashes, "  "), " "))

	for _, row := range table[1:] {
		lines = append(lines, formatRow(row))
	}
	return lines
}
