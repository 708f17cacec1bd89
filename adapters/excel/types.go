package excel

// RawSheet is a header row plus data rows as read from the source, before typing
type RawSheet struct {
	Headers []string   // Column headers, trimmed and de-duplicated
	Rows    [][]string // Data rows, each padded or cut to len(Headers)
}

// Column returns the raw cells of column j
func (s *RawSheet) Column(j int) []string {
	cells := make([]string, len(s.Rows))
	for i, row := range s.Rows {
		cells[i] = row[j]
	}
	return cells
}
