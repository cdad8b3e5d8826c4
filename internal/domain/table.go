package domain

// Table is a sheet as read from or written to a backing file: a header row
// and string cells. Rows shorter than the header are padded on read.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Clone returns a deep copy of t.
func (t *Table) Clone() *Table {
	c := &Table{
		Name:   t.Name,
		Header: append([]string(nil), t.Header...),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, r := range t.Rows {
		c.Rows[i] = append([]string(nil), r...)
	}
	return c
}
