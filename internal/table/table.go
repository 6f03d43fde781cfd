package table

// Table is an in-memory sheet: rows of cells, possibly ragged.
type Table struct {
	Rows [][]Cell
}

// NumRows returns the number of rows in the table.
func (t Table) NumRows() int { return len(t.Rows) }

// At returns the cell at (row, col), or a blank cell when either index is
// out of range. Ragged source rows therefore read as blank-padded.
func (t Table) At(row, col int) Cell {
	if row < 0 || row >= len(t.Rows) {
		return Cell{}
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return Cell{}
	}
	return r[col]
}
