package satmatrix

import "github.com/polydd/polydd/bitset"

// Matrix is a rectangular matrix of bits, one bitset.Set per row. Rows
// are addressed 0..NumRows()-1, columns 0..NumCols()-1.
type Matrix struct {
	rows []*bitset.Set
	cols int
}

// New allocates an nRows x nCols all-zero matrix.
func New(nRows, nCols int) *Matrix {
	m := &Matrix{rows: make([]*bitset.Set, nRows), cols: nCols}
	for i := range m.rows {
		m.rows[i] = bitset.New(nCols)
	}
	return m
}

// NumRows returns the row count.
func (m *Matrix) NumRows() int { return len(m.rows) }

// NumCols returns the column count.
func (m *Matrix) NumCols() int { return m.cols }

// Get reports whether bit (r, c) is set.
func (m *Matrix) Get(r, c int) bool { return m.rows[r].Test(c) }

// Set sets bit (r, c).
func (m *Matrix) Set(r, c int) { m.rows[r].Set(c) }

// Clear clears bit (r, c).
func (m *Matrix) Clear(r, c int) { m.rows[r].Clear(c) }

// Row returns the bitset.Set backing row r. Callers must not retain it
// past the next structural mutation of m.
func (m *Matrix) Row(r int) *bitset.Set { return m.rows[r] }

// AppendRow appends an all-zero row and returns its index.
func (m *Matrix) AppendRow() int {
	m.rows = append(m.rows, bitset.New(m.cols))
	return len(m.rows) - 1
}

// AppendRowWith appends a row initialized to bits (a clone of bits).
func (m *Matrix) AppendRowWith(bits *bitset.Set) int {
	r := bits.Clone()
	r.Grow(m.cols)
	m.rows = append(m.rows, r)
	return len(m.rows) - 1
}

// AppendCol appends a new all-zero column to every row and returns its index.
func (m *Matrix) AppendCol() int {
	m.cols++
	for _, row := range m.rows {
		row.Grow(m.cols)
	}
	return m.cols - 1
}

// RemoveRows deletes the rows at the given indices (any order,
// duplicates tolerated), shifting remaining rows down to stay dense.
func (m *Matrix) RemoveRows(idx ...int) {
	if len(idx) == 0 {
		return
	}
	drop := make(map[int]bool, len(idx))
	for _, i := range idx {
		drop[i] = true
	}
	out := m.rows[:0]
	for i, row := range m.rows {
		if !drop[i] {
			out = append(out, row)
		}
	}
	m.rows = out
}

// RemoveCols deletes the given columns from every row, shifting the
// remaining columns down to stay dense (0..newCols-1).
func (m *Matrix) RemoveCols(idx ...int) {
	if len(idx) == 0 {
		return
	}
	drop := make(map[int]bool, len(idx))
	for _, i := range idx {
		drop[i] = true
	}
	keep := make([]int, 0, m.cols-len(idx))
	for c := 0; c < m.cols; c++ {
		if !drop[c] {
			keep = append(keep, c)
		}
	}
	newRows := make([]*bitset.Set, len(m.rows))
	for ri, row := range m.rows {
		nr := bitset.New(len(keep))
		for nc, oc := range keep {
			if row.Test(oc) {
				nr.Set(nc)
			}
		}
		newRows[ri] = nr
	}
	m.rows = newRows
	m.cols = len(keep)
}

// Transpose returns a new Matrix with rows and columns swapped:
// result[c][r] == m[r][c].
func (m *Matrix) Transpose() *Matrix {
	t := New(m.cols, len(m.rows))
	for r := 0; r < len(m.rows); r++ {
		for c, ok := m.rows[r].Next(0); ok; c, ok = m.rows[r].Next(c + 1) {
			t.Set(c, r)
		}
	}
	return t
}

// Clone returns a deep, independent copy of m.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: make([]*bitset.Set, len(m.rows)), cols: m.cols}
	for i, row := range m.rows {
		c.rows[i] = row.Clone()
	}
	return c
}

// EqualsTranspose reports whether m is exactly the transpose of other,
// the duality invariant of §3.3 and §8.1 ("sat_c and sat_g are mutual
// transposes").
func (m *Matrix) EqualsTranspose(other *Matrix) bool {
	if m.NumRows() != other.NumCols() || m.NumCols() != other.NumRows() {
		return false
	}
	return m.Transpose().equalRows(other)
}

func (m *Matrix) equalRows(other *Matrix) bool {
	if len(m.rows) != len(other.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(other.rows[i]) {
			return false
		}
	}
	return true
}
