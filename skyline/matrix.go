// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package skyline

// A Matrix is a sequence of skyline vectors of uniform length: Rows()
// row-vectors, each of Cols() parameters.
type Matrix struct {
	rows []Vector
}

// NewMatrix builds a matrix from a sequence of equal-length row
// vectors. It returns a *ConfigError if the rows do not share a
// common length.
func NewMatrix(rows []Vector) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	cols := rows[0].Len()
	for i, r := range rows {
		if r.Len() != cols {
			return Matrix{}, configErrorf("matrix rows must have a common length (row 0 has %d, row %d has %d)", cols, i, r.Len())
		}
	}
	cp := make([]Vector, len(rows))
	copy(cp, rows)
	return Matrix{rows: cp}, nil
}

// ConstMatrix returns an m x n matrix in which every parameter is p.
func ConstMatrix(p Parameter, m, n int) Matrix {
	rows := make([]Vector, m)
	for i := range rows {
		rows[i] = ConstVector(p, n)
	}
	return Matrix{rows: rows}
}

// BroadcastAlongRows returns an m x v.Len() matrix in which every row
// equals v — the broadcast of a length-N vector over an M-row matrix.
func BroadcastAlongRows(v Vector, m int) Matrix {
	rows := make([]Vector, m)
	for i := range rows {
		rows[i] = v
	}
	return Matrix{rows: rows}
}

// BroadcastAlongColumns returns a v.Len() x n matrix in which row i is
// the constant v.At(i) repeated n times — the broadcast of a
// length-M vector over an N-column matrix.
func BroadcastAlongColumns(v Vector, n int) Matrix {
	rows := make([]Vector, v.Len())
	for i := range rows {
		rows[i] = ConstVector(v.At(i), n)
	}
	return Matrix{rows: rows}
}

// Rows returns the number of rows (M) of m.
func (m Matrix) Rows() int {
	return len(m.rows)
}

// Cols returns the number of columns (N) of m, or 0 for an empty
// matrix.
func (m Matrix) Cols() int {
	if len(m.rows) == 0 {
		return 0
	}
	return m.rows[0].Len()
}

// Row returns the i-th row vector of m.
func (m Matrix) Row(i int) Vector {
	return m.rows[i]
}

// At returns the parameter at row i, column j of m.
func (m Matrix) At(i, j int) Parameter {
	return m.rows[i].At(j)
}

// ChangeTimes returns the sorted union of the change times of every
// parameter in m.
func (m Matrix) ChangeTimes() []float64 {
	out := []float64{}
	for _, r := range m.rows {
		out = mergeChangeTimes(out, r.ChangeTimes())
	}
	return out
}

// GetValueAtTime returns the matrix of per-parameter values at time
// s. It returns a *ConfigError if s < 0.
func (m Matrix) GetValueAtTime(s float64) ([][]float64, error) {
	if s < 0 {
		return nil, configErrorf("time must be non-negative (got %v)", s)
	}
	out := make([][]float64, len(m.rows))
	for i, r := range m.rows {
		out[i], _ = r.GetValueAtTime(s)
	}
	return out, nil
}

// operate applies fn elementwise to m and other, which must have the
// same shape.
func (m Matrix) operate(other Matrix, fn func(a, b Parameter) Parameter) (Matrix, error) {
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return Matrix{}, configErrorf("matrix dimensions must match (got %dx%d and %dx%d)", m.Rows(), m.Cols(), other.Rows(), other.Cols())
	}
	rows := make([]Vector, m.Rows())
	for i := range m.rows {
		rows[i], _ = m.rows[i].operate(other.rows[i], fn)
	}
	return Matrix{rows: rows}, nil
}

// Add returns m + other, elementwise, requiring matching shapes.
func (m Matrix) Add(other Matrix) (Matrix, error) { return m.operate(other, Parameter.Add) }

// Sub returns m - other, elementwise, requiring matching shapes.
func (m Matrix) Sub(other Matrix) (Matrix, error) { return m.operate(other, Parameter.Sub) }

// Mul returns m * other, elementwise, requiring matching shapes.
func (m Matrix) Mul(other Matrix) (Matrix, error) { return m.operate(other, Parameter.Mul) }

// Div returns m / other, elementwise, requiring matching shapes.
func (m Matrix) Div(other Matrix) (Matrix, error) { return m.operate(other, Parameter.Div) }

// broadcastVector expands v to m's shape, following the broadcasting
// rules in spec §3: a length-N vector broadcasts along rows, a
// length-M vector broadcasts along columns. It returns a *ConfigError
// if v matches neither dimension.
func (m Matrix) broadcastVector(v Vector) (Matrix, error) {
	switch v.Len() {
	case m.Cols():
		return BroadcastAlongRows(v, m.Rows()), nil
	case m.Rows():
		return BroadcastAlongColumns(v, m.Cols()), nil
	default:
		return Matrix{}, configErrorf("cannot broadcast vector of length %d to matrix shape %dx%d", v.Len(), m.Rows(), m.Cols())
	}
}

// AddVector returns m + v, broadcasting v along rows or columns as
// its length dictates.
func (m Matrix) AddVector(v Vector) (Matrix, error) {
	bm, err := m.broadcastVector(v)
	if err != nil {
		return Matrix{}, err
	}
	return m.Add(bm)
}

// SubVector returns m - v, broadcasting v along rows or columns as
// its length dictates.
func (m Matrix) SubVector(v Vector) (Matrix, error) {
	bm, err := m.broadcastVector(v)
	if err != nil {
		return Matrix{}, err
	}
	return m.Sub(bm)
}

// MulVector returns m * v, broadcasting v along rows or columns as
// its length dictates.
func (m Matrix) MulVector(v Vector) (Matrix, error) {
	bm, err := m.broadcastVector(v)
	if err != nil {
		return Matrix{}, err
	}
	return m.Mul(bm)
}

// DivVector returns m / v, broadcasting v along rows or columns as
// its length dictates.
func (m Matrix) DivVector(v Vector) (Matrix, error) {
	bm, err := m.broadcastVector(v)
	if err != nil {
		return Matrix{}, err
	}
	return m.Div(bm)
}

// AddParameter returns m with p added to every element.
func (m Matrix) AddParameter(p Parameter) Matrix {
	out, _ := m.Add(ConstMatrix(p, m.Rows(), m.Cols()))
	return out
}

// SubParameter returns m with p subtracted from every element.
func (m Matrix) SubParameter(p Parameter) Matrix {
	out, _ := m.Sub(ConstMatrix(p, m.Rows(), m.Cols()))
	return out
}

// MulParameter returns m with every element multiplied by p.
func (m Matrix) MulParameter(p Parameter) Matrix {
	out, _ := m.Mul(ConstMatrix(p, m.Rows(), m.Cols()))
	return out
}

// DivParameter returns m with every element divided by p.
func (m Matrix) DivParameter(p Parameter) Matrix {
	out, _ := m.Div(ConstMatrix(p, m.Rows(), m.Cols()))
	return out
}

// Equal reports whether m and other are structurally equal, element
// by element, in canonical form.
func (m Matrix) Equal(other Matrix) bool {
	if m.Rows() != other.Rows() {
		return false
	}
	for i, r := range m.rows {
		if !r.Equal(other.rows[i]) {
			return false
		}
	}
	return true
}

// Nonzero reports whether any parameter of m is non-zero.
func (m Matrix) Nonzero() bool {
	for _, r := range m.rows {
		if r.Nonzero() {
			return true
		}
	}
	return false
}

// Serialize returns a single serialized parameter if every element of
// m is equal, or a map keyed "i->j" (1-based) to each element's
// serialized form otherwise.
func (m Matrix) Serialize() any {
	if len(m.rows) == 0 {
		return nil
	}
	first := m.rows[0].At(0)
	allEqual := true
outer:
	for _, r := range m.rows {
		for _, p := range r.Params() {
			if !p.Equal(first) {
				allEqual = false
				break outer
			}
		}
	}
	if allEqual {
		return first.Serialize()
	}
	out := make(map[string]any, m.Rows()*m.Cols())
	for i, r := range m.rows {
		for j, p := range r.Params() {
			out[positionalKey(i)+"->"+positionalKey(j)] = p.Serialize()
		}
	}
	return out
}
