// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package skyline

import "strconv"

// positionalKey returns the 1-based serialization key for index i.
func positionalKey(i int) string {
	return strconv.Itoa(i + 1)
}

// ParameterOf is the sole factory through which a scalar parameter is
// resolved from a loosely-typed configuration value: a plain float64
// or an existing Parameter.
func ParameterOf(x any) (Parameter, error) {
	switch v := x.(type) {
	case nil:
		return Const(0), nil
	case float64:
		return Const(v), nil
	case Parameter:
		return v, nil
	default:
		return Parameter{}, configErrorf("unsupported parameter operand of type %T", x)
	}
}

// VectorOf is the sole factory through which a vector shape is
// resolved from a loosely-typed configuration value: a scalar real, a
// single Parameter, a list of parameters, or an existing Vector. It
// returns a *ConfigError if a list or Vector operand does not already
// have length n.
func VectorOf(x any, n int) (Vector, error) {
	switch v := x.(type) {
	case nil:
		return ConstVector(Const(0), n), nil
	case float64:
		return ConstVector(Const(v), n), nil
	case Parameter:
		return ConstVector(v, n), nil
	case []float64:
		if len(v) != n {
			return Vector{}, configErrorf("expected %d values, got %d", n, len(v))
		}
		params := make([]Parameter, n)
		for i, f := range v {
			params[i] = Const(f)
		}
		return NewVector(params), nil
	case []Parameter:
		if len(v) != n {
			return Vector{}, configErrorf("expected %d parameters, got %d", n, len(v))
		}
		return NewVector(v), nil
	case Vector:
		if v.Len() != n {
			return Vector{}, configErrorf("expected a vector of length %d, got %d", n, v.Len())
		}
		return v, nil
	default:
		return Vector{}, configErrorf("unsupported vector operand of type %T", x)
	}
}

// MatrixOf is the sole factory through which a matrix shape is
// resolved from a loosely-typed configuration value: a scalar real, a
// Parameter, a Vector (broadcast along rows or columns per its
// length), a row-major [][]float64/[][]Parameter, or an existing
// Matrix.
func MatrixOf(x any, rows, cols int) (Matrix, error) {
	switch v := x.(type) {
	case nil:
		return ConstMatrix(Const(0), rows, cols), nil
	case float64:
		return ConstMatrix(Const(v), rows, cols), nil
	case Parameter:
		return ConstMatrix(v, rows, cols), nil
	case Vector:
		switch v.Len() {
		case cols:
			return BroadcastAlongRows(v, rows), nil
		case rows:
			return BroadcastAlongColumns(v, cols), nil
		default:
			return Matrix{}, configErrorf("cannot broadcast vector of length %d to matrix shape %dx%d", v.Len(), rows, cols)
		}
	case [][]float64:
		if len(v) != rows {
			return Matrix{}, configErrorf("expected %d rows, got %d", rows, len(v))
		}
		rs := make([]Vector, rows)
		for i, row := range v {
			if len(row) != cols {
				return Matrix{}, configErrorf("expected %d columns, row %d has %d", cols, i, len(row))
			}
			params := make([]Parameter, cols)
			for j, f := range row {
				params[j] = Const(f)
			}
			rs[i] = NewVector(params)
		}
		return NewMatrix(rs)
	case [][]Parameter:
		if len(v) != rows {
			return Matrix{}, configErrorf("expected %d rows, got %d", rows, len(v))
		}
		rs := make([]Vector, rows)
		for i, row := range v {
			if len(row) != cols {
				return Matrix{}, configErrorf("expected %d columns, row %d has %d", cols, i, len(row))
			}
			rs[i] = NewVector(row)
		}
		return NewMatrix(rs)
	case Matrix:
		if v.Rows() != rows || v.Cols() != cols {
			return Matrix{}, configErrorf("expected a matrix of shape %dx%d, got %dx%d", rows, cols, v.Rows(), v.Cols())
		}
		return v, nil
	default:
		return Matrix{}, configErrorf("unsupported matrix operand of type %T", x)
	}
}
