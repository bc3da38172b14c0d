// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package skyline

// A Vector is an ordered sequence of skyline parameters.
type Vector struct {
	params []Parameter
}

// NewVector builds a vector from a sequence of parameters.
func NewVector(params []Parameter) Vector {
	cp := make([]Parameter, len(params))
	copy(cp, params)
	return Vector{params: cp}
}

// ConstVector returns a length-n vector in which every parameter is p.
// It is the building block used to broadcast a scalar over a vector or
// matrix shape.
func ConstVector(p Parameter, n int) Vector {
	ps := make([]Parameter, n)
	for i := range ps {
		ps[i] = p
	}
	return Vector{params: ps}
}

// Len returns the number of parameters in v.
func (v Vector) Len() int {
	return len(v.params)
}

// At returns the i-th parameter of v.
func (v Vector) At(i int) Parameter {
	return v.params[i]
}

// Params returns the parameters of v, in order.
func (v Vector) Params() []Parameter {
	out := make([]Parameter, len(v.params))
	copy(out, v.params)
	return out
}

// ChangeTimes returns the sorted union of the change times of every
// parameter in v.
func (v Vector) ChangeTimes() []float64 {
	out := []float64{}
	for _, p := range v.params {
		out = mergeChangeTimes(out, p.changeTimes)
	}
	return out
}

// GetValueAtTime returns the vector of per-parameter values at time s.
// It returns a *ConfigError if s < 0.
func (v Vector) GetValueAtTime(s float64) ([]float64, error) {
	if s < 0 {
		return nil, configErrorf("time must be non-negative (got %v)", s)
	}
	out := make([]float64, len(v.params))
	for i, p := range v.params {
		out[i] = p.valueAt(s)
	}
	return out, nil
}

// operate applies fn elementwise to v and other, which must have the
// same length.
func (v Vector) operate(other Vector, fn func(a, b Parameter) Parameter) (Vector, error) {
	if len(v.params) != len(other.params) {
		return Vector{}, configErrorf("cannot operate on vectors of different lengths: %d vs %d", len(v.params), len(other.params))
	}
	out := make([]Parameter, len(v.params))
	for i := range v.params {
		out[i] = fn(v.params[i], other.params[i])
	}
	return Vector{params: out}, nil
}

// Add returns v + other, elementwise. Add returns a *ConfigError if
// the vectors have different lengths; broadcast a scalar first with
// AddParameter.
func (v Vector) Add(other Vector) (Vector, error) {
	return v.operate(other, Parameter.Add)
}

// Sub returns v - other, elementwise.
func (v Vector) Sub(other Vector) (Vector, error) {
	return v.operate(other, Parameter.Sub)
}

// Mul returns v * other, elementwise.
func (v Vector) Mul(other Vector) (Vector, error) {
	return v.operate(other, Parameter.Mul)
}

// Div returns v / other, elementwise.
func (v Vector) Div(other Vector) (Vector, error) {
	return v.operate(other, Parameter.Div)
}

// AddParameter returns v with p added to every element (scalar
// broadcast).
func (v Vector) AddParameter(p Parameter) Vector {
	out, _ := v.operate(ConstVector(p, v.Len()), Parameter.Add)
	return out
}

// SubParameter returns v with p subtracted from every element.
func (v Vector) SubParameter(p Parameter) Vector {
	out, _ := v.operate(ConstVector(p, v.Len()), Parameter.Sub)
	return out
}

// MulParameter returns v with every element multiplied by p.
func (v Vector) MulParameter(p Parameter) Vector {
	out, _ := v.operate(ConstVector(p, v.Len()), Parameter.Mul)
	return out
}

// DivParameter returns v with every element divided by p.
func (v Vector) DivParameter(p Parameter) Vector {
	out, _ := v.operate(ConstVector(p, v.Len()), Parameter.Div)
	return out
}

// Equal reports whether v and other are structurally equal, element
// by element, in canonical form.
func (v Vector) Equal(other Vector) bool {
	if len(v.params) != len(other.params) {
		return false
	}
	for i, p := range v.params {
		if !p.Equal(other.params[i]) {
			return false
		}
	}
	return true
}

// Nonzero reports whether any parameter of v is non-zero.
func (v Vector) Nonzero() bool {
	for _, p := range v.params {
		if p.Nonzero() {
			return true
		}
	}
	return false
}

// Serialize returns a single serialized parameter if every element of
// v is equal, or a map from a 1-based positional key to each
// element's serialized form otherwise.
func (v Vector) Serialize() any {
	if len(v.params) == 0 {
		return nil
	}
	allEqual := true
	for _, p := range v.params[1:] {
		if !p.Equal(v.params[0]) {
			allEqual = false
			break
		}
	}
	if allEqual {
		return v.params[0].Serialize()
	}
	out := make(map[string]any, len(v.params))
	for i, p := range v.params {
		out[positionalKey(i)] = p.Serialize()
	}
	return out
}
