// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package skyline

import "sort"

// A Parameter is a piecewise-constant, right-continuous real function
// of time: value v_i holds on [t_i, t_{i+1}), with t_0 = 0 and
// t_{k+1} = +Inf.
//
// A zero Parameter is not valid; use Const or New.
type Parameter struct {
	value       []float64
	changeTimes []float64
}

// Const returns a constant skyline parameter with the given value.
func Const(v float64) Parameter {
	return Parameter{value: []float64{v}}
}

// New builds a skyline parameter from a sequence of values and a
// strictly increasing sequence of positive change times. It returns a
// *ConfigError if len(values) != len(changeTimes)+1, if changeTimes is
// not strictly increasing, or if any change time is not positive.
//
// The result is canonicalized: adjacent equal values are collapsed.
func New(values, changeTimes []float64) (Parameter, error) {
	if len(values) != len(changeTimes)+1 {
		return Parameter{}, configErrorf("value must have exactly one more element than change_times (got %d values and %d change times)", len(values), len(changeTimes))
	}
	prev := 0.0
	for i, t := range changeTimes {
		if t <= 0 {
			return Parameter{}, configErrorf("change times must be positive (got %v at index %d)", t, i)
		}
		if i > 0 && t <= prev {
			return Parameter{}, configErrorf("change times must be strictly increasing (got %v after %v)", t, prev)
		}
		prev = t
	}
	return canonicalParameter(values, changeTimes), nil
}

// canonicalParameter builds a canonical Parameter from values already
// known to satisfy the length and monotonicity invariants.
func canonicalParameter(values, changeTimes []float64) Parameter {
	cv := make([]float64, 1, len(values))
	cv[0] = values[0]
	ct := make([]float64, 0, len(changeTimes))
	for i, t := range changeTimes {
		v := values[i+1]
		if v == cv[len(cv)-1] {
			continue
		}
		cv = append(cv, v)
		ct = append(ct, t)
	}
	return Parameter{value: cv, changeTimes: ct}
}

// ChangeTimes returns the sorted change times of p.
func (p Parameter) ChangeTimes() []float64 {
	out := make([]float64, len(p.changeTimes))
	copy(out, p.changeTimes)
	return out
}

// Values returns the piecewise values of p, in the order they apply
// from time 0 onward. len(Values()) == len(ChangeTimes())+1.
func (p Parameter) Values() []float64 {
	out := make([]float64, len(p.value))
	copy(out, p.value)
	return out
}

// GetValueAtTime returns the value of p at time s. It returns a
// *ConfigError if s < 0.
func (p Parameter) GetValueAtTime(s float64) (float64, error) {
	if s < 0 {
		return 0, configErrorf("time must be non-negative (got %v)", s)
	}
	return p.valueAt(s), nil
}

// valueAt is the unchecked lookup used internally, where s >= 0 is
// already guaranteed by the caller (0 or a merged change time).
func (p Parameter) valueAt(s float64) float64 {
	i := sort.SearchFloat64s(p.changeTimes, s)
	for i < len(p.changeTimes) && p.changeTimes[i] <= s {
		i++
	}
	return p.value[i]
}

// operate merges the change times of p and other, evaluates both
// pointwise at every boundary, and combines them with fn.
func (p Parameter) operate(other Parameter, fn func(a, b float64) float64) Parameter {
	boundaries := mergeChangeTimes(p.changeTimes, other.changeTimes)
	values := make([]float64, len(boundaries)+1)
	values[0] = fn(p.valueAt(0), other.valueAt(0))
	for i, t := range boundaries {
		values[i+1] = fn(p.valueAt(t), other.valueAt(t))
	}
	return canonicalParameter(values, boundaries)
}

// mergeChangeTimes returns the sorted union of two already-sorted,
// duplicate-free change-time slices.
func mergeChangeTimes(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Add returns p + other.
func (p Parameter) Add(other Parameter) Parameter {
	return p.operate(other, func(a, b float64) float64 { return a + b })
}

// Sub returns p - other.
func (p Parameter) Sub(other Parameter) Parameter {
	return p.operate(other, func(a, b float64) float64 { return a - b })
}

// Mul returns p * other.
func (p Parameter) Mul(other Parameter) Parameter {
	return p.operate(other, func(a, b float64) float64 { return a * b })
}

// Div returns p / other.
func (p Parameter) Div(other Parameter) Parameter {
	return p.operate(other, func(a, b float64) float64 { return a / b })
}

// Equal reports whether p and other are structurally equal in
// canonical form.
func (p Parameter) Equal(other Parameter) bool {
	if len(p.value) != len(other.value) || len(p.changeTimes) != len(other.changeTimes) {
		return false
	}
	for i, v := range p.value {
		if v != other.value[i] {
			return false
		}
	}
	for i, t := range p.changeTimes {
		if t != other.changeTimes[i] {
			return false
		}
	}
	return true
}

// Nonzero reports whether any value of p is non-zero (the skyline
// equivalent of Python's truthiness test).
func (p Parameter) Nonzero() bool {
	for _, v := range p.value {
		if v != 0 {
			return true
		}
	}
	return false
}

// IsConstant reports whether p has a single, unchanging value.
func (p Parameter) IsConstant() bool {
	return len(p.value) == 1
}

// Serial is the serialized form of a Parameter: a bare value when
// constant, or its value and change times otherwise.
type Serial struct {
	Value       []float64 `json:"value"`
	ChangeTimes []float64 `json:"change_times,omitempty"`
}

// Serialize returns either a bare float64 (if p is constant) or a
// Serial carrying its values and change times.
func (p Parameter) Serialize() any {
	if p.IsConstant() {
		return p.value[0]
	}
	return Serial{Value: p.Values(), ChangeTimes: p.ChangeTimes()}
}
