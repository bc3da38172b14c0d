// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package skyline implements piecewise-constant,
// right-continuous real functions of time
// — scalars, vectors, and matrices —
// closed under elementwise arithmetic and broadcasting.
//
// A skyline value is specified by a sequence of values
// and a strictly increasing sequence of positive change times;
// the value on [t_i, t_{i+1}) is v_i, with t_0 = 0 and t_{k+1} = +Inf.
// Every constructor and arithmetic operation returns a value
// in canonical form: no two adjacent values are equal.
package skyline
