// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package models

import "github.com/js-arias/skytree/skyline"

// reciprocal resolves x to a scalar parameter and returns its
// reciprocal 1/x, the become-uninfectious-rate idiom every
// period-parameterized factory (BD, BDEI, BDSS) shares.
func reciprocal(x any) (skyline.Parameter, error) {
	p, err := skyline.ParameterOf(x)
	if err != nil {
		return skyline.Parameter{}, err
	}
	return skyline.Const(1).Div(p), nil
}
