// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package models

import (
	"github.com/js-arias/skytree/simulate"
	"github.com/js-arias/skytree/skyline"
)

const superspreaderState = "S"

// BDSSConfig configures BDSS: two states, regular infectious (I) and
// superspreader (S).
type BDSSConfig struct {
	InitState             string // "I" or "S"
	ReproductionNumber     any
	InfectiousPeriod       any
	SuperspreadingRatio    any
	SuperspreadersFraction any
	SamplingProportion     any

	InitMetadata map[string]any
	Seed         uint64
}

// BDSS returns a two-state (I, S) model apportioning a single basic
// reproduction number across regular and superspreading transmission:
//
//	R_IS = R*f / (1 + r*f - f)
//	R_SI = (R - r*R_IS) * r
//	R_S  = r*R_IS
//	R_I  = R_SI / r
//
// where r is the superspreading ratio and f the superspreader
// fraction of the population.
func BDSS(cfg BDSSConfig) (*simulate.State, error) {
	r, err := skyline.ParameterOf(cfg.ReproductionNumber)
	if err != nil {
		return nil, err
	}
	rSS, err := skyline.ParameterOf(cfg.SuperspreadingRatio)
	if err != nil {
		return nil, err
	}
	fSS, err := skyline.ParameterOf(cfg.SuperspreadersFraction)
	if err != nil {
		return nil, err
	}
	become, err := reciprocal(cfg.InfectiousPeriod)
	if err != nil {
		return nil, err
	}
	p, err := skyline.ParameterOf(cfg.SamplingProportion)
	if err != nil {
		return nil, err
	}

	one := skyline.Const(1)
	rISNumer := r.Mul(fSS)
	rISDenom := one.Add(rSS.Mul(fSS)).Sub(fSS)
	rIS := rISNumer.Div(rISDenom)
	rSI := r.Sub(rSS.Mul(rIS)).Mul(rSS)
	rS := rSS.Mul(rIS)
	rI := rSI.Div(rSS)

	return Epidemiological(EpidemiologicalConfig{
		States:                         []string{infectiousState, superspreaderState},
		InitState:                      cfg.InitState,
		ReproductionNumbers:            []skyline.Parameter{rI, rS},
		BecomeUninfectiousRates:        become,
		SamplingProportions:            p,
		ReproductionNumbersAmongStates: [][]skyline.Parameter{{rIS}, {rSI}},
		InitMetadata:                   cfg.InitMetadata,
		Seed:                           cfg.Seed,
	})
}
