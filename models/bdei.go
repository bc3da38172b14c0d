// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package models

import (
	"github.com/js-arias/skytree/simulate"
	"github.com/js-arias/skytree/skyline"
)

const exposedState = "E"

// BDEIConfig configures BDEI: two states, exposed (E, not yet
// infectious) and infectious (I).
type BDEIConfig struct {
	InitState          string // "E" or "I"
	ReproductionNumber any
	InfectiousPeriod   any
	IncubationPeriod   any
	SamplingProportion any

	InitMetadata map[string]any
	Seed         uint64
}

// BDEI returns a two-state (E, I) model: new infections migrate from
// E to I at rate 1/incubation_period, sampling only occurs in I, and
// cross-births occur I -> (I, E) at reproduction_number/infectious_period.
func BDEI(cfg BDEIConfig) (*simulate.State, error) {
	become, err := reciprocal(cfg.InfectiousPeriod)
	if err != nil {
		return nil, err
	}
	migration, err := reciprocal(cfg.IncubationPeriod)
	if err != nil {
		return nil, err
	}
	r, err := skyline.ParameterOf(cfg.ReproductionNumber)
	if err != nil {
		return nil, err
	}
	p, err := skyline.ParameterOf(cfg.SamplingProportion)
	if err != nil {
		return nil, err
	}
	zero := skyline.Const(0)

	return Epidemiological(EpidemiologicalConfig{
		States:                          []string{exposedState, infectiousState},
		InitState:                       cfg.InitState,
		ReproductionNumbers:             []skyline.Parameter{zero, zero},
		BecomeUninfectiousRates:         []skyline.Parameter{zero, become},
		SamplingProportions:             []skyline.Parameter{zero, p},
		MigrationRates:                  [][]skyline.Parameter{{migration}, {zero}},
		ReproductionNumbersAmongStates:  [][]skyline.Parameter{{zero}, {r}},
		InitMetadata:                    cfg.InitMetadata,
		Seed:                            cfg.Seed,
	})
}
