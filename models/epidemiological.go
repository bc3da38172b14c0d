// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package models

import (
	"github.com/js-arias/skytree/simulate"
	"github.com/js-arias/skytree/skyline"
)

// EpidemiologicalConfig configures Epidemiological. Operands follow
// the same shape-resolution rules as CanonicalConfig.
type EpidemiologicalConfig struct {
	States                  []string
	InitState               string
	ReproductionNumbers     any
	BecomeUninfectiousRates any
	SamplingProportions     any

	MigrationRates                 any
	ReproductionNumbersAmongStates any

	InitMetadata map[string]any
	Seed         uint64
}

// Epidemiological reduces reproduction numbers and become-uninfectious
// rates to canonical birth/death/sampling rates:
//
//	birth    = R * become_uninfectious
//	sampling = become_uninfectious * sampling_proportion
//	death    = become_uninfectious - sampling
//
// and always removes a lineage on sampling.
func Epidemiological(cfg EpidemiologicalConfig) (*simulate.State, error) {
	n := len(cfg.States)
	if n == 0 {
		return nil, skyline.ConfigErrorf("epidemiological model requires at least one state")
	}

	r, err := skyline.VectorOf(cfg.ReproductionNumbers, n)
	if err != nil {
		return nil, err
	}
	become, err := skyline.VectorOf(cfg.BecomeUninfectiousRates, n)
	if err != nil {
		return nil, err
	}
	samplingProp, err := skyline.VectorOf(cfg.SamplingProportions, n)
	if err != nil {
		return nil, err
	}

	birth, err := r.Mul(become)
	if err != nil {
		return nil, err
	}
	sampling, err := become.Mul(samplingProp)
	if err != nil {
		return nil, err
	}
	death, err := become.Sub(sampling)
	if err != nil {
		return nil, err
	}

	var crossBirth any
	if cfg.ReproductionNumbersAmongStates != nil {
		rCross, err := skyline.MatrixOf(cfg.ReproductionNumbersAmongStates, n, n-1)
		if err != nil {
			return nil, err
		}
		cb, err := rCross.MulVector(become)
		if err != nil {
			return nil, err
		}
		crossBirth = cb
	}

	return Canonical(CanonicalConfig{
		States:                cfg.States,
		InitState:             cfg.InitState,
		BirthRates:            birth,
		DeathRates:            death,
		SamplingRates:         sampling,
		RemoveAfterSampling:   true,
		MigrationRates:        cfg.MigrationRates,
		BirthRatesAmongStates: crossBirth,
		InitMetadata:          cfg.InitMetadata,
		Seed:                  cfg.Seed,
	})
}
