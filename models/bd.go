// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package models

import "github.com/js-arias/skytree/simulate"

const infectiousState = "I"

// BDConfig configures BD, the single-state special case of
// Epidemiological.
type BDConfig struct {
	ReproductionNumber  any
	InfectiousPeriod    any
	SamplingProportion  any
	InitMetadata        map[string]any
	Seed                uint64
}

// BD returns a single-state ("I") birth-death-sampling model: the
// become-uninfectious rate is the reciprocal of the infectious period.
func BD(cfg BDConfig) (*simulate.State, error) {
	become, err := reciprocal(cfg.InfectiousPeriod)
	if err != nil {
		return nil, err
	}
	return Epidemiological(EpidemiologicalConfig{
		States:                  []string{infectiousState},
		InitState:               infectiousState,
		ReproductionNumbers:     cfg.ReproductionNumber,
		BecomeUninfectiousRates: become,
		SamplingProportions:     cfg.SamplingProportion,
		InitMetadata:            cfg.InitMetadata,
		Seed:                    cfg.Seed,
	})
}
