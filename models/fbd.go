// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package models

import (
	"github.com/js-arias/skytree/simulate"
	"github.com/js-arias/skytree/skyline"
)

// FBDConfig configures FBD. Operands follow the same shape-resolution
// rules as CanonicalConfig.
type FBDConfig struct {
	States              []string
	InitState           string
	Diversification     any
	Turnover            any
	SamplingProportions any

	MigrationRates              any
	DiversificationBetweenStates any

	InitMetadata map[string]any
	Seed         uint64
}

// FBD (fossilized birth-death) reduces diversification and turnover to
// canonical rates:
//
//	birth    = diversification / (1 - turnover)
//	death    = turnover * birth
//	sampling = sampling_proportion * death
//
// Sampled lineages are never removed: a fossil sample does not end a
// lineage's future evolution.
func FBD(cfg FBDConfig) (*simulate.State, error) {
	n := len(cfg.States)
	if n == 0 {
		return nil, skyline.ConfigErrorf("FBD model requires at least one state")
	}

	div, err := skyline.VectorOf(cfg.Diversification, n)
	if err != nil {
		return nil, err
	}
	turnover, err := skyline.VectorOf(cfg.Turnover, n)
	if err != nil {
		return nil, err
	}
	samplingProp, err := skyline.VectorOf(cfg.SamplingProportions, n)
	if err != nil {
		return nil, err
	}

	one := skyline.ConstVector(skyline.Const(1), n)
	oneMinusTurnover, err := one.Sub(turnover)
	if err != nil {
		return nil, err
	}
	birth, err := div.Div(oneMinusTurnover)
	if err != nil {
		return nil, err
	}
	death, err := turnover.Mul(birth)
	if err != nil {
		return nil, err
	}
	sampling, err := samplingProp.Mul(death)
	if err != nil {
		return nil, err
	}

	var crossBirth any
	if cfg.DiversificationBetweenStates != nil {
		divCross, err := skyline.MatrixOf(cfg.DiversificationBetweenStates, n, n-1)
		if err != nil {
			return nil, err
		}
		cb, err := divCross.AddVector(death)
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
		RemoveAfterSampling:   false,
		MigrationRates:        cfg.MigrationRates,
		BirthRatesAmongStates: crossBirth,
		InitMetadata:          cfg.InitMetadata,
		Seed:                  cfg.Seed,
	})
}
