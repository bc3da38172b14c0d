// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package models

import (
	"github.com/js-arias/skytree/simulate"
	"github.com/js-arias/skytree/skyline"
)

// SIRConfig configures SIR.
type SIRConfig struct {
	TransmissionRate any
	RecoveryRate     any
	SamplingRate     any
	Susceptibles     int

	Seed uint64
}

// SIR returns a density-dependent susceptible-infectious-recovered
// model: a single infectious ("I") lineage state, a Transmission event
// whose propensity scales with the remaining susceptible pool (tracked
// under simulate.SusceptiblesKey), a Recovery (death) event, and a
// removal-sampling event.
func SIR(cfg SIRConfig) (*simulate.State, error) {
	transmission, err := skyline.ParameterOf(cfg.TransmissionRate)
	if err != nil {
		return nil, err
	}
	recovery, err := skyline.ParameterOf(cfg.RecoveryRate)
	if err != nil {
		return nil, err
	}
	sampling, err := skyline.ParameterOf(cfg.SamplingRate)
	if err != nil {
		return nil, err
	}

	s := simulate.New(cfg.Seed, infectiousState, map[string]any{
		simulate.SusceptiblesKey: cfg.Susceptibles,
	})
	infectious := simulate.StateFilter(infectiousState)
	s.AddEvent(simulate.Transmission(transmission))
	s.AddEvent(simulate.Death(recovery, infectious))
	s.AddEvent(simulate.Sampling(sampling, infectious, true))
	return s, nil
}
