// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package models

import (
	"regexp"

	"github.com/js-arias/skytree/simulate"
	"github.com/js-arias/skytree/skyline"
)

// CanonicalConfig configures Canonical. BirthRates, DeathRates and
// SamplingRates accept anything skyline.VectorOf resolves against
// len(States): a scalar, a []float64, a []skyline.Parameter, or an
// existing skyline.Vector. MigrationRates and BirthRatesAmongStates
// accept anything skyline.MatrixOf resolves against a
// len(States) x (len(States)-1) shape, row-major, with the
// exclude-self column ordering of otherStates; leaving either nil omits the
// corresponding events entirely.
type CanonicalConfig struct {
	States              []string
	InitState           string
	BirthRates          any
	DeathRates          any
	SamplingRates       any
	RemoveAfterSampling bool

	MigrationRates        any
	BirthRatesAmongStates any

	InitMetadata map[string]any
	Seed         uint64
}

// Canonical returns a simulation state with one Birth, Death and
// Sampling event per state, plus an optional Migration and cross-state
// Birth event for every ordered pair of distinct states.
func Canonical(cfg CanonicalConfig) (*simulate.State, error) {
	n := len(cfg.States)
	if n == 0 {
		return nil, skyline.ConfigErrorf("canonical model requires at least one state")
	}
	if _, ok := stateIndex(cfg.States, cfg.InitState); !ok {
		return nil, skyline.ConfigErrorf("unknown initial state %q", cfg.InitState)
	}

	birth, err := skyline.VectorOf(cfg.BirthRates, n)
	if err != nil {
		return nil, err
	}
	death, err := skyline.VectorOf(cfg.DeathRates, n)
	if err != nil {
		return nil, err
	}
	sampling, err := skyline.VectorOf(cfg.SamplingRates, n)
	if err != nil {
		return nil, err
	}

	s := simulate.New(cfg.Seed, cfg.InitState, cfg.InitMetadata)
	filters := make([]*regexp.Regexp, n)
	for i, st := range cfg.States {
		filters[i] = simulate.StateFilter(regexp.QuoteMeta(st))
		s.AddEvent(simulate.Birth(birth.At(i), filters[i], st))
		s.AddEvent(simulate.Death(death.At(i), filters[i]))
		s.AddEvent(simulate.Sampling(sampling.At(i), filters[i], cfg.RemoveAfterSampling))
	}

	if cfg.MigrationRates != nil {
		m, err := skyline.MatrixOf(cfg.MigrationRates, n, n-1)
		if err != nil {
			return nil, err
		}
		for i := range cfg.States {
			for j, other := range otherStates(cfg.States, i) {
				s.AddEvent(simulate.Migration(m.At(i, j), filters[i], other))
			}
		}
	}

	if cfg.BirthRatesAmongStates != nil {
		m, err := skyline.MatrixOf(cfg.BirthRatesAmongStates, n, n-1)
		if err != nil {
			return nil, err
		}
		for i := range cfg.States {
			for j, other := range otherStates(cfg.States, i) {
				s.AddEvent(simulate.Birth(m.At(i, j), filters[i], other))
			}
		}
	}

	return s, nil
}

// stateIndex returns the index of name in states, and whether it was
// found.
func stateIndex(states []string, name string) (int, bool) {
	for i, st := range states {
		if st == name {
			return i, true
		}
	}
	return 0, false
}

// otherStates returns every element of states except the one at i,
// preserving order — the same enumeration a migration or cross-birth
// matrix column j is indexed against.
func otherStates(states []string, i int) []string {
	out := make([]string, 0, len(states)-1)
	for j, st := range states {
		if j != i {
			out = append(out, st)
		}
	}
	return out
}
