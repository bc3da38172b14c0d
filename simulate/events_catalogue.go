// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package simulate

import (
	"regexp"

	"github.com/js-arias/skytree/skyline"
	"github.com/js-arias/skytree/tree"
)

// Death returns a stochastic event that draws one active lineage
// matching state and removes it (a death, with no descendant).
func Death(rate skyline.Parameter, state *regexp.Regexp) *StochasticEvent {
	return &StochasticEvent{
		Rate:      rate,
		Reactants: func(s *State) int { return s.CountActiveNodes(state) },
		Fn: func(s *State) {
			s.Remove(s.DrawActive(state))
		},
	}
}

// Migration returns a stochastic event that draws one active lineage
// matching state and migrates it to targetState.
func Migration(rate skyline.Parameter, state *regexp.Regexp, targetState string) *StochasticEvent {
	return &StochasticEvent{
		Rate:      rate,
		Reactants: func(s *State) int { return s.CountActiveNodes(state) },
		Fn: func(s *State) {
			s.Migrate(s.DrawActive(state), targetState)
		},
	}
}

// Sampling returns a stochastic event that draws one active lineage
// matching state and samples it. If removal is true the lineage is
// fixed and leaves the active pool; otherwise a zero-length stem is
// created from it and immediately sampled, preserving the lineage so
// it may keep evolving after the sample is taken.
func Sampling(rate skyline.Parameter, state *regexp.Regexp, removal bool) *StochasticEvent {
	return &StochasticEvent{
		Rate:      rate,
		Reactants: func(s *State) int { return s.CountActiveNodes(state) },
		Fn: func(s *State) {
			n := s.DrawActive(state)
			if removal {
				s.Sample(n)
				return
			}
			nodeState, _ := n.State()
			_, sampleNode := s.BirthFrom(n, nodeState)
			s.Sample(sampleNode)
		},
	}
}

// Birth returns a stochastic event that draws a parent lineage in
// parentState and gives birth to a new lineage in childState.
func Birth(rate skyline.Parameter, parentState *regexp.Regexp, childState string) *StochasticEvent {
	return &StochasticEvent{
		Rate:      rate,
		Reactants: func(s *State) int { return s.CountActiveNodes(parentState) },
		Fn: func(s *State) {
			s.BirthFrom(s.DrawActive(parentState), childState)
		},
	}
}

// SusceptiblesKey is the scratch metadata key under which the
// remaining susceptible count of an SIR-style model is stored.
const SusceptiblesKey = "susceptibles"

var infectious = StateFilter("I")

// Transmission returns the density-dependent SIR transmission event:
// its propensity scales with the product of the infectious lineage
// count and the remaining susceptible pool, and each firing
// decrements the pool and gives birth to a new infectious lineage.
func Transmission(rate skyline.Parameter) *StochasticEvent {
	return &StochasticEvent{
		Rate: rate,
		Reactants: func(s *State) int {
			susceptibles, _ := s.Meta(SusceptiblesKey)
			n, _ := susceptibles.(int)
			return n * s.CountActiveNodes(infectious)
		},
		Fn: func(s *State) {
			susceptibles, _ := s.Meta(SusceptiblesKey)
			n, _ := susceptibles.(int)
			s.SetMeta(SusceptiblesKey, n-1)
			parent := s.DrawActive(infectious)
			state, _ := parent.State()
			s.BirthFrom(parent, state)
		},
	}
}

// TimedSampling returns a scheduled event that, at each of times,
// independently samples a fraction proportion of the active lineages
// matching state, drawn without replacement.
func TimedSampling(times []float64, state *regexp.Regexp, proportion float64, removal bool) *TimedEvent {
	return &TimedEvent{
		Times:      times,
		Firings:    FiringCount{Fraction: proportion},
		MaxFirings: func(s *State) int { return s.CountActiveNodes(state) },
		Fn: func(s *State, n int) {
			for _, node := range drawWithoutReplacement(s, state, n) {
				if removal {
					s.Sample(node)
					continue
				}
				nodeState, _ := node.State()
				_, sampleNode := s.BirthFrom(node, nodeState)
				s.Sample(sampleNode)
			}
		},
	}
}

// TimedDeath returns a scheduled event that, at each of times,
// removes a fraction proportion of the active lineages matching
// state, drawn without replacement.
func TimedDeath(times []float64, state *regexp.Regexp, proportion float64) *TimedEvent {
	return &TimedEvent{
		Times:      times,
		Firings:    FiringCount{Fraction: proportion},
		MaxFirings: func(s *State) int { return s.CountActiveNodes(state) },
		Fn: func(s *State, n int) {
			for _, node := range drawWithoutReplacement(s, state, n) {
				s.Remove(node)
			}
		},
	}
}

// drawWithoutReplacement returns n lineages matching state, chosen
// without replacement via a Fisher-Yates partial shuffle.
func drawWithoutReplacement(s *State, state *regexp.Regexp, n int) []*tree.Node {
	nodes := s.ActiveNodes(state)
	rng := s.Rand()
	for i := 0; i < n && i < len(nodes); i++ {
		j := i + rng.IntN(len(nodes)-i)
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	if n > len(nodes) {
		n = len(nodes)
	}
	return nodes[:n]
}
