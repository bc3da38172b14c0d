// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package simulate

import (
	"regexp"

	"github.com/js-arias/skytree/skyline"
)

// An Event is either a stochastic event (driven by the exponential
// clock) or a scheduled event (driven by a fixed list of fire times).
// Both shapes answer the same two questions the driver needs: when
// do I next fire, and what happens when I do.
type Event interface {
	// NextFiringTime returns the next time at or after
	// state.CurrentTime() this event would fire, or false if it
	// never will (e.g. zero propensity and no further rate
	// change, or no remaining scheduled time).
	NextFiringTime(s *State) (float64, bool)

	// Apply mutates state as a consequence of this event firing.
	// The driver calls it only when this event's NextFiringTime
	// equals the chosen step time.
	Apply(s *State)
}

// StateFilter compiles pattern as a full-string regular expression,
// the filter semantics used throughout the event catalogue: a nil
// pattern ("") matches every state, otherwise the pattern must match
// the entire state label.
func StateFilter(pattern string) *regexp.Regexp {
	if pattern == "" {
		return nil
	}
	return regexp.MustCompile(`\A(?:` + pattern + `)\z`)
}

// ReactantFunc reports the combinatorial multiplicity of an event's
// reactants at the current population sizes (e.g. the count of
// active lineages in a given state).
type ReactantFunc func(s *State) int

// ApplyFunc performs the state mutation associated with an event
// firing.
type ApplyFunc func(s *State)

// A StochasticEvent fires via the exponential clock: its propensity
// is rate(t) times the combinatorial multiplicity of its reactants.
// It is the generic engine behind every entry of the stochastic
// event catalogue (Death, Migration, Sampling, Birth, Transmission).
type StochasticEvent struct {
	Rate      skyline.Parameter
	Reactants ReactantFunc
	Fn        ApplyFunc
}

// NextFiringTime implements Event. A zero-propensity segment cannot
// fire on its own; the event instead reports the next rate-change
// boundary, so the driver can re-evaluate propensity once the rate
// updates. A positive propensity draws an exponential waiting time
// for the current constant-rate segment only: the draw is clamped by
// (never carried across) the next boundary, which avoids biasing the
// inter-event distribution under a non-homogeneous rate.
func (e *StochasticEvent) NextFiringTime(s *State) (float64, bool) {
	now := s.CurrentTime()
	nextChange, hasNextChange := nextGreater(e.Rate.ChangeTimes(), now)

	rate, _ := e.Rate.GetValueAtTime(now)
	propensity := rate * float64(e.Reactants(s))
	if propensity <= 0 {
		return nextChange, hasNextChange
	}

	wait := s.Rand().ExpFloat64() / propensity
	firing := now + wait
	if hasNextChange && nextChange < firing {
		return nextChange, true
	}
	return firing, true
}

// Apply implements Event. A stochastic event does not fire on a
// boundary where its own rate is about to change: the driver reached
// this instant because NextFiringTime reported the boundary itself
// (propensity was zero, or the boundary preempted the exponential
// draw), not because the reaction actually occurred.
func (e *StochasticEvent) Apply(s *State) {
	for _, t := range e.Rate.ChangeTimes() {
		if t == s.CurrentTime() {
			return
		}
	}
	e.Fn(s)
}

// nextGreater returns the least element of times that is strictly
// greater than after, and whether one exists. times need not be
// sorted.
func nextGreater(times []float64, after float64) (float64, bool) {
	found := false
	var best float64
	for _, t := range times {
		if t > after && (!found || t < best) {
			best = t
			found = true
		}
	}
	return best, found
}

// FiringCount is the number of times per scheduled-event firing: a
// whole number caps at the count of available reactants, a fraction
// in [0,1] is rounded down against that same count.
type FiringCount struct {
	Count    int
	Fraction float64
	IsCount  bool
}

// Firings resolves a FiringCount against maxFirings.
func (f FiringCount) Firings(maxFirings int) int {
	if f.IsCount {
		if f.Count < maxFirings {
			return f.Count
		}
		return maxFirings
	}
	n := int(f.Fraction * float64(maxFirings))
	if n > maxFirings {
		return maxFirings
	}
	return n
}

// MaxFiringsFunc reports the maximum number of times a scheduled
// event could fire against the current state (e.g. the number of
// active lineages available to sample).
type MaxFiringsFunc func(s *State) int

// ApplyFiringsFunc applies n firings of a scheduled event.
type ApplyFiringsFunc func(s *State, n int)

// A TimedEvent fires deterministically at a finite, sorted list of
// times rather than via the exponential clock. It is the generic
// engine behind TimedSampling and TimedDeath.
type TimedEvent struct {
	Times      []float64
	Firings    FiringCount
	MaxFirings MaxFiringsFunc
	Fn         ApplyFiringsFunc
}

// NextFiringTime implements Event: the least scheduled time strictly
// greater than the current time.
func (e *TimedEvent) NextFiringTime(s *State) (float64, bool) {
	return nextGreater(e.Times, s.CurrentTime())
}

// Apply implements Event: resolve the firing count against the
// current population and apply it.
func (e *TimedEvent) Apply(s *State) {
	max := e.MaxFirings(s)
	e.Fn(s, e.Firings.Firings(max))
}
