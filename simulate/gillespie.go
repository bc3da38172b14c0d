// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package simulate

import (
	"time"

	"github.com/js-arias/skytree/tree"
)

// A Criterion is a predicate evaluated against the pruned tree of a
// finished attempt; a false result is a rejection like any other, and
// the driver restarts the attempt with a fresh Reset.
type Criterion func(*tree.Node) bool

// A Logger extracts scalar metadata from the outcome of a successful
// Run, merged into the returned metadata map.
type Logger func(*tree.Node, *State) map[string]any

// RunParams configures one call to Run.
type RunParams struct {
	// NLeaves, if non-nil, stops an attempt once at least this
	// many samples have been recorded, and rejects attempts that
	// terminate (process died out, or MaxTime reached) without
	// having reached it.
	NLeaves *int

	// MaxTime, if non-nil, bounds the simulation clock: an
	// attempt also stops once current_time reaches it.
	MaxTime *float64

	// Timeout, if non-nil, bounds the wall-clock duration of the
	// whole Run, measured from the call to Run across every
	// retried attempt. Exceeding it returns a *TimeoutError; Run
	// does not retry on timeout, the caller must.
	Timeout *time.Duration

	// Accept, if non-nil, is evaluated on the pruned tree of
	// every attempt that otherwise succeeded; a false result is
	// treated as a rejection.
	Accept Criterion

	// TreeLoggers populate the metadata map returned alongside a
	// successful tree. Each Logger sees both the pruned tree and
	// the state it was drawn from, so a single hook covers what
	// the distillation's tree_logs and model_logs callbacks did
	// separately.
	TreeLoggers []Logger
}

// Run drives s through repeated attempts (reset, simulate, prune)
// until one is accepted, or a timeout expires. It returns the pruned
// sampled tree and metadata gathered from any configured loggers.
func Run(s *State, p RunParams) (*tree.Node, map[string]any, error) {
	start := time.Now()
	for {
		t, err := attempt(s, p, start)
		if err != nil {
			return nil, nil, err
		}
		if t == nil {
			continue
		}

		metadata := make(map[string]any)
		for _, lg := range p.TreeLoggers {
			for k, v := range lg(t, s) {
				metadata[k] = v
			}
		}
		return t, metadata, nil
	}
}

// attempt runs one reset-to-termination cycle. A nil, nil return
// means the attempt was rejected and the caller should retry.
func attempt(s *State, p RunParams, start time.Time) (*tree.Node, error) {
	s.Reset()
	for step(s, p.MaxTime) {
		if p.NLeaves != nil && s.NSampled() >= *p.NLeaves {
			break
		}
		if p.Timeout != nil && time.Since(start) > *p.Timeout {
			return nil, timeoutErrorf("simulation timed out after %s", *p.Timeout)
		}
	}

	if p.NLeaves != nil && s.NSampled() < *p.NLeaves {
		return nil, nil
	}

	sampled := s.SampledTree()
	if sampled == nil {
		return nil, nil
	}
	if p.Accept != nil && !p.Accept(sampled) {
		return nil, nil
	}
	return sampled, nil
}

// step advances s by one Gillespie iteration: it computes every
// registered event's next firing time, advances current_time to the
// smallest of them (and maxTime, if set), applies every event tied
// for that minimum, and reports whether the simulation should
// continue (false once maxTime is reached, or once no event can ever
// fire again).
func step(s *State, maxTime *float64) bool {
	times := make([]float64, len(s.runEvents))
	has := make([]bool, len(s.runEvents))
	for i, e := range s.runEvents {
		times[i], has[i] = e.NextFiringTime(s)
	}

	found := false
	next := 0.0
	for i := range s.runEvents {
		if !has[i] {
			continue
		}
		if !found || times[i] < next {
			next = times[i]
			found = true
		}
	}
	if maxTime != nil && (!found || *maxTime < next) {
		next = *maxTime
		found = true
	}
	if !found {
		return false
	}

	s.currentTime = next
	for i, e := range s.runEvents {
		if has[i] && times[i] == next {
			e.Apply(s)
		}
	}

	return maxTime == nil || next != *maxTime
}
