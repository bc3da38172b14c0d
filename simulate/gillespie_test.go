// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package simulate

import (
	"testing"
	"time"

	"github.com/js-arias/skytree/skyline"
	"github.com/js-arias/skytree/tree"
)

// newBDState builds a constant-rate birth-death state in a single
// state "I": birth at rate 2, death at rate 1, removal-sampling at
// rate 3.
func newBDState(seed uint64) *State {
	s := New(seed, "I", nil)
	i := StateFilter("I")
	s.AddEvent(Birth(skyline.Const(2), i, "I"))
	s.AddEvent(Death(skyline.Const(1), i))
	s.AddEvent(Sampling(skyline.Const(3), i, true))
	return s
}

func TestRunProducesTreeWithRequestedLeaves(t *testing.T) {
	s := newBDState(1)
	n := 4
	tr, meta, err := Run(s, RunParams{
		NLeaves:     &n,
		TreeLoggers: []Logger{LeafCountLogger},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if tr == nil {
		t.Fatal("Run returned a nil tree with no error")
	}
	leaves := 0
	tr.Preorder(func(v *tree.Node) {
		if v.IsLeaf() {
			leaves++
		}
	})
	if leaves < n {
		t.Fatalf("pruned tree has %d leaves, want at least %d", leaves, n)
	}
	if got := meta["n_leaves"]; got != leaves {
		t.Fatalf("LeafCountLogger reported %v, want %d", got, leaves)
	}
}

func TestRunRespectsMaxTime(t *testing.T) {
	s := newBDState(2)
	maxTime := 0.5
	tr, meta, err := Run(s, RunParams{
		MaxTime:     &maxTime,
		TreeLoggers: []Logger{FinalTimeLogger},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if tr == nil {
		t.Skip("no samples survived this configuration; not a driver bug")
	}
	if ft, ok := meta["final_time"].(float64); !ok || ft > maxTime+1e-9 {
		t.Fatalf("final_time = %v, want <= %v", meta["final_time"], maxTime)
	}
}

func TestRunAcceptCriterionRejectsAndRetries(t *testing.T) {
	s := newBDState(3)
	n := 2
	calls := 0
	reject := func(*tree.Node) bool {
		calls++
		return calls > 1 // reject the first completed attempt, accept the next
	}
	_, _, err := Run(s, RunParams{NLeaves: &n, Accept: reject})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls < 2 {
		t.Fatalf("Accept was called %d times, want at least 2 (one rejection then a retry)", calls)
	}
}

func TestRunTimeoutReturnsTimeoutError(t *testing.T) {
	s := newBDState(4)
	n := 1 << 30 // unreachable: forces Run to keep simulating and retrying past the timeout
	timeout := time.Millisecond
	_, _, err := Run(s, RunParams{NLeaves: &n, Timeout: &timeout})
	if err == nil {
		t.Fatal("Run should have returned a timeout error")
	}
	if _, ok := err.(*TimeoutError); !ok {
		t.Fatalf("err = %T, want *TimeoutError", err)
	}
}

func TestStepAppliesAllEventsTiedForTheMinimum(t *testing.T) {
	s := New(1, "I", nil)
	s.Reset()

	var fired []string
	at2 := &TimedEvent{
		Times:      []float64{2},
		Firings:    FiringCount{Fraction: 1},
		MaxFirings: func(*State) int { return 1 },
		Fn:         func(*State, int) { fired = append(fired, "a") },
	}
	alsoAt2 := &TimedEvent{
		Times:      []float64{2},
		Firings:    FiringCount{Fraction: 1},
		MaxFirings: func(*State) int { return 1 },
		Fn:         func(*State, int) { fired = append(fired, "b") },
	}
	s.runEvents = []Event{at2, alsoAt2}

	if !step(s, nil) {
		t.Fatal("step reported no continuation with a pending scheduled time")
	}
	if s.CurrentTime() != 2 {
		t.Fatalf("CurrentTime after step = %v, want 2", s.CurrentTime())
	}
	if len(fired) != 2 || fired[0] != "a" || fired[1] != "b" {
		t.Fatalf("fired = %v, want both events applied in registration order", fired)
	}

	if step(s, nil) {
		t.Fatal("step should report no continuation once no event can fire again")
	}
}

func TestStepStopsAtMaxTime(t *testing.T) {
	s := New(1, "I", nil)
	s.Reset()
	s.runEvents = []Event{&TimedEvent{
		Times:      []float64{100},
		Firings:    FiringCount{Fraction: 1},
		MaxFirings: func(*State) int { return 1 },
		Fn:         func(*State, int) {},
	}}

	maxTime := 5.0
	if step(s, &maxTime) {
		t.Fatal("step should report no continuation once current_time reaches maxTime")
	}
	if s.CurrentTime() != maxTime {
		t.Fatalf("CurrentTime = %v, want %v", s.CurrentTime(), maxTime)
	}
}
