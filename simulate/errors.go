// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package simulate

import "fmt"

// A StateError indicates a simulator bug rather than a malformed
// configuration or an expected rejection: fixing a node twice,
// removing a node that is not in the active set, or drawing from an
// empty active set. It is raised with panic, not returned, since no caller
// can recover from it without violating the driver's own invariants.
type StateError struct {
	msg string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("simulate: %s", e.msg)
}

func stateErrorf(format string, args ...any) *StateError {
	return &StateError{msg: fmt.Sprintf(format, args...)}
}

// panicState raises a StateError.
func panicState(format string, args ...any) {
	panic(stateErrorf(format, args...))
}

// A TimeoutError reports that a Run attempt exceeded its wall-clock
// budget. It is distinct from a rejection: the driver never retries a
// TimeoutError on its own, it surfaces it to the caller, who may
// choose to retry with different parameters.
type TimeoutError struct {
	msg string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("simulate: %s", e.msg)
}

func timeoutErrorf(format string, args ...any) *TimeoutError {
	return &TimeoutError{msg: fmt.Sprintf(format, args...)}
}
