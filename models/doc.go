// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package models assembles fully configured simulation states for a
// handful of named multi-state birth-death models: a general
// Canonical factory taking raw birth/death/sampling/migration rates
// directly, an Epidemiological factory that reduces reproduction
// numbers and become-uninfectious rates to canonical rates, an FBD
// (fossilized birth-death) factory reducing diversification/turnover,
// and four closed-form special cases (BD, BDEI, BDSS, SIR).
//
// Every factory returns a *simulate.State with its events already
// registered via State.AddEvent; the caller only needs to call
// State.Reset (via simulate.Run) to draw a tree.
package models
