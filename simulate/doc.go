// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package simulate implements a Gillespie-variant stochastic
// simulation over an evolving forest of lineages, producing a pruned
// sampled phylogenetic tree. A State owns the active-lineage index,
// the growing tree, and an instance-scoped random source; Events read
// and mutate a State; a Run drives the main loop until a stopping
// condition is met, rejecting and retrying attempts that fail to meet
// it.
package simulate
