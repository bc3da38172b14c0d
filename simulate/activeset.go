// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package simulate

import "github.com/js-arias/skytree/tree"

// An orderedSet is a per-state bucket of active lineages: O(1)
// insertion and O(1) removal by reference, via a swap-remove vector
// plus a reverse-index map. Iteration follows insertion order only
// until the first removal: a removal moves the last node into the
// vacated slot, so the order is deterministic but not insertion
// order.
type orderedSet struct {
	nodes []*tree.Node
	index map[*tree.Node]int
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[*tree.Node]int)}
}

func (s *orderedSet) add(n *tree.Node) {
	s.index[n] = len(s.nodes)
	s.nodes = append(s.nodes, n)
}

// remove drops n from the set. It panics (a StateError) if n is not a
// member, which the driver never expects to happen under correct use.
func (s *orderedSet) remove(n *tree.Node) {
	i, ok := s.index[n]
	if !ok {
		panicState("node %q is not present in the active set", n.Name)
	}
	last := len(s.nodes) - 1
	s.nodes[i] = s.nodes[last]
	s.index[s.nodes[i]] = i
	s.nodes = s.nodes[:last]
	delete(s.index, n)
}

func (s *orderedSet) len() int {
	return len(s.nodes)
}
