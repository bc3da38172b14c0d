// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package simulate

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"github.com/js-arias/skytree/tree"
)

// A State owns the growing forest of lineages for one simulation
// attempt: the active-lineage index by population state, time
// bookkeeping, the unpruned tree, and an instance-scoped random
// source. Events read and mutate a State through the methods below;
// a Run drives it through repeated resets.
type State struct {
	rng *rand.Rand

	initState    string
	initMetadata map[string]any

	currentTime float64
	nextNodeID  int

	active       map[string]*orderedSet
	stateOrder   []string
	sampledNames map[string]bool
	nodeTimes    map[*tree.Node]float64

	root     *tree.Node
	metadata map[string]any

	events    []Event
	runEvents []Event
}

// New returns a State whose attempts start from a single root lineage
// in initState; the root itself is created by Reset. initMetadata, if non-nil, seeds the scratch metadata map restored on
// every Reset (e.g. the remaining-susceptibles count of an SIR model).
func New(seed uint64, initState string, initMetadata map[string]any) *State {
	return &State{
		rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		initState:    initState,
		initMetadata: initMetadata,
	}
}

// AddEvent registers an event with the state. Registered events run
// on every attempt, including those started after a Reject-driven
// retry.
func (s *State) AddEvent(e Event) {
	s.events = append(s.events, e)
}

// Reset clears all mutable simulation bookkeeping and reseeds a
// single active root node in the configured initial state. It is
// idempotent: calling it repeatedly on the same configured State
// starts a fresh, independent attempt each time.
func (s *State) Reset() {
	s.currentTime = 0
	s.nextNodeID = 0
	s.active = make(map[string]*orderedSet)
	s.stateOrder = nil
	s.sampledNames = make(map[string]bool)
	s.nodeTimes = make(map[*tree.Node]float64)
	s.metadata = make(map[string]any, len(s.initMetadata))
	for k, v := range s.initMetadata {
		s.metadata[k] = v
	}
	s.root = s.newNode(s.initState)
	s.runEvents = make([]Event, len(s.events))
	copy(s.runEvents, s.events)
}

// CurrentTime returns the simulation clock of the current attempt.
func (s *State) CurrentTime() float64 {
	return s.currentTime
}

// Rand returns the state's instance-scoped random source. Events draw
// from it so that a fixed seed reproduces identical runs.
func (s *State) Rand() *rand.Rand {
	return s.rng
}

// Meta returns the scratch metadata value stored under key (e.g. the
// remaining susceptible count of an SIR run), and whether it is set.
func (s *State) Meta(key string) (any, bool) {
	v, ok := s.metadata[key]
	return v, ok
}

// SetMeta stores a scratch metadata value under key.
func (s *State) SetMeta(key string, v any) {
	s.metadata[key] = v
}

func (s *State) nodeName(id int, state string) string {
	return fmt.Sprintf("%d|%s", id, state)
}

// newNode creates a new active leaf in the given state and inserts it
// into the active index. It does not attach the node to any parent;
// callers are responsible for linking it into the tree.
func (s *State) newNode(state string) *tree.Node {
	s.nextNodeID++
	n := tree.NewNode(s.nodeName(s.nextNodeID, state))
	n.Set(tree.StateKey, state)
	s.bucket(state).add(n)
	return n
}

// NewNode creates a new active leaf in state, attached as a child of
// parent. A nil parent leaves the new node unattached; it does not
// replace the root created by Reset.
func (s *State) NewNode(parent *tree.Node, state string) *tree.Node {
	n := s.newNode(state)
	if parent != nil {
		parent.AddChild(n)
	}
	return n
}

func (s *State) bucket(state string) *orderedSet {
	b, ok := s.active[state]
	if !ok {
		b = newOrderedSet()
		s.active[state] = b
		s.stateOrder = append(s.stateOrder, state)
	}
	return b
}

func (s *State) parentTime(n *tree.Node) float64 {
	p := n.Parent()
	if p == nil {
		return 0
	}
	t, ok := s.nodeTimes[p]
	if !ok {
		panicState("parent of node %q has not been fixed", n.Name)
	}
	return t
}

// Fix sets node's branch length from its parent's fixation time (or 0
// for the root) to the current time, and removes it from the active
// index. A node may be fixed exactly once; fixing it again panics
// with a StateError.
func (s *State) Fix(n *tree.Node) {
	if n.BranchLength != nil {
		panicState("node %q has already been fixed", n.Name)
	}
	bl := s.currentTime - s.parentTime(n)
	n.BranchLength = &bl
	s.nodeTimes[n] = s.currentTime
	state, _ := n.State()
	s.bucket(state).remove(n)
}

// Stem fixes node and attaches a single new active child in newState,
// returning the new child.
func (s *State) Stem(n *tree.Node, newState string) *tree.Node {
	s.Fix(n)
	return s.NewNode(n, newState)
}

// Remove fixes node without creating any descendant (a death event).
func (s *State) Remove(n *tree.Node) {
	s.Fix(n)
}

// Migrate is an alias for Stem: it fixes node and attaches a single
// active child carrying newState.
func (s *State) Migrate(n *tree.Node, newState string) *tree.Node {
	return s.Stem(n, newState)
}

// BirthFrom creates a new active child of parent in childState, then
// stems parent into its own current state. It returns the new stem of
// parent followed by the new child, both active.
func (s *State) BirthFrom(parent *tree.Node, childState string) (stem, child *tree.Node) {
	child = s.NewNode(parent, childState)
	parentState, _ := parent.State()
	stem = s.Stem(parent, parentState)
	return stem, child
}

// Sample marks node's name as a sampled leaf and fixes it.
func (s *State) Sample(n *tree.Node) {
	s.sampledNames[n.Name] = true
	s.Fix(n)
}

// NSampled returns the number of sampled names recorded so far.
func (s *State) NSampled() int {
	return len(s.sampledNames)
}

// matchState reports whether a node's state satisfies a state filter:
// nil matches everything, otherwise the filter is a regular
// expression matched against the state with full-string semantics.
func matchState(filter *regexp.Regexp, state string) bool {
	if filter == nil {
		return true
	}
	return filter.MatchString(state)
}

// ActiveNodes returns the active lineages matching filter (nil for
// all states), ordered by the order states were first seen, then in
// each state bucket's slot order (insertion order, as rearranged by
// the bucket's swap-removals). This fixed order, rather
// than a direct range over the state-keyed map, is what keeps a
// multi-state draw reproducible: Go randomizes map iteration order on
// every run, which would otherwise make DrawActive's pick depend on
// more than the seed.
func (s *State) ActiveNodes(filter *regexp.Regexp) []*tree.Node {
	var out []*tree.Node
	for _, state := range s.stateOrder {
		if !matchState(filter, state) {
			continue
		}
		out = append(out, s.active[state].nodes...)
	}
	return out
}

// CountActiveNodes returns the number of active lineages matching
// filter.
func (s *State) CountActiveNodes(filter *regexp.Regexp) int {
	n := 0
	for _, state := range s.stateOrder {
		if matchState(filter, state) {
			n += s.active[state].len()
		}
	}
	return n
}

// DrawActive returns a uniformly random active lineage matching
// filter. It panics with a StateError if no such lineage exists.
func (s *State) DrawActive(filter *regexp.Regexp) *tree.Node {
	nodes := s.ActiveNodes(filter)
	if len(nodes) == 0 {
		panicState("no active node to draw from")
	}
	return nodes[s.rng.IntN(len(nodes))]
}

// SampledTree returns the pruned tree induced by the sampled names
// recorded so far, or nil if none survive. The result is an
// independently owned deep copy; the simulation's own tree is left
// untouched and may be extended by further events or reused by a
// subsequent Reset.
func (s *State) SampledTree() *tree.Node {
	return tree.Prune(s.root, s.sampledNames)
}
