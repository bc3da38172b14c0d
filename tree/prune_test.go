// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/js-arias/skytree/tree"
)

func bl(v float64) *float64 { return &v }

func TestPruneKeepsSubtreeOfSampledLeaves(t *testing.T) {
	// root -(1)- u -(1)- a1 (kept)
	//            \-(1)- a2 (dropped)
	//       \-(1)- b (kept)
	root := tree.NewNode("root")
	u := tree.NewNode("u")
	a1 := tree.NewNode("a1")
	a2 := tree.NewNode("a2")
	b := tree.NewNode("b")

	root.AddChild(u)
	root.AddChild(b)
	u.AddChild(a1)
	u.AddChild(a2)

	u.BranchLength = bl(1)
	a1.BranchLength = bl(1)
	a2.BranchLength = bl(1)
	b.BranchLength = bl(1)

	pruned := tree.Prune(root, map[string]bool{"a1": true, "b": true})
	if pruned == nil {
		t.Fatalf("expected a non-nil pruned tree")
	}

	var names []string
	pruned.Preorder(func(n *tree.Node) { names = append(names, n.Name) })
	if len(names) != 3 {
		t.Fatalf("got %d nodes, want 3 (root, a1, b): %v", len(names), names)
	}
}

func TestPruneContractsUnaryChains(t *testing.T) {
	// root -(1)- u -(1)- v -(1)- leaf (kept)
	root := tree.NewNode("root")
	u := tree.NewNode("u")
	v := tree.NewNode("v")
	leaf := tree.NewNode("leaf")

	root.AddChild(u)
	u.AddChild(v)
	v.AddChild(leaf)

	u.BranchLength = bl(1)
	v.BranchLength = bl(2)
	leaf.BranchLength = bl(3)

	pruned := tree.Prune(root, map[string]bool{"leaf": true})
	if pruned == nil {
		t.Fatalf("expected a non-nil pruned tree")
	}
	if pruned.Name != "leaf" {
		t.Fatalf("unary chain should collapse onto the leaf, got %q", pruned.Name)
	}
	if pruned.BranchLength == nil || *pruned.BranchLength != 6 {
		t.Errorf("branch lengths should sum across the contracted chain: got %v, want 6", pruned.BranchLength)
	}
	if pruned.Parent() != nil {
		t.Errorf("the contracted leaf became the root and must be detached")
	}
}

func TestPruneNoSurvivorsReturnsNil(t *testing.T) {
	root := tree.NewNode("root")
	a := tree.NewNode("a")
	root.AddChild(a)
	a.BranchLength = bl(1)

	if got := tree.Prune(root, map[string]bool{"nope": true}); got != nil {
		t.Errorf("expected nil when no leaf survives pruning, got %v", got)
	}
}

func TestPruneDoesNotMutateSource(t *testing.T) {
	root := tree.NewNode("root")
	a := tree.NewNode("a")
	b := tree.NewNode("b")
	root.AddChild(a)
	root.AddChild(b)
	a.BranchLength = bl(1)
	b.BranchLength = bl(1)

	tree.Prune(root, map[string]bool{"a": true})
	if len(root.Children()) != 2 {
		t.Errorf("pruning must operate on a copy, source tree was mutated")
	}
}
