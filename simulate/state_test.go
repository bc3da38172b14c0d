// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package simulate

import (
	"testing"

	"github.com/js-arias/skytree/tree"
)

func TestStateResetSeedsSingleActiveRoot(t *testing.T) {
	s := New(1, "S", nil)
	s.Reset()

	if s.CurrentTime() != 0 {
		t.Fatalf("CurrentTime = %v, want 0", s.CurrentTime())
	}
	if got := s.CountActiveNodes(nil); got != 1 {
		t.Fatalf("CountActiveNodes = %d, want 1", got)
	}
	state, ok := s.root.State()
	if !ok || state != "S" {
		t.Fatalf("root state = (%q, %v), want (%q, true)", state, ok, "S")
	}
	if s.root.Parent() != nil {
		t.Fatal("root should have no parent")
	}
}

func TestStateResetIsIndependentAcrossAttempts(t *testing.T) {
	s := New(1, "S", nil)
	s.Reset()
	s.currentTime = 5
	n := s.Stem(s.root, "I")
	s.Fix(n)

	s.Reset()
	if s.CurrentTime() != 0 {
		t.Fatalf("CurrentTime after Reset = %v, want 0", s.CurrentTime())
	}
	if s.NSampled() != 0 {
		t.Fatalf("NSampled after Reset = %d, want 0", s.NSampled())
	}
	if got := s.CountActiveNodes(nil); got != 1 {
		t.Fatalf("CountActiveNodes after Reset = %d, want 1", got)
	}
}

func TestStateInitMetadataRestoredOnReset(t *testing.T) {
	s := New(1, "I", map[string]any{SusceptiblesKey: 99})
	s.Reset()
	v, ok := s.Meta(SusceptiblesKey)
	if !ok || v != 99 {
		t.Fatalf("Meta(susceptibles) = (%v, %v), want (99, true)", v, ok)
	}
	s.SetMeta(SusceptiblesKey, 50)
	s.Reset()
	v, _ = s.Meta(SusceptiblesKey)
	if v != 99 {
		t.Fatalf("Meta(susceptibles) after Reset = %v, want 99 (restored from init)", v)
	}
}

func TestStateFixSetsBranchLengthAndRemovesFromActive(t *testing.T) {
	s := New(1, "S", nil)
	s.Reset()
	s.currentTime = 3
	_, n := s.BirthFrom(s.root, "I")
	s.currentTime = 7
	s.Fix(n)

	if n.BranchLength == nil || *n.BranchLength != 4 {
		t.Fatalf("BranchLength = %v, want 4", n.BranchLength)
	}
	if got := s.CountActiveNodes(nil); got != 1 {
		t.Fatalf("CountActiveNodes after fixing child = %d, want 1 (root's stem only)", got)
	}
}

func TestStateFixTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic fixing an already-fixed node")
		}
	}()
	s := New(1, "S", nil)
	s.Reset()
	s.Fix(s.root)
	s.Fix(s.root)
}

func TestStateStemFixesParentAndAddsActiveChild(t *testing.T) {
	s := New(1, "S", nil)
	s.Reset()
	root := s.root
	s.currentTime = 2
	child := s.Stem(root, "I")

	if root.BranchLength == nil || *root.BranchLength != 2 {
		t.Fatalf("root.BranchLength = %v, want 2", root.BranchLength)
	}
	if child.Parent() != root {
		t.Fatal("child should be attached under root")
	}
	state, _ := child.State()
	if state != "I" {
		t.Fatalf("child state = %q, want I", state)
	}
	if got := s.CountActiveNodes(nil); got != 1 {
		t.Fatalf("CountActiveNodes = %d, want 1 (only child is active)", got)
	}
}

func TestStateBirthFromProducesTwoActiveDescendants(t *testing.T) {
	s := New(1, "S", nil)
	s.Reset()
	root := s.root
	s.currentTime = 1
	stem, child := s.BirthFrom(root, "I")

	if stem.Parent() != root || child.Parent() != root {
		t.Fatal("both stem and child should be attached under the original parent")
	}
	stemState, _ := stem.State()
	if stemState != "S" {
		t.Fatalf("stem state = %q, want S (parent's own state)", stemState)
	}
	childState, _ := child.State()
	if childState != "I" {
		t.Fatalf("child state = %q, want I", childState)
	}
	if got := s.CountActiveNodes(nil); got != 2 {
		t.Fatalf("CountActiveNodes = %d, want 2", got)
	}
}

func TestStateSampleRecordsNameAndFixes(t *testing.T) {
	s := New(1, "S", nil)
	s.Reset()
	s.currentTime = 1
	s.Sample(s.root)
	if s.NSampled() != 1 {
		t.Fatalf("NSampled = %d, want 1", s.NSampled())
	}
	if !s.sampledNames[s.root.Name] {
		t.Fatal("root name should be recorded as sampled")
	}
}

func TestStateDrawActiveEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic drawing from an empty active set")
		}
	}()
	s := New(1, "S", nil)
	s.Reset()
	s.DrawActive(StateFilter("nothing-has-this-state"))
}

func TestStateDrawActiveRespectsFilter(t *testing.T) {
	s := New(1, "S", nil)
	s.Reset()
	s.currentTime = 1
	s.BirthFrom(s.root, "I")

	n := s.DrawActive(StateFilter("I"))
	state, _ := n.State()
	if state != "I" {
		t.Fatalf("drew node in state %q, want I", state)
	}
}

func TestStateActiveAndFixedArePartitioned(t *testing.T) {
	s := New(1, "S", nil)
	s.Reset()
	s.currentTime = 1
	_, child := s.BirthFrom(s.root, "I")
	s.currentTime = 2
	s.Remove(child)

	if got := s.CountActiveNodes(nil); got != 1 {
		t.Fatalf("CountActiveNodes = %d, want 1 (only the stem remains active)", got)
	}
	if child.BranchLength == nil {
		t.Fatal("removed node should have been fixed")
	}
}

func TestStateSampledTreeReflectsSampledNames(t *testing.T) {
	s := New(1, "S", nil)
	s.Reset()
	s.currentTime = 1
	stem, child := s.BirthFrom(s.root, "I")
	s.currentTime = 2
	s.Sample(child)
	s.Fix(stem)

	sampled := s.SampledTree()
	if sampled == nil {
		t.Fatal("SampledTree returned nil, want a tree with one sample")
	}
	leaves := 0
	sampled.Preorder(func(n *tree.Node) {
		if n.IsLeaf() {
			leaves++
		}
	})
	if leaves != 1 {
		t.Fatalf("pruned tree has %d leaves, want 1", leaves)
	}
}

func TestStateSampledTreeNilWithoutSamples(t *testing.T) {
	s := New(1, "S", nil)
	s.Reset()
	s.currentTime = 1
	s.Remove(s.root)

	if got := s.SampledTree(); got != nil {
		t.Fatalf("SampledTree = %v, want nil", got)
	}
}
