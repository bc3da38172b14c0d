// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

// Prune returns the subtree of n induced by keep, the set of node
// names to retain as leaves, or nil if no node in keep survives. Every
// unary chain produced by dropping non-kept leaves is contracted, its
// branch lengths summed into the surviving descendant, mirroring the
// way a simulated lineage that was never sampled disappears from the
// reconstructed tree.
//
// Prune does not mutate n; it operates on (and returns a descendant
// of) a fresh copy.
func Prune(n *Node, keep map[string]bool) *Node {
	root := n.Copy()
	for _, v := range root.postorderNodes() {
		switch {
		case v.IsLeaf() && !keep[v.Name]:
			if v.parent == nil {
				return nil
			}
			v.parent.RemoveChild(v)
		case len(v.children) == 1:
			child := v.children[0]
			parent := v.parent
			child.UpdateParent(parent)
			if child.BranchLength != nil && v.BranchLength != nil {
				sum := *child.BranchLength + *v.BranchLength
				child.BranchLength = &sum
			}
			if parent == nil {
				return child
			}
			parent.RemoveChild(v)
		}
	}
	return root
}
