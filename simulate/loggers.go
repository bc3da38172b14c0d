// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package simulate

import (
	"gonum.org/v1/gonum/stat"

	"github.com/js-arias/skytree/tree"
)

// LeafCountLogger reports the number of leaves of the pruned tree
// under the metadata key "n_leaves".
func LeafCountLogger(t *tree.Node, s *State) map[string]any {
	n := 0
	t.Preorder(func(v *tree.Node) {
		if v.IsLeaf() {
			n++
		}
	})
	return map[string]any{"n_leaves": n}
}

// BranchLengthStatsLogger reports the mean and sample standard
// deviation of every branch length of the pruned tree, under
// "branch_length_mean" and "branch_length_stddev".
func BranchLengthStatsLogger(t *tree.Node, s *State) map[string]any {
	var lengths []float64
	t.Preorder(func(v *tree.Node) {
		if v.BranchLength != nil {
			lengths = append(lengths, *v.BranchLength)
		}
	})
	if len(lengths) == 0 {
		return map[string]any{"branch_length_mean": 0.0, "branch_length_stddev": 0.0}
	}
	mean, stddev := stat.MeanStdDev(lengths, nil)
	return map[string]any{"branch_length_mean": mean, "branch_length_stddev": stddev}
}

// FinalTimeLogger reports the simulation clock at the end of the
// attempt under "final_time".
func FinalTimeLogger(t *tree.Node, s *State) map[string]any {
	return map[string]any{"final_time": s.CurrentTime()}
}
