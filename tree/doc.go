// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements a mutable phylogenetic tree, the data
// structure a simulation builds as it runs and prunes down to a
// sampled result. A tree is a collection of linked nodes with a
// single root; every node other than the root carries an optional
// branch length and an arbitrary metadata annotation map.
package tree
