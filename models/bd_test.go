// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package models

import (
	"testing"
	"time"

	"github.com/js-arias/skytree/simulate"
)

func TestBDProducesTree(t *testing.T) {
	s, err := BD(BDConfig{
		ReproductionNumber: 2.0,
		InfectiousPeriod:   1.0,
		SamplingProportion: 0.3,
		Seed:               9,
	})
	if err != nil {
		t.Fatalf("BD: %v", err)
	}
	n := 3
	timeout := 300 * time.Millisecond
	tr, _, err := simulate.Run(s, simulate.RunParams{NLeaves: &n, Timeout: &timeout})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if tr == nil {
		t.Fatal("Run returned a nil tree")
	}
}
