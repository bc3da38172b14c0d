// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package skyline_test

import (
	"testing"

	"github.com/js-arias/skytree/skyline"
)

func TestParameterOf(t *testing.T) {
	p, err := skyline.ParameterOf(nil)
	if err != nil {
		t.Fatalf("unexpected error for nil: %v", err)
	}
	if p.Nonzero() {
		t.Errorf("nil should resolve to a zero parameter, got %v", p)
	}

	p, err = skyline.ParameterOf(3.5)
	if err != nil {
		t.Fatalf("unexpected error for scalar: %v", err)
	}
	got, _ := p.GetValueAtTime(0)
	if got != 3.5 {
		t.Errorf("got %v, want 3.5", got)
	}

	if _, err := skyline.ParameterOf("nope"); err == nil {
		t.Errorf("expected an unsupported-type error")
	}
}

func TestVectorOf(t *testing.T) {
	v, err := skyline.VectorOf(nil, 3)
	if err != nil {
		t.Fatalf("unexpected error for nil: %v", err)
	}
	if v.Len() != 3 || v.Nonzero() {
		t.Errorf("nil should broadcast to a zero vector of length 3, got %v", v)
	}

	v, err = skyline.VectorOf(2.5, 2)
	if err != nil {
		t.Fatalf("unexpected error for scalar: %v", err)
	}
	got, _ := v.GetValueAtTime(0)
	if got[0] != 2.5 || got[1] != 2.5 {
		t.Errorf("got %v, want [2.5 2.5]", got)
	}

	v, err = skyline.VectorOf([]float64{1, 2, 3}, 3)
	if err != nil {
		t.Fatalf("unexpected error for []float64: %v", err)
	}
	if v.Len() != 3 {
		t.Errorf("got length %d, want 3", v.Len())
	}

	if _, err := skyline.VectorOf([]float64{1, 2}, 3); err == nil {
		t.Errorf("expected a length mismatch error")
	}

	if _, err := skyline.VectorOf("nope", 3); err == nil {
		t.Errorf("expected an unsupported-type error")
	}
}

func TestMatrixOf(t *testing.T) {
	m, err := skyline.MatrixOf(nil, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error for nil: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 3 || m.Nonzero() {
		t.Errorf("nil should broadcast to a zero matrix, got %v", m)
	}

	m, err = skyline.MatrixOf(4.0, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error for scalar: %v", err)
	}
	got, _ := m.At(1, 1).GetValueAtTime(0)
	if got != 4 {
		t.Errorf("got %v, want 4", got)
	}

	rowVec, _ := skyline.VectorOf([]float64{1, 2, 3}, 3)
	m, err = skyline.MatrixOf(rowVec, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error broadcasting a length-N vector: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Errorf("got shape %dx%d, want 2x3", m.Rows(), m.Cols())
	}

	raw := [][]float64{{1, 2}, {3, 4}}
	m, err = skyline.MatrixOf(raw, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error for [][]float64: %v", err)
	}
	got, _ = m.At(1, 0).GetValueAtTime(0)
	if got != 3 {
		t.Errorf("got %v, want 3", got)
	}

	if _, err := skyline.MatrixOf([][]float64{{1, 2}}, 2, 2); err == nil {
		t.Errorf("expected a row count mismatch error")
	}

	if _, err := skyline.MatrixOf(struct{}{}, 2, 2); err == nil {
		t.Errorf("expected an unsupported-type error")
	}
}
