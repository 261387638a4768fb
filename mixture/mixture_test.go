// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package mixture_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/js-arias/clonesum/mixture"
)

func newMixture() *mixture.Matrix {
	return mixture.FromColumns(
		[]float64{0.6, 0.55},
		[]float64{0.4, 0.45},
		[]float64{1.0, 1.0},
		[]float64{0.05, 0.02},
	)
}

func TestMatrix(t *testing.T) {
	m := newMixture()
	testMatrix(t, "new matrix", m)
}

func TestSetClone(t *testing.T) {
	m := newMixture()
	c := m.Copy()
	c.SetClone(3, []float64{0.1, 0.2})

	if diff := cmp.Diff([]float64{0.1, 0.2}, c.Clone(3)); diff != "" {
		t.Errorf("set clone: mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.4, 0.45}, c.Clone(1)); diff != "" {
		t.Errorf("other clone: mismatch (-want +got):\n%s", diff)
	}
	testMatrix(t, "original matrix", m)
}

func TestMatrixTSV(t *testing.T) {
	m := newMixture()

	var w bytes.Buffer
	if err := m.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	nm, err := mixture.ReadTSV(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}
	testMatrix(t, "matrix tsv", nm)
}

func TestReadTSVErrors(t *testing.T) {
	tests := map[string]string{
		"no fraction":    "clone\tblock\n0\t0\n",
		"negative":       "clone\tblock\tfraction\n0\t0\t-0.1\n",
		"bad clone":      "clone\tblock\tfraction\nx\t0\t0.1\n",
		"empty":          "clone\tblock\tfraction\n",
		"negative block": "clone\tblock\tfraction\n0\t-1\t0.1\n",
		"not a number":   "clone\tblock\tfraction\n0\t0\tNaN\n",
		"infinite":       "clone\tblock\tfraction\n0\t0\t+Inf\n",
	}
	for name, in := range tests {
		if _, err := mixture.ReadTSV(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expecting error", name)
		}
	}
}

func TestSum(t *testing.T) {
	m := newMixture()

	got := m.Sum([]int{0, 1})
	want := []float64{1, 1}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("sum: mismatch (-want +got):\n%s", diff)
	}
}

func TestDominates(t *testing.T) {
	m := newMixture()

	tests := []struct {
		a, b int
		want bool
	}{
		{2, 0, true},
		{2, 1, true},
		{0, 1, true},
		{1, 0, false},
		{0, 2, false},
		{3, 0, false},
		{0, 0, false},
	}
	for _, test := range tests {
		if got := m.Dominates(test.a, test.b); got != test.want {
			t.Errorf("dominates %d over %d: got %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	m := mixture.FromColumns(
		[]float64{0.6},
		[]float64{0.5},
		[]float64{0.1},
	)
	m.Normalize([]int{0, 1}, 2)

	want := []float64{0.6 / 1.1, 0.5 / 1.1, 0.1}
	for j, w := range want {
		if g := m.At(0, j); math.Abs(g-w) > 1e-9 {
			t.Errorf("clone %d: got %.6f, want %.6f", j, g, w)
		}
	}
}

func testMatrix(t testing.TB, name string, m *mixture.Matrix) {
	t.Helper()

	if b := m.Blocks(); b != 2 {
		t.Errorf("%s: blocks: got %d, want %d", name, b, 2)
	}
	if c := m.Clones(); c != 4 {
		t.Errorf("%s: clones: got %d, want %d", name, c, 4)
	}

	want := [][]float64{
		{0.6, 0.55},
		{0.4, 0.45},
		{1.0, 1.0},
		{0.05, 0.02},
	}
	for j, w := range want {
		if diff := cmp.Diff(w, m.Clone(j), cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Errorf("%s: clone %d: mismatch (-want +got):\n%s", name, j, diff)
		}
	}
}
