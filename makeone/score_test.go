// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package makeone_test

import (
	"math"
	"testing"

	"github.com/js-arias/clonesum/combi"
	"github.com/js-arias/clonesum/makeone"
	"github.com/js-arias/clonesum/mixture"
)

func TestCompositionScore(t *testing.T) {
	tests := map[string]struct {
		sum  []float64
		want float64
	}{
		"one":             {[]float64{1.0}, -1.748738},
		"over":            {[]float64{1.1}, -2.839295},
		"under":           {[]float64{0.9}, -2.839295},
		"narrow low":      {[]float64{0.84}, -4.553455},
		"two blocks":      {[]float64{1.0, 1.0}, 2 * -1.748738},
		"undefined":       {[]float64{0}, makeone.Floor},
		"undefined block": {[]float64{1.0, 0}, makeone.Floor - 1.748738},
	}

	for name, test := range tests {
		got := makeone.CompositionScore(test.sum, makeone.DefaultDepth)
		if math.Abs(got-test.want) > 1e-4 {
			t.Errorf("%s: got %.6f, want %.6f", name, got, test.want)
		}
	}
}

func TestParentScore(t *testing.T) {
	got := makeone.ParentScore([]float64{1.0}, []float64{1.0}, makeone.DefaultDepth)
	if want := -1.748738; math.Abs(got-want) > 1e-4 {
		t.Errorf("exact parent: got %.6f, want %.6f", got, want)
	}

	got = makeone.ParentScore([]float64{1.6}, []float64{1.0}, makeone.DefaultDepth)
	if want := -45.644421; math.Abs(got-want) > 1e-4 {
		t.Errorf("large parent: got %.6f, want %.6f", got, want)
	}
}

func TestCompositions(t *testing.T) {
	m := mixture.FromColumns(
		[]float64{0.6},
		[]float64{0.4},
		[]float64{0.1},
	)
	cfg := makeone.Config{Blocks: 1}

	cands := makeone.Compositions([]int{0, 1, 2}, m, cfg, combi.New())
	want := []struct {
		id     int
		clones []int
		score  float64
	}{
		{3, []int{0, 1}, -1.748738},
		{6, []int{0, 1, 2}, -2.839295},
	}
	if len(cands) != len(want) {
		t.Fatalf("compositions: got %d, want %d", len(cands), len(want))
	}
	for i, w := range want {
		c := cands[i]
		if c.ID != w.id {
			t.Errorf("composition %d: id: got %d, want %d", i, c.ID, w.id)
		}
		if !equalInts(c.Clones, w.clones) {
			t.Errorf("composition %d: clones: got %v, want %v", i, c.Clones, w.clones)
		}
		if math.Abs(c.Score-w.score) > 1e-4 {
			t.Errorf("composition %d: score: got %.6f, want %.6f", i, c.Score, w.score)
		}
		if !cfg.InBand(c.Sum) {
			t.Errorf("composition %d: sum %v outside band", i, c.Sum)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, x := range a {
		if b[i] != x {
			return false
		}
	}
	return true
}
