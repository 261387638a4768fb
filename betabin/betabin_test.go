// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package betabin_test

import (
	"math"
	"testing"

	"github.com/js-arias/clonesum/betabin"
)

func TestUniform(t *testing.T) {
	// with alpha = beta = 1
	// the distribution is a discrete uniform.
	bb := betabin.BetaBinomial{N: 10, Alpha: 1, Beta: 1}
	want := 1.0 / 11
	var sum float64
	for k := 0.0; k <= 10; k++ {
		p := bb.Prob(k)
		if math.Abs(p-want) > 1e-9 {
			t.Errorf("k = %.0f: got %.6f, want %.6f", k, p, want)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("sum: got %.6f, want %.6f", sum, 1.0)
	}
}

func TestProb(t *testing.T) {
	// values calculated by hand
	// from C(n,k) B(k+a, n-k+b) / B(a, b).
	tests := map[string]struct {
		bb   betabin.BetaBinomial
		k    float64
		want float64
	}{
		"n=2, a=2, b=1, k=0": {betabin.BetaBinomial{N: 2, Alpha: 2, Beta: 1}, 0, 1.0 / 6},
		"n=2, a=2, b=1, k=1": {betabin.BetaBinomial{N: 2, Alpha: 2, Beta: 1}, 1, 1.0 / 3},
		"n=2, a=2, b=1, k=2": {betabin.BetaBinomial{N: 2, Alpha: 2, Beta: 1}, 2, 1.0 / 2},
		"n=1, a=3, b=1, k=1": {betabin.BetaBinomial{N: 1, Alpha: 3, Beta: 1}, 1, 3.0 / 4},
	}

	for name, test := range tests {
		got := test.bb.Prob(test.k)
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("%s: got %.6f, want %.6f", name, got, test.want)
		}
		l10 := test.bb.Log10Prob(test.k)
		if w := math.Log10(test.want); math.Abs(l10-w) > 1e-9 {
			t.Errorf("%s: log10: got %.6f, want %.6f", name, l10, w)
		}
	}
}

func TestSymmetry(t *testing.T) {
	bb := betabin.BetaBinomial{N: 1000, Alpha: 500, Beta: 500}
	mode := bb.Log10Prob(500)
	for _, d := range []float64{1, 10, 50, 100} {
		lo := bb.Log10Prob(500 - d)
		hi := bb.Log10Prob(500 + d)
		if math.Abs(lo-hi) > 1e-9 {
			t.Errorf("distance %.0f: got %.6f and %.6f, want equal values", d, lo, hi)
		}
		if lo >= mode {
			t.Errorf("distance %.0f: got %.6f, want less than mode %.6f", d, lo, mode)
		}
	}
	if m := bb.Mean(); m != 500 {
		t.Errorf("mean: got %.6f, want %.6f", m, 500.0)
	}
}

func TestInvalid(t *testing.T) {
	for _, bb := range []betabin.BetaBinomial{
		{N: 1000, Alpha: 0, Beta: 1000},
		{N: 1000, Alpha: 1000, Beta: 0},
		{N: -1, Alpha: 1, Beta: 1},
	} {
		if p := bb.LogProb(1); !math.IsNaN(p) {
			t.Errorf("%v: got %.6f, want NaN", bb, p)
		}
	}

	bb := betabin.BetaBinomial{N: 10, Alpha: 1, Beta: 1}
	for _, k := range []float64{-1, 11, 2.5} {
		if p := bb.LogProb(k); !math.IsInf(p, -1) {
			t.Errorf("k = %.1f: got %.6f, want -Inf", k, p)
		}
	}
}
