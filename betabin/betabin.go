// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package betabin implements the beta-binomial
// probability mass function.
package betabin

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/combin"
)

// BetaBinomial is a beta-binomial distribution
// of N trials
// with a beta distributed success probability
// with shape parameters Alpha and Beta.
type BetaBinomial struct {
	N     float64
	Alpha float64
	Beta  float64
}

// LogProb returns the natural logarithm
// of the probability of k successes.
//
// If the parameters of the distribution are invalid
// (non-positive shape parameters, or a negative number of trials)
// it returns NaN.
// If k is outside the support,
// it returns -Inf.
func (bb BetaBinomial) LogProb(k float64) float64 {
	if !bb.valid() {
		return math.NaN()
	}
	if k < 0 || k > bb.N || k != math.Floor(k) {
		return math.Inf(-1)
	}

	lc := combin.LogGeneralizedBinomial(bb.N, k)
	return lc + mathext.Lbeta(k+bb.Alpha, bb.N-k+bb.Beta) - mathext.Lbeta(bb.Alpha, bb.Beta)
}

// Log10Prob returns the base 10 logarithm
// of the probability of k successes.
func (bb BetaBinomial) Log10Prob(k float64) float64 {
	return bb.LogProb(k) / math.Ln10
}

// Prob returns the probability of k successes.
func (bb BetaBinomial) Prob(k float64) float64 {
	return math.Exp(bb.LogProb(k))
}

// Mean returns the expected number of successes.
func (bb BetaBinomial) Mean() float64 {
	return bb.N * bb.Alpha / (bb.Alpha + bb.Beta)
}

func (bb BetaBinomial) valid() bool {
	if bb.N < 0 || math.IsNaN(bb.N) || math.IsInf(bb.N, 0) {
		return false
	}
	if bb.Alpha <= 0 || math.IsNaN(bb.Alpha) || math.IsInf(bb.Alpha, 0) {
		return false
	}
	if bb.Beta <= 0 || math.IsNaN(bb.Beta) || math.IsInf(bb.Beta, 0) {
		return false
	}
	return true
}
