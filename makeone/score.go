// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package makeone

import (
	"math"

	"github.com/js-arias/clonesum/betabin"
	"github.com/js-arias/clonesum/combi"
	"github.com/js-arias/clonesum/mixture"
	"go.uber.org/zap"
)

// A Candidate is a scored composition.
type Candidate struct {
	// ID is the index of the subset
	// in the enumeration.
	ID int

	Clones []int
	Sum    []float64
	Score  float64
}

// CompositionScore returns the log10 probability
// that a composition with the indicated sum of fractions
// sums one in each block.
//
// Each block is scored as a beta-binomial of depth reads
// with shape parameters a = round(sum*depth/2) and depth-a,
// evaluated at depth/2.
func CompositionScore(sum []float64, depth int) float64 {
	target := math.Round(float64(depth) / 2)

	var score float64
	for _, s := range sum {
		score += blockScore(s, target, depth)
	}
	return score
}

// ParentScore returns the log10 probability
// that a clone with the fractions of parent
// is the sum of a set of clones
// with the fractions of children.
func ParentScore(parent, children []float64, depth int) float64 {
	var score float64
	for i, s := range children {
		target := math.Round(parent[i] * float64(depth) / 2)
		score += blockScore(s, target, depth)
	}
	return score
}

func blockScore(frac, target float64, depth int) float64 {
	n := float64(depth)
	a := math.Round(frac * n / 2)
	bb := betabin.BetaBinomial{
		N:     n,
		Alpha: a,
		Beta:  n - a,
	}
	p := bb.Log10Prob(target)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return Floor
	}
	return p
}

// Compositions returns the subsets of clones
// with a sum of fractions inside the tolerance band,
// and a score above Floor.
func Compositions(clones []int, m *mixture.Matrix, cfg Config, gen *combi.Generator) []Candidate {
	log := cfg.logger()

	var cands []Candidate
	for id, s := range gen.Enumerate(clones, m) {
		if !cfg.InBand(s.Sum) {
			continue
		}
		score := CompositionScore(s.Sum, cfg.depth())
		if score <= Floor {
			log.Debug("composition below floor",
				zap.Ints("clones", s.Clones),
				zap.Float64s("sum", s.Sum),
			)
			continue
		}
		cands = append(cands, Candidate{
			ID:     id,
			Clones: s.Clones,
			Sum:    s.Sum,
			Score:  score,
		})
	}
	return cands
}
