// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package makeone

import (
	"math"
	"slices"

	"github.com/js-arias/clonesum/combi"
	"github.com/js-arias/clonesum/mixture"
)

// A Record is the result of testing a clone
// as the parent of two or more clones of a composition.
type Record struct {
	Parent   int
	Children []int
	Sum      []float64
	Score    float64
	Accepted bool
}

// Validation is the result of the phylogeny validation
// of a composition.
type Validation struct {
	// OK is false if a clone that dominates
	// two or more clones of the composition
	// is not accepted as their parent.
	OK bool

	// Failed is the rejected parent record.
	Failed Record

	// Smaller are the clones dominated
	// by a clone of the composition
	// that are not parents.
	Smaller []int

	// Unexplained are the clones
	// that are neither parents
	// nor dominated by a clone of the composition.
	Unexplained []int

	// Parents are the accepted parents.
	Parents []Record
}

// Validate checks whether the remaining clones
// are explainable as parents of the clones in a composition.
// The outlier clone,
// and any clone in the composition,
// is ignored.
// The validation stops at the first rejected parent.
func Validate(subset, remaining []int, fp int, m *mixture.Matrix, cfg Config) Validation {
	var v Validation
	for _, j3 := range remaining {
		if j3 == fp || slices.Contains(subset, j3) {
			continue
		}

		var lt, gt int
		for _, j4 := range subset {
			if m.Dominates(j4, j3) {
				lt++
			}
			if m.Dominates(j3, j4) {
				gt++
			}
		}

		if gt >= 2 {
			r := bestParent(j3, subset, m, cfg)
			if !r.Accepted {
				v.Failed = r
				return v
			}
			v.Parents = append(v.Parents, r)
			continue
		}
		if lt > 0 {
			v.Smaller = append(v.Smaller, j3)
			continue
		}
		v.Unexplained = append(v.Unexplained, j3)
	}

	v.OK = true
	return v
}

// BestParent returns the sub-combination
// (with at least two clones)
// of the subset
// that best explains the parent clone.
func bestParent(parent int, subset []int, m *mixture.Matrix, cfg Config) Record {
	pf := m.Clone(parent)
	best := Record{
		Parent: parent,
		Score:  math.Inf(-1),
	}
	for _, c := range combi.Sub(subset, 2) {
		sum := m.Sum(c)
		s := ParentScore(pf, sum, cfg.depth())
		if s > best.Score {
			best.Children = c
			best.Sum = sum
			best.Score = s
		}
	}
	best.Accepted = best.Score >= cfg.ParentThreshold()
	return best
}
