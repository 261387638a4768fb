// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package em implements a full model evaluation
// of a clone composition
// using a hard expectation-maximization
// over the read counts of the data points.
package em

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/js-arias/clonesum/makeone"
	"github.com/js-arias/clonesum/mixture"
	"github.com/js-arias/clonesum/sample"
	"gonum.org/v1/gonum/stat/distuv"
)

// minVAF is the smallest allele fraction
// used in the binomial model.
const minVAF = 1e-6

// Evaluator is a full model evaluator.
type Evaluator struct {
	// Data is the dataset
	// with the read counts.
	Data *sample.Data

	// Rounds is the number of expectation-maximization rounds
	// before the final expectation.
	Rounds int
}

// Evaluate returns the log likelihood
// of the data
// given the composition of a state.
//
// The mixture of the state is normalized
// so the clones in the composition sum one in each block
// (the outlier clone is not normalized),
// then each data point is assigned to the clone
// that maximizes its likelihood
// (the E step),
// and the fractions of the clones are updated
// from the assigned points
// (the M step).
// The returned value is the log likelihood
// of the final assignment.
// The state is not modified.
func (e *Evaluator) Evaluate(ctx context.Context, s *makeone.State) (float64, error) {
	if e.Data == nil {
		return 0, errors.New("em: undefined dataset")
	}
	if b := s.Mixture.Blocks(); b != e.Data.Blocks() {
		return 0, fmt.Errorf("em: mixture with %d blocks, dataset with %d blocks", b, e.Data.Blocks())
	}
	if len(s.MakeOne) == 0 {
		return 0, errors.New("em: empty composition")
	}

	m := s.Mixture.Copy()
	for r := 0; r < e.Rounds; r++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		normalize(m, s)
		member, _ := Expectation(e.Data, m)
		Maximization(e.Data, m, member)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	normalize(m, s)
	_, like := Expectation(e.Data, m)
	return like, nil
}

func normalize(m *mixture.Matrix, s *makeone.State) {
	if s.FP == makeone.NoOutlier {
		m.Normalize(s.MakeOne)
		return
	}
	m.Normalize(s.MakeOne, s.FP)
}

// Expectation assigns each data point
// to the clone with the best likelihood.
// It returns the assignment
// and the total log likelihood.
// Clones with a zero fraction in every block are ignored.
func Expectation(d *sample.Data, m *mixture.Matrix) ([]int, float64) {
	var active []int
	for j := 0; j < m.Clones(); j++ {
		for i := 0; i < m.Blocks(); i++ {
			if m.At(i, j) > 0 {
				active = append(active, j)
				break
			}
		}
	}

	member := make([]int, d.Len())
	var like float64
	for p := 0; p < d.Len(); p++ {
		pt := d.Point(p)
		best := math.Inf(-1)
		member[p] = sample.Unassigned
		for _, j := range active {
			l := PointLogLike(pt, m.Clone(j))
			if l > best {
				best = l
				member[p] = j
			}
		}
		if member[p] == sample.Unassigned {
			continue
		}
		like += best
	}
	return member, like
}

// Maximization updates the fraction of each clone
// from the read counts of the assigned points.
// Clones without assigned points
// keep their previous fractions.
func Maximization(d *sample.Data, m *mixture.Matrix, member []int) {
	alt := make([][]float64, m.Clones())
	depth := make([][]float64, m.Clones())
	for j := range alt {
		alt[j] = make([]float64, m.Blocks())
		depth[j] = make([]float64, m.Blocks())
	}
	for p, j := range member {
		if j < 0 || j >= m.Clones() {
			continue
		}
		pt := d.Point(p)
		for i := 0; i < m.Blocks(); i++ {
			alt[j][i] += float64(pt.Alt[i])
			depth[j][i] += float64(pt.Depth[i])
		}
	}

	for j := range alt {
		frac := m.Clone(j)
		for i := range frac {
			if depth[j][i] == 0 {
				continue
			}
			frac[i] = 2 * alt[j][i] / depth[j][i]
		}
		m.SetClone(j, frac)
	}
}

// PointLogLike returns the log likelihood
// of a data point
// given the fractions of a clone,
// using a binomial model
// with the allele fraction set as half of the clone fraction.
func PointLogLike(pt sample.Point, frac []float64) float64 {
	var like float64
	for i, f := range frac {
		if pt.Depth[i] == 0 {
			continue
		}
		vaf := f / 2
		if vaf < minVAF {
			vaf = minVAF
		}
		if vaf > 1-minVAF {
			vaf = 1 - minVAF
		}
		b := distuv.Binomial{
			N: float64(pt.Depth[i]),
			P: vaf,
		}
		like += b.LogProb(float64(pt.Alt[i]))
	}
	return like
}
