// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package makeone implements the inference
// of the subset of clones
// whose cellular fractions sum one
// in every sample block
// (a "makeone" composition).
//
// Candidate compositions are scored
// with a beta-binomial model,
// the remaining clones must be explained
// as phylogenetic parents of the composition
// (i.e., as the sum of two or more clones),
// and a single small dominated clone
// can be promoted as an outlier.
package makeone

import (
	"context"
	"slices"

	"github.com/js-arias/clonesum/combi"
	"go.uber.org/zap"
)

// Result is the result of an inference.
type Result struct {
	// MakeOne is the winning composition.
	// It is empty if no composition was found.
	MakeOne []int

	// Table is the ranked table of accepted compositions.
	Table []Row

	// FP is the resulting outlier clone,
	// or NoOutlier.
	FP int

	// Involuntary is true if the outlier
	// was promoted by the inference.
	Involuntary bool

	// TieBreak is true if the full model
	// was used to select the winner.
	TieBreak bool

	// LogLike is the full model likelihood
	// of the winner of a tie-break.
	LogLike float64
}

// Winner returns the winning row of the table.
func (r *Result) Winner() (Row, bool) {
	for _, row := range r.Table {
		if slices.Equal(row.Clones, r.MakeOne) {
			return row, true
		}
	}
	return Row{}, false
}

// Infer searches the composition of a state.
//
// The state is updated
// with the winning composition,
// and, if the winner promotes an outlier,
// with the new outlier.
// If no composition is found,
// it returns an empty result
// with NoOutlier,
// and the outlier of the state is not modified.
//
// The evaluator is used only to break ties
// between a composition that promotes an outlier
// and a clean composition.
// If it is nil,
// the best ranked composition always wins.
// The only error returned is an error of the evaluator.
func Infer(ctx context.Context, s *State, cfg Config, eval Evaluator) (*Result, error) {
	if cfg.Blocks == 0 {
		cfg.Blocks = s.Mixture.Blocks()
	}
	log := cfg.logger()

	if cfg.NominalClones == 1 {
		s.MakeOne = []int{0}
		s.Involuntary = false
		return &Result{
			MakeOne: []int{0},
			Table: []Row{
				{
					Score:    1,
					ID:       0,
					Clones:   []int{0},
					Promoted: NoOutlier,
				},
			},
			FP: NoOutlier,
		}, nil
	}

	occupied := s.Occupied()
	cands := Compositions(occupied, s.Mixture, cfg, combi.New())
	log.Debug("compositions in band",
		zap.Ints("clones", occupied),
		zap.Int("candidates", len(cands)),
	)

	var rows []Row
	for _, c := range cands {
		remaining := make([]int, 0, len(occupied))
		for _, j := range occupied {
			if slices.Contains(c.Clones, j) {
				continue
			}
			remaining = append(remaining, j)
		}

		row, ok := Classify(c, remaining, s, cfg)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		log.Debug("no composition found")
		s.MakeOne = nil
		s.Involuntary = false
		return &Result{
			MakeOne: []int{},
			Table:   []Row{},
			FP:      NoOutlier,
		}, nil
	}
	Rank(rows)

	w, like, tb, err := tieBreak(ctx, rows, s, eval, log)
	if err != nil {
		return nil, err
	}
	return compose(s, rows, w, like, tb), nil
}

func compose(s *State, rows []Row, w int, like float64, tb bool) *Result {
	win := rows[w]
	r := &Result{
		MakeOne:  slices.Clone(win.Clones),
		Table:    rows,
		FP:       s.FP,
		TieBreak: tb,
		LogLike:  like,
	}
	if win.Circumstance == Promoted {
		r.FP = win.Promoted
		r.Involuntary = true
		s.FP = win.Promoted
	}

	s.MakeOne = slices.Clone(win.Clones)
	s.Involuntary = r.Involuntary
	if tb {
		s.LogLike = like
	}
	return r
}
