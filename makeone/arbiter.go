// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package makeone

import (
	"context"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// An Evaluator returns the full model likelihood
// of a state
// with a given composition and outlier.
// An evaluator must not modify the state.
type Evaluator interface {
	Evaluate(ctx context.Context, s *State) (float64, error)
}

// TieBreak returns the index of the winning row
// of a ranked table.
//
// If the best row promotes an outlier,
// and the second row is a clean composition,
// both compositions are evaluated with the full model,
// and the one with the best likelihood wins.
// Otherwise the best row wins.
func tieBreak(ctx context.Context, rows []Row, s *State, eval Evaluator, log *zap.Logger) (int, float64, bool, error) {
	if eval == nil || len(rows) < 2 {
		return 0, 0, false, nil
	}
	if rows[0].Circumstance != Promoted || rows[1].Circumstance != Clean {
		return 0, 0, false, nil
	}

	promoted := s.Copy()
	promoted.MakeOne = slices.Clone(rows[0].Clones)
	promoted.FP = rows[0].Promoted
	promoted.IncludeFP = true

	clean := s.Copy()
	clean.MakeOne = slices.Clone(rows[1].Clones)

	// both evaluations are independent
	var pLike, cLike float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := eval.Evaluate(gctx, promoted)
		pLike = l
		return err
	})
	g.Go(func() error {
		l, err := eval.Evaluate(gctx, clean)
		cLike = l
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, 0, false, err
	}

	log.Debug("tie-break",
		zap.Ints("promoted", rows[0].Clones),
		zap.Float64("promoted-like", pLike),
		zap.Ints("clean", rows[1].Clones),
		zap.Float64("clean-like", cLike),
	)
	if cLike > pLike {
		return 1, cLike, true, nil
	}
	return 0, pLike, true, nil
}
