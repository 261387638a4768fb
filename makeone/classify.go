// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package makeone

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Circumstance is the way a composition
// handles the outlier clone.
type Circumstance int

// Valid circumstances.
const (
	// Promoted is a composition
	// with a single dominated clone
	// that is promoted as the outlier.
	Promoted Circumstance = 2

	// Clean is a composition
	// without outlier.
	Clean Circumstance = 3

	// Retained is a composition
	// that keeps the previous outlier.
	Retained Circumstance = 4
)

func (c Circumstance) String() string {
	switch c {
	case Promoted:
		return "promoted"
	case Clean:
		return "clean"
	case Retained:
		return "retained"
	}
	return fmt.Sprintf("circumstance(%d)", int(c))
}

// A Row is an accepted composition
// in the ranked table.
type Row struct {
	Score        float64
	ID           int
	Circumstance Circumstance
	Clones       []int

	// Promoted is the clone promoted as outlier
	// in a Promoted composition,
	// or NoOutlier.
	Promoted int

	Parents []Record
}

// Classify validates a composition
// and returns its row in the ranked table.
// It returns false if the composition is rejected.
func Classify(c Candidate, remaining []int, s *State, cfg Config) (Row, bool) {
	log := cfg.logger().With(zap.Ints("clones", c.Clones))

	v := Validate(c.Clones, remaining, s.FP, s.Mixture, cfg)
	if !v.OK {
		log.Debug("parent rejected",
			zap.Int("parent", v.Failed.Parent),
			zap.Float64("score", v.Failed.Score),
		)
		return Row{}, false
	}
	if !parentsAllowed(v.Parents, cfg) {
		log.Debug("parents not allowed", zap.Int("parents", len(v.Parents)))
		return Row{}, false
	}

	row := Row{
		Score:    c.Score,
		ID:       c.ID,
		Clones:   c.Clones,
		Promoted: NoOutlier,
		Parents:  v.Parents,
	}

	if len(v.Smaller) == 0 && len(v.Unexplained) == 0 {
		row.Circumstance = Clean
		if s.IncludeFP {
			row.Circumstance = Retained
		}
		log.Debug("composition accepted", zap.Stringer("circumstance", row.Circumstance))
		return row, true
	}

	if s.IncludeFP || len(v.Smaller) != 1 || len(v.Unexplained) != 0 {
		log.Debug("unexplained clones",
			zap.Ints("smaller", v.Smaller),
			zap.Ints("unexplained", v.Unexplained),
		)
		return Row{}, false
	}

	lone := v.Smaller[0]
	if sz := s.ClusterSize(lone); sz <= cfg.MinClusterSize {
		log.Debug("outlier candidate too small", zap.Int("clone", lone), zap.Int("size", sz))
		return Row{}, false
	}

	// the check of each remaining clone
	// does not depend on the others,
	// so with the lone clone as outlier
	// the other clones are already explained.
	row.Circumstance = Promoted
	row.Promoted = lone
	log.Debug("composition accepted",
		zap.Stringer("circumstance", row.Circumstance),
		zap.Int("outlier", lone),
	)
	return row, true
}

// ParentsAllowed returns false
// if there are more parents than the maximum,
// or if there is a parent in single block data.
func parentsAllowed(parents []Record, cfg Config) bool {
	if len(parents) > cfg.MaxParents {
		return false
	}
	if cfg.Blocks == 1 && len(parents) > 0 {
		return false
	}
	return true
}

// Rank sorts the rows by decreasing score.
// Rows with the same score keep their order.
func Rank(rows []Row) {
	slices.SortStableFunc(rows, func(a, b Row) int {
		return cmp.Compare(b.Score, a.Score)
	})
}
