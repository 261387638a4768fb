// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package makeone

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Strictness selects the tolerance band
// used to accept a composition.
type Strictness int

// Valid strictness levels.
const (
	// Lenient uses the narrow band for single block data,
	// and the wide band when there are multiple blocks.
	Lenient Strictness = iota

	// Strict always uses the narrow band.
	Strict
)

func (s Strictness) String() string {
	switch s {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("strictness(%d)", int(s))
}

// ParseStrictness returns the strictness level
// of the given name.
func ParseStrictness(name string) (Strictness, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	}
	return Lenient, fmt.Errorf("unknown strictness %q", name)
}

// Tolerance bands around one
// for the sum of the fractions of a composition.
const (
	NarrowLow  = 0.84
	NarrowHigh = 1.15
	WideLow    = 0.77
	WideHigh   = 1.25
)

// DefaultDepth is the pseudo-depth (number of reads)
// used in the beta-binomial scores.
const DefaultDepth = 1000

// Floor is the score assigned to a block
// with an undefined beta-binomial probability.
// A composition with a total score at or below Floor is discarded.
const Floor = -400.0

// Config is the configuration
// of a composition inference.
type Config struct {
	// Strictness of the tolerance band.
	Strictness Strictness

	// Blocks is the number of sample blocks.
	// If zero,
	// the number of blocks of the mixture matrix is used.
	Blocks int

	// NominalClones is the target number of clones.
	// If it is 1,
	// the inference returns the single clone as the whole composition.
	NominalClones int

	// MaxParents is the maximum number of accepted parents
	// in a composition.
	MaxParents int

	// MinClusterSize is the minimum number of data points
	// (exclusive)
	// a clone requires
	// to be promoted as outlier.
	MinClusterSize int

	// Step is the current step of the clustering pipeline.
	// Early steps use a relaxed threshold
	// for the phylogeny parents.
	Step int

	// Depth is the pseudo-depth used in the scores.
	// If zero,
	// DefaultDepth is used.
	Depth int

	// Logger receives the debug events
	// of the inference.
	// It can be nil.
	Logger *zap.Logger
}

// Band returns the lower and upper limits
// of the tolerance band
// for the sum of the fractions
// of a composition in each block.
func (c Config) Band() (lo, hi float64) {
	if c.Strictness == Strict || c.Blocks <= 1 {
		return NarrowLow, NarrowHigh
	}
	return WideLow, WideHigh
}

// InBand returns true if the sum of fractions
// is inside the tolerance band in every block.
// A NaN sum is never in the band.
func (c Config) InBand(sum []float64) bool {
	lo, hi := c.Band()
	for _, s := range sum {
		if !(s >= lo && s <= hi) {
			return false
		}
	}
	return true
}

// ParentThreshold returns the minimum score
// required to accept a clone
// as the parent of two or more clones of a composition.
func (c Config) ParentThreshold() float64 {
	t := -3 - float64(c.Blocks)
	if c.Step <= 4 {
		t -= float64(4-c.Step) / 2
	}
	return t
}

func (c Config) depth() int {
	if c.Depth <= 0 {
		return DefaultDepth
	}
	return c.Depth
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
