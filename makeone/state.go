// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package makeone

import (
	"slices"

	"github.com/js-arias/clonesum/mixture"
	"github.com/js-arias/clonesum/sample"
)

// NoOutlier is the outlier index
// when there is no outlier clone.
const NoOutlier = -1

// State is the clustering state
// used and updated by an inference.
type State struct {
	// Mixture is the mixture matrix of the clones.
	Mixture *mixture.Matrix

	// Membership is the clone assigned to each data point.
	// Values outside the clones of the mixture matrix
	// (for example sample.Unassigned)
	// are ignored.
	// If Membership is nil,
	// all clones are considered as occupied.
	Membership []int

	// FP is the index of the outlier clone,
	// or NoOutlier.
	FP int

	// IncludeFP is true if the outlier
	// was established before the inference.
	IncludeFP bool

	// MakeOne is the inferred composition.
	MakeOne []int

	// Involuntary is true if the outlier
	// was promoted by the inference.
	Involuntary bool

	// LogLike is the full model likelihood
	// filled during a tie-break.
	LogLike float64
}

// NewState returns a new state
// without an outlier.
func NewState(m *mixture.Matrix, member []int) *State {
	return &State{
		Mixture:    m,
		Membership: member,
		FP:         NoOutlier,
	}
}

// Copy returns a deep copy of the state.
func (s *State) Copy() *State {
	ns := *s
	if s.Mixture != nil {
		ns.Mixture = s.Mixture.Copy()
	}
	ns.Membership = slices.Clone(s.Membership)
	ns.MakeOne = slices.Clone(s.MakeOne)
	return &ns
}

// ClusterSize returns the number of data points
// assigned to a clone.
func (s *State) ClusterSize(clone int) int {
	var n int
	for _, c := range s.Membership {
		if c == clone {
			n++
		}
	}
	return n
}

// Occupied returns the clones with at least one assigned data point,
// excluding the outlier.
func (s *State) Occupied() []int {
	n := s.Mixture.Clones()
	if s.Membership == nil {
		cs := make([]int, 0, n)
		for j := 0; j < n; j++ {
			if j == s.FP {
				continue
			}
			cs = append(cs, j)
		}
		return cs
	}

	var cs []int
	for _, j := range sample.Clones(s.Membership) {
		if j >= n || j == s.FP {
			continue
		}
		cs = append(cs, j)
	}
	return cs
}
