// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package makeone_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/clonesum/makeone"
	"github.com/js-arias/clonesum/mixture"
)

func newTreeMixture() *mixture.Matrix {
	return mixture.FromColumns(
		[]float64{0.5, 0.4},
		[]float64{0.5, 0.6},
		[]float64{1.0, 1.0},  // parent of 0 and 1
		[]float64{1.6, 1.6},  // too large to be a parent
		[]float64{0.45, 0.7}, // neither parent nor smaller
		[]float64{0.1, 0.1},  // smaller
	)
}

func TestValidate(t *testing.T) {
	m := newTreeMixture()
	cfg := makeone.Config{Blocks: 2, Step: 5}
	subset := []int{0, 1}

	v := makeone.Validate(subset, []int{2, 4, 5}, makeone.NoOutlier, m, cfg)
	if !v.OK {
		t.Fatalf("validate: rejected parent %d (score %.6f)", v.Failed.Parent, v.Failed.Score)
	}
	if len(v.Parents) != 1 {
		t.Fatalf("validate: got %d parents, want %d", len(v.Parents), 1)
	}
	p := v.Parents[0]
	if p.Parent != 2 || !p.Accepted {
		t.Errorf("validate: parent: got %d (accepted %v), want %d (accepted)", p.Parent, p.Accepted, 2)
	}
	if diff := cmp.Diff([]int{0, 1}, p.Children); diff != "" {
		t.Errorf("validate: children: mismatch (-want +got):\n%s", diff)
	}
	if p.Score < cfg.ParentThreshold() {
		t.Errorf("validate: parent score %.6f below threshold %.6f", p.Score, cfg.ParentThreshold())
	}
	if diff := cmp.Diff([]int{5}, v.Smaller); diff != "" {
		t.Errorf("validate: smaller: mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{4}, v.Unexplained); diff != "" {
		t.Errorf("validate: unexplained: mismatch (-want +got):\n%s", diff)
	}

	// outlier and subset members are ignored
	v = makeone.Validate(subset, []int{0, 2, 5}, 5, m, cfg)
	if !v.OK || len(v.Smaller) != 0 || len(v.Parents) != 1 {
		t.Errorf("validate with outlier: got ok %v, smaller %v, parents %d", v.OK, v.Smaller, len(v.Parents))
	}
}

func TestValidateRejectParent(t *testing.T) {
	m := newTreeMixture()
	cfg := makeone.Config{Blocks: 2, Step: 5}

	v := makeone.Validate([]int{0, 1}, []int{2, 3, 5}, makeone.NoOutlier, m, cfg)
	if v.OK {
		t.Fatalf("validate: got ok, want rejection")
	}
	if v.Failed.Parent != 3 || v.Failed.Accepted {
		t.Errorf("validate: failed parent: got %d (accepted %v), want %d (rejected)", v.Failed.Parent, v.Failed.Accepted, 3)
	}

	// validation stops at the rejected parent
	if len(v.Smaller) != 0 {
		t.Errorf("validate: smaller: got %v, want none", v.Smaller)
	}
}
