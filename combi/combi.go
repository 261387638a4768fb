// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package combi implements the enumeration
// of additive combinations of clones.
package combi

import (
	"slices"
	"strconv"
	"strings"

	"github.com/js-arias/clonesum/mixture"
	"gonum.org/v1/gonum/stat/combin"
)

// A Subset is a combination of clones
// and the sum of their fractions
// in each block.
type Subset struct {
	Clones []int
	Sum    []float64
}

// A Generator enumerates the additive subsets
// of a collection of clones.
// A generator remembers the subsets already produced,
// so a subset is never repeated
// in successive enumerations of the same generator.
type Generator struct {
	seen map[string]bool
}

// New returns a new generator.
func New() *Generator {
	return &Generator{
		seen: make(map[string]bool),
	}
}

// Enumerate returns every subset
// (of size 1 up to the full set)
// of the indicated clones,
// with the sum of their fractions in m.
// Subsets are produced by increasing size,
// and in lexicographic order within a size.
func (g *Generator) Enumerate(clones []int, m *mixture.Matrix) []Subset {
	clones = slices.Clone(clones)
	slices.Sort(clones)
	clones = slices.Compact(clones)

	var subsets []Subset
	for _, c := range Sub(clones, 1) {
		key := signature(c)
		if g.seen[key] {
			continue
		}
		g.seen[key] = true

		subsets = append(subsets, Subset{
			Clones: c,
			Sum:    m.Sum(c),
		})
	}
	return subsets
}

// Sub returns all combinations of the elements of set
// with at least min elements
// (up to the whole set).
func Sub(set []int, min int) [][]int {
	if min < 1 {
		min = 1
	}

	var subs [][]int
	for k := min; k <= len(set); k++ {
		for _, idx := range combin.Combinations(len(set), k) {
			c := make([]int, k)
			for i, x := range idx {
				c[i] = set[x]
			}
			subs = append(subs, c)
		}
	}
	return subs
}

func signature(c []int) string {
	var b strings.Builder
	for i, x := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
	return b.String()
}
