// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package mixture implements a mixture matrix
// of the cellular fractions of clones
// in a collection of sample blocks.
package mixture

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a mixture matrix.
// Each row is a sample block,
// and each column a clone.
type Matrix struct {
	m *mat.Dense
}

// New creates a new mixture matrix
// with the indicated number of blocks and clones.
func New(blocks, clones int) *Matrix {
	return &Matrix{
		m: mat.NewDense(blocks, clones, nil),
	}
}

// FromColumns creates a new mixture matrix
// in which each element of cols
// is the fraction of a clone
// in each block.
func FromColumns(cols ...[]float64) *Matrix {
	m := New(len(cols[0]), len(cols))
	for j, c := range cols {
		m.m.SetCol(j, c)
	}
	return m
}

// Blocks returns the number of sample blocks.
func (m *Matrix) Blocks() int {
	r, _ := m.m.Dims()
	return r
}

// Clones returns the number of clones.
func (m *Matrix) Clones() int {
	_, c := m.m.Dims()
	return c
}

// At returns the fraction of a clone in a block.
func (m *Matrix) At(block, clone int) float64 {
	return m.m.At(block, clone)
}

// Set sets the fraction of a clone in a block.
func (m *Matrix) Set(block, clone int, v float64) {
	m.m.Set(block, clone, v)
}

// Clone returns the fraction of a clone
// in each block.
func (m *Matrix) Clone(clone int) []float64 {
	return mat.Col(nil, clone, m.m)
}

// SetClone sets the fractions of a clone.
func (m *Matrix) SetClone(clone int, v []float64) {
	m.m.SetCol(clone, v)
}

// Copy returns a copy of the matrix.
func (m *Matrix) Copy() *Matrix {
	return &Matrix{
		m: mat.DenseCopyOf(m.m),
	}
}

// Sum returns the sum of the fractions
// of the indicated clones
// in each block.
func (m *Matrix) Sum(clones []int) []float64 {
	sum := make([]float64, m.Blocks())
	for _, j := range clones {
		floats.Add(sum, m.Clone(j))
	}
	return sum
}

// Dominates returns true if clone a
// has a larger fraction than clone b
// in every block.
func (m *Matrix) Dominates(a, b int) bool {
	for i := 0; i < m.Blocks(); i++ {
		if m.m.At(i, a) <= m.m.At(i, b) {
			return false
		}
	}
	return true
}

// Normalize scales the fractions of all clones
// so the indicated clones sum one in each block.
// Clones in the skip list are not scaled.
// Blocks in which the clones sum zero are not modified.
func (m *Matrix) Normalize(clones []int, skip ...int) {
	sum := m.Sum(clones)
	for i, s := range sum {
		if s <= 0 {
			continue
		}
		for j := 0; j < m.Clones(); j++ {
			if slices.Contains(skip, j) {
				continue
			}
			m.m.Set(i, j, m.m.At(i, j)/s)
		}
	}
}

var header = []string{
	"clone",
	"block",
	"fraction",
}

type cell struct {
	block, clone int
	v            float64
}

// ReadTSV reads a mixture matrix from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - clone, the index of the clone
//   - block, the index of the sample block
//   - fraction, the cellular fraction of the clone in the block
//
// Here is an example file:
//
//	# clone mixture
//	clone	block	fraction
//	0	0	0.600000
//	0	1	0.550000
//	1	0	0.400000
//	1	1	0.450000
//
// Cells not defined in the file are set to zero.
func ReadTSV(r io.Reader) (*Matrix, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	var cells []cell
	var blocks, clones int
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "clone"
		j, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if j < 0 {
			return nil, fmt.Errorf("on row %d: field %q: invalid clone %d", ln, f, j)
		}

		f = "block"
		i, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if i < 0 {
			return nil, fmt.Errorf("on row %d: field %q: invalid block %d", ln, f, i)
		}

		f = "fraction"
		v, err := strconv.ParseFloat(row[fields[f]], 64)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("on row %d: field %q: invalid fraction %.6f", ln, f, v)
		}

		cells = append(cells, cell{block: i, clone: j, v: v})
		if i >= blocks {
			blocks = i + 1
		}
		if j >= clones {
			clones = j + 1
		}
	}
	if len(cells) == 0 {
		return nil, errors.New("empty mixture matrix")
	}

	m := New(blocks, clones)
	for _, c := range cells {
		m.m.Set(c.block, c.clone, c.v)
	}
	return m, nil
}

// TSV writes a mixture matrix into a TSV file.
func (m *Matrix) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for j := 0; j < m.Clones(); j++ {
		for i := 0; i < m.Blocks(); i++ {
			row := []string{
				strconv.Itoa(j),
				strconv.Itoa(i),
				strconv.FormatFloat(m.m.At(i, j), 'f', 6, 64),
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
