// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sample implements the read counts
// of data points (somatic variants)
// observed in a collection of sample blocks.
package sample

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// A Point is a data point
// with the number of total reads (Depth)
// and the number of reads with the alternative allele (Alt)
// in each block.
type Point struct {
	Name  string
	Depth []int
	Alt   []int
}

// VAF returns the variant allele fraction
// of the point in a block.
func (p Point) VAF(block int) float64 {
	if p.Depth[block] == 0 {
		return 0
	}
	return float64(p.Alt[block]) / float64(p.Depth[block])
}

// Data is a collection of data points.
type Data struct {
	blocks int
	points []Point
	ids    map[string]int
}

// New creates a new empty dataset
// with the indicated number of blocks.
func New(blocks int) *Data {
	return &Data{
		blocks: blocks,
		ids:    make(map[string]int),
	}
}

// Add adds a read count of a point in a block.
// If the point is new,
// it will be added to the dataset.
func (d *Data) Add(name string, block, depth, alt int) error {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return errors.New("empty point name")
	}
	if block < 0 || block >= d.blocks {
		return fmt.Errorf("point %q: invalid block %d", name, block)
	}
	if depth < 0 || alt < 0 || alt > depth {
		return fmt.Errorf("point %q: block %d: invalid read count %d/%d", name, block, alt, depth)
	}

	id, ok := d.ids[name]
	if !ok {
		id = len(d.points)
		d.ids[name] = id
		d.points = append(d.points, Point{
			Name:  name,
			Depth: make([]int, d.blocks),
			Alt:   make([]int, d.blocks),
		})
	}
	d.points[id].Depth[block] = depth
	d.points[id].Alt[block] = alt
	return nil
}

// Blocks returns the number of blocks.
func (d *Data) Blocks() int {
	return d.blocks
}

// Len returns the number of points.
func (d *Data) Len() int {
	return len(d.points)
}

// Point returns a point by its index.
func (d *Data) Point(i int) Point {
	return d.points[i]
}

// Index returns the index of a point.
func (d *Data) Index(name string) (int, bool) {
	name = strings.Join(strings.Fields(name), " ")
	id, ok := d.ids[name]
	return id, ok
}

var header = []string{
	"point",
	"block",
	"depth",
	"alt",
}

type count struct {
	name              string
	block, depth, alt int
}

// ReadTSV reads the read counts of the data points
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - point, the name of the data point
//   - block, the index of the sample block
//   - depth, the total number of reads
//   - alt, the number of reads with the alternative allele
//
// Here is an example file:
//
//	# read counts
//	point	block	depth	alt
//	chr1:1203	0	112	31
//	chr1:1203	1	98	25
//	chr3:5601	0	120	22
//	chr3:5601	1	104	21
//
// Points are stored in the order
// in which they are first found in the file.
func ReadTSV(r io.Reader) (*Data, error) {
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

	var counts []count
	var blocks int
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		c := count{name: row[fields["point"]]}
		for _, f := range []string{"block", "depth", "alt"} {
			v, err := strconv.Atoi(row[fields[f]])
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
			}
			switch f {
			case "block":
				c.block = v
			case "depth":
				c.depth = v
			case "alt":
				c.alt = v
			}
		}
		if c.block < 0 {
			return nil, fmt.Errorf("on row %d: field %q: invalid block %d", ln, "block", c.block)
		}
		if c.block >= blocks {
			blocks = c.block + 1
		}
		counts = append(counts, c)
	}

	d := New(blocks)
	for _, c := range counts {
		if err := d.Add(c.name, c.block, c.depth, c.alt); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// TSV writes the read counts into a TSV file.
func (d *Data) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, p := range d.points {
		for i := 0; i < d.blocks; i++ {
			row := []string{
				p.Name,
				strconv.Itoa(i),
				strconv.Itoa(p.Depth[i]),
				strconv.Itoa(p.Alt[i]),
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

// Unassigned is the membership value
// of a point without an assigned clone.
const Unassigned = -1

var memberHeader = []string{
	"point",
	"clone",
}

// ReadMembership reads the assignment of the points of a dataset
// to clones.
//
// The TSV file must contain the following fields:
//
//   - point, the name of the data point
//   - clone, the index of the clone
//
// Here is an example file:
//
//	# membership
//	point	clone
//	chr1:1203	0
//	chr3:5601	1
//
// Points of the dataset not present in the file
// are set as Unassigned.
func ReadMembership(r io.Reader, d *Data) ([]int, error) {
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
	for _, h := range memberHeader {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	member := make([]int, d.Len())
	for i := range member {
		member[i] = Unassigned
	}
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "point"
		id, ok := d.Index(row[fields[f]])
		if !ok {
			return nil, fmt.Errorf("on row %d: field %q: unknown point %q", ln, f, row[fields[f]])
		}

		f = "clone"
		c, err := strconv.Atoi(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		member[id] = c
	}
	return member, nil
}

// WriteMembership writes the assignment of points to clones
// into a TSV file.
func WriteMembership(w io.Writer, d *Data, member []int) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(memberHeader); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for i, c := range member {
		if i >= d.Len() {
			break
		}
		row := []string{
			d.points[i].Name,
			strconv.Itoa(c),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// Sizes returns the number of points
// assigned to each clone
// from 0 up to clones-1.
func Sizes(member []int, clones int) []int {
	sz := make([]int, clones)
	for _, c := range member {
		if c < 0 || c >= clones {
			continue
		}
		sz[c]++
	}
	return sz
}

// Clones returns the sorted list of clones
// with at least one assigned point.
func Clones(member []int) []int {
	var cs []int
	for _, c := range member {
		if c < 0 {
			continue
		}
		if !slices.Contains(cs, c) {
			cs = append(cs, c)
		}
	}
	slices.Sort(cs)
	return cs
}
