// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sample_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/clonesum/sample"
)

func newData(t testing.TB) *sample.Data {
	t.Helper()

	d := sample.New(2)
	counts := []struct {
		name              string
		block, depth, alt int
	}{
		{"chr1:1203", 0, 112, 31},
		{"chr1:1203", 1, 98, 25},
		{"chr3:5601", 0, 120, 22},
		{"chr3:5601", 1, 104, 21},
		{"chr7:900", 0, 80, 4},
		{"chr7:900", 1, 90, 0},
	}
	for _, c := range counts {
		if err := d.Add(c.name, c.block, c.depth, c.alt); err != nil {
			t.Fatalf("unable to add %q: %v", c.name, err)
		}
	}
	return d
}

func TestData(t *testing.T) {
	d := newData(t)
	testData(t, "new data", d)
}

func TestDataTSV(t *testing.T) {
	d := newData(t)

	var w bytes.Buffer
	if err := d.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	nd, err := sample.ReadTSV(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}
	testData(t, "data tsv", nd)
}

func TestAddErrors(t *testing.T) {
	d := sample.New(1)
	if err := d.Add("", 0, 10, 1); err == nil {
		t.Errorf("empty name: expecting error")
	}
	if err := d.Add("p", 1, 10, 1); err == nil {
		t.Errorf("invalid block: expecting error")
	}
	if err := d.Add("p", 0, 10, 11); err == nil {
		t.Errorf("alt larger than depth: expecting error")
	}
}

func TestMembership(t *testing.T) {
	d := newData(t)

	member := []int{0, 1, sample.Unassigned}
	var w bytes.Buffer
	if err := sample.WriteMembership(&w, d, member); err != nil {
		t.Fatalf("unable to write membership: %v", err)
	}

	got, err := sample.ReadMembership(strings.NewReader(w.String()), d)
	if err != nil {
		t.Fatalf("unable to read membership: %v", err)
	}
	if diff := cmp.Diff(member, got); diff != "" {
		t.Errorf("membership: mismatch (-want +got):\n%s", diff)
	}

	in := "point\tclone\nchr9:1\t0\n"
	if _, err := sample.ReadMembership(strings.NewReader(in), d); err == nil {
		t.Errorf("unknown point: expecting error")
	}

	if diff := cmp.Diff([]int{1, 1, 0}, sample.Sizes([]int{0, 1, -1, 5}, 3)); diff != "" {
		t.Errorf("sizes: mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2, 5}, sample.Clones([]int{5, 0, -1, 2, 0})); diff != "" {
		t.Errorf("clones: mismatch (-want +got):\n%s", diff)
	}
}

func testData(t testing.TB, name string, d *sample.Data) {
	t.Helper()

	if b := d.Blocks(); b != 2 {
		t.Errorf("%s: blocks: got %d, want %d", name, b, 2)
	}
	if n := d.Len(); n != 3 {
		t.Fatalf("%s: points: got %d, want %d", name, n, 3)
	}

	want := []sample.Point{
		{Name: "chr1:1203", Depth: []int{112, 98}, Alt: []int{31, 25}},
		{Name: "chr3:5601", Depth: []int{120, 104}, Alt: []int{22, 21}},
		{Name: "chr7:900", Depth: []int{80, 90}, Alt: []int{4, 0}},
	}
	for i, w := range want {
		if diff := cmp.Diff(w, d.Point(i)); diff != "" {
			t.Errorf("%s: point %d: mismatch (-want +got):\n%s", name, i, diff)
		}
	}

	if id, ok := d.Index("chr3:5601"); !ok || id != 1 {
		t.Errorf("%s: index: got %d (%v), want %d", name, id, ok, 1)
	}
}
