// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package project implements reading and writing
// of clonesum project files.
//
// A clonesum project is a tab-delimited file (TSV)
// with the paths of the datasets
// used by an inference:
// the mixture matrix of the clones,
// the read counts of the data points,
// the assignment of the points to the clones,
// and the inference parameters.
package project

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Dataset is a keyword to identify
// the type of a dataset file in a project.
type Dataset string

// Valid dataset types.
const (
	// File for the mixture matrix
	// of the clones.
	Mixture Dataset = "mixture"

	// File for the read counts
	// of the data points.
	Samples Dataset = "samples"

	// File for the assignment
	// of data points to clones.
	// It requires a samples dataset.
	Membership Dataset = "membership"

	// File for the parameters
	// of the inference.
	Params Dataset = "params"
)

// Datasets returns the valid datasets
// in the order used in project files.
func Datasets() []Dataset {
	return []Dataset{Mixture, Samples, Membership, Params}
}

// ParseDataset returns the dataset of a keyword.
func ParseDataset(name string) (Dataset, error) {
	set := Dataset(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Datasets() {
		if s == set {
			return set, nil
		}
	}
	return "", fmt.Errorf("unknown dataset %q", name)
}

// Requires returns the datasets
// that must be defined
// to use a given dataset.
func (set Dataset) Requires() []Dataset {
	if set == Membership {
		return []Dataset{Samples}
	}
	return nil
}

// A Project represents a collection of paths
// for particular datasets.
type Project struct {
	name  string
	paths map[Dataset]string
}

// New creates a new empty project.
func New() *Project {
	return &Project{
		paths: make(map[Dataset]string),
	}
}

// Read reads a project file.
//
// The file must contain the following fields:
//
//   - dataset, for the kind of file
//   - path, for the path of the file
//
// Here is an example file:
//
//	# clonesum project files
//	dataset	path
//	mixture	mixture.tab
//	samples	samples.tab
//	membership	membership.tab
//	params	params.tab
//
// Unknown datasets,
// empty paths,
// and datasets defined more than once,
// are errors.
func Read(name string) (*Project, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	p.name = name
	return p, nil
}

// ReadTSV reads a project from a TSV stream.
func ReadTSV(r io.Reader) (*Project, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	for _, h := range []string{"dataset", "path"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	p := New()
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "dataset"
		set, err := ParseDataset(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}
		if prev, ok := p.paths[set]; ok {
			return nil, fmt.Errorf("on row %d: field %q: dataset %q already defined as %q", ln, f, set, prev)
		}

		f = "path"
		path := strings.TrimSpace(row[fields[f]])
		if path == "" {
			return nil, fmt.Errorf("on row %d: field %q: empty path for dataset %q", ln, f, set)
		}
		p.paths[set] = path
	}

	return p, nil
}

// Add adds a filepath of a dataset to a given project.
// It returns the previous value
// for the dataset.
// An empty path removes the dataset.
func (p *Project) Add(set Dataset, path string) string {
	prev := p.paths[set]
	if path == "" {
		delete(p.paths, set)
		return prev
	}

	p.paths[set] = path
	return prev
}

// Check returns an error
// if any of the given datasets,
// or a dataset required by them,
// is not defined in the project.
func (p *Project) Check(sets ...Dataset) error {
	for _, s := range sets {
		if p.paths[s] == "" {
			return fmt.Errorf("project %q: dataset %q undefined", p.name, s)
		}
		for _, r := range s.Requires() {
			if p.paths[r] == "" {
				return fmt.Errorf("project %q: dataset %q requires dataset %q", p.name, s, r)
			}
		}
	}
	return nil
}

// Path returns the path of the given dataset.
func (p *Project) Path(set Dataset) string {
	return p.paths[set]
}

// Sets returns the datasets defined on a project
// in the order used in project files.
func (p *Project) Sets() []Dataset {
	var sets []Dataset
	for _, s := range Datasets() {
		if _, ok := p.paths[s]; ok {
			sets = append(sets, s)
		}
	}
	return sets
}

// Name returns the project file name.
func (p *Project) Name() string {
	return p.name
}

// SetName sets the project file name.
func (p *Project) SetName(name string) {
	p.name = name
}

// Write writes a project into its file.
func (p *Project) Write() (err error) {
	f, err := os.Create(p.name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := p.TSV(f); err != nil {
		return fmt.Errorf("on file %q: %v", p.name, err)
	}
	return nil
}

// TSV writes a project as a TSV stream.
func (p *Project) TSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# clonesum project files\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write([]string{"dataset", "path"}); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, s := range p.Sets() {
		if err := tsv.Write([]string{string(s), p.paths[s]}); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return bw.Flush()
}
