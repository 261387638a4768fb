// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package param implements reading and writing
// of the parameters of a composition inference.
package param

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/clonesum/makeone"
	"gopkg.in/yaml.v3"
)

// Param is a keyword to identify
// the type of parameter in a parameters file.
type Param string

// Valid parameters
const (
	// Depth is the pseudo-depth
	// used by the beta-binomial scores.
	Depth Param = "depth"

	// MaxParent is the maximum number
	// of accepted parents in a composition.
	MaxParent Param = "maxparent"

	// MinSize is the minimum number of points
	// of a clone promoted as outlier.
	MinSize Param = "minsize"

	// Nominal is the target number of clones.
	Nominal Param = "nominal"

	// Rounds is the number of expectation-maximization rounds
	// of the full model evaluation.
	Rounds Param = "rounds"

	// Step is the current step of the clustering pipeline.
	Step Param = "step"

	// Strictness is the tolerance band selector.
	Strictness Param = "strictness"
)

// P represents a collection of inference parameters.
type P struct {
	name string // file name

	strict  makeone.Strictness
	nominal int
	maxPar  int
	minSize int
	step    int
	depth   int
	rounds  int
}

// New creates a new parameter collection
// with the default values.
func New(name string) *P {
	return &P{
		name:    name,
		strict:  makeone.Lenient,
		maxPar:  1,
		minSize: 9,
		step:    5,
		depth:   makeone.DefaultDepth,
		rounds:  1,
	}
}

var header = []string{
	"parameter",
	"value",
}

// Read reads a parameters file.
// If the file name ends in ".yaml" or ".yml"
// it is read as a YAML file,
// otherwise it is read as a TSV file.
//
// The TSV must contain the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Here is an example file:
//
//	# clonesum inference parameters
//	parameter	value
//	strictness	lenient
//	maxparent	1
//	minsize	9
//	step	5
func Read(name string) (*P, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if isYAML(name) {
		p, err := readYAML(f, name)
		if err != nil {
			return nil, fmt.Errorf("on file %q: %v", name, err)
		}
		return p, nil
	}

	tsv := csv.NewReader(f)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("on file %q: header: %v", name, err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("on file %q: expecting field %q", name, h)
		}
	}

	p := New(name)
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on file %q: on row %d: %v", name, ln, err)
		}

		f := "parameter"
		key := Param(strings.ToLower(row[fields[f]]))

		f = "value"
		if err := p.set(key, row[fields[f]]); err != nil {
			return nil, fmt.Errorf("on file %q: on row %d, field %q: %v", name, ln, f, err)
		}
	}
	return p, nil
}

func (p *P) set(key Param, value string) error {
	value = strings.TrimSpace(value)
	if key == Strictness {
		return p.SetStrictness(value)
	}

	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	switch key {
	case Depth:
		return p.SetDepth(v)
	case MaxParent:
		return p.SetMaxParent(v)
	case MinSize:
		return p.SetMinSize(v)
	case Nominal:
		return p.SetNominal(v)
	case Rounds:
		return p.SetRounds(v)
	case Step:
		p.step = v
	}
	return nil
}

// Config returns the configuration of an inference
// for a given number of blocks.
func (p *P) Config(blocks int) makeone.Config {
	return makeone.Config{
		Strictness:     p.strict,
		Blocks:         blocks,
		NominalClones:  p.nominal,
		MaxParents:     p.maxPar,
		MinClusterSize: p.minSize,
		Step:           p.step,
		Depth:          p.depth,
	}
}

// Depth returns the pseudo-depth of the scores.
func (p *P) Depth() int {
	return p.depth
}

// MaxParent returns the maximum number of parents.
func (p *P) MaxParent() int {
	return p.maxPar
}

// MinSize returns the minimum size of an outlier clone.
func (p *P) MinSize() int {
	return p.minSize
}

// Name returns the file name of the parameters.
func (p *P) Name() string {
	return p.name
}

// Nominal returns the target number of clones.
// Zero means undefined.
func (p *P) Nominal() int {
	return p.nominal
}

// Rounds returns the number of expectation-maximization rounds.
func (p *P) Rounds() int {
	return p.rounds
}

// Step returns the pipeline step.
func (p *P) Step() int {
	return p.step
}

// Strictness returns the strictness level.
func (p *P) Strictness() makeone.Strictness {
	return p.strict
}

// SetDepth sets the pseudo-depth of the scores.
func (p *P) SetDepth(d int) error {
	if d < 2 {
		return fmt.Errorf("invalid depth value: %d", d)
	}
	p.depth = d
	return nil
}

// SetMaxParent sets the maximum number of parents.
func (p *P) SetMaxParent(m int) error {
	if m < 0 {
		return fmt.Errorf("invalid maximum number of parents: %d", m)
	}
	p.maxPar = m
	return nil
}

// SetMinSize sets the minimum size of an outlier clone.
func (p *P) SetMinSize(m int) error {
	if m < 0 {
		return fmt.Errorf("invalid cluster size: %d", m)
	}
	p.minSize = m
	return nil
}

// SetName sets the file name of the parameters.
func (p *P) SetName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	p.name = name
}

// SetNominal sets the target number of clones.
func (p *P) SetNominal(n int) error {
	if n < 0 {
		return fmt.Errorf("invalid number of clones: %d", n)
	}
	p.nominal = n
	return nil
}

// SetRounds sets the number of expectation-maximization rounds.
func (p *P) SetRounds(r int) error {
	if r < 0 {
		return fmt.Errorf("invalid rounds value: %d", r)
	}
	p.rounds = r
	return nil
}

// SetStep sets the pipeline step.
func (p *P) SetStep(s int) {
	p.step = s
}

// SetStrictness sets the strictness level.
func (p *P) SetStrictness(s string) error {
	st, err := makeone.ParseStrictness(s)
	if err != nil {
		return err
	}
	p.strict = st
	return nil
}

// Write writes a parameter collection into a file.
// If the file name ends in ".yaml" or ".yml"
// it is written as a YAML file.
func (p *P) Write() (err error) {
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

	bw := bufio.NewWriter(f)
	if isYAML(p.name) {
		if err := p.writeYAML(bw); err != nil {
			return fmt.Errorf("on file %q: %v", p.name, err)
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
		}
		return nil
	}

	fmt.Fprintf(bw, "# clonesum inference parameters\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("on file %q: while writing header: %v", p.name, err)
	}

	rows := [][]string{
		{string(Strictness), p.strict.String()},
		{string(Nominal), strconv.Itoa(p.nominal)},
		{string(MaxParent), strconv.Itoa(p.maxPar)},
		{string(MinSize), strconv.Itoa(p.minSize)},
		{string(Step), strconv.Itoa(p.step)},
		{string(Depth), strconv.Itoa(p.depth)},
		{string(Rounds), strconv.Itoa(p.rounds)},
	}
	for _, row := range rows {
		if err := tsv.Write(row); err != nil {
			return fmt.Errorf("on file %q: %v", p.name, err)
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("on file %q: while writing data: %v", p.name, err)
	}
	return nil
}

func isYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// YamlParam is the YAML representation
// of a parameter collection.
type yamlParam struct {
	Strictness string `yaml:"strictness"`
	Nominal    *int   `yaml:"nominal,omitempty"`
	MaxParent  *int   `yaml:"maxparent,omitempty"`
	MinSize    *int   `yaml:"minsize,omitempty"`
	Step       *int   `yaml:"step,omitempty"`
	Depth      *int   `yaml:"depth,omitempty"`
	Rounds     *int   `yaml:"rounds,omitempty"`
}

func readYAML(r io.Reader, name string) (*P, error) {
	var yp yamlParam
	if err := yaml.NewDecoder(r).Decode(&yp); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	p := New(name)
	if yp.Strictness != "" {
		if err := p.SetStrictness(yp.Strictness); err != nil {
			return nil, err
		}
	}
	ints := []struct {
		key Param
		v   *int
	}{
		{Nominal, yp.Nominal},
		{MaxParent, yp.MaxParent},
		{MinSize, yp.MinSize},
		{Step, yp.Step},
		{Depth, yp.Depth},
		{Rounds, yp.Rounds},
	}
	for _, x := range ints {
		if x.v == nil {
			continue
		}
		if err := p.set(x.key, strconv.Itoa(*x.v)); err != nil {
			return nil, fmt.Errorf("parameter %q: %v", x.key, err)
		}
	}
	return p, nil
}

func (p *P) writeYAML(w io.Writer) error {
	yp := yamlParam{
		Strictness: p.strict.String(),
		Nominal:    &p.nominal,
		MaxParent:  &p.maxPar,
		MinSize:    &p.minSize,
		Step:       &p.step,
		Depth:      &p.depth,
		Rounds:     &p.rounds,
	}
	fmt.Fprintf(w, "# clonesum inference parameters\n")
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yp); err != nil {
		return err
	}
	return enc.Close()
}
