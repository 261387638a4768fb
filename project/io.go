// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/clonesum/mixture"
	"github.com/js-arias/clonesum/param"
	"github.com/js-arias/clonesum/sample"
)

// Mixture reads a mixture matrix file
// as defined in a project.
func (p *Project) Mixture() (*mixture.Matrix, error) {
	name := p.Path(Mixture)
	if name == "" {
		return nil, fmt.Errorf("mixture matrix not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := mixture.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading file %q: %v", name, err)
	}
	return m, nil
}

// Samples reads the read counts file
// as defined in a project.
func (p *Project) Samples() (*sample.Data, error) {
	name := p.Path(Samples)
	if name == "" {
		return nil, fmt.Errorf("read counts not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := sample.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("when reading file %q: %v", name, err)
	}
	return d, nil
}

// Membership reads the membership file
// as defined in a project.
// If the project does not define a membership file
// it returns nil.
func (p *Project) Membership(d *sample.Data) ([]int, error) {
	name := p.Path(Membership)
	if name == "" {
		return nil, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	member, err := sample.ReadMembership(f, d)
	if err != nil {
		return nil, fmt.Errorf("when reading file %q: %v", name, err)
	}
	return member, nil
}

// Params reads the parameters file
// as defined in a project.
// If the project does not define a parameters file
// it returns the default parameters.
func (p *Project) Params() (*param.P, error) {
	name := p.Path(Params)
	if name == "" {
		return param.New("params.tab"), nil
	}
	return param.Read(name)
}
