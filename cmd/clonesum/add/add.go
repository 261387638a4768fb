// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// a dataset to a clonesum project.
package add

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/clonesum/mixture"
	"github.com/js-arias/clonesum/param"
	"github.com/js-arias/clonesum/project"
	"github.com/js-arias/clonesum/sample"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "add --type <dataset> <project-file> <dataset-file>",
	Short: "add a dataset to a clonesum project",
	Long: `
Command add adds a dataset file to a clonesum project. If the project file
does not exist, it will be created.

The first argument of the command is the name of the project file. The second
argument is the file of the dataset.

The flag --type is required and defines the type of the dataset. Valid types
are:

	mixture     cellular fractions of the clones in each sample block
	samples     read counts of the data points
	membership  clone assigned to each data point
	params      inference parameters

The dataset file is read before it is added to the project. A membership file
requires that a samples dataset is already defined for the project.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var typeFlag string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&typeFlag, "type", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if len(args) < 2 {
		return c.UsageError("expecting dataset file")
	}
	if typeFlag == "" {
		return c.UsageError("expecting flag --type")
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	set, err := project.ParseDataset(typeFlag)
	if err != nil {
		return err
	}
	if err := p.Check(set.Requires()...); err != nil {
		return err
	}
	if err := checkDataset(p, set, args[1]); err != nil {
		return err
	}

	p.Add(set, args[1])
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}

func checkDataset(p *project.Project, set project.Dataset, name string) error {
	switch set {
	case project.Mixture:
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := mixture.ReadTSV(f); err != nil {
			return fmt.Errorf("when reading %q: %v", name, err)
		}
	case project.Samples:
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := sample.ReadTSV(f); err != nil {
			return fmt.Errorf("when reading %q: %v", name, err)
		}
	case project.Membership:
		d, err := p.Samples()
		if err != nil {
			return err
		}
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := sample.ReadMembership(f, d); err != nil {
			return fmt.Errorf("when reading %q: %v", name, err)
		}
	case project.Params:
		if _, err := param.Read(name); err != nil {
			return err
		}
	}
	return nil
}
