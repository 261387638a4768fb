// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"

	"github.com/js-arias/clonesum/project"
	"github.com/js-arias/clonesum/sample"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a clonesum project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if p.Path(project.Mixture) != "" {
		if err := printMixture(c.Stdout(), p); err != nil {
			return err
		}
	}

	if p.Path(project.Samples) != "" {
		if err := printSamples(c.Stdout(), p); err != nil {
			return err
		}
	}

	return printParams(c.Stdout(), p)
}

func printMixture(w io.Writer, p *project.Project) error {
	m, err := p.Mixture()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Mixture matrix:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Mixture))
	fmt.Fprintf(w, "\tblocks: %d\n", m.Blocks())
	fmt.Fprintf(w, "\tclones: %d\n", m.Clones())
	fmt.Fprintf(w, "\n")
	return nil
}

func printSamples(w io.Writer, p *project.Project) error {
	d, err := p.Samples()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Read counts:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Samples))
	fmt.Fprintf(w, "\tblocks: %d\n", d.Blocks())
	fmt.Fprintf(w, "\tpoints: %d\n", d.Len())
	fmt.Fprintf(w, "\n")

	if p.Path(project.Membership) == "" {
		return nil
	}
	member, err := p.Membership(d)
	if err != nil {
		return err
	}
	clones := sample.Clones(member)
	var unassigned int
	for _, c := range member {
		if c < 0 {
			unassigned++
		}
	}

	fmt.Fprintf(w, "Membership:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Membership))
	fmt.Fprintf(w, "\toccupied clones: %d\n", len(clones))
	fmt.Fprintf(w, "\tunassigned points: %d\n", unassigned)
	fmt.Fprintf(w, "\n")
	return nil
}

func printParams(w io.Writer, p *project.Project) error {
	pm, err := p.Params()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Parameters:\n")
	if p.Path(project.Params) != "" {
		fmt.Fprintf(w, "\tfile: %s\n", pm.Name())
	} else {
		fmt.Fprintf(w, "\tfile: undefined (using defaults)\n")
	}
	fmt.Fprintf(w, "\tstrictness: %s\n", pm.Strictness())
	fmt.Fprintf(w, "\tmax parents: %d\n", pm.MaxParent())
	fmt.Fprintf(w, "\tmin cluster size: %d\n", pm.MinSize())
	fmt.Fprintf(w, "\tstep: %d\n", pm.Step())
	fmt.Fprintf(w, "\n")
	return nil
}
