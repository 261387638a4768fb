// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package paramcmd implements a command to manage
// the inference parameters of a project.
package paramcmd

import (
	"fmt"
	"io"

	"github.com/js-arias/clonesum/param"
	"github.com/js-arias/clonesum/project"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: `param [--add <param-file>] [--file <file-name>]
	[--strictness <value>] [--nominal <value>]
	[--maxparent <value>] [--minsize <value>]
	[--step <value>] [--depth <value>] [--rounds <value>]
	<project-file>`,
	Short: "manage inference parameters",
	Long: `
Command param manages the parameters used to infer the clonal composition of
a clonesum project.

The argument of the command is the name of the project file.

By default, the command will print the currently defined parameters.

If the flag --add is defined, it will use the indicated file for the
parameters.

By default, any change on the parameters will be stored in the current
parameters file. If no parameters file is defined, a new file 'params.tab'
will be created. Use the flag --file to define a new parameters file. If the
file name ends in '.yaml' or '.yml' the parameters will be stored as a YAML
file.

The flag --strictness sets the tolerance band used for the sum of the
compositions. Valid values are 'lenient' (the default) and 'strict'. In a
project with a single sample block, the strict band is always used.

The flag --nominal sets the target number of clones. If it is 1, the
inference is trivial.

The flag --maxparent sets the maximum number of clones that can be parents of
the composition. The default is 1.

The flag --minsize sets the minimum number of data points of a clone so it
can be promoted as an outlier. The default is 9.

The flag --step sets the pipeline step. Smaller values of the step make the
validation of the parents less stringent. The default is 5.

The flag --depth sets the pseudo-depth used for the beta-binomial scores. The
default is 1000.

The flag --rounds sets the number of expectation-maximization rounds used to
break ties between compositions. The default is 1.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var addFile string
var paramFile string
var strictness string
var nominal int
var maxParent int
var minSize int
var step int
var depth int
var rounds int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addFile, "add", "", "")
	c.Flags().StringVar(&paramFile, "file", "", "")
	c.Flags().StringVar(&strictness, "strictness", "", "")
	c.Flags().IntVar(&nominal, "nominal", -1, "")
	c.Flags().IntVar(&maxParent, "maxparent", -1, "")
	c.Flags().IntVar(&minSize, "minsize", -1, "")
	c.Flags().IntVar(&step, "step", -1, "")
	c.Flags().IntVar(&depth, "depth", 0, "")
	c.Flags().IntVar(&rounds, "rounds", -1, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if addFile != "" {
		if _, err := param.Read(addFile); err != nil {
			return err
		}
		p.Add(project.Params, addFile)
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}

	pm, err := p.Params()
	if err != nil {
		return err
	}
	if paramFile != "" {
		pm.SetName(paramFile)
	}

	ed, err := setParams(pm)
	if err != nil {
		return err
	}

	if p.Path(project.Params) != pm.Name() {
		if err := pm.Write(); err != nil {
			return err
		}
		p.Add(project.Params, pm.Name())
		if err := p.Write(); err != nil {
			return err
		}
		return nil
	}
	if ed {
		return pm.Write()
	}

	printParams(c.Stdout(), pm)
	return nil
}

func setParams(pm *param.P) (bool, error) {
	ed := false
	if strictness != "" {
		if err := pm.SetStrictness(strictness); err != nil {
			return false, err
		}
		ed = true
	}
	if nominal >= 0 {
		if err := pm.SetNominal(nominal); err != nil {
			return false, err
		}
		ed = true
	}
	if maxParent >= 0 {
		if err := pm.SetMaxParent(maxParent); err != nil {
			return false, err
		}
		ed = true
	}
	if minSize >= 0 {
		if err := pm.SetMinSize(minSize); err != nil {
			return false, err
		}
		ed = true
	}
	if step >= 0 {
		pm.SetStep(step)
		ed = true
	}
	if depth > 0 {
		if err := pm.SetDepth(depth); err != nil {
			return false, err
		}
		ed = true
	}
	if rounds >= 0 {
		if err := pm.SetRounds(rounds); err != nil {
			return false, err
		}
		ed = true
	}
	return ed, nil
}

func printParams(w io.Writer, pm *param.P) {
	fmt.Fprintf(w, "file:        %s\n", pm.Name())
	fmt.Fprintf(w, "strictness:  %s\n", pm.Strictness())
	if n := pm.Nominal(); n > 0 {
		fmt.Fprintf(w, "nominal:     %d\n", n)
	}
	fmt.Fprintf(w, "max parents: %d\n", pm.MaxParent())
	fmt.Fprintf(w, "min size:    %d\n", pm.MinSize())
	fmt.Fprintf(w, "step:        %d\n", pm.Step())
	fmt.Fprintf(w, "depth:       %d\n", pm.Depth())
	fmt.Fprintf(w, "rounds:      %d\n", pm.Rounds())
}
