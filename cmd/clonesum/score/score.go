// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package score implements a command to print
// the scores of the candidate compositions
// of a project.
package score

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/js-arias/clonesum/combi"
	"github.com/js-arias/clonesum/makeone"
	"github.com/js-arias/clonesum/project"
	"github.com/js-arias/command"
	"gonum.org/v1/gonum/stat"
)

var Command = &command.Command{
	Usage: `score [--fp <clone>] [--strict] <project-file>`,
	Short: "print the scores of candidate compositions",
	Long: `
Command score reads a clonesum project, and prints all the subsets of clones
whose sum of cellular fractions is inside the tolerance band in every sample
block, with their beta-binomial scores. The phylogeny of the remaining clones
is not validated.

The argument of the command is the name of the project file.

If there is an outlier clone, use the flag --fp with the index of the clone.
The outlier is excluded from the subsets.

By default, the strictness of the tolerance band is taken from the project
parameters. Use the flag --strict to always use the narrow band.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var fpFlag int
var strict bool

func setFlags(c *command.Command) {
	c.Flags().IntVar(&fpFlag, "fp", makeone.NoOutlier, "")
	c.Flags().BoolVar(&strict, "strict", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	if err := p.Check(project.Mixture); err != nil {
		return err
	}

	m, err := p.Mixture()
	if err != nil {
		return err
	}
	pm, err := p.Params()
	if err != nil {
		return err
	}

	cfg := pm.Config(m.Blocks())
	if strict {
		cfg.Strictness = makeone.Strict
	}

	s := makeone.NewState(m, nil)
	s.FP = fpFlag
	cands := makeone.Compositions(s.Occupied(), m, cfg, combi.New())

	lo, hi := cfg.Band()
	fmt.Fprintf(c.Stdout(), "# band: [%.2f, %.2f]\n", lo, hi)
	fmt.Fprintf(c.Stdout(), "id\tclones\tsum\tscore\n")
	scores := make([]float64, 0, len(cands))
	for _, cd := range cands {
		fmt.Fprintf(c.Stdout(), "%d\t%s\t%s\t%.6f\n", cd.ID, joinInts(cd.Clones), joinFloats(cd.Sum), cd.Score)
		scores = append(scores, cd.Score)
	}
	if len(scores) == 0 {
		fmt.Fprintf(c.Stdout(), "# no composition in band\n")
		return nil
	}

	mean, sd := stat.MeanStdDev(scores, nil)
	fmt.Fprintf(c.Stdout(), "# compositions: %d\tmean score: %.6f\tstdDev: %.6f\n", len(scores), mean, sd)
	return nil
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = strconv.Itoa(x)
	}
	return strings.Join(s, ",")
}

func joinFloats(v []float64) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = strconv.FormatFloat(x, 'f', 3, 64)
	}
	return strings.Join(s, ",")
}
