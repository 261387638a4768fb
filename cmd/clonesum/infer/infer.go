// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package infer implements a command to infer
// the clonal composition of a project.
package infer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/js-arias/clonesum/em"
	"github.com/js-arias/clonesum/makeone"
	"github.com/js-arias/clonesum/project"
	"github.com/js-arias/clonesum/sample"
	"github.com/js-arias/command"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `infer [--step <value>] [--fp <clone>]
	[--output <file>] [-v|--verbose] <project-file>`,
	Short: "infer the clonal composition",
	Long: `
Command infer reads a clonesum project, and searches the subset of clones
whose cellular fractions sum one in every sample block (the "makeone"
composition). The remaining clones must be explained as phylogenetic parents
of the composition, and a single small clone, dominated by a clone of the
composition, can be promoted as an outlier.

The argument of the command is the name of the project file.

The output is a table with all the accepted compositions, ranked by their
score, followed by the winning composition and the resulting outlier. If the
best composition promotes an outlier, and the second best composition is a
clean composition (without outlier), and the project defines a read counts
file, both compositions are evaluated with the full model, and the one with
the best likelihood wins.

By default, the step of the clustering pipeline is taken from the project
parameters. Use the flag --step to set a different step.

If there is an outlier clone already established, use the flag --fp with the
index of the clone.

With the flag --output, the membership of the data points, with the points
of a newly promoted outlier marked as unassigned, will be written in the
indicated file.

With the flag -v or --verbose, the steps of the inference will be reported in
the standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var stepFlag int
var fpFlag int
var output string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().IntVar(&stepFlag, "step", -1, "")
	c.Flags().IntVar(&fpFlag, "fp", makeone.NoOutlier, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().BoolVar(&verbose, "v", false, "")
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

	var d *sample.Data
	var member []int
	if p.Path(project.Samples) != "" {
		d, err = p.Samples()
		if err != nil {
			return err
		}
		if d.Blocks() != m.Blocks() {
			return fmt.Errorf("project %q: mixture with %d blocks, read counts with %d blocks", args[0], m.Blocks(), d.Blocks())
		}
		member, err = p.Membership(d)
		if err != nil {
			return err
		}
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	cfg := pm.Config(m.Blocks())
	cfg.Logger = logger
	if stepFlag >= 0 {
		cfg.Step = stepFlag
	}

	s := makeone.NewState(m, member)
	if fpFlag != makeone.NoOutlier {
		if fpFlag < 0 || fpFlag >= m.Clones() {
			return c.UsageError(fmt.Sprintf("invalid outlier clone %d", fpFlag))
		}
		s.FP = fpFlag
		s.IncludeFP = true
	}

	var eval makeone.Evaluator
	if d != nil {
		eval = &em.Evaluator{
			Data:   d,
			Rounds: pm.Rounds(),
		}
	}

	r, err := makeone.Infer(context.Background(), s, cfg, eval)
	if err != nil {
		return err
	}
	printResult(c.Stdout(), r)

	if output != "" && d != nil {
		if err := writeMembership(output, d, member, r); err != nil {
			return err
		}
	}
	return nil
}

func printResult(w io.Writer, r *makeone.Result) {
	fmt.Fprintf(w, "rank\tid\tscore\tcircumstance\tclones\tparents\n")
	for i, row := range r.Table {
		var parents []string
		for _, pr := range row.Parents {
			parents = append(parents, fmt.Sprintf("%d=%s", pr.Parent, joinInts(pr.Children, "+")))
		}
		pp := "-"
		if len(parents) > 0 {
			pp = strings.Join(parents, " ")
		}
		fmt.Fprintf(w, "%d\t%d\t%.6f\t%s\t%s\t%s\n", i+1, row.ID, row.Score, row.Circumstance, joinInts(row.Clones, ","), pp)
	}

	if len(r.MakeOne) == 0 {
		fmt.Fprintf(w, "# no composition found\n")
		return
	}
	fmt.Fprintf(w, "# makeone: %s\toutlier: %d\tinvoluntary: %v\n", joinInts(r.MakeOne, ","), r.FP, r.Involuntary)
	if r.TieBreak {
		fmt.Fprintf(w, "# tie-break logLike: %.6f\n", r.LogLike)
	}
}

func joinInts(v []int, sep string) string {
	s := make([]string, len(v))
	for i, x := range v {
		s[i] = strconv.Itoa(x)
	}
	return strings.Join(s, sep)
}

func writeMembership(name string, d *sample.Data, member []int, r *makeone.Result) (err error) {
	if member == nil {
		return nil
	}
	nm := make([]int, len(member))
	for i, c := range member {
		if r.Involuntary && c == r.FP {
			c = sample.Unassigned
		}
		nm[i] = c
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := sample.WriteMembership(f, d, nm); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	return nil
}
