// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plotcmd implements a command to plot
// the cellular fractions of the clones of a project.
package plotcmd

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/js-arias/clonesum/colorkey"
	"github.com/js-arias/clonesum/makeone"
	"github.com/js-arias/clonesum/mixture"
	"github.com/js-arias/clonesum/project"
	"github.com/js-arias/command"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var Command = &command.Command{
	Usage: `plot [-o|--output <file>] [--x <block>] [--y <block>]
	[--fp <clone>] [--key <key-file>] <project-file>`,
	Short: "plot the cellular fractions of the clones",
	Long: `
Command plot reads a clonesum project, infers the clonal composition and draws
a scatter plot of the cellular fractions of the clones in two sample blocks.
Clones of the composition, parents and the outlier are drawn with different
glyphs, and each clone is labeled with its index.

The ties between compositions are not evaluated with the full model, so the
best ranked composition is always used.

The argument of the command is the name of the project file.

By default the first block is used for the X axis and the second block for the
Y axis. Use the flags --x and --y to use a different block. If the project has
a single block, the same block is used in both axes.

If there is an outlier clone already established, use the flag --fp with the
index of the clone.

The flag --key defines a tab-delimited file with the colors used for each role
of the clones. The file must have the columns "role" (one of "other",
"makeone", "parent" or "outlier") and "color" (an RGB value separated by
commas, for example "125,132,148"). Roles not defined in the file use the
default colors.

By default the plot is stored as 'clones.png'. Use the flag --output or -o to
define a different file name. The format of the image is defined by the
extension of the file name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var xBlock int
var yBlock int
var fpFlag int
var keyFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "clones.png", "")
	c.Flags().StringVar(&output, "o", "clones.png", "")
	c.Flags().IntVar(&xBlock, "x", 0, "")
	c.Flags().IntVar(&yBlock, "y", 1, "")
	c.Flags().IntVar(&fpFlag, "fp", makeone.NoOutlier, "")
	c.Flags().StringVar(&keyFile, "key", "", "")
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

	if m.Blocks() == 1 {
		xBlock, yBlock = 0, 0
	}
	if xBlock < 0 || xBlock >= m.Blocks() {
		return fmt.Errorf("invalid block for X axis: %d", xBlock)
	}
	if yBlock < 0 || yBlock >= m.Blocks() {
		return fmt.Errorf("invalid block for Y axis: %d", yBlock)
	}

	var member []int
	if p.Check(project.Membership) == nil {
		d, err := p.Samples()
		if err != nil {
			return err
		}
		member, err = p.Membership(d)
		if err != nil {
			return err
		}
	}

	s := makeone.NewState(m, member)
	s.FP = fpFlag
	res, err := makeone.Infer(context.Background(), s, pm.Config(m.Blocks()), nil)
	if err != nil {
		return err
	}

	key := colorkey.Default()
	if keyFile != "" {
		key, err = readKey(keyFile)
		if err != nil {
			return err
		}
	}

	return plotClones(m, res, key)
}

func readKey(name string) (*colorkey.Key, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	k, err := colorkey.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return k, nil
}

func plotClones(m *mixture.Matrix, res *makeone.Result, key *colorkey.Key) error {
	var parents []int
	if w, ok := res.Winner(); ok {
		for _, r := range w.Parents {
			parents = append(parents, r.Parent)
		}
	}

	byRole := make(map[colorkey.Role]plotter.XYs)
	all := make(plotter.XYs, 0, m.Clones())
	labels := make([]string, 0, m.Clones())
	for j := 0; j < m.Clones(); j++ {
		pt := plotter.XY{
			X: m.At(xBlock, j),
			Y: m.At(yBlock, j),
		}
		all = append(all, pt)
		labels = append(labels, strconv.Itoa(j))

		r := colorkey.Other
		switch {
		case j == res.FP:
			r = colorkey.Outlier
		case slices.Contains(res.MakeOne, j):
			r = colorkey.MakeOne
		case slices.Contains(parents, j):
			r = colorkey.Parent
		}
		byRole[r] = append(byRole[r], pt)
	}

	plt := plot.New()
	plt.Title.Text = "clone fractions"
	plt.X.Label.Text = fmt.Sprintf("block %d", xBlock)
	plt.Y.Label.Text = fmt.Sprintf("block %d", yBlock)
	plt.Add(plotter.NewGrid())

	for _, r := range colorkey.Roles() {
		xys := byRole[r]
		if len(xys) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color, _ = key.Color(r)
		sc.GlyphStyle.Shape = glyph(r)
		sc.GlyphStyle.Radius = vg.Points(4)
		plt.Add(sc)
		plt.Legend.Add(string(r), sc)
	}

	lb, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    all,
		Labels: labels,
	})
	if err != nil {
		return err
	}
	lb.Offset = vg.Point{X: vg.Points(5), Y: vg.Points(5)}
	plt.Add(lb)
	plt.Legend.Top = true

	if err := plt.Save(6*vg.Inch, 6*vg.Inch, output); err != nil {
		return err
	}
	return nil
}

func glyph(r colorkey.Role) draw.GlyphDrawer {
	switch r {
	case colorkey.Parent:
		return draw.TriangleGlyph{}
	case colorkey.Outlier:
		return draw.CrossGlyph{}
	}
	return draw.CircleGlyph{}
}
