// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(mixtureGuide)
	app.Add(paramsGuide)
	app.Add(projectsGuide)
	app.Add(samplesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Clonesum requires several files to read and process the clonal data. To
reduce the burden of keeping track of many files, a single project file is
used to hold the reference of all files required in the analysis. This guide
explains the structure of the file, but most of the time, the best way to
edit or view this file is by using clonesum commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# clonesum project files
	dataset	path
	mixture	mixture.tab
	samples	samples.tab
	membership	membership.tab
	params	params.tab

The valid file types are:

- Mixture matrix. Defined by the dataset keyword "mixture". This file contains
  the cellular fraction of each clone in each sample block. It is required
  by most commands. See 'clonesum help mixture'.
- Read counts. Defined by the dataset keyword "samples". This file contains
  the read counts of each data point (somatic variant) in each sample block.
  It is used by the full model evaluation. See 'clonesum help samples'.
- Membership. Defined by the dataset keyword "membership". This file contains
  the assignment of data points to clones. If it is not defined, all the
  clones of the mixture matrix are used.
- Parameters. Defined by the dataset keyword "params". This file contains the
  parameters of the inference. See 'clonesum help params'.
	`,
}

var mixtureGuide = &command.Command{
	Usage: "mixture",
	Short: "about mixture matrix files",
	Long: `
A mixture matrix stores the estimated cellular fraction of each clone in each
sample block. In clonesum it is a tab-delimited file with the following
fields:

	- clone     the index of the clone, starting at 0
	- block     the index of the sample block, starting at 0
	- fraction  the cellular fraction of the clone in the block

Here is an example file:

	# clone mixture
	clone	block	fraction
	0	0	0.600000
	0	1	0.550000
	1	0	0.400000
	1	1	0.450000
	2	0	0.080000
	2	1	0.050000

Cells not defined in the file are set as zero.
	`,
}

var samplesGuide = &command.Command{
	Usage: "samples",
	Short: "about read counts and membership files",
	Long: `
The read counts of the data points (somatic variants) are stored in a
tab-delimited file with the following fields:

	- point  the name of the data point
	- block  the index of the sample block
	- depth  the total number of reads of the point in the block
	- alt    the number of reads with the alternative allele

Here is an example file:

	# read counts
	point	block	depth	alt
	chr1:1203	0	112	31
	chr1:1203	1	98	25
	chr3:5601	0	120	22
	chr3:5601	1	104	21

The assignment of data points to clones is stored in a membership file, a
tab-delimited file with the following fields:

	- point  the name of the data point
	- clone  the index of the assigned clone

Here is an example file:

	# membership
	point	clone
	chr1:1203	0
	chr3:5601	1

Points not present in the membership file are left unassigned.
	`,
}

var paramsGuide = &command.Command{
	Usage: "params",
	Short: "about inference parameters",
	Long: `
The parameters of the composition inference are stored in a tab-delimited
file with the fields "parameter" and "value", or in a YAML file (if the file
name ends in ".yaml" or ".yml").

The valid parameters are:

	- strictness  the tolerance band for the sum of fractions. If "strict",
	              the narrow band [0.84, 1.15] is always used. If "lenient"
	              (the default), the narrow band is used with a single
	              sample block, and the wide band [0.77, 1.25] with
	              multiple blocks.
	- nominal     the target number of clones. If 1, the single clone is
	              returned as the whole composition.
	- maxparent   the maximum number of phylogenetic parents accepted in a
	              composition. Default is 1.
	- minsize     the number of data points a clone must exceed to be
	              promoted as an outlier. Default is 9.
	- step        the step of the clustering pipeline. Steps at or below 4
	              relax the acceptance of phylogenetic parents. Default is 5.
	- depth       the pseudo-depth of the beta-binomial scores. Default is
	              1000.
	- rounds      the number of expectation-maximization rounds of the full
	              model evaluation. Default is 1.

Here is an example file:

	# clonesum inference parameters
	parameter	value
	strictness	lenient
	maxparent	1
	minsize	9
	step	5
	`,
}
