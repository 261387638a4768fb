// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Clonesum is a tool to infer the clonal composition
// of tumor samples.
package main

import (
	"github.com/js-arias/clonesum/cmd/clonesum/add"
	"github.com/js-arias/clonesum/cmd/clonesum/infer"
	"github.com/js-arias/clonesum/cmd/clonesum/paramcmd"
	"github.com/js-arias/clonesum/cmd/clonesum/plotcmd"
	"github.com/js-arias/clonesum/cmd/clonesum/prj"
	"github.com/js-arias/clonesum/cmd/clonesum/score"
	"github.com/js-arias/command"
)

var app = &command.Command{
	Usage: "clonesum <command> [<argument>...]",
	Short: "a tool to infer the clonal composition of tumor samples",
}

func init() {
	app.Add(add.Command)
	app.Add(infer.Command)
	app.Add(paramcmd.Command)
	app.Add(plotcmd.Command)
	app.Add(prj.Command)
	app.Add(score.Command)
}

func main() {
	app.Main()
}
