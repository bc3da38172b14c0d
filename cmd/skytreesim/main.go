// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// SkyTreeSim is a tool to simulate phylogenetic trees under
// skyline birth/death/sampling/migration processes.
package main

import (
	"github.com/js-arias/command"

	"github.com/js-arias/skytree/cmd/skytreesim/bd"
	"github.com/js-arias/skytree/cmd/skytreesim/canonical"
	"github.com/js-arias/skytree/cmd/skytreesim/sir"
)

var app = &command.Command{
	Usage: "skytreesim <command> [<argument>...]",
	Short: "simulate phylogenetic trees under skyline stochastic processes",
}

func init() {
	app.Add(bd.Command)
	app.Add(canonical.Command)
	app.Add(sir.Command)
}

func main() {
	app.Main()
}
