// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package bd implements a command to simulate a single-state
// birth-death-sampling tree.
package bd

import (
	"fmt"
	"os"
	"time"

	"github.com/js-arias/command"

	"github.com/js-arias/skytree/models"
	"github.com/js-arias/skytree/simulate"
	"github.com/js-arias/skytree/tree"
)

var Command = &command.Command{
	Usage: `bd [-o|--output <file>]
	--r0 <value> --infectious <value> --sampling <value>
	[--leaves <number>] [--max-time <value>]
	[--timeout <seconds>] [--seed <value>]`,
	Short: "simulate a birth-death-sampling tree",
	Long: `
Command bd simulates a single-state epidemiological birth-death model and
writes the resulting sampled tree in Newick format.

The flags --r0, --infectious and --sampling are required: the basic
reproduction number, the mean infectious period (in the same time unit as
the simulation clock), and the proportion of removed lineages that are
sampled.

Use --leaves to stop the simulation once at least that many samples have
been recorded, or --max-time to stop once the simulation clock reaches that
value (at least one of the two must be set). Use --timeout to bound the
wall-clock duration, in seconds, of the simulation, counting every retried
attempt; the command fails if that duration is exceeded.

By default, the output is printed to the standard output. Use --output, or
-o, to write it to a file instead.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var r0 float64
var infectiousPeriod float64
var samplingProportion float64
var leaves int
var maxTime float64
var timeoutSecs float64
var seed uint64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().Float64Var(&r0, "r0", 0, "")
	c.Flags().Float64Var(&infectiousPeriod, "infectious", 0, "")
	c.Flags().Float64Var(&samplingProportion, "sampling", 0, "")
	c.Flags().IntVar(&leaves, "leaves", 0, "")
	c.Flags().Float64Var(&maxTime, "max-time", 0, "")
	c.Flags().Float64Var(&timeoutSecs, "timeout", 0, "")
	c.Flags().Uint64Var(&seed, "seed", 1, "")
}

func run(c *command.Command, args []string) (err error) {
	if r0 <= 0 {
		return c.UsageError("flag --r0 must be defined")
	}
	if infectiousPeriod <= 0 {
		return c.UsageError("flag --infectious must be defined")
	}
	if samplingProportion <= 0 {
		return c.UsageError("flag --sampling must be defined")
	}
	if leaves <= 0 && maxTime <= 0 {
		return c.UsageError("at least one of --leaves or --max-time must be defined")
	}

	s, err := models.BD(models.BDConfig{
		ReproductionNumber: r0,
		InfectiousPeriod:   infectiousPeriod,
		SamplingProportion: samplingProportion,
		Seed:               seed,
	})
	if err != nil {
		return fmt.Errorf("while building the model: %v", err)
	}

	p := simulate.RunParams{
		TreeLoggers: []simulate.Logger{simulate.LeafCountLogger, simulate.FinalTimeLogger},
	}
	if leaves > 0 {
		p.NLeaves = &leaves
	}
	if maxTime > 0 {
		p.MaxTime = &maxTime
	}
	if timeoutSecs > 0 {
		d := time.Duration(timeoutSecs * float64(time.Second))
		p.Timeout = &d
	}

	t, _, err := simulate.Run(s, p)
	if err != nil {
		return fmt.Errorf("while simulating: %v", err)
	}

	return writeTree(c, t)
}

func writeTree(c *command.Command, t *tree.Node) (err error) {
	nwk, err := tree.ToNewick(t)
	if err != nil {
		return fmt.Errorf("while serializing the tree: %v", err)
	}

	w := c.Stdout()
	if output != "" {
		var f *os.File
		f, err = os.Create(output)
		if err != nil {
			return err
		}
		w = f
		defer func() {
			e := f.Close()
			if e != nil && err == nil {
				err = e
			}
		}()
	} else {
		output = "stdout"
	}

	if _, err := fmt.Fprintln(w, nwk); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
