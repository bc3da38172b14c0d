// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sir implements a command to simulate a density-dependent
// susceptible-infectious-recovered tree.
package sir

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
	Usage: `sir [-o|--output <file>]
	--transmission <rate> --recovery <rate> --sampling <rate>
	--susceptibles <number>
	[--leaves <number>] [--max-time <value>]
	[--timeout <seconds>] [--seed <value>]`,
	Short: "simulate a density-dependent SIR tree",
	Long: `
Command sir simulates a susceptible-infectious-recovered model whose
transmission propensity is density-dependent on the remaining susceptible
pool, and writes the resulting sampled tree in Newick format.

The flags --transmission, --recovery, --sampling and --susceptibles are
required: the per-contact transmission rate, the recovery rate, the
removal-sampling rate, and the initial size of the susceptible pool.

Use --leaves to stop the simulation once at least that many samples have
been recorded, or --max-time to stop once the simulation clock reaches that
value (at least one of the two must be set).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var transmissionRate float64
var recoveryRate float64
var samplingRate float64
var susceptibles int
var leaves int
var maxTime float64
var timeoutSecs float64
var seed uint64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().Float64Var(&transmissionRate, "transmission", 0, "")
	c.Flags().Float64Var(&recoveryRate, "recovery", 0, "")
	c.Flags().Float64Var(&samplingRate, "sampling", 0, "")
	c.Flags().IntVar(&susceptibles, "susceptibles", 0, "")
	c.Flags().IntVar(&leaves, "leaves", 0, "")
	c.Flags().Float64Var(&maxTime, "max-time", 0, "")
	c.Flags().Float64Var(&timeoutSecs, "timeout", 0, "")
	c.Flags().Uint64Var(&seed, "seed", 1, "")
}

func run(c *command.Command, args []string) (err error) {
	if transmissionRate <= 0 {
		return c.UsageError("flag --transmission must be defined")
	}
	if recoveryRate <= 0 {
		return c.UsageError("flag --recovery must be defined")
	}
	if samplingRate <= 0 {
		return c.UsageError("flag --sampling must be defined")
	}
	if susceptibles <= 0 {
		return c.UsageError("flag --susceptibles must be defined")
	}
	if leaves <= 0 && maxTime <= 0 {
		return c.UsageError("at least one of --leaves or --max-time must be defined")
	}

	s, err := models.SIR(models.SIRConfig{
		TransmissionRate: transmissionRate,
		RecoveryRate:     recoveryRate,
		SamplingRate:     samplingRate,
		Susceptibles:     susceptibles,
		Seed:             seed,
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
