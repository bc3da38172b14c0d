// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package canonical implements a command to simulate a general,
// multi-state canonical birth-death-sampling-migration tree.
package canonical

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/command"

	"github.com/js-arias/skytree/models"
	"github.com/js-arias/skytree/simulate"
	"github.com/js-arias/skytree/tree"
)

var Command = &command.Command{
	Usage: `canonical [-o|--output <file>]
	--states <name,...> --init <state>
	--birth <rate,...> --death <rate,...> --sampling <rate,...>
	[--remove] [--leaves <number>] [--max-time <value>]
	[--timeout <seconds>] [--seed <value>]`,
	Short: "simulate a multi-state canonical birth-death tree",
	Long: `
Command canonical simulates a general multi-state birth-death-sampling
process and writes the resulting sampled tree in Newick format.

The flags --states, --init, --birth, --death and --sampling are required.
--states is a comma-separated list of state names; --init names the state
the root lineage starts in. --birth, --death and --sampling are
comma-separated lists of constant rates, one per state, in the same order
as --states.

Use --remove to make a sampled lineage leave the active population (the
epidemiological convention); by default a sampled lineage is kept, and may
keep evolving after the sample is drawn (the paleontological convention).

Use --leaves to stop the simulation once at least that many samples have
been recorded, or --max-time to stop once the simulation clock reaches that
value (at least one of the two must be set).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var statesFlag string
var initState string
var birthFlag string
var deathFlag string
var samplingFlag string
var remove bool
var leaves int
var maxTime float64
var timeoutSecs float64
var seed uint64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&statesFlag, "states", "", "")
	c.Flags().StringVar(&initState, "init", "", "")
	c.Flags().StringVar(&birthFlag, "birth", "", "")
	c.Flags().StringVar(&deathFlag, "death", "", "")
	c.Flags().StringVar(&samplingFlag, "sampling", "", "")
	c.Flags().BoolVar(&remove, "remove", false, "")
	c.Flags().IntVar(&leaves, "leaves", 0, "")
	c.Flags().Float64Var(&maxTime, "max-time", 0, "")
	c.Flags().Float64Var(&timeoutSecs, "timeout", 0, "")
	c.Flags().Uint64Var(&seed, "seed", 1, "")
}

func run(c *command.Command, args []string) (err error) {
	if statesFlag == "" {
		return c.UsageError("flag --states must be defined")
	}
	if initState == "" {
		return c.UsageError("flag --init must be defined")
	}
	if leaves <= 0 && maxTime <= 0 {
		return c.UsageError("at least one of --leaves or --max-time must be defined")
	}

	states := strings.Split(statesFlag, ",")
	birth, err := parseRates("--birth", birthFlag, len(states))
	if err != nil {
		return err
	}
	death, err := parseRates("--death", deathFlag, len(states))
	if err != nil {
		return err
	}
	sampling, err := parseRates("--sampling", samplingFlag, len(states))
	if err != nil {
		return err
	}

	s, err := models.Canonical(models.CanonicalConfig{
		States:              states,
		InitState:           initState,
		BirthRates:          birth,
		DeathRates:          death,
		SamplingRates:       sampling,
		RemoveAfterSampling: remove,
		Seed:                seed,
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

func parseRates(flag, v string, n int) ([]float64, error) {
	fields := strings.Split(v, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("flag %s: expecting %d comma-separated rates, got %d", flag, n, len(fields))
	}
	rates := make([]float64, n)
	for i, f := range fields {
		r, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("flag %s: %v", flag, err)
		}
		rates[i] = r
	}
	return rates, nil
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
