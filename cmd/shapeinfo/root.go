package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/cwbudde/algo-shape/measure/response"
	"github.com/spf13/cobra"
)

var (
	errInvalidEvery = errors.New("--every must be > 0")
	errInvalidStep  = errors.New("--step-ms must be > 0")
)

// renderFlags are shared by every subcommand that prints a trajectory.
type renderFlags struct {
	ticks int
	every int
	from  float64
	to    float64
}

func (f renderFlags) validate() error {
	if f.ticks <= 0 {
		return fmt.Errorf("--ticks %d: %w", f.ticks, response.ErrInvalidTicks)
	}
	if f.every <= 0 {
		return errInvalidEvery
	}
	return nil
}

// newRootCmd builds the command tree. Tables go to stdout; warnings and
// errors go to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	logger := log.New(stderr, "shapeinfo: ", 0)
	rf := &renderFlags{}

	root := &cobra.Command{
		Use:   "shapeinfo",
		Short: "Render and analyze control-rate signal shapers.",
		Long: `shapeinfo drives a lag follower, spring damper or energy ` +
			`accumulator tick by tick and prints the emitted values together ` +
			`with step-response metrics.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rf.validate()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.IntVar(&rf.ticks, "ticks", 100, "number of ticks to render")
	pf.IntVar(&rf.every, "every", 5, "print every n-th tick")
	pf.Float64Var(&rf.from, "from", 0, "initial value (reset)")
	pf.Float64Var(&rf.to, "to", 1, "step target")

	root.AddCommand(
		newLagCmd(rf, logger),
		newSpringCmd(rf, logger),
		newEnergyCmd(rf, logger),
		newStabilityCmd(logger),
	)

	return root
}
