package main

import (
	"fmt"
	"io"
	"log"

	"github.com/cwbudde/algo-shape/dsp/control"
	"github.com/cwbudde/algo-shape/dsp/core"
	"github.com/cwbudde/algo-shape/measure/response"
	"github.com/spf13/cobra"
)

func newLagCmd(rf *renderFlags, logger *log.Logger) *cobra.Command {
	p := control.DefaultLagParams()

	cmd := &cobra.Command{
		Use:   "lag",
		Short: "Step response of the attack/release lag follower.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			warnClampRange(logger, p.ClampEnabled, p.ClampMin, p.ClampMax)

			l := control.NewLagFollowerWithParams(p)
			cfg := core.ApplyTickOptions(core.WithTickMs(l.TickMs()), core.WithTicks(rf.ticks))

			traj, err := response.StepResponse(l, rf.from, rf.to, cfg.Ticks)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "lag: attack=%gms release=%gms tick=%gms (%.1f Hz)\n\n",
				l.AttackMs(), l.ReleaseMs(), l.TickMs(), cfg.TickRate()); err != nil {
				return err
			}
			if err := printTrajectory(out, cfg.TickSeconds(), rf.every, column{"Output", traj}); err != nil {
				return err
			}

			return printStepMetrics(out, logger, traj, clampedStep(l, rf), cfg.TickSeconds())
		},
	}

	f := cmd.Flags()
	f.Float64Var(&p.AttackMs, "attack-ms", p.AttackMs, "time constant for rising targets")
	f.Float64Var(&p.ReleaseMs, "release-ms", p.ReleaseMs, "time constant for falling targets")
	f.Float64Var(&p.TickMs, "tick-ms", p.TickMs, "timer period (floor 0.1)")
	addClampFlags(cmd, &p.ClampMin, &p.ClampMax, &p.ClampEnabled)

	return cmd
}

func addClampFlags(cmd *cobra.Command, lo, hi *float64, enabled *bool) {
	f := cmd.Flags()
	f.Float64Var(lo, "clamp-min", *lo, "lower clamp bound")
	f.Float64Var(hi, "clamp-max", *hi, "upper clamp bound")
	f.BoolVar(enabled, "clamp", *enabled, "clamp emitted values to [clamp-min, clamp-max]")
}

func warnClampRange(logger *log.Logger, enabled bool, lo, hi float64) {
	if enabled && lo > hi {
		logger.Printf("warning: clamp-min %g > clamp-max %g, every value maps to %g", lo, hi, lo)
	}
}

// step is a step from -> to as seen by a shaper after its clamp.
type step struct {
	from, to float64
}

// clampedStep returns the step ends f actually moves between, so metrics
// stay meaningful when the requested ends lie outside the clamp range.
// It leaves f reset to the clamped target.
func clampedStep(f control.Follower, rf *renderFlags) step {
	return step{from: f.Reset(rf.from), to: f.Reset(rf.to)}
}

func printStepMetrics(out io.Writer, logger *log.Logger, traj []float64, s step, tickSeconds float64) error {
	m, err := response.Analyze(traj, s.from, s.to, tickSeconds)
	if err != nil {
		logger.Printf("no metrics: %v", err)
		return nil
	}

	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return printMetrics(out, m)
}
