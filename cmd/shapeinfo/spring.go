package main

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-shape/dsp/control"
	"github.com/cwbudde/algo-shape/measure/response"
	"github.com/spf13/cobra"
)

func newSpringCmd(rf *renderFlags, logger *log.Logger) *cobra.Command {
	p := control.DefaultSpringParams()
	var (
		dtMs      float64
		reference bool
	)

	cmd := &cobra.Command{
		Use:   "spring",
		Short: "Step response of the spring-damper follower.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			warnClampRange(logger, p.ClampEnabled, p.ClampMin, p.ClampMax)

			s := control.NewSpringDamperWithParams(p)
			if cmd.Flags().Changed("dt-ms") {
				s.SetDtMilliseconds(dtMs)
			}
			dt := s.DtSeconds()

			radius, err := response.SpringStability(s.FreqHz(), s.Damping(), dt)
			if err != nil {
				return err
			}
			if radius > 1 {
				logger.Printf("warning: integrator diverges at f=%gHz ζ=%g dt=%gs (spectral radius %.4f)",
					s.FreqHz(), s.Damping(), dt, radius)
			}

			traj, err := response.StepResponse(s, rf.from, rf.to, rf.ticks)
			if err != nil {
				return err
			}

			cols := []column{{"Output", traj}}
			if reference {
				// The reference runs unclamped, so compare it against the
				// shaper's clamped step ends.
				st := clampedStep(s, rf)
				ref, err := response.SpringReference(s.FreqHz(), s.Damping(), dt, st.from, st.to, rf.ticks)
				if err != nil {
					return err
				}
				cols = append(cols, column{"Reference", ref})
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "spring: f=%gHz ζ=%g dt=%gs radius=%.4f\n\n",
				s.FreqHz(), s.Damping(), dt, radius); err != nil {
				return err
			}
			if err := printTrajectory(out, dt, rf.every, cols...); err != nil {
				return err
			}

			if reference {
				dev, err := response.MaxDeviation(cols[0].values, cols[1].values)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "\nMax deviation from reference: %.6f\n", dev); err != nil {
					return err
				}
			}

			return printStepMetrics(out, logger, traj, clampedStep(s, rf), dt)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&p.FreqHz, "freq-hz", p.FreqHz, "natural frequency (floor 0.0001)")
	f.Float64Var(&p.Damping, "damping", p.Damping, "damping ratio, 1 is critical (floor 0)")
	f.Float64Var(&p.DtSeconds, "dt-seconds", p.DtSeconds, "integration step (floor 0.0005)")
	f.Float64Var(&dtMs, "dt-ms", p.DtSeconds*1000, "integration step in milliseconds, overrides --dt-seconds")
	f.BoolVar(&reference, "reference", false, "print the closed-form spring trajectory alongside")
	addClampFlags(cmd, &p.ClampMin, &p.ClampMax, &p.ClampEnabled)

	return cmd
}

func newStabilityCmd(logger *log.Logger) *cobra.Command {
	p := control.DefaultSpringParams()

	cmd := &cobra.Command{
		Use:   "stability",
		Short: "Spectral radius of the spring integrator for a parameter set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			radius, err := response.SpringStability(p.FreqHz, p.Damping, p.DtSeconds)
			if err != nil {
				return err
			}

			verdict := "stable"
			switch {
			case radius > 1+1e-12:
				verdict = "unstable"
				logger.Printf("warning: integrator diverges, lower --dt-seconds or --freq-hz")
			case radius > 1-1e-12:
				verdict = "marginal"
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "f=%gHz ζ=%g dt=%gs radius=%.6f %s\n",
				p.FreqHz, p.Damping, p.DtSeconds, radius, verdict)
			return err
		},
	}

	f := cmd.Flags()
	f.Float64Var(&p.FreqHz, "freq-hz", p.FreqHz, "natural frequency")
	f.Float64Var(&p.Damping, "damping", p.Damping, "damping ratio")
	f.Float64Var(&p.DtSeconds, "dt-seconds", p.DtSeconds, "integration step")

	return cmd
}
