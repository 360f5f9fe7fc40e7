package main

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-shape/dsp/control"
	"github.com/cwbudde/algo-shape/dsp/core"
	"github.com/cwbudde/algo-shape/measure/response"
	"github.com/spf13/cobra"
)

const (
	// tickToken marks a time-only event in the energy input list.
	tickToken = "tick"
	// activityFloor is the output level counted as an active gesture.
	activityFloor = 0.01
)

func newEnergyCmd(rf *renderFlags, logger *log.Logger) *cobra.Command {
	p := control.DefaultEnergyParams()
	var (
		stepMs float64
		burst  int
	)

	cmd := &cobra.Command{
		Use:   "energy [value|tick ...]",
		Short: "Energy of the gesture accumulator over a sequence of events.",
		Long: `energy feeds input values (or "tick" for a time-only event) to ` +
			`an energy accumulator, one event every --step-ms. Without ` +
			`arguments it alternates --from and --to for --burst events and ` +
			`then ticks until --ticks events have been sent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(stepMs > 0) {
				return fmt.Errorf("%w: %g", errInvalidStep, stepMs)
			}

			events, err := parseEvents(args, logger)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				events = burstEvents(rf, burst)
			}

			cfg := core.ApplyTickOptions(core.WithTickMs(stepMs), core.WithTicks(len(events)))
			clock := control.NewManualClock(time.Time{})
			acc := control.NewEnergyAccumulatorWithParams(clock, p)

			trace := response.EnergyTrace(acc, clock, events, cfg.TickSeconds())

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "energy: threshold=%g gain=%g decay=%g/s curve=%g stiffness=%g step=%gms\n\n",
				acc.Threshold(), acc.Gain(), acc.Decay(), acc.CurveExponent(), acc.Stiffness(), cfg.TickMs); err != nil {
				return err
			}
			if err := printTrajectory(out, cfg.TickSeconds(), rf.every,
				column{"Input", events}, column{"Output", trace}); err != nil {
				return err
			}

			st, err := response.SummarizeTrace(trace, activityFloor)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "\nPeak %.6f at event %d, mean %.6f, active %d/%d, final energy %.6f\n",
				st.Peak, st.PeakIndex+1, st.Mean, st.Active, st.Length, acc.Energy())
			return err
		},
	}

	f := cmd.Flags()
	f.Float64Var(&p.Threshold, "threshold", p.Threshold, "input change below which nothing charges")
	f.Float64Var(&p.Gain, "gain", p.Gain, "charge per unit of excess change")
	f.Float64Var(&p.Decay, "decay", p.Decay, "energy lost per second")
	f.Float64Var(&p.CurveExponent, "curve", p.CurveExponent, "output exponent (floor 0.01)")
	f.Float64Var(&p.Stiffness, "stiffness", p.Stiffness, "charge falloff exponent near full energy")
	f.Float64Var(&p.MinChargeFactor, "min-charge", p.MinChargeFactor, "lower bound of the charge factor [0,1]")
	f.Float64Var(&p.MaxDtSeconds, "max-dt", p.MaxDtSeconds, "longest gap credited to decay, in seconds")
	f.Float64Var(&stepMs, "step-ms", 20, "time between events")
	f.IntVar(&burst, "burst", 20, "alternating input events before ticks when no values are given")

	return cmd
}

// parseEvents turns arguments into input values; a tick token becomes NaN.
func parseEvents(args []string, logger *log.Logger) ([]float64, error) {
	events := make([]float64, 0, len(args))
	for _, a := range args {
		if strings.EqualFold(a, tickToken) {
			events = append(events, math.NaN())
			continue
		}

		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("parse event %q: %w", a, err)
		}
		if math.IsNaN(v) {
			logger.Printf("warning: event %q is sent as a %s", a, tickToken)
		}
		events = append(events, v)
	}
	return events, nil
}

func burstEvents(rf *renderFlags, burst int) []float64 {
	events := make([]float64, max(rf.ticks, burst))
	for i := range events {
		switch {
		case i >= burst:
			events[i] = math.NaN()
		case i%2 == 0:
			events[i] = rf.from
		default:
			events[i] = rf.to
		}
	}
	return events
}
