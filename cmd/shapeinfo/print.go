package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-shape/measure/response"
)

// column is one named series of a trajectory table.
type column struct {
	name   string
	values []float64
}

// printTrajectory prints every n-th tick of the given columns, plus the last
// tick so the final value is always visible.
func printTrajectory(w io.Writer, tickSeconds float64, every int, cols ...column) error {
	if len(cols) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header, rule := "Tick\tTime [s]", "----\t--------"
	for _, c := range cols {
		header += "\t" + c.name
		rule += "\t" + strings.Repeat("-", len(c.name))
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	n := len(cols[0].values)
	for i := range n {
		if (i+1)%every != 0 && i != n-1 {
			continue
		}

		row := fmt.Sprintf("%d\t%.3f", i+1, float64(i+1)*tickSeconds)
		for _, c := range cols {
			row += "\t" + formatValue(c.values[i])
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func printMetrics(w io.Writer, m response.Metrics) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value string
	}{
		{"Rise time 10-90% [s]", formatSeconds(m.RiseTime)},
		{"Overshoot [%]", fmt.Sprintf("%.2f", 100*m.Overshoot)},
		{"Settling time 2% [s]", formatSeconds(m.SettlingTime)},
		{"Final error", fmt.Sprintf("%.3g", m.FinalError)},
		{"Sign changes", fmt.Sprintf("%d", m.SignChanges)},
		{"Monotonic", fmt.Sprintf("%t", m.Monotonic)},
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.name, r.value); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.6f", v)
}

func formatSeconds(s float64) string {
	if math.IsNaN(s) {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", s)
}
