package response

import "math"

// TraceStats summarizes an accumulator trace such as the output of
// EnergyTrace.
type TraceStats struct {
	Length    int
	Mean      float64
	Peak      float64
	PeakIndex int
	Final     float64
	// Active is the number of samples above the activity floor.
	Active int
}

// SummarizeTrace computes TraceStats in one pass. Samples above floor count
// as active. NaN samples are skipped.
func SummarizeTrace(trace []float64, floor float64) (TraceStats, error) {
	if len(trace) == 0 {
		return TraceStats{}, ErrEmptyTrajectory
	}

	s := TraceStats{
		Peak:      math.Inf(-1),
		PeakIndex: -1,
		Final:     math.NaN(),
	}

	for i, x := range trace {
		if math.IsNaN(x) {
			continue
		}

		s.Length++
		s.Mean += (x - s.Mean) / float64(s.Length)
		s.Final = x

		if x > s.Peak {
			s.Peak, s.PeakIndex = x, i
		}

		if x > floor {
			s.Active++
		}
	}

	if s.Length == 0 {
		return TraceStats{}, ErrEmptyTrajectory
	}

	return s, nil
}
