package control

import "time"

// Clock reports the current time for shapers that integrate over real
// elapsed time.
//
// Implementations must be monotonic: readings never move backwards.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process monotonic clock.
type SystemClock struct{}

// Now returns the current time, carrying a monotonic reading.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock advanced explicitly by its owner. It is useful for
// offline rendering and deterministic tests.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock positioned at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d. Negative durations are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}

	c.now = c.now.Add(d)
}

// AdvanceSeconds moves the clock forward by s seconds.
func (c *ManualClock) AdvanceSeconds(s float64) {
	c.Advance(time.Duration(s * float64(time.Second)))
}
