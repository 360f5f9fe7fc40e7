package response

import "errors"

var (
	// ErrEmptyTrajectory is returned when an analysis receives no samples.
	ErrEmptyTrajectory = errors.New("response: empty trajectory")
	// ErrInvalidTicks is returned for a non-positive tick count.
	ErrInvalidTicks = errors.New("response: tick count must be > 0")
	// ErrFlatStep is returned when a step has identical start and end values.
	ErrFlatStep = errors.New("response: step start equals step end")
	// ErrLengthMismatch is returned when two trajectories differ in length.
	ErrLengthMismatch = errors.New("response: trajectory length mismatch")
)
