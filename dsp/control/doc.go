// Package control provides control-rate signal shapers.
//
// Each shaper is a small state machine advanced by an external caller once
// per control tick, typically from a fixed-period timer owned by the host.
// Shapers never schedule themselves and hold no goroutines or timers.
//
// Included shapers:
//   - LagFollower: first-order exponential smoothing with separate attack and
//     release time constants.
//   - EnergyAccumulator: activity-driven charge/decay accumulator that turns
//     a noisy normalized input into a gesture-like energy value.
//   - SpringDamper: second-order mass-spring-damper follower integrated with
//     semi-implicit Euler.
//
// Invalid input never produces an error. NaN targets are ignored and
// out-of-range parameters are floored or clamped to the nearest valid value.
//
// Shapers are not safe for concurrent use. Callers must serialize access to
// a single instance.
package control
