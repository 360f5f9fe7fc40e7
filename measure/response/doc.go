// Package response measures the behavior of control-rate shapers.
//
// It renders step and impulse responses of the followers in dsp/control,
// summarizes them with time-domain metrics (rise time, overshoot, settling
// time), estimates their frequency response at the tick rate, and checks the
// spring-damper integrator against its closed-form solution and stability
// bound.
//
// # Usage
//
// Tune a spring for a 50 Hz control timer:
//
//	s := control.NewSpringDamper()
//	s.SetFreqHz(4)
//	s.SetDamping(1)
//	traj, _ := response.StepResponse(s, 0, 1, 200)
//	m, _ := response.Analyze(traj, 0, 1, s.DtSeconds())
//	fmt.Println(m.RiseTime, m.Overshoot, m.SettlingTime)
//
// A spectral radius above 1 means the fixed-step integrator diverges:
//
//	r, _ := response.SpringStability(20, 0.9, 0.02)
package response
