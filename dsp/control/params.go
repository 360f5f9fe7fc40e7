package control

// LagParams is a complete LagFollower parameter set.
type LagParams struct {
	AttackMs     float64
	ReleaseMs    float64
	TickMs       float64
	ClampMin     float64
	ClampMax     float64
	ClampEnabled bool
}

// DefaultLagParams returns the LagFollower production defaults.
func DefaultLagParams() LagParams {
	return LagParams{
		AttackMs:     defaultLagAttackMs,
		ReleaseMs:    defaultLagReleaseMs,
		TickMs:       defaultLagTickMs,
		ClampMin:     defaultClampMin,
		ClampMax:     defaultClampMax,
		ClampEnabled: true,
	}
}

// Apply forwards every field through the matching setter, so the setters'
// floors apply.
func (p LagParams) Apply(l *LagFollower) {
	l.SetAttackMs(p.AttackMs)
	l.SetReleaseMs(p.ReleaseMs)
	l.SetTickMs(p.TickMs)
	l.SetClampRange(p.ClampMin, p.ClampMax)
	l.SetClampEnabled(p.ClampEnabled)
}

// EnergyParams is a complete EnergyAccumulator parameter set.
type EnergyParams struct {
	Threshold       float64
	Gain            float64
	Decay           float64
	CurveExponent   float64
	Stiffness       float64
	MinChargeFactor float64
	MaxDtSeconds    float64
	Frozen          bool
}

// DefaultEnergyParams returns the EnergyAccumulator production defaults.
func DefaultEnergyParams() EnergyParams {
	return EnergyParams{
		Threshold:       defaultEnergyThreshold,
		Gain:            defaultEnergyGain,
		Decay:           defaultEnergyDecay,
		CurveExponent:   defaultEnergyCurveExponent,
		Stiffness:       defaultEnergyStiffness,
		MinChargeFactor: defaultEnergyMinChargeFactor,
		MaxDtSeconds:    defaultEnergyMaxDtSeconds,
	}
}

// Apply forwards every field through the matching setter.
func (p EnergyParams) Apply(e *EnergyAccumulator) {
	e.SetThreshold(p.Threshold)
	e.SetGain(p.Gain)
	e.SetDecay(p.Decay)
	e.SetCurveExponent(p.CurveExponent)
	e.SetStiffness(p.Stiffness)
	e.SetMinChargeFactor(p.MinChargeFactor)
	e.SetMaxDtSeconds(p.MaxDtSeconds)
	e.Freeze(p.Frozen)
}

// SpringParams is a complete SpringDamper parameter set.
type SpringParams struct {
	FreqHz       float64
	Damping      float64
	DtSeconds    float64
	ClampMin     float64
	ClampMax     float64
	ClampEnabled bool
}

// DefaultSpringParams returns the SpringDamper production defaults.
func DefaultSpringParams() SpringParams {
	return SpringParams{
		FreqHz:       defaultSpringFreqHz,
		Damping:      defaultSpringDamping,
		DtSeconds:    defaultSpringDtSeconds,
		ClampMin:     defaultClampMin,
		ClampMax:     defaultClampMax,
		ClampEnabled: true,
	}
}

// Apply forwards every field through the matching setter.
func (p SpringParams) Apply(s *SpringDamper) {
	s.SetFreqHz(p.FreqHz)
	s.SetDamping(p.Damping)
	s.SetDtSeconds(p.DtSeconds)
	s.SetClampRange(p.ClampMin, p.ClampMax)
	s.SetClampEnabled(p.ClampEnabled)
}

// Params returns the follower's current parameter set.
func (l *LagFollower) Params() LagParams {
	return LagParams{
		AttackMs:     l.attackMs,
		ReleaseMs:    l.releaseMs,
		TickMs:       l.tickMs,
		ClampMin:     l.clamp.lo,
		ClampMax:     l.clamp.hi,
		ClampEnabled: l.clamp.enabled,
	}
}

// Params returns the accumulator's current parameter set.
func (e *EnergyAccumulator) Params() EnergyParams {
	return EnergyParams{
		Threshold:       e.threshold,
		Gain:            e.gain,
		Decay:           e.decay,
		CurveExponent:   e.curveExponent,
		Stiffness:       e.stiffness,
		MinChargeFactor: e.minChargeFactor,
		MaxDtSeconds:    e.maxDtSeconds,
		Frozen:          e.frozen,
	}
}

// Params returns the spring's current parameter set.
func (s *SpringDamper) Params() SpringParams {
	return SpringParams{
		FreqHz:       s.freqHz,
		Damping:      s.damping,
		DtSeconds:    s.dtSeconds,
		ClampMin:     s.clamp.lo,
		ClampMax:     s.clamp.hi,
		ClampEnabled: s.clamp.enabled,
	}
}
