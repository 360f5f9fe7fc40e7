package core

// TickConfig defines control-rate timing shared by a host and its shapers.
type TickConfig struct {
	// TickMs is the host timer period in milliseconds.
	TickMs float64
	// Ticks is the number of ticks to render in offline analysis.
	Ticks int
}

// TickOption mutates a TickConfig.
type TickOption func(*TickConfig)

// DefaultTickConfig returns a 20 ms timer rendering two seconds of ticks.
func DefaultTickConfig() TickConfig {
	return TickConfig{
		TickMs: 20,
		Ticks:  100,
	}
}

// WithTickMs sets the timer period.
func WithTickMs(ms float64) TickOption {
	return func(cfg *TickConfig) {
		if ms > 0 {
			cfg.TickMs = ms
		}
	}
}

// WithTicks sets the number of ticks to render.
func WithTicks(n int) TickOption {
	return func(cfg *TickConfig) {
		if n > 0 {
			cfg.Ticks = n
		}
	}
}

// ApplyTickOptions applies zero or more options to the default config.
func ApplyTickOptions(opts ...TickOption) TickConfig {
	cfg := DefaultTickConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// TickSeconds returns the timer period in seconds.
func (c TickConfig) TickSeconds() float64 {
	return c.TickMs / 1000
}

// TickRate returns the number of ticks per second.
func (c TickConfig) TickRate() float64 {
	if c.TickMs <= 0 {
		return 0
	}
	return 1000 / c.TickMs
}
