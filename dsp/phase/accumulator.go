package phase

import "github.com/cwbudde/algo-wavetable/dsp/core"

// Accumulator is a wrapping 32-bit phase counter advanced once per sample.
type Accumulator struct {
	cfg    core.ProcessorConfig
	factor float32
	freq   float64
	phase  uint32
	inc    uint32
}

// NewAccumulator returns an accumulator at phase 0 and frequency 0.
func NewAccumulator(opts ...core.ProcessorOption) *Accumulator {
	cfg := core.ApplyProcessorOptions(opts...)
	return &Accumulator{
		cfg:    cfg,
		factor: IncFactor(cfg.SampleRate),
	}
}

// SetFreq sets the frequency in Hz, limited to +-Nyquist. Negative
// frequencies run backwards.
func (a *Accumulator) SetFreq(hz float64) {
	nyquist := a.cfg.Nyquist()
	a.freq = core.Clamp(hz, -nyquist, nyquist)
	a.inc = uint32(int64(a.freq * float64(a.factor)))
}

// Freq returns the frequency in Hz.
func (a *Accumulator) Freq() float64 { return a.freq }

// Inc returns the per-sample phase increment.
func (a *Accumulator) Inc() uint32 { return a.inc }

// SampleRate returns the configured sample rate.
func (a *Accumulator) SampleRate() float64 { return a.cfg.SampleRate }

// SetPhase sets the current phase.
func (a *Accumulator) SetPhase(p uint32) { a.phase = p }

// Phase returns the current phase.
func (a *Accumulator) Phase() uint32 { return a.phase }

// Next returns the current phase and advances by one sample.
func (a *Accumulator) Next() uint32 {
	p := a.phase
	a.phase += a.inc
	return p
}

// Reset rewinds the phase to 0 and keeps the frequency.
func (a *Accumulator) Reset() { a.phase = 0 }
