package dsp

import (
	"math"
)

// Rate of the delay-modulation LFO
const LFOFrequency = 0.37

//
// Sine oscillator (LFO). The phase is kept normalised to [0, 1) and
// the output value is refreshed once per sample.
//

type SineOscillator struct {
	phase float64
	delta float64 // Phase increment per sample
	value float64
}

func NewSineOscillator(freq float64, sampleRate float64) SineOscillator {
	return SineOscillator{delta: freq / sampleRate}
}

func (s *SineOscillator) Update() {
	s.phase += s.delta
	if s.phase >= 1.0 {
		s.phase -= 1.0
	}
	s.value = math.Sin(s.phase * 2.0 * math.Pi)
}

// Value computed by the last Update(). Zero before the first update.
func (s *SineOscillator) GetSine() float64 {
	return s.value
}

func (s *SineOscillator) GetPhase() float64 {
	return s.phase
}

func (s *SineOscillator) Reset() {
	s.phase = 0
	s.value = 0
}
