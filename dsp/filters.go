package dsp

import (
	"math"
)

// One-pole lowpass ("rolloff") applied to the input before the engine:
// z = x*(1-w) + z*w, w = exp(-2*pi*fc/sr).
type Lowpass struct {
	a1 float64
	b0 float64
	z  float64
}

func NewLowpass(cutoffHz float64, sampleRate float64) Lowpass {
	w := math.Exp(-2.0 * math.Pi * cutoffHz / sampleRate)
	return Lowpass{a1: w, b0: 1.0 - w}
}

func (lp *Lowpass) Process(x float64) float64 {
	lp.z = x*lp.b0 + lp.z*lp.a1
	return lp.z
}

// First-order DC blocker: y = x - x1 + pole*y1
type DCBlocker struct {
	pole float64
	x1   float64
	y1   float64
}

func NewDCBlocker(pole float64) DCBlocker {
	return DCBlocker{pole: pole}
}

func (dc *DCBlocker) Process(x float64) float64 {
	y := x - dc.x1 + dc.pole*dc.y1
	dc.x1 = x
	dc.y1 = y
	return y
}

// Fixed integer delay. A zero-length delay passes samples through.
type PreDelay struct {
	buf    []float64
	ptr    int
	length int
}

func NewPreDelay(samples int) PreDelay {
	if samples <= 0 {
		return PreDelay{}
	}
	return PreDelay{buf: make([]float64, samples+1), length: samples}
}

func (pd *PreDelay) Process(x float64) float64 {
	if pd.length == 0 {
		return x
	}
	size := pd.length + 1
	y := pd.buf[(pd.ptr+1)%size]
	pd.buf[pd.ptr] = x
	pd.ptr = (pd.ptr + 1) % size
	return y
}
