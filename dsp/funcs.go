package dsp

import (
	"math"
)

// Clamp limits applied by the arithmetic unit
const (
	ProductLimit  = 4.0 // After the coefficient multiply
	RegisterLimit = 8.0 // After load / accumulate
)

// Memory writes above this magnitude go through the tanh limiter
const (
	MemoryLimiterThreshold = 1.5
	MemoryLimiterDrive     = 0.667
)

// The output converter is linear below the knee and saturates
// smoothly towards the ceiling above it.
const (
	ConverterKnee    = 0.75
	ConverterCeiling = 1.0
)

const DCBlockerPole = 0.9975

func clamp(v float64, limit float64) (float64, bool) {
	if v > limit {
		return limit, true
	} else if v < -limit {
		return -limit, true
	}
	return v, false
}

// Memory write limiter. Returns the limited value and whether the
// limiter engaged.
func softLimit(v float64) (float64, bool) {
	if v > MemoryLimiterThreshold || v < -MemoryLimiterThreshold {
		return math.Tanh(v*MemoryLimiterDrive) * MemoryLimiterThreshold, true
	}
	return v, false
}

// Output converter saturation. Slope is 1 at the knee so the curve has
// no corner; |result| never exceeds ConverterCeiling.
func saturate(v float64) float64 {
	a := math.Abs(v)
	if a <= ConverterKnee {
		return v
	}
	if math.IsNaN(v) {
		return 0.0
	}

	span := ConverterCeiling - ConverterKnee
	out := ConverterKnee + span*math.Tanh((a-ConverterKnee)/span)
	if out > ConverterCeiling {
		out = ConverterCeiling
	}
	if v < 0 {
		return -out
	}
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Round-half-up to int, as used for offset scaling
func roundOffset(v float64) int {
	return int(v + 0.5)
}
