package utils

import (
	"math"
)

type Health int

const (
	Healthy Health = iota
	Silent
	Divergent
	GrowingTail
)

// Thresholds for Classify
const (
	SilentPeak       = 1e-6
	DivergentPeak    = 200.0
	TailGrowthFactor = 1.1
)

func (h Health) String() string {
	switch h {
	case Silent:
		return "silent"
	case Divergent:
		return "divergent"
	case GrowingTail:
		return "growing tail"
	}
	return "healthy"
}

/**
  Post-hoc inspection of a rendered response:

    Divergent:   any NaN, or peak > 200
    Silent:      peak < 1e-6
    GrowingTail: the last quarter of the left channel carries more than
                 1.1x the mean energy of the third quarter
*/
func Classify(buf [][2]float64) Health {
	peak := Peak(buf)
	if math.IsNaN(peak) {
		return Divergent
	}
	if peak < SilentPeak {
		return Silent
	}
	if peak > DivergentPeak {
		return Divergent
	}

	n := len(buf)
	q3, q4 := 2*n/4, 3*n/4
	e3 := MeanEnergy(buf, 0, q3, q4)
	e4 := MeanEnergy(buf, 0, q4, n)
	if e4 > e3*TailGrowthFactor {
		return GrowingTail
	}
	return Healthy
}
