package utils

import (
	"fmt"
	"math"
)

func Assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("Assertion failed: "+format, args...))
	}
}

// Largest absolute sample value over both channels. NaN if any sample
// is NaN.
func Peak(buf [][2]float64) float64 {
	peak := 0.0
	for _, f := range buf {
		for _, v := range f {
			if math.IsNaN(v) {
				return math.NaN()
			}
			peak = math.Max(peak, math.Abs(v))
		}
	}
	return peak
}

func RMS(buf [][2]float64) float64 {
	if len(buf) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, f := range buf {
		sum += f[0]*f[0] + f[1]*f[1]
	}
	return math.Sqrt(sum / float64(2*len(buf)))
}

func IsFinite(buf [][2]float64) bool {
	for _, f := range buf {
		for _, v := range f {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Mean power of one channel over [from, to)
func MeanEnergy(buf [][2]float64, channel int, from int, to int) float64 {
	if to <= from {
		return 0.0
	}
	sum := 0.0
	for i := from; i < to; i++ {
		sum += buf[i][channel] * buf[i][channel]
	}
	return sum / float64(to-from)
}

// Scales the buffer so its peak is 'level'. Silent buffers are left
// untouched.
func Normalize(buf [][2]float64, level float64) {
	peak := Peak(buf)
	if peak == 0.0 || math.IsNaN(peak) {
		return
	}
	g := level / peak
	for i := range buf {
		buf[i][0] *= g
		buf[i][1] *= g
	}
}

func Split(buf [][2]float64) ([]float64, []float64) {
	left := make([]float64, len(buf))
	right := make([]float64, len(buf))
	for i, f := range buf {
		left[i] = f[0]
		right[i] = f[1]
	}
	return left, right
}
