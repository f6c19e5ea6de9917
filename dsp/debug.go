package dsp

import (
	"fmt"
)

// Counters for the saturating paths of the datapath. These are
// informational only; hitting a limit is never an error.
type DebugFlags struct {
	ProductClampCount   int // |coefficient product| > ProductLimit
	RegisterClampCount  int // |register| > RegisterLimit
	MemoryLimiterCount  int // Memory writes through the tanh limiter
	OffsetClampCount    int // Modulated offset outside the memory
	CaptureOverflowL    int // |captured R1| > 1.0, left half
	CaptureOverflowR    int // |captured R1| > 1.0, right half
	MemoryWriteCount    int
	TapReadCount        int
	SamplesProcessed    int
	MaxCaptureMagnitude float64
}

func (df *DebugFlags) Reset() {
	df.ProductClampCount = 0
	df.RegisterClampCount = 0
	df.MemoryLimiterCount = 0
	df.OffsetClampCount = 0
	df.CaptureOverflowL = 0
	df.CaptureOverflowR = 0
	df.MemoryWriteCount = 0
	df.TapReadCount = 0
	df.SamplesProcessed = 0
	df.MaxCaptureMagnitude = 0.0
}

func (df *DebugFlags) registerCapture(capL float64, capR float64) {
	if capL > 1.0 || capL < -1.0 {
		df.CaptureOverflowL += 1
	}
	if capR > 1.0 || capR < -1.0 {
		df.CaptureOverflowR += 1
	}
	for _, v := range []float64{capL, capR} {
		if v < 0 {
			v = -v
		}
		if v > df.MaxCaptureMagnitude {
			df.MaxCaptureMagnitude = v
		}
	}
	df.SamplesProcessed += 1
}

func (df *DebugFlags) Print() {
	fmt.Printf("DebugFlags:\n"+
		" SamplesProcessed = %d\n"+
		" ProductClampCount = %d\n"+
		" RegisterClampCount = %d\n"+
		" MemoryLimiterCount = %d\n"+
		" OffsetClampCount = %d\n"+
		" CaptureOverflowL = %d\n"+
		" CaptureOverflowR = %d\n"+
		" MemoryWriteCount = %d\n"+
		" TapReadCount = %d\n"+
		" MaxCaptureMagnitude = %f\n",
		df.SamplesProcessed,
		df.ProductClampCount,
		df.RegisterClampCount,
		df.MemoryLimiterCount,
		df.OffsetClampCount,
		df.CaptureOverflowL,
		df.CaptureOverflowR,
		df.MemoryWriteCount,
		df.TapReadCount,
		df.MaxCaptureMagnitude)
}
