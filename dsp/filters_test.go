package dsp

import (
	"math"
	"testing"
)

func Test_PreDelayLine(t *testing.T) {
	t.Run("Zero length passes through", func(t *testing.T) {
		pd := NewPreDelay(0)
		for _, x := range []float64{1, 2, 3} {
			if y := pd.Process(x); y != x {
				t.Errorf("FAILED: Got %f, expected %f", y, x)
			}
		}
	})

	t.Run("Delays by n samples", func(t *testing.T) {
		pd := NewPreDelay(3)
		in := []float64{1, 2, 3, 4, 5, 6}
		expected := []float64{0, 0, 0, 1, 2, 3}
		for i, x := range in {
			if y := pd.Process(x); y != expected[i] {
				t.Errorf("FAILED: Sample %d: got %f, expected %f", i, y, expected[i])
			}
		}
	})
}

func Test_DCBlocker(t *testing.T) {
	dc := NewDCBlocker(DCBlockerPole)
	y := 0.0
	for i := 0; i < 20000; i++ {
		y = dc.Process(1.0)
	}
	if math.Abs(y) > 1e-6 {
		t.Errorf("FAILED: Constant input not removed, got %f", y)
	}

	dc = NewDCBlocker(DCBlockerPole)
	if y := dc.Process(0.5); y != 0.5 {
		t.Errorf("FAILED: First sample must pass, got %f", y)
	}
}

func Test_Lowpass(t *testing.T) {
	lp := NewLowpass(1000.0, 44100.0)
	y := 0.0
	for i := 0; i < 10000; i++ {
		y = lp.Process(1.0)
	}
	if math.Abs(y-1.0) > 1e-9 {
		t.Errorf("FAILED: Got %f, expected unity DC gain", y)
	}

	cutoff, sr := 1000.0, 44100.0
	lp = NewLowpass(cutoff, sr)
	w := math.Exp(-2.0 * math.Pi * cutoff / sr)
	if y := lp.Process(1.0); y != 1.0-w {
		t.Errorf("FAILED: Got %f, expected %f", y, 1.0-w)
	}
}

func Test_DelayMemory(t *testing.T) {
	m := NewDelayMemory(8)
	if m.Index(0) != 0 || m.Index(1) != 7 || m.Index(7) != 1 {
		t.Errorf("FAILED: Wrong wrap-around at write pointer 0")
	}

	for i := 0; i < 10; i++ {
		m.Advance()
	}
	if m.WritePtr != 2 {
		t.Errorf("FAILED: Got write pointer %d, expected 2", m.WritePtr)
	}
	if m.Index(3) != 7 {
		t.Errorf("FAILED: Got %d, expected 7", m.Index(3))
	}

	m.Fill(0.25)
	if m.CountNonZero(0, 8) != 8 {
		t.Errorf("FAILED: Fill did not reach every word")
	}
	m.Clear()
	if m.CountNonZero(0, 8) != 0 || m.WritePtr != 0 {
		t.Errorf("FAILED: Clear left state behind")
	}
}
