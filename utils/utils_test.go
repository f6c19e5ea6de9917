package utils

import (
	"math"
	"testing"
)

func decaying(n int, rate float64) [][2]float64 {
	buf := make([][2]float64, n)
	for i := range buf {
		v := math.Exp(-float64(i)*rate) * math.Sin(float64(i)*0.1)
		buf[i] = [2]float64{v, -v}
	}
	return buf
}

func Test_PeakAndRMS(t *testing.T) {
	buf := [][2]float64{{0.5, -1.0}, {0.25, 0.0}}
	if Peak(buf) != 1.0 {
		t.Errorf("FAILED: Got %f, expected %f", Peak(buf), 1.0)
	}

	expected := math.Sqrt((0.25 + 1.0 + 0.0625) / 4.0)
	if math.Abs(RMS(buf)-expected) > 1e-12 {
		t.Errorf("FAILED: Got %f, expected %f", RMS(buf), expected)
	}

	if RMS(nil) != 0.0 {
		t.Errorf("FAILED: RMS of an empty buffer must be zero")
	}

	buf[1][1] = math.NaN()
	if !math.IsNaN(Peak(buf)) || IsFinite(buf) {
		t.Errorf("FAILED: NaN not detected")
	}
}

func Test_Normalize(t *testing.T) {
	buf := [][2]float64{{0.5, -0.25}}
	Normalize(buf, 1.0)
	if buf[0][0] != 1.0 || buf[0][1] != -0.5 {
		t.Errorf("FAILED: Got %v", buf[0])
	}

	silent := [][2]float64{{0, 0}}
	Normalize(silent, 1.0)
	if silent[0][0] != 0 {
		t.Errorf("FAILED: Silent buffer changed")
	}
}

func Test_Classify(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		if h := Classify(decaying(4000, 0.001)); h != Healthy {
			t.Errorf("FAILED: Got %s, expected healthy", h)
		}
	})

	t.Run("Silent", func(t *testing.T) {
		if h := Classify(make([][2]float64, 100)); h != Silent {
			t.Errorf("FAILED: Got %s, expected silent", h)
		}
	})

	t.Run("Divergent", func(t *testing.T) {
		buf := decaying(4000, 0.001)
		buf[10][0] = 250.0
		if h := Classify(buf); h != Divergent {
			t.Errorf("FAILED: Got %s, expected divergent", h)
		}

		buf = decaying(4000, 0.001)
		buf[10][1] = math.NaN()
		if h := Classify(buf); h != Divergent {
			t.Errorf("FAILED: Got %s, expected divergent", h)
		}
	})

	t.Run("Growing tail", func(t *testing.T) {
		if h := Classify(decaying(4000, -0.0005)); h != GrowingTail {
			t.Errorf("FAILED: Got %s, expected growing tail", h)
		}
	})
}

func Test_Assert(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("FAILED: Assert did not panic")
		}
	}()
	Assert(1 == 2, "%d != %d", 1, 2)
}
