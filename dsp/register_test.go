package dsp

import (
	"math"
	"testing"
)

func Test_Register(t *testing.T) {
	r := NewRegister(0.5)
	r.Mult(0.5).Add(0.25)
	if r.Value != 0.5 {
		t.Errorf("FAILED: Got %f, expected %f", r.Value, 0.5)
	}

	r.Set(-12.0)
	_, clamped := r.Clamp(RegisterLimit)
	if !clamped || r.Value != -RegisterLimit {
		t.Errorf("FAILED: Got %f, expected %f", r.Value, -RegisterLimit)
	}

	r.Set(7.5)
	if _, clamped := r.Clamp(RegisterLimit); clamped {
		t.Errorf("FAILED: 7.5 must not be clamped")
	}

	if !r.EqualWithEpsilon(NewRegister(7.5001), 0.001) {
		t.Errorf("FAILED: Expected registers to be equal within epsilon")
	}
}

func Test_RegisterFileStore(t *testing.T) {
	t.Run("Load", func(t *testing.T) {
		var rf RegisterFile
		rf[3].Set(1.0)
		pc, rc := rf.Store(3, 0.25, false)
		if rf[3].Value != 0.25 || pc || rc {
			t.Errorf("FAILED: Got %f, expected %f", rf[3].Value, 0.25)
		}
	})

	t.Run("Accumulate", func(t *testing.T) {
		var rf RegisterFile
		rf[3].Set(1.0)
		rf.Store(3, 0.25, true)
		if rf[3].Value != 1.25 {
			t.Errorf("FAILED: Got %f, expected %f", rf[3].Value, 1.25)
		}
	})

	t.Run("Product clamp", func(t *testing.T) {
		var rf RegisterFile
		pc, _ := rf.Store(0, -5.0, false)
		if !pc || rf[0].Value != -ProductLimit {
			t.Errorf("FAILED: Got %f, expected %f", rf[0].Value, -ProductLimit)
		}
	})

	t.Run("Register clamp", func(t *testing.T) {
		var rf RegisterFile
		rf[1].Set(7.0)
		_, rc := rf.Store(1, 3.0, true)
		if !rc || rf[1].Value != RegisterLimit {
			t.Errorf("FAILED: Got %f, expected %f", rf[1].Value, RegisterLimit)
		}
	})
}

func Test_Limiters(t *testing.T) {
	t.Run("Soft limit", func(t *testing.T) {
		v, limited := softLimit(1.5)
		if limited || v != 1.5 {
			t.Errorf("FAILED: 1.5 must pass unchanged, got %f", v)
		}

		v, limited = softLimit(-4.0)
		expected := math.Tanh(-4.0*MemoryLimiterDrive) * MemoryLimiterThreshold
		if !limited || v != expected {
			t.Errorf("FAILED: Got %f, expected %f", v, expected)
		}
		if math.Abs(v) > MemoryLimiterThreshold {
			t.Errorf("FAILED: Limited value %f above threshold", v)
		}
	})

	t.Run("Converter", func(t *testing.T) {
		if saturate(0.5) != 0.5 || saturate(-0.75) != -0.75 {
			t.Errorf("FAILED: Values below the knee must pass unchanged")
		}

		prev := 0.0
		for x := 0.0; x < 40.0; x += 0.01 {
			y := saturate(x)
			if y < prev {
				t.Fatalf("FAILED: Not monotonic at %f", x)
			}
			if y > ConverterCeiling || saturate(-x) != -y {
				t.Fatalf("FAILED: Got %f for %f", y, x)
			}
			prev = y
		}

		if saturate(math.NaN()) != 0.0 {
			t.Errorf("FAILED: NaN must not reach the output")
		}
	})
}
