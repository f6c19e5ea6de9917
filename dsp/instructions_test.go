package dsp

import (
	"math"
	"testing"

	"github.com/handegar/wcsemu/base"
)

func testCoefficients() *Coefficients {
	var c Coefficients
	for i := range c {
		c[i] = float64(i) / 16.0
	}
	return &c
}

func Test_ApplyStep(t *testing.T) {
	c := testCoefficients()

	t.Run("Multiply register", func(t *testing.T) {
		state := NewState(64, base.OriginalSampleRate)
		state.Registers[2].Set(0.5)
		step := base.Step{HasCoeff: true, CoeffCode: 4, ReadAddr: 2, WriteAddr: 5, Ctrl: base.CTRL_NOP}

		applyStep(&step, 0, c, 1.0, state)

		expected := 0.5 * c[4]
		if state.Registers[5].Value != expected {
			t.Errorf("FAILED: Got %f, expected %f", state.Registers[5].Value, expected)
		}
	})

	t.Run("Multiply memory and accumulate", func(t *testing.T) {
		state := NewState(64, base.OriginalSampleRate)
		state.Memory.Write(10, 0.8)
		state.Registers[1].Set(0.1)
		step := base.Step{HasCoeff: true, CoeffCode: 8, ReadFromMemory: true,
			Accumulate: true, WriteAddr: 1, Ctrl: base.CTRL_NOP}

		applyStep(&step, 10, c, 1.0, state)

		expected := 0.1 + 0.8*c[8]
		if state.Registers[1].Value != expected {
			t.Errorf("FAILED: Got %f, expected %f", state.Registers[1].Value, expected)
		}
	})

	t.Run("Memory write with damping", func(t *testing.T) {
		state := NewState(64, base.OriginalSampleRate)
		state.Registers[3].Set(0.5)
		step := base.Step{WriteAddr: 3, Ctrl: 0x1A, ReadFromMemory: true}

		applyStep(&step, 7, c, 0.9, state)

		if state.Memory.Read(7) != 0.5*0.9 {
			t.Errorf("FAILED: Got %f, expected %f", state.Memory.Read(7), 0.45)
		}
		if state.DebugFlags.MemoryWriteCount != 1 {
			t.Errorf("FAILED: Write not counted")
		}
	})

	t.Run("Memory write through limiter", func(t *testing.T) {
		state := NewState(64, base.OriginalSampleRate)
		state.Registers[3].Set(3.0)
		step := base.Step{WriteAddr: 3, Ctrl: 0x1A, ReadFromMemory: true}

		applyStep(&step, 7, c, 1.0, state)

		expected := math.Tanh(3.0*MemoryLimiterDrive) * MemoryLimiterThreshold
		if state.Memory.Read(7) != expected {
			t.Errorf("FAILED: Got %f, expected %f", state.Memory.Read(7), expected)
		}
		if state.DebugFlags.MemoryLimiterCount != 1 {
			t.Errorf("FAILED: Limiter not counted")
		}
	})

	t.Run("Tap read", func(t *testing.T) {
		state := NewState(64, base.OriginalSampleRate)
		state.Memory.Write(3, -0.3)
		step := base.Step{WriteAddr: 6, Ctrl: 0x0F, ReadFromMemory: true}

		applyStep(&step, 3, c, 1.0, state)

		if state.Registers[6].Value != -0.3 {
			t.Errorf("FAILED: Got %f, expected %f", state.Registers[6].Value, -0.3)
		}
	})

	t.Run("All-ones control has no memory activity", func(t *testing.T) {
		state := NewState(64, base.OriginalSampleRate)
		state.Memory.Write(3, -0.3)
		state.Registers[6].Set(0.2)
		step := base.Step{WriteAddr: 6, Ctrl: base.CTRL_NOP, ReadFromMemory: true}

		applyStep(&step, 3, c, 1.0, state)

		if state.Registers[6].Value != 0.2 || state.Memory.Read(3) != -0.3 {
			t.Errorf("FAILED: State changed by a control-0x1F step")
		}
	})

	t.Run("Multiply then write", func(t *testing.T) {
		state := NewState(64, base.OriginalSampleRate)
		state.Registers[2].Set(1.0)
		step := base.Step{HasCoeff: true, CoeffCode: 2, ReadAddr: 2, WriteAddr: 4, Ctrl: 0x18}

		applyStep(&step, 1, c, 1.0, state)

		if state.Memory.Read(1) != c[2] {
			t.Errorf("FAILED: Got %f, expected %f", state.Memory.Read(1), c[2])
		}
	})
}
