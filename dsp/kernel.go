package dsp

import (
	"github.com/handegar/wcsemu/base"
)

// Executes the 128 steps of one sample and returns the captured R1
// values for the left and right half.
type Kernel interface {
	RunSample(e *Engine, inL float64, inR float64, c *Coefficients) (float64, float64)
}

// Executes every step in order and fires the engine's trace hook after
// each one.
type ReferenceKernel struct{}

func (ReferenceKernel) RunSample(e *Engine, inL float64, inR float64, c *Coefficients) (float64, float64) {
	capL := e.runHalf(0, inL, e.outL, c)
	capR := e.runHalf(base.StepsPerHalf, inR, e.outR, c)
	return capL, capR
}

func (e *Engine) runHalf(first int, input float64, outStep int, c *Coefficients) float64 {
	s := e.state
	s.Registers[base.InputRegister].Set(input)

	captured := 0.0
	for i := first; i < first+base.StepsPerHalf; i++ {
		s.IP = i
		step := &e.steps[i]
		if !step.IsNop {
			rp := s.Memory.Index(e.tapOffset(e.scaled[i]))
			applyStep(step, rp, c, e.damping, s)
		}
		if i == outStep {
			captured = s.Registers[base.OutputRegister].Value
		}
		if e.trace != nil {
			e.trace(i, *step, s)
		}
	}
	return captured
}

// Runs a pre-resolved plan: no-op steps are dropped and offsets of
// unmodulated taps are clamped once. Produces the same output as
// ReferenceKernel, bit for bit. The trace hook is not called.
type CompiledKernel struct{}

type compiledStep struct {
	step      *base.Step
	offset    int
	modulated bool
}

type compiledHalf struct {
	steps   []compiledStep
	capture int // R1 is captured after this many steps
}

func compile(e *Engine) [2]compiledHalf {
	var plan [2]compiledHalf
	size := e.state.Memory.Size()

	for h := 0; h < 2; h++ {
		first := h * base.StepsPerHalf
		outStep := e.outL
		if h == 1 {
			outStep = e.outR
		}

		for i := first; i < first+base.StepsPerHalf; i++ {
			step := &e.steps[i]
			if !step.IsNop {
				cs := compiledStep{step: step, offset: e.scaled[i]}
				cs.modulated = cs.offset > e.longDelay
				if !cs.modulated {
					if cs.offset > size-1 {
						cs.offset = size - 1
					} else if cs.offset < 0 {
						cs.offset = 0
					}
				}
				plan[h].steps = append(plan[h].steps, cs)
			}
			if i == outStep {
				plan[h].capture = len(plan[h].steps)
			}
		}
	}
	return plan
}

func (CompiledKernel) RunSample(e *Engine, inL float64, inR float64, c *Coefficients) (float64, float64) {
	capL := e.runCompiledHalf(&e.plan[0], inL, c)
	capR := e.runCompiledHalf(&e.plan[1], inR, c)
	return capL, capR
}

func (e *Engine) runCompiledHalf(half *compiledHalf, input float64, c *Coefficients) float64 {
	s := e.state
	s.Registers[base.InputRegister].Set(input)

	e.runCompiledSteps(half.steps[:half.capture], c)
	captured := s.Registers[base.OutputRegister].Value
	e.runCompiledSteps(half.steps[half.capture:], c)
	return captured
}

func (e *Engine) runCompiledSteps(steps []compiledStep, c *Coefficients) {
	s := e.state
	for i := range steps {
		cs := &steps[i]
		offset := cs.offset
		if cs.modulated {
			offset = e.tapOffset(offset)
		}
		applyStep(cs.step, s.Memory.Index(offset), c, e.damping, s)
	}
}
