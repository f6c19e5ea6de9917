package dsp

import (
	"math"

	"github.com/pkg/errors"

	"github.com/handegar/wcsemu/base"
)

var (
	ErrInvalidProgram    = errors.New("invalid program index")
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	ErrCoefficientCount  = errors.New("coefficient vector must hold 16 values")
)

// Called after every executed step by the reference kernel
type TraceFunc func(stepNum int, step base.Step, state *State)

type Option func(*Engine)

// Scales every value stored by a memory write. Values outside (0, 1]
// mean no damping.
func WithDamping(damping float64) Option {
	return func(e *Engine) {
		e.damping = normalizeDamping(damping)
	}
}

func WithKernel(k Kernel) Option {
	return func(e *Engine) {
		if k != nil {
			e.kernel = k
		}
	}
}

func WithTrace(fn TraceFunc) Option {
	return func(e *Engine) {
		e.trace = fn
	}
}

// Fills the whole delay memory with the first (scaled) left input times
// 'gain' before the first sample is processed. Zero disables seeding.
func WithSeed(gain float64) Option {
	return func(e *Engine) {
		e.seedGain = gain
	}
}

func normalizeDamping(d float64) float64 {
	if math.IsNaN(d) || d <= 0.0 || d > 1.0 {
		return 1.0
	}
	return d
}

/**
  One emulated WCS engine running a single program at a given sample
  rate. All microcode offsets are scaled from the 20480 Hz hardware rate
  so delay times in milliseconds are the same at any rate.

  An Engine is not safe for concurrent use. Independent engines share
  nothing but the read-only program table.
*/
type Engine struct {
	program    int
	sampleRate float64
	ratio      float64
	longDelay  int // Offsets above this get LFO modulation

	steps  []base.Step
	scaled []int // Per-step offset in samples at sampleRate
	outL   int
	outR   int
	plan   [2]compiledHalf

	damping  float64
	seedGain float64
	kernel   Kernel
	trace    TraceFunc

	state *State
}

func NewEngine(program int, sampleRate float64, opts ...Option) (*Engine, error) {
	if program < 0 || program >= base.NumPrograms {
		return nil, errors.Wrapf(ErrInvalidProgram, "program %d (valid: 0..%d)",
			program, base.NumPrograms-1)
	}
	if math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || sampleRate <= 0.0 {
		return nil, errors.Wrapf(ErrInvalidSampleRate, "%f Hz", sampleRate)
	}

	e := new(Engine)
	e.program = program
	e.sampleRate = sampleRate
	e.ratio = sampleRate / base.OriginalSampleRate
	e.longDelay = int(base.LongDelayThreshold * e.ratio)
	e.damping = 1.0
	e.kernel = ReferenceKernel{}

	e.steps = DecodeProgram(Programs[program].Words[:])
	e.outL, e.outR = FindOutputSteps(e.steps)
	e.scaled = make([]int, len(e.steps))
	for i, s := range e.steps {
		e.scaled[i] = roundOffset(float64(s.Offset) * e.ratio)
	}

	for _, opt := range opts {
		opt(e)
	}

	e.state = NewState(MemorySize(sampleRate), sampleRate)
	e.plan = compile(e)
	return e, nil
}

// Clears memory, registers, write pointer and LFO
func (e *Engine) Reset() {
	e.state.Reset()
}

func (e *Engine) Program() int {
	return e.program
}

func (e *Engine) SampleRate() float64 {
	return e.sampleRate
}

func (e *Engine) Steps() []base.Step {
	return e.steps
}

func (e *Engine) OutputSteps() (int, int) {
	return e.outL, e.outR
}

func (e *Engine) State() *State {
	return e.state
}

func (e *Engine) Damping() float64 {
	return e.damping
}

// Offset of 'step' in samples at the engine's rate, before modulation
func (e *Engine) ScaledOffset(step int) int {
	return e.scaled[step]
}

// Resolves the effective tap offset for a scaled offset: long taps are
// modulated by the LFO, then the result is clamped into the memory.
func (e *Engine) tapOffset(scaled int) int {
	lfo := e.state.LFO.GetSine()
	if scaled > e.longDelay && lfo != 0.0 {
		scaled += int(lfo * e.ratio * 1.5)
	}

	last := e.state.Memory.Size() - 1
	if scaled < 0 {
		scaled = 0
		e.state.DebugFlags.OffsetClampCount += 1
	} else if scaled > last {
		scaled = last
		e.state.DebugFlags.OffsetClampCount += 1
	}
	return scaled
}

// Runs one full 128-step pass: 'inL' is injected into R2 before the left
// half, 'inR' before the right half. Returns R1 as captured at each
// half's output step. Afterwards the write pointer and the LFO advance.
func (e *Engine) ProcessSample(inL float64, inR float64, c *Coefficients) (float64, float64) {
	capL, capR := e.kernel.RunSample(e, inL, inR, c)

	s := e.state
	s.Memory.Advance()
	s.LFO.Update()
	s.SampleNum += 1
	s.DebugFlags.registerCapture(capL, capR)
	return capL, capR
}
