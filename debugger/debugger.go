package debugger

import (
	ui "github.com/gizak/termui/v3"
	"github.com/pkg/errors"

	"github.com/handegar/wcsemu/base"
	"github.com/handegar/wcsemu/dsp"
)

/**
  A terminal step debugger. The session is installed as the engine's
  trace hook (dsp.WithTrace(session.Trace)) and takes over after every
  executed step until the user asks to skip ahead.
*/
type Session struct {
	steps []base.Step
	outL  int
	outR  int

	stopAtSample int // Run freely until this sample
	quit         bool
}

func NewSession(steps []base.Step, outL int, outR int) *Session {
	return &Session{steps: steps, outL: outL, outR: outR}
}

func (s *Session) Quit() bool {
	return s.quit
}

func (s *Session) SkipTo(sampleNum int) {
	s.stopAtSample = sampleNum
}

// dsp.TraceFunc
func (s *Session) Trace(stepNum int, step base.Step, state *dsp.State) {
	if s.quit || state.SampleNum < s.stopAtSample {
		return
	}

	UpdateScreen(s.steps, s.outL, s.outR, state)
	switch WaitForInput() {
	case "quit":
		s.quit = true
	case "next sample":
		s.stopAtSample = state.SampleNum + 1
	case "next 100 samples":
		s.stopAtSample = state.SampleNum + 100
	case "next 1000 samples":
		s.stopAtSample = state.SampleNum + 1000
	case "next 10000 samples":
		s.stopAtSample = state.SampleNum + 10000
	case "next 100000 samples":
		s.stopAtSample = state.SampleNum + 100000
	}
}

// Drives the engine with pre-scaled input frames until the input runs
// out or the user quits. Returns the captured R1 values.
func (s *Session) Run(e *dsp.Engine, c *dsp.Coefficients, input [][2]float64) ([][2]float64, error) {
	if err := ui.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing termui")
	}
	defer ui.Close()
	Init()

	var captured [][2]float64
	for _, in := range input {
		if s.quit {
			break
		}
		l, r := e.ProcessSample(in[0], in[1], c)
		captured = append(captured, [2]float64{l, r})
	}
	return captured, nil
}
