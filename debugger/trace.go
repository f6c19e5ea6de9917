package debugger

import (
	"fmt"
	"os"

	"github.com/eiannone/keyboard"
	"github.com/fatih/color"

	"github.com/handegar/wcsemu/base"
	"github.com/handegar/wcsemu/disasm"
	"github.com/handegar/wcsemu/dsp"
)

const tracePrompt = "< (N)ext step | Next (s)ample | (V)iew state | (P)rint step | (Q)uit >"

// Prints every executed step to stdout. With 'stepping' set, waits for
// a key after each step.
type Tracer struct {
	outL     int
	outR     int
	stepping bool

	skipSample int // Sample number being skipped, -1 if none
}

func NewTracer(outL int, outR int, stepping bool) *Tracer {
	return &Tracer{outL: outL, outR: outR, stepping: stepping, skipSample: -1}
}

// dsp.TraceFunc
func (t *Tracer) Trace(stepNum int, step base.Step, state *dsp.State) {
	if t.skipSample == state.SampleNum {
		return
	}

	if stepNum == 0 {
		color.Blue("sample=%d WritePtr=%d LFO=%f",
			state.SampleNum, state.Memory.WritePtr, state.LFO.GetSine())
	}

	line := fmt.Sprintf("%3d %s", stepNum, disasm.StepToString(step, stepNum, false))
	if stepNum == t.outL || stepNum == t.outR {
		color.Green("%s  <- OUT", line)
	} else if step.IsNop {
		color.White("%s", line)
	} else {
		color.Cyan("%s", line)
	}
	if !step.IsNop {
		color.White("      => %s=%f", base.RegisterSymbols[step.WriteAddr],
			state.Registers[step.WriteAddr].Value)
	}

	if t.stepping {
		t.waitForKey(step, stepNum, state)
	}
}

func (t *Tracer) waitForKey(step base.Step, stepNum int, state *dsp.State) {
	color.Yellow(tracePrompt)
	for {
		char, _, err := keyboard.GetKey()
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			return
		}

		switch char {
		case 'q':
			_ = keyboard.Close()
			os.Exit(1)
		case 'p':
			color.Cyan(disasm.StepToString(step, stepNum, true))
			color.Yellow(tracePrompt)
		case 'v':
			state.Print()
			color.Yellow(tracePrompt)
		case 'n':
			return
		case 's':
			t.skipSample = state.SampleNum
			color.Red("Skipping to next sample")
			return
		}
	}
}

func (t *Tracer) Open() error {
	if !t.stepping {
		return nil
	}
	return keyboard.Open()
}

func (t *Tracer) Close() {
	if t.stepping {
		_ = keyboard.Close()
	}
}
