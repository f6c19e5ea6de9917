package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/handegar/wcsemu/base"
	"github.com/handegar/wcsemu/debugger"
	"github.com/handegar/wcsemu/disasm"
	"github.com/handegar/wcsemu/dsp"
	"github.com/handegar/wcsemu/reader"
	"github.com/handegar/wcsemu/settings"
	"github.com/handegar/wcsemu/utils"
	"github.com/handegar/wcsemu/writer"
)

func parseCommandLineParameters() {
	flag.IntVar(&settings.ProgramNo, "program", settings.ProgramNo, "Program number (0..5)")
	flag.BoolVar(&settings.RenderAll, "all", settings.RenderAll, "Render all programs concurrently")
	flag.Float64Var(&settings.SampleRate, "sr", settings.SampleRate, "Output samplerate")
	flag.Float64Var(&settings.DurationSeconds, "duration", settings.DurationSeconds, "Length of the response in seconds")
	flag.StringVar(&settings.Mode, "mode", settings.Mode, "Excitation: impulse, ess or process")
	flag.StringVar(&settings.CoefficientsFile, "coeffs", settings.CoefficientsFile, "Coefficient file (16 values)")
	flag.Float64Var(&settings.RolloffHz, "rolloff", settings.RolloffHz, "Input lowpass cutoff in Hz")
	flag.Float64Var(&settings.PreDelayMs, "predelay", settings.PreDelayMs, "Pre-delay in ms (impulse mode)")
	flag.Float64Var(&settings.InputGain, "gain", settings.InputGain, "Input gain")
	flag.Float64Var(&settings.Damping, "damping", settings.Damping, "Memory write damping (0..1]")
	flag.Float64Var(&settings.SeedGain, "seed", settings.SeedGain, "Seed the delay memory at sample 0 (impulse mode)")
	flag.Float64Var(&settings.SweepSeconds, "sweep-duration", settings.SweepSeconds, "ESS sweep length in seconds")
	flag.Float64Var(&settings.SweepLevel, "sweep-level", settings.SweepLevel, "ESS sweep amplitude")
	flag.StringVar(&settings.InputWav, "in", settings.InputWav, "Input wav-file (process mode)")
	flag.StringVar(&settings.OutputWav, "out", settings.OutputWav, "Output wav-file")
	flag.BoolVar(&settings.Fast, "fast", settings.Fast, "Use the compiled kernel")
	flag.BoolVar(&settings.Stream, "play", settings.Stream, "Play the result")
	flag.BoolVar(&settings.PrintCode, "print-code", settings.PrintCode, "Print program code")
	flag.BoolVar(&settings.PrintStats, "print-stats", settings.PrintStats, "Print engine counters")
	flag.BoolVar(&settings.PrintDebug, "print-debug", settings.PrintDebug, "Print extra debug info")
	flag.BoolVar(&settings.Trace, "trace", settings.Trace, "Print every executed step")
	flag.BoolVar(&settings.StepDebug, "step", settings.StepDebug, "Wait for a key after each traced step")
	flag.BoolVar(&settings.Debugger, "debugger", settings.Debugger, "Run the step debugger")
	flag.IntVar(&settings.DebugSamples, "samples", settings.DebugSamples, "Samples to run when tracing/debugging")
	flag.IntVar(&settings.SkipToSample, "skip-to", settings.SkipToSample, "Debugger: run freely until this sample")
	flag.Parse()
}

func fail(format string, args ...interface{}) {
	color.Red("ERROR: "+format, args...)
	os.Exit(1)
}

func loadCoefficients() []float64 {
	if settings.CoefficientsFile == "" {
		return dsp.DefaultCoefficients[:]
	}

	values, err := reader.ReadCoefficients(settings.CoefficientsFile)
	if err != nil {
		fail("%s", err)
	}
	if _, err := dsp.ValidateCoefficients(values); err != nil {
		fail("%s: %s", settings.CoefficientsFile, err)
	}
	for i, v := range values {
		if math.Abs(v) > dsp.CoefficientLimit {
			color.Yellow("WARNING: C%X=%f is outside +-%.3f", i, v, dsp.CoefficientLimit)
		}
	}
	fmt.Printf("* Read %d coefficients from '%s'\n", len(values), settings.CoefficientsFile)
	return values
}

func engineOptions() []dsp.Option {
	opts := []dsp.Option{
		dsp.WithDamping(settings.Damping),
		dsp.WithSeed(settings.SeedGain),
	}
	if settings.Fast {
		opts = append(opts, dsp.WithKernel(dsp.CompiledKernel{}))
	}
	return opts
}

// Returns the render function for the selected mode plus the input
// format when processing a file.
func makeRenderer(coeffs []float64) (dsp.RenderFunc, *beep.Format) {
	switch settings.Mode {
	case "impulse":
		return func(e *dsp.Engine) ([][2]float64, error) {
			return e.RenderImpulse(settings.DurationSeconds, coeffs,
				settings.RolloffHz, settings.PreDelayMs, settings.InputGain)
		}, nil
	case "ess":
		return func(e *dsp.Engine) ([][2]float64, error) {
			return e.RenderSweepDeconvolved(settings.DurationSeconds, coeffs,
				settings.RolloffHz, settings.SweepSeconds, settings.SweepLevel,
				settings.Damping)
		}, nil
	case "process":
		if settings.InputWav == "" {
			fail("No input file specified. Use the '-in' parameter.")
		}
		input, format, err := reader.ReadWAV(settings.InputWav)
		if err != nil {
			fail("%s", err)
		}
		if float64(format.SampleRate) != settings.SampleRate {
			fmt.Printf("* Using the input samplerate (%d Hz)\n", format.SampleRate)
			settings.SampleRate = float64(format.SampleRate)
		}
		fmt.Printf("* Read %d samples from '%s'\n", len(input), settings.InputWav)
		return func(e *dsp.Engine) ([][2]float64, error) {
			return e.ProcessSignal(input, coeffs, settings.RolloffHz, settings.InputGain)
		}, &format
	}

	fail("Unknown mode '%s'", settings.Mode)
	return nil, nil
}

func outputFormat() beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(int(settings.SampleRate)),
		NumChannels: 2,
		Precision:   2,
	}
}

func report(name string, out [][2]float64) {
	fmt.Printf("* %s: %d samples, peak=%f, rms=%f, %s\n", name, len(out),
		utils.Peak(out), utils.RMS(out), utils.Classify(out))
}

func saveOutput(filename string, format beep.Format, out [][2]float64) {
	fmt.Printf("* Writing to '%s' (%d samples)\n", filename, len(out))
	if err := writer.SaveAsWAV(filename, format, out); err != nil {
		fail("%s", err)
	}
}

func renderAllPrograms(render dsp.RenderFunc, format beep.Format) {
	start := time.Now()
	results, err := dsp.RenderAll(context.Background(), settings.SampleRate, render, engineOptions()...)
	if err != nil {
		fail("%s", err)
	}
	fmt.Printf("* Rendered %d programs in %s\n", base.NumPrograms, time.Since(start))

	ext := filepath.Ext(settings.OutputWav)
	stem := strings.TrimSuffix(settings.OutputWav, ext)
	for p, out := range results {
		name := dsp.Programs[p].Name
		report(name, out)
		saveOutput(fmt.Sprintf("%s_%d_%s%s", stem, p, strings.ReplaceAll(name, " ", "_"), ext),
			format, out)
	}
}

// Runs the tracer or the step debugger on a short impulse
func runDebugging(coeffs []float64) {
	c, err := dsp.ValidateCoefficients(coeffs)
	if err != nil {
		fail("%s", err)
	}

	layout, err := dsp.NewEngine(settings.ProgramNo, settings.SampleRate)
	if err != nil {
		fail("%s", err)
	}
	outL, outR := layout.OutputSteps()

	n := settings.DebugSamples
	if n < 0 {
		n = 0
	}
	input := layout.ImpulseInput(n, settings.RolloffHz, settings.PreDelayMs, settings.InputGain)

	if settings.Debugger {
		session := debugger.NewSession(layout.Steps(), outL, outR)
		session.SkipTo(settings.SkipToSample)
		e, err := dsp.NewEngine(settings.ProgramNo, settings.SampleRate,
			append(engineOptions(), dsp.WithKernel(dsp.ReferenceKernel{}), dsp.WithTrace(session.Trace))...)
		if err != nil {
			fail("%s", err)
		}
		if _, err := session.Run(e, &c, input); err != nil {
			fail("%s", err)
		}
		e.State().DebugFlags.Print()
		return
	}

	tracer := debugger.NewTracer(outL, outR, settings.StepDebug)
	if err := tracer.Open(); err != nil {
		fail("%s", err)
	}
	defer tracer.Close()

	e, err := dsp.NewEngine(settings.ProgramNo, settings.SampleRate,
		append(engineOptions(), dsp.WithKernel(dsp.ReferenceKernel{}), dsp.WithTrace(tracer.Trace))...)
	if err != nil {
		fail("%s", err)
	}
	for _, in := range input {
		l, r := e.ProcessSample(in[0], in[1], &c)
		color.Magenta("=> captured L=%f R=%f", l, r)
	}
}

func main() {
	fmt.Printf("* WCS microcode emulator v%s\n", settings.Version)
	parseCommandLineParameters()

	coeffs := loadCoefficients()

	if settings.ProgramNo < 0 || settings.ProgramNo >= base.NumPrograms {
		fail("%s", errors.Wrapf(dsp.ErrInvalidProgram, "program %d", settings.ProgramNo))
	}
	program := dsp.Programs[settings.ProgramNo]
	fmt.Printf("* Program %d: %s\n", settings.ProgramNo, program.Name)

	if settings.PrintCode {
		steps := dsp.DecodeProgram(program.Words[:])
		outL, outR := dsp.FindOutputSteps(steps)
		disasm.PrintCodeListing(steps, outL, outR)
	}

	if settings.Trace || settings.StepDebug || settings.Debugger {
		runDebugging(coeffs)
		return
	}

	render, inFormat := makeRenderer(coeffs)
	format := outputFormat()
	if inFormat != nil {
		format.SampleRate = inFormat.SampleRate
	}

	if settings.RenderAll {
		renderAllPrograms(render, format)
		return
	}

	e, err := dsp.NewEngine(settings.ProgramNo, settings.SampleRate, engineOptions()...)
	if err != nil {
		fail("%s", err)
	}

	start := time.Now()
	out, err := render(e)
	if err != nil {
		fail("%s", err)
	}
	fmt.Printf("* Rendered in %s\n", time.Since(start))
	report(program.Name, out)

	if settings.PrintStats {
		e.State().DebugFlags.Print()
	}

	saveOutput(settings.OutputWav, format, out)

	if settings.Stream {
		fmt.Printf("* Playing...\n")
		if err := writer.Play(format, out); err != nil {
			fail("%s", err)
		}
	}
}
