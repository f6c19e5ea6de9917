package dsp

import (
	"math"

	"github.com/pkg/errors"
)

const DefaultInputGain = 0.25

// Default lowpass cutoff applied to the excitation
const DefaultRolloffHz = 10000.0

// Signal chain around the engine:
//
//	input -> rolloff -> pre-delay -> *gain -> engine -> DC block -> /gain -> converter
type chain struct {
	lpL, lpR   Lowpass
	pdL, pdR   PreDelay
	dcL, dcR   DCBlocker
	inputGain  float64
	outputGain float64
}

// Invalid gains and cutoffs fall back to the defaults
func (e *Engine) newChain(rolloffHz float64, preDelaySamples int, inputGain float64) *chain {
	if math.IsNaN(inputGain) || inputGain <= 0.0 {
		inputGain = DefaultInputGain
	}
	if math.IsNaN(rolloffHz) || rolloffHz <= 0.0 {
		rolloffHz = DefaultRolloffHz
	}
	return &chain{
		lpL:        NewLowpass(rolloffHz, e.sampleRate),
		lpR:        NewLowpass(rolloffHz, e.sampleRate),
		pdL:        NewPreDelay(preDelaySamples),
		pdR:        NewPreDelay(preDelaySamples),
		dcL:        NewDCBlocker(DCBlockerPole),
		dcR:        NewDCBlocker(DCBlockerPole),
		inputGain:  inputGain,
		outputGain: 1.0 / inputGain,
	}
}

// Resets the engine and drives it for 'n' samples. 'input' returns the
// dry stereo input for sample k.
func (e *Engine) drive(n int, input func(k int) (float64, float64), c *Coefficients, ch *chain) [][2]float64 {
	e.Reset()
	out := make([][2]float64, n)

	for k := 0; k < n; k++ {
		inL, inR := ch.excite(input(k))

		if k == 0 && e.seedGain != 0.0 {
			e.state.Memory.Fill(inL * e.seedGain)
		}

		capL, capR := e.ProcessSample(inL, inR, c)

		out[k][0] = saturate(ch.dcL.Process(capL) * ch.outputGain)
		out[k][1] = saturate(ch.dcR.Process(capR) * ch.outputGain)
	}
	return out
}

// Input side of the chain: rolloff, pre-delay and gain
func (ch *chain) excite(inL float64, inR float64) (float64, float64) {
	inL = ch.pdL.Process(ch.lpL.Process(inL)) * ch.inputGain
	inR = ch.pdR.Process(ch.lpR.Process(inR)) * ch.inputGain
	return inL, inR
}

// The first 'n' engine input frames of an impulse render, i.e. the
// values RenderImpulse injects into R2. Used to feed ProcessSample
// directly when tracing.
func (e *Engine) ImpulseInput(n int, rolloffHz float64, preDelayMs float64,
	inputGain float64) [][2]float64 {

	ch := e.newChain(rolloffHz, int(preDelayMs*0.001*e.sampleRate), inputGain)
	ret := make([][2]float64, n)
	for k := range ret {
		in := 0.0
		if k == 0 {
			in = 1.0
		}
		ret[k][0], ret[k][1] = ch.excite(in, in)
	}
	return ret
}

func numSamples(seconds float64, sampleRate float64) int {
	n := int(seconds * sampleRate)
	if n < 0 {
		return 0
	}
	return n
}

/**
  Renders the stereo impulse response of the engine's program: a unit
  impulse on both channels at sample 0, silence afterwards. The engine
  is reset first, so identical calls give identical output.
*/
func (e *Engine) RenderImpulse(durationSeconds float64, coefficients []float64,
	rolloffHz float64, preDelayMs float64, inputGain float64) ([][2]float64, error) {

	c, err := ValidateCoefficients(coefficients)
	if err != nil {
		return nil, err
	}

	n := numSamples(durationSeconds, e.sampleRate)
	preDelay := int(preDelayMs * 0.001 * e.sampleRate)
	ch := e.newChain(rolloffHz, preDelay, inputGain)

	impulse := func(k int) (float64, float64) {
		if k == 0 {
			return 1.0, 1.0
		}
		return 0.0, 0.0
	}
	return e.drive(n, impulse, &c, ch), nil
}

// Runs an arbitrary stereo signal through the engine (fully wet). The
// output has the same length as the input.
func (e *Engine) ProcessSignal(input [][2]float64, coefficients []float64,
	rolloffHz float64, inputGain float64) ([][2]float64, error) {

	c, err := ValidateCoefficients(coefficients)
	if err != nil {
		return nil, err
	}

	ch := e.newChain(rolloffHz, 0, inputGain)
	signal := func(k int) (float64, float64) {
		return input[k][0], input[k][1]
	}
	return e.drive(len(input), signal, &c, ch), nil
}

/**
  Measures the impulse response with an exponential sine sweep: the
  engine is driven with a sweep of 'sweepLevel' amplitude followed by
  silence, and the recording is deconvolved against the sweep. The
  warm delay memory gives a more realistic response than a cold
  impulse.

  'damping' applies to this call only; values outside (0, 1] mean no
  damping.
*/
func (e *Engine) RenderSweepDeconvolved(durationSeconds float64, coefficients []float64,
	rolloffHz float64, sweepDurationSeconds float64, sweepLevel float64,
	damping float64) ([][2]float64, error) {

	if _, err := ValidateCoefficients(coefficients); err != nil {
		return nil, err
	}
	if sweepEndHz(e.sampleRate) <= SweepStartHz {
		return nil, errors.Wrapf(ErrInvalidSampleRate,
			"%f Hz is too low for a sweep starting at %.0f Hz", e.sampleRate, SweepStartHz)
	}
	if sweepLevel <= 0.0 || math.IsNaN(sweepLevel) {
		return nil, errors.Errorf("sweep level must be positive, got %f", sweepLevel)
	}

	n := numSamples(durationSeconds, e.sampleRate)
	sweep := GenerateSweep(e.sampleRate, sweepDurationSeconds, 1.0)
	if len(sweep) == 0 {
		return nil, errors.Errorf("sweep of %f seconds is empty", sweepDurationSeconds)
	}

	input := make([][2]float64, len(sweep)+n)
	for i, v := range sweep {
		input[i][0] = v * sweepLevel
		input[i][1] = v * sweepLevel
	}

	savedDamping := e.damping
	e.damping = normalizeDamping(damping)
	recorded, err := e.ProcessSignal(input, coefficients, rolloffHz, DefaultInputGain)
	e.damping = savedDamping
	if err != nil {
		return nil, err
	}

	left := make([]float64, len(recorded))
	right := make([]float64, len(recorded))
	for i, f := range recorded {
		left[i] = f[0]
		right[i] = f[1]
	}

	irL := Deconvolve(left, sweep, n)
	irR := Deconvolve(right, sweep, n)

	out := make([][2]float64, n)
	for i := 0; i < n; i++ {
		out[i][0] = irL[i] / sweepLevel
		out[i][1] = irR[i] / sweepLevel
	}
	return out, nil
}
