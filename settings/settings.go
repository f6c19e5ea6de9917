package settings

var Version = "0.1"

var InputWav = ""
var OutputWav = "output.wav"
var CoefficientsFile = ""

// Program number (0..5)
var ProgramNo = 0

// Render all programs concurrently
var RenderAll = false

// Output samplerate
var SampleRate = 44100.0

// Length of the rendered response
var DurationSeconds = 2.0

// "impulse", "ess" or "process"
var Mode = "impulse"

// Excitation chain
var RolloffHz = 10000.0
var PreDelayMs = 0.0
var InputGain = 0.25
var Damping = 1.0
var SeedGain = 0.0

// ESS measurement
var SweepSeconds = 4.0
var SweepLevel = 0.01

// Use the compiled (no-trace) kernel
var Fast = false

// Stream result to speaker?
var Stream = false

// Do a code printout
var PrintCode = false

// Print clamp/limiter counters after rendering
var PrintStats = false

// Print extra debug info
var PrintDebug = false

// Print every executed step
var Trace = false

// Wait for a key after each traced step
var StepDebug = false

// Step debugger
var Debugger = false

// Number of samples the tracer / debugger runs for
var DebugSamples = 4

// Skip to sample @ startup
var SkipToSample = -1
