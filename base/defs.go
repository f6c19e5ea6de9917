package base

import "fmt"

// Sample rate of the original hardware. Delay offsets in the microcode
// are expressed in samples at this rate.
const OriginalSampleRate = 20480.0

const (
	StepsPerSample = 128 // One full program pass per output sample
	StepsPerHalf   = 64  // Left half: 0..63, right half: 64..127
	NumRegisters   = 8
	NumCoeffs      = 16
	NumPrograms    = 6
)

// Delay memory holds 64k words at the original rate. The margin keeps
// the largest scaled offset inside the buffer after rounding.
const (
	MemoryWords  = 65536
	MemoryMargin = 16
)

// Register roles
const (
	InputRegister  = 2 // Input sample is injected here before each half
	OutputRegister = 1 // Captured after the output step of each half
)

// Used when a program half has no I/O-extraction step
const (
	DefaultOutputStepL = 60
	DefaultOutputStepR = 124
)

// Control field (5 bits, MI31..MI27)
const (
	CTRL_OP   = 0x04 // OP/, not used by the float engine
	CTRL_MCEN = 0x08 // Memory cycle enable
	CTRL_MWR  = 0x10 // Memory write enable
	CTRL_IO   = 0x1E // I/O injection / extraction
	CTRL_NOP  = 0x1F // All ones: no memory activity
)

// Offsets above this (in original samples) get the LFO jitter term
const LongDelayThreshold = 5000

// Bus control (BCON) occupies the two lowest control bits
const CTRL_BCON_MASK = 0x03

// Describes a control field, e.g. "MWR|MCEN|B3" or "IO"
func CtrlToString(ctrl uint8) string {
	switch ctrl {
	case CTRL_NOP:
		return "-"
	case CTRL_IO:
		return "IO"
	}

	ret := ""
	if ctrl&CTRL_MWR != 0 {
		ret += "MWR|"
	}
	if ctrl&CTRL_MCEN != 0 {
		ret += "MCEN|"
	}
	if ctrl&CTRL_OP != 0 {
		ret += "OP|"
	}
	return ret + fmt.Sprintf("B%d", ctrl&CTRL_BCON_MASK)
}

// Register names as shown by the disassembler and debugger
var RegisterSymbols = map[uint8]string{
	0: "R0",
	1: "R1/OUT",
	2: "R2/IN",
	3: "R3",
	4: "R4",
	5: "R5",
	6: "R6",
	7: "R7",
}
