package dsp

import (
	"github.com/handegar/wcsemu/base"
)

func DecodeStep(word uint32) base.Step {
	mi31_24 := uint8(word >> 24)
	mi23_16 := uint8(word >> 16)

	var step base.Step
	step.Raw = word
	step.WriteAddr = mi31_24 & 0x7
	step.Ctrl = (mi31_24 >> 3) & 0x1F
	step.Offset = uint16(word & 0xFFFF)
	step.HasCoeff = mi23_16 != 0xFF
	step.IsNop = mi31_24 == 0xFF && mi23_16 == 0xFF

	if !step.HasCoeff {
		// Don't-care fields. RAI idles high on the hardware.
		step.ReadFromMemory = true
		return step
	}

	c8 := (mi23_16 >> 0) & 1
	c1 := (mi23_16 >> 1) & 1
	c2 := (mi23_16 >> 2) & 1
	c3 := (mi23_16 >> 3) & 1
	step.CoeffCode = (c8 << 3) | (c3 << 2) | (c2 << 1) | c1
	step.Accumulate = (mi23_16>>4)&1 != 0
	step.ReadAddr = (mi23_16 >> 5) & 0x3
	step.ReadFromMemory = (mi23_16>>7)&1 != 0

	return step
}

func DecodeProgram(words []uint32) []base.Step {
	ret := make([]base.Step, 0, len(words))
	for _, w := range words {
		ret = append(ret, DecodeStep(w))
	}
	return ret
}

// Scans each half for the I/O-extraction step. Halves without one fall
// back to the default indices.
func FindOutputSteps(steps []base.Step) (int, int) {
	left := base.DefaultOutputStepL
	right := base.DefaultOutputStepR

	for i := 0; i < base.StepsPerHalf && i < len(steps); i++ {
		if steps[i].IsOutputExtraction() {
			left = i
			break
		}
	}
	for i := base.StepsPerHalf; i < base.StepsPerSample && i < len(steps); i++ {
		if steps[i].IsOutputExtraction() {
			right = i
			break
		}
	}
	return left, right
}
