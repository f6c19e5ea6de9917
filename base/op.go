package base

import "fmt"

/*
  One decoded WCS micro-instruction.

  Word layout (MSB first):

    31    27 26 24 23      16 15             0
    [ CTRL  ][WAI ][ COEFF    ][     OFST      ]

  The coefficient byte holds (bit 0 = LSB):
    0: C8   1: C1   2: C2   3: C3   4: ACC0   5-6: RAD   7: RAI

  An all-ones coefficient byte means the step does not use the
  multiplier at all.
*/
type Step struct {
	Offset         uint16 // Delay offset in original-hardware samples
	CoeffCode      uint8  // 0..15, selects one of the 16 coefficients
	Accumulate     bool   // true: add into WriteAddr, false: load
	ReadAddr       uint8  // 0..3, register read when !ReadFromMemory
	ReadFromMemory bool   // Multiplier input is the delay memory
	WriteAddr      uint8  // 0..7, destination register
	Ctrl           uint8  // 5-bit control field
	HasCoeff       bool
	IsNop          bool
	Raw            uint32
}

// Memory write happens when MWR is set on anything but the all-ones
// control value.
func (s Step) WritesMemory() bool {
	return (s.Ctrl&CTRL_MWR) != 0 && s.Ctrl != CTRL_NOP
}

// A non-multiplier step that does not write is a pure tap read into
// the destination register.
func (s Step) ReadsTap() bool {
	return !s.HasCoeff && !s.WritesMemory() && s.Ctrl != CTRL_NOP
}

// The I/O-extraction pattern: control 0x1E, destination R1, no multiplier.
func (s Step) IsOutputExtraction() bool {
	return s.Ctrl == CTRL_IO && s.WriteAddr == OutputRegister && !s.HasCoeff
}

func (s Step) String() string {
	if s.IsNop {
		return "NOP"
	}
	return fmt.Sprintf("ofst=%d c=%X acc=%t rad=%d rai=%t wai=%d ctrl=0x%02X",
		s.Offset, s.CoeffCode, s.Accumulate, s.ReadAddr,
		s.ReadFromMemory, s.WriteAddr, s.Ctrl)
}

// A named, fixed microcode program (128 raw words)
type Program struct {
	Name  string
	Words [StepsPerSample]uint32
}
