package base

import "testing"

func Test_CtrlToString(t *testing.T) {
	cases := map[uint8]string{
		0x1F: "-",
		0x1E: "IO",
		0x00: "B0",
		0x1B: "MWR|MCEN|B3",
		0x0A: "MCEN|B2",
		0x16: "MWR|OP|B2",
	}

	for ctrl, expected := range cases {
		got := CtrlToString(ctrl)
		if got != expected {
			t.Errorf("CtrlToString(0x%02X): got %q, expected %q", ctrl, got, expected)
		}
	}
}

func Test_StepPredicates(t *testing.T) {
	// Output extraction: ctrl=0x1E, wai=1, no coefficient
	s := Step{Ctrl: CTRL_IO, WriteAddr: 1, HasCoeff: false}
	if !s.IsOutputExtraction() {
		t.Errorf("Expected output extraction step")
	}
	if !s.WritesMemory() {
		t.Errorf("IO step has MWR set and must write memory")
	}
	if s.ReadsTap() {
		t.Errorf("A writing step is not a tap read")
	}

	s = Step{Ctrl: CTRL_NOP, WriteAddr: 1}
	if s.WritesMemory() || s.ReadsTap() {
		t.Errorf("All-ones control must neither write nor read")
	}

	s = Step{Ctrl: 0x0F, WriteAddr: 6}
	if !s.ReadsTap() {
		t.Errorf("ctrl=0x0F without coefficient is a tap read")
	}

	s = Step{Ctrl: 0x0F, WriteAddr: 6, HasCoeff: true}
	if s.ReadsTap() {
		t.Errorf("A coefficient step is never a pure tap read")
	}
}
