package disasm

import (
	"strings"
	"testing"

	"github.com/handegar/wcsemu/base"
)

func Test_StepKind(t *testing.T) {
	cases := []struct {
		step     base.Step
		expected string
	}{
		{base.Step{IsNop: true, Ctrl: base.CTRL_NOP}, "NOP"},
		{base.Step{HasCoeff: true, Ctrl: base.CTRL_NOP}, "MUL"},
		{base.Step{HasCoeff: true, Accumulate: true, Ctrl: 0x0A}, "MAC"},
		{base.Step{HasCoeff: true, Ctrl: 0x18}, "MULW"},
		{base.Step{HasCoeff: true, Accumulate: true, Ctrl: 0x1A}, "MACW"},
		{base.Step{Ctrl: base.CTRL_IO, WriteAddr: 1}, "IO"},
		{base.Step{Ctrl: 0x1A}, "WR"},
		{base.Step{Ctrl: 0x0F}, "RD"},
		{base.Step{Ctrl: base.CTRL_NOP, WriteAddr: 3}, "IDLE"},
	}

	for _, c := range cases {
		got := StepKind(c.step)
		if got != c.expected {
			t.Errorf("FAILED: %s: got %s, expected %s", c.step, got, c.expected)
		}
		if _, found := StepDocs[got]; !found {
			t.Errorf("FAILED: No documentation for %s", got)
		}
	}
}

func Test_StepToString(t *testing.T) {
	step := base.Step{HasCoeff: true, Accumulate: true, CoeffCode: 0xB,
		ReadFromMemory: true, Offset: 1234, WriteAddr: 3, Ctrl: 0x0A}

	str := StepToString(step, 5, false)
	if !strings.Contains(str, "R3 += MEM[-1234] * CB") {
		t.Errorf("FAILED: Got '%s'", str)
	}

	str = StepToString(step, 5, true)
	if !strings.Contains(str, "ctrl=MCEN|B2") || !strings.HasSuffix(str, "\n") {
		t.Errorf("FAILED: Got '%s'", str)
	}
}
