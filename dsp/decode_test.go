package dsp

import (
	"testing"

	"github.com/handegar/wcsemu/base"
)

func Test_DecodeStep(t *testing.T) {
	t.Run("Injection step without coefficient", func(t *testing.T) {
		s := DecodeStep(0xF2FFDF5F)
		if s.WriteAddr != 2 || s.Ctrl != 0x1E || s.Offset != 0xDF5F {
			t.Errorf("FAILED: Got wai=%d ctrl=0x%X ofst=0x%X", s.WriteAddr, s.Ctrl, s.Offset)
		}
		if s.HasCoeff || s.IsNop {
			t.Errorf("FAILED: Expected a non-nop step without coefficient")
		}
		if s.CoeffCode != 0 || s.Accumulate || s.ReadAddr != 0 || !s.ReadFromMemory {
			t.Errorf("FAILED: Coefficient fields must have their idle values: %s", s)
		}
	})

	t.Run("Coefficient step", func(t *testing.T) {
		// 0xFA = 1111 1010: C8=0 C1=1 C2=0 C3=1 ACC0=1 RAD=3 RAI=1
		s := DecodeStep(0x50FA0738)
		if s.WriteAddr != 0 || s.Ctrl != 0x0A || s.Offset != 0x0738 {
			t.Errorf("FAILED: Got wai=%d ctrl=0x%X ofst=0x%X", s.WriteAddr, s.Ctrl, s.Offset)
		}
		if !s.HasCoeff {
			t.Fatalf("FAILED: Expected a coefficient step")
		}
		if s.CoeffCode != 5 {
			t.Errorf("FAILED: Got coefficient code %d, expected 5", s.CoeffCode)
		}
		if !s.Accumulate || s.ReadAddr != 3 || !s.ReadFromMemory {
			t.Errorf("FAILED: Got %s", s)
		}
	})

	t.Run("C8 is the most significant code bit", func(t *testing.T) {
		// 0x01: C8=1, everything else zero
		s := DecodeStep(0x00010000)
		if s.CoeffCode != 8 {
			t.Errorf("FAILED: Got coefficient code %d, expected 8", s.CoeffCode)
		}
		if s.ReadFromMemory || s.Accumulate {
			t.Errorf("FAILED: Got %s", s)
		}
	})

	t.Run("Nop", func(t *testing.T) {
		if !DecodeStep(0xFFFFFFFF).IsNop {
			t.Errorf("FAILED: 0xFFFFFFFF must be a nop")
		}
		if !DecodeStep(0xFFFF1234).IsNop {
			t.Errorf("FAILED: Offset does not matter for nops")
		}
		if DecodeStep(0xFEFFFFFF).IsNop {
			t.Errorf("FAILED: 0xFEFFFFFF writes R6 and is not a nop")
		}
	})
}

func Test_DecodeProgram(t *testing.T) {
	for p, prog := range Programs {
		steps := DecodeProgram(prog.Words[:])
		if len(steps) != base.StepsPerSample {
			t.Fatalf("FAILED: Program %d decoded into %d steps", p, len(steps))
		}
		for i, s := range steps {
			if s.Raw != prog.Words[i] {
				t.Errorf("FAILED: Program %d step %d lost its raw word", p, i)
			}
			if s.WriteAddr >= base.NumRegisters || s.ReadAddr > 3 || s.CoeffCode >= base.NumCoeffs {
				t.Errorf("FAILED: Program %d step %d out of range: %s", p, i, s)
			}
		}
	}
}

func Test_FindOutputSteps(t *testing.T) {
	expected := map[string][2]int{
		"Concert Hall":  {60, 124},
		"Plate":         {60, 124},
		"Chamber":       {61, 125},
		"Rich Plate":    {58, 125},
		"Rich Splits":   {60, 125},
		"Inverse Rooms": {60, 125},
	}

	for _, prog := range Programs {
		t.Run(prog.Name, func(t *testing.T) {
			l, r := FindOutputSteps(DecodeProgram(prog.Words[:]))
			exp := expected[prog.Name]
			if l != exp[0] || r != exp[1] {
				t.Errorf("FAILED: Got %d/%d, expected %d/%d", l, r, exp[0], exp[1])
			}
		})
	}

	t.Run("Fallback", func(t *testing.T) {
		steps := make([]base.Step, base.StepsPerSample)
		l, r := FindOutputSteps(steps)
		if l != base.DefaultOutputStepL || r != base.DefaultOutputStepR {
			t.Errorf("FAILED: Got %d/%d, expected defaults", l, r)
		}
	})
}

func Test_ProgramByName(t *testing.T) {
	cases := map[string]int{
		"Hall 2_dc.wav":      0,
		"Plate A.wav":        1,
		"Chamber":            2,
		"Rich Plate 3_dc":    3,
		"Rich Splits 1.wav":  4,
		"Inverse Rooms_dc":   5,
		"Inverse Room 2.wav": 5,
	}

	for name, expected := range cases {
		p, err := ProgramByName(name)
		if err != nil {
			t.Errorf("FAILED: '%s': %s", name, err)
			continue
		}
		if p != expected {
			t.Errorf("FAILED: '%s' got program %d, expected %d", name, p, expected)
		}
	}

	if _, err := ProgramByName("Spring 1.wav"); err == nil {
		t.Errorf("FAILED: Expected an error for an unknown name")
	}
}
