package disasm

import (
	"fmt"
	"strings"

	"github.com/handegar/wcsemu/base"
	"github.com/handegar/wcsemu/settings"
)

// Classifies a step by what it does to registers and memory
func StepKind(step base.Step) string {
	switch {
	case step.IsNop:
		return "NOP"
	case step.HasCoeff && step.WritesMemory():
		if step.Accumulate {
			return "MACW"
		}
		return "MULW"
	case step.HasCoeff && step.Accumulate:
		return "MAC"
	case step.HasCoeff:
		return "MUL"
	case step.Ctrl == base.CTRL_IO:
		return "IO"
	case step.WritesMemory():
		return "WR"
	case step.ReadsTap():
		return "RD"
	}
	return "IDLE"
}

func PrintCodeListing(steps []base.Step, outL int, outR int) {
	fmt.Printf("\n;;\n;; Dissassembly (%d steps)\n;;\n", len(steps))
	for pos, step := range steps {
		if pos == 0 {
			fmt.Printf("left:\n")
		} else if pos == base.StepsPerHalf {
			fmt.Printf("right:\n")
		}

		line := StepToString(step, pos, true)
		if pos == outL || pos == outR {
			line = strings.TrimRight(line, "\n") + " <- OUT\n"
		}
		fmt.Print(line)
	}
	fmt.Println()
}

func memoryOperand(step base.Step) string {
	return fmt.Sprintf("MEM[-%d]", step.Offset)
}

func multiplierInput(step base.Step) string {
	if step.ReadFromMemory {
		return memoryOperand(step)
	}
	return base.RegisterSymbols[step.ReadAddr]
}

func register(addr uint8) string {
	return base.RegisterSymbols[addr]
}

func StepToString(step base.Step, pos int, showParamData bool) string {
	ret := "  "

	kind := StepKind(step)
	switch kind {
	case "NOP":
		ret += "NOP"
	case "MAC":
		ret += fmt.Sprintf("MAC\t %s += %s * C%X", register(step.WriteAddr),
			multiplierInput(step), step.CoeffCode)
	case "MUL":
		ret += fmt.Sprintf("MUL\t %s = %s * C%X", register(step.WriteAddr),
			multiplierInput(step), step.CoeffCode)
	case "MACW":
		ret += fmt.Sprintf("MACW\t %s += %s * C%X -> %s", register(step.WriteAddr),
			multiplierInput(step), step.CoeffCode, memoryOperand(step))
	case "MULW":
		ret += fmt.Sprintf("MULW\t %s = %s * C%X -> %s", register(step.WriteAddr),
			multiplierInput(step), step.CoeffCode, memoryOperand(step))
	case "IO":
		ret += fmt.Sprintf("IO\t %s -> %s", register(step.WriteAddr), memoryOperand(step))
	case "WR":
		ret += fmt.Sprintf("WR\t %s -> %s", register(step.WriteAddr), memoryOperand(step))
	case "RD":
		ret += fmt.Sprintf("RD\t %s -> %s", memoryOperand(step), register(step.WriteAddr))
	default:
		ret += fmt.Sprintf("IDLE\t %s", register(step.WriteAddr))
	}

	if showParamData {
		diff := 40 - len(ret)
		if diff > 1 {
			ret += strings.Repeat(" ", diff)
		}

		ret += fmt.Sprintf("\t;; %3d ctrl=%s", pos, base.CtrlToString(step.Ctrl))
		if settings.PrintDebug {
			ret += fmt.Sprintf(" [0b%032b]", step.Raw)
		} else {
			ret += fmt.Sprintf(" [0x%08X]", step.Raw)
		}
		ret += "\n"
	}

	return ret
}
