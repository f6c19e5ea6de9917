package dsp

import (
	"fmt"

	"github.com/handegar/wcsemu/base"
)

// Mutable engine state. Owned by a single Engine; not safe for
// concurrent use.
type State struct {
	IP        int // Current step (0..127)
	SampleNum int // Samples processed since the last reset
	Memory    *DelayMemory
	Registers RegisterFile
	LFO       SineOscillator

	DebugFlags *DebugFlags // Counters updated while running
}

func NewState(memorySize int, sampleRate float64) *State {
	s := new(State)
	s.Memory = NewDelayMemory(memorySize)
	s.LFO = NewSineOscillator(LFOFrequency, sampleRate)
	s.DebugFlags = new(DebugFlags)
	s.Reset()
	return s
}

func (s *State) Reset() {
	s.IP = 0
	s.SampleNum = 0
	s.Memory.Clear()
	s.Registers.Clear()
	s.LFO.Reset()
	s.DebugFlags.Reset()
}

func (s *State) GetRegister(regNo int) *Register {
	if regNo < 0 || regNo >= base.NumRegisters {
		panic(fmt.Sprintf("Invalid register number: %d", regNo))
	}
	return &s.Registers[regNo]
}

func (s *State) Copy(in *State) {
	s.IP = in.IP
	s.SampleNum = in.SampleNum
	s.Memory.Copy(in.Memory)
	s.Registers = in.Registers
	s.LFO = in.LFO
	*s.DebugFlags = *in.DebugFlags
}

func (s *State) Duplicate() *State {
	d := new(State)
	d.Memory = NewDelayMemory(s.Memory.Size())
	d.DebugFlags = new(DebugFlags)
	d.Copy(s)
	return d
}

// Registers above unity will saturate the converter
func (s *State) CheckForOverflows() []int {
	var ret []int
	for i := range s.Registers {
		v := s.Registers[i].Value
		if v > 1.0 || v < -1.0 {
			ret = append(ret, i)
		}
	}
	return ret
}

func (s *State) Print() {
	fmt.Printf("IP=%d, sample=%d, WritePtr=%d, LFO=%f\n",
		s.IP, s.SampleNum, s.Memory.WritePtr, s.LFO.GetSine())
	for i := range s.Registers {
		fmt.Printf("  %-7s = %f\n", base.RegisterSymbols[uint8(i)], s.Registers[i].Value)
	}
}
