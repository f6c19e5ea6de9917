package dsp

import (
	"math"

	"github.com/handegar/wcsemu/base"
)

// Circular delay memory. The write pointer advances once per sample;
// taps are addressed relative to it, looking back in time.
type DelayMemory struct {
	Words    []float64
	WritePtr int
}

// Number of words needed to hold the full hardware delay range at the
// given sample rate.
func MemorySize(sampleRate float64) int {
	ratio := sampleRate / base.OriginalSampleRate
	return int(math.Round(base.MemoryWords*ratio)) + base.MemoryMargin
}

func NewDelayMemory(size int) *DelayMemory {
	m := new(DelayMemory)
	m.Words = make([]float64, size)
	return m
}

func (m *DelayMemory) Size() int {
	return len(m.Words)
}

// Position of a tap 'offset' samples behind the write pointer. The
// offset must already be clamped to [0, Size()-1].
func (m *DelayMemory) Index(offset int) int {
	idx := m.WritePtr - offset
	if idx < 0 {
		idx += len(m.Words)
	}
	return idx
}

func (m *DelayMemory) Read(idx int) float64 {
	return m.Words[idx]
}

func (m *DelayMemory) Write(idx int, value float64) {
	m.Words[idx] = value
}

func (m *DelayMemory) Advance() {
	m.WritePtr += 1
	if m.WritePtr >= len(m.Words) {
		m.WritePtr = 0
	}
}

func (m *DelayMemory) Fill(value float64) {
	for i := range m.Words {
		m.Words[i] = value
	}
}

func (m *DelayMemory) Clear() {
	m.Fill(0.0)
	m.WritePtr = 0
}

func (m *DelayMemory) Copy(in *DelayMemory) {
	if len(m.Words) != len(in.Words) {
		m.Words = make([]float64, len(in.Words))
	}
	copy(m.Words, in.Words)
	m.WritePtr = in.WritePtr
}

// Number of non-zero words in [from, to)
func (m *DelayMemory) CountNonZero(from int, to int) int {
	n := 0
	for i := from; i < to && i < len(m.Words); i++ {
		if m.Words[i] != 0.0 {
			n += 1
		}
	}
	return n
}
