package dsp

import (
	"fmt"

	"github.com/handegar/wcsemu/base"
)

/**
  A WCS register. The engine models the datapath in floating point, so
  the register is a plain float64 with the clamping the arithmetic unit
  applies after each load or accumulate.

  Methods return the register so operations can be chained, e.g.
  "r.Add(p).Clamp(RegisterLimit)".
*/

type Register struct {
	Value float64
}

func NewRegister(value float64) *Register {
	r := new(Register)
	r.Value = value
	return r
}

func (r *Register) Clear() *Register {
	r.Value = 0.0
	return r
}

func (r *Register) Set(value float64) *Register {
	r.Value = value
	return r
}

func (r *Register) Copy(reg *Register) *Register {
	r.Value = reg.Value
	return r
}

func (r *Register) Add(value float64) *Register {
	r.Value += value
	return r
}

func (r *Register) Mult(value float64) *Register {
	r.Value *= value
	return r
}

// Returns TRUE on second value if value were clamped
func (r *Register) Clamp(limit float64) (*Register, bool) {
	v, clamped := clamp(r.Value, limit)
	r.Value = v
	return r, clamped
}

func (r *Register) ToFloat64() float64 {
	return r.Value
}

func (r *Register) IsSigned() bool {
	return r.Value < 0
}

func (r *Register) EqualWithEpsilon(reg *Register, epsilon float64) bool {
	d := r.Value - reg.Value
	if d < 0 {
		d = -d
	}
	return d <= epsilon
}

func (r *Register) DebugPrint() {
	fmt.Printf("        value=%f, signed=%t\n", r.Value, r.IsSigned())
}

// The eight WCS registers. R2 receives the input sample, R1 is captured
// as output.
type RegisterFile [base.NumRegisters]Register

func (rf *RegisterFile) Clear() {
	for i := range rf {
		rf[i].Clear()
	}
}

// Loads (or accumulates) a multiplier product into register 'addr'.
// Returns whether the product or the register had to be clamped.
func (rf *RegisterFile) Store(addr uint8, product float64, accumulate bool) (bool, bool) {
	product, productClamped := clamp(product, ProductLimit)
	r := &rf[addr]
	if accumulate {
		r.Add(product)
	} else {
		r.Set(product)
	}
	_, registerClamped := r.Clamp(RegisterLimit)
	return productClamped, registerClamped
}
