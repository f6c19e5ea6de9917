package dsp

import (
	"github.com/handegar/wcsemu/base"
)

/**
  Executes one decoded step. 'rp' is the already resolved memory
  position of the step's tap.

  1. Multiplier: if the step uses a coefficient, the input (memory at rp
     or register RAD) is scaled by the selected coefficient, clamped to
     +-ProductLimit and loaded or accumulated into WAI, which is clamped
     to +-RegisterLimit.
  2. Memory: a write stores WAI (through the limiter, then damping) at
     rp. A coefficient-less step without a write loads the tap into WAI.
*/
func applyStep(step *base.Step, rp int, coeffs *Coefficients, damping float64, state *State) {
	regs := &state.Registers

	if step.HasCoeff {
		applyMultiplier(step, rp, coeffs, state)
	}

	if step.WritesMemory() {
		v, limited := softLimit(regs[step.WriteAddr].Value)
		if limited {
			state.DebugFlags.MemoryLimiterCount += 1
		}
		state.Memory.Write(rp, v*damping)
		state.DebugFlags.MemoryWriteCount += 1
	} else if step.ReadsTap() {
		regs[step.WriteAddr].Set(state.Memory.Read(rp))
		state.DebugFlags.TapReadCount += 1
	}
}

func applyMultiplier(step *base.Step, rp int, coeffs *Coefficients, state *State) {
	var x float64
	if step.ReadFromMemory {
		x = state.Memory.Read(rp)
	} else {
		x = state.Registers[step.ReadAddr].Value
	}

	productClamped, registerClamped := state.Registers.Store(step.WriteAddr,
		x*coeffs[step.CoeffCode], step.Accumulate)
	if productClamped {
		state.DebugFlags.ProductClampCount += 1
	}
	if registerClamped {
		state.DebugFlags.RegisterClampCount += 1
	}
}
