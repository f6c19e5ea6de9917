package dsp

import (
	"github.com/pkg/errors"

	"github.com/handegar/wcsemu/base"
)

// Largest coefficient magnitude the optimizer explores. The engine
// itself accepts any value.
const CoefficientLimit = 0.998

// One value per 4-bit coefficient code
type Coefficients [base.NumCoeffs]float64

func ValidateCoefficients(values []float64) (Coefficients, error) {
	var c Coefficients
	if len(values) != base.NumCoeffs {
		return c, errors.Wrapf(ErrCoefficientCount, "got %d values", len(values))
	}
	copy(c[:], values)
	return c, nil
}

// Hand-tuned starting point used by the CLI when no coefficient file is
// given
var DefaultCoefficients = Coefficients{
	0.45, 0.47, 0.50, 0.75,
	0.35, 0.50, 0.71, 0.55,
	0.45, 0.38, 0.73, 0.75,
	0.35, 0.15, 0.70, 0.39,
}
