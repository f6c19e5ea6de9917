package dsp

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

const (
	SweepStartHz         = 20.0
	SweepMaxEndHz        = 20000.0
	SweepFadeSeconds     = 0.01
	DefaultSweepSeconds  = 4.0
	DefaultSweepLevel    = 0.01
	deconvolutionEpsilon = 1e-8
)

func sweepEndHz(sampleRate float64) float64 {
	return math.Min(SweepMaxEndHz, 0.45*sampleRate)
}

/**
  Exponential sine sweep from 20 Hz to min(20 kHz, 0.45*sr):

    x(t) = level * sin(2*pi*f1*T/R * (exp(t*R/T) - 1)),  R = ln(f2/f1)

  The last 10 ms are faded out with a raised cosine. Returns nil if the
  sample rate is too low to sweep upwards from 20 Hz.
*/
func GenerateSweep(sampleRate float64, seconds float64, level float64) []float64 {
	n := numSamples(seconds, sampleRate)
	f1 := SweepStartHz
	f2 := sweepEndHz(sampleRate)
	if n == 0 || f2 <= f1 {
		return nil
	}

	T := float64(n) / sampleRate
	R := math.Log(f2 / f1)
	k := 2.0 * math.Pi * f1 * T / R

	out := make([]float64, n)
	for i := range out {
		t := float64(i) / sampleRate
		out[i] = level * math.Sin(k*(math.Exp(t*R/T)-1.0))
	}

	fade := int(SweepFadeSeconds * sampleRate)
	if fade > n {
		fade = n
	}
	for j := 0; j < fade; j++ {
		out[n-fade+j] *= 0.5 * (1.0 + math.Cos(math.Pi*float64(j)/float64(fade)))
	}
	return out
}

func zeroPadded(x []float64, size int) []float64 {
	ret := make([]float64, size)
	copy(ret, x)
	return ret
}

/**
  Recovers the first 'n' samples of the impulse response h from
  recorded = h * sweep by regularised spectral division:

    H = Y * conj(X) / (|X|^2 + eps),  eps = 1e-8 * max|X|^2
*/
func Deconvolve(recorded []float64, sweep []float64, n int) []float64 {
	out := make([]float64, n)
	size := nextPow2(len(recorded) + len(sweep))

	X := fft.FFTReal(zeroPadded(sweep, size))
	Y := fft.FFTReal(zeroPadded(recorded, size))

	maxPower := 0.0
	for _, v := range X {
		p := real(v)*real(v) + imag(v)*imag(v)
		if p > maxPower {
			maxPower = p
		}
	}
	if maxPower == 0.0 {
		return out
	}
	eps := deconvolutionEpsilon * maxPower

	H := make([]complex128, size)
	for i := range H {
		p := real(X[i])*real(X[i]) + imag(X[i])*imag(X[i])
		H[i] = Y[i] * cmplx.Conj(X[i]) / complex(p+eps, 0)
	}

	h := fft.IFFT(H)
	for i := 0; i < n && i < size; i++ {
		out[i] = real(h[i])
	}
	return out
}

// Linear convolution through the FFT
func Convolve(a []float64, b []float64) []float64 {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	n := len(a) + len(b) - 1
	size := nextPow2(n)

	A := fft.FFTReal(zeroPadded(a, size))
	B := fft.FFTReal(zeroPadded(b, size))
	for i := range A {
		A[i] *= B[i]
	}

	c := fft.IFFT(A)
	out := make([]float64, n)
	for i := range out {
		out[i] = real(c[i])
	}
	return out
}
