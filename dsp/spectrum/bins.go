package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-signal/dsp/buffer"
	"github.com/cwbudde/algo-vecmath"
)

// Magnitude returns |X[k]| for each complex bin.
//
// The parts are unpacked into pooled split scratch and handed to the SIMD
// kernels, so in steady state this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	sp := buffer.GetSplit(in)
	vecmath.Magnitude(out, sp.Re, sp.Im)
	buffer.PutSplit(sp)
	return out
}

// Power returns |X[k]|^2 for each complex bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	sp := buffer.GetSplit(in)
	vecmath.Power(out, sp.Re, sp.Im)
	buffer.PutSplit(sp)
	return out
}

// Phase returns arg(X[k]) for each complex bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = cmplx.Phase(v)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		switch d := phase[i] - phase[i-1]; {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}
