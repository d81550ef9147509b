// Package time reports time-domain statistics of a discrete signal.
package time

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-signal/dsp/buffer"
	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/discrete"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain statistics of a complex signal. Magnitude-based
// fields use |x[i]|.
//
//nolint:revive
type Stats struct {
	Length            int
	Duration          float64    // Length / rate
	DC                complex128 // mean sample
	DC_dB             float64    // 20*log10(|DC|)
	Energy            float64    // sum of |x|^2
	Power             float64    // Energy / Duration, 0 when empty
	RMS               float64    // sqrt(Energy / Length)
	RMS_dB            float64
	Peak              float64 // max |x|
	PeakPos           int     // first index reaching Peak, -1 when empty
	Peak_dB           float64
	CrestFactor       float64 // Peak / RMS (linear)
	CrestFactor_dB    float64
	MeanMagnitude     float64
	MagnitudeVariance float64 // unbiased, 0 below two samples
	ZeroCrossings     int     // sign changes of the real part
}

// emptyStats returns a zero-valued Stats with -Inf for all dB fields.
func emptyStats() Stats {
	return Stats{
		PeakPos:        -1,
		DC_dB:          math.Inf(-1),
		RMS_dB:         math.Inf(-1),
		Peak_dB:        math.Inf(-1),
		CrestFactor_dB: math.Inf(-1),
	}
}

// Calculate computes all statistics of x. A nil or empty signal yields zero
// measures with -Inf dB values; unlike discrete.Signal.Power, Power is
// reported as 0 rather than failing.
func Calculate(x *discrete.Signal) Stats {
	if x == nil || x.Len() == 0 {
		return emptyStats()
	}

	samples := x.Samples()
	n := len(samples)
	nf := float64(n)
	mags := magnitudes(samples)

	s := Stats{
		Length:   n,
		Duration: x.Duration(),
		DC:       cmplxs.Sum(samples) / complex(nf, 0),
		Energy:   x.Energy(),
	}
	s.DC_dB = core.LinearToDB(cmplx.Abs(s.DC))
	if p, err := x.Power(); err == nil {
		s.Power = p
	}
	s.RMS = math.Sqrt(s.Energy / nf)
	s.RMS_dB = core.LinearToDB(s.RMS)

	s.PeakPos = floats.MaxIdx(mags)
	s.Peak = mags[s.PeakPos]
	s.Peak_dB = core.LinearToDB(s.Peak)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
		s.CrestFactor_dB = core.LinearToDB(s.CrestFactor)
	}

	if n > 1 {
		s.MeanMagnitude, s.MagnitudeVariance = stat.MeanVariance(mags, nil)
	} else {
		s.MeanMagnitude = mags[0]
	}
	s.ZeroCrossings = zeroCrossings(samples)
	return s
}

// RMS returns the root-mean-square magnitude of x, or 0 when x is empty.
func RMS(x *discrete.Signal) float64 {
	if x == nil || x.Len() == 0 {
		return 0
	}
	return math.Sqrt(x.Energy() / float64(x.Len()))
}

// DC returns the mean sample of x, or 0 when x is empty.
func DC(x *discrete.Signal) complex128 {
	if x == nil || x.Len() == 0 {
		return 0
	}
	return cmplxs.Sum(x.Samples()) / complex(float64(x.Len()), 0)
}

// Peak returns the largest sample magnitude of x, or 0 when x is empty.
func Peak(x *discrete.Signal) float64 {
	if x == nil || x.Len() == 0 {
		return 0
	}
	return floats.Max(magnitudes(x.Samples()))
}

// CrestFactor returns Peak / RMS. Returns 0 if RMS is zero.
func CrestFactor(x *discrete.Signal) float64 {
	r := RMS(x)
	if r == 0 {
		return 0
	}
	return Peak(x) / r
}

// ZeroCrossings returns the number of sign changes of the real part of x.
// A crossing is counted when consecutive real parts have opposite signs.
func ZeroCrossings(x *discrete.Signal) int {
	if x == nil {
		return 0
	}
	return zeroCrossings(x.Samples())
}

func zeroCrossings(samples []complex128) int {
	var count int
	for i := 1; i < len(samples); i++ {
		if real(samples[i-1])*real(samples[i]) < 0 {
			count++
		}
	}
	return count
}

func magnitudes(samples []complex128) []float64 {
	out := make([]float64, len(samples))
	sp := buffer.GetSplit(samples)
	vecmath.Magnitude(out, sp.Re, sp.Im)
	buffer.PutSplit(sp)
	return out
}
