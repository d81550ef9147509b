package spectrum

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// Spectrum is an immutable set of DFT bins together with the sample rate of
// the time-domain signal they describe.
type Spectrum struct {
	bins       []complex128
	sampleRate float64
}

// New returns a Spectrum holding a copy of bins.
func New(bins []complex128, sampleRate float64) (*Spectrum, error) {
	if err := core.CheckSampleRate(sampleRate); err != nil {
		return nil, err
	}
	data := make([]complex128, len(bins))
	copy(data, bins)
	return &Spectrum{bins: data, sampleRate: sampleRate}, nil
}

// Len returns the number of bins.
func (s *Spectrum) Len() int { return len(s.bins) }

// SampleRate returns the rate of the originating signal.
func (s *Spectrum) SampleRate() float64 { return s.sampleRate }

// Bins returns a copy of the complex bins.
func (s *Spectrum) Bins() []complex128 {
	out := make([]complex128, len(s.bins))
	copy(out, s.bins)
	return out
}

// At returns bin k, or 0 when k is out of range.
func (s *Spectrum) At(k int) complex128 {
	if k < 0 || k >= len(s.bins) {
		return 0
	}
	return s.bins[k]
}

// BinSpacing returns the frequency distance rate/N between adjacent bins.
// An empty spectrum has spacing 0.
func (s *Spectrum) BinSpacing() float64 {
	if len(s.bins) == 0 {
		return 0
	}
	return s.sampleRate / float64(len(s.bins))
}

// Frequency returns k*rate/N, the unsigned frequency of bin k.
func (s *Spectrum) Frequency(k int) float64 {
	return float64(k) * s.BinSpacing()
}

// SignedFrequency returns the frequency of bin k with bins above the
// midpoint wrapped to negative frequencies. For even N the bin at N/2 is
// reported as -rate/2.
func (s *Spectrum) SignedFrequency(k int) float64 {
	n := len(s.bins)
	if k > (n-1)/2 {
		k -= n
	}
	return float64(k) * s.BinSpacing()
}

// Frequencies returns Frequency(k) for every bin.
func (s *Spectrum) Frequencies() []float64 {
	out := make([]float64, len(s.bins))
	for k := range out {
		out[k] = s.Frequency(k)
	}
	return out
}

// SignedFrequencies returns SignedFrequency(k) for every bin.
func (s *Spectrum) SignedFrequencies() []float64 {
	out := make([]float64, len(s.bins))
	for k := range out {
		out[k] = s.SignedFrequency(k)
	}
	return out
}

// Magnitude returns |X[k]| for every bin.
func (s *Spectrum) Magnitude() []float64 { return Magnitude(s.bins) }

// Power returns |X[k]|^2 for every bin.
func (s *Spectrum) Power() []float64 { return Power(s.bins) }

// Phase returns arg(X[k]) in radians for every bin.
func (s *Spectrum) Phase() []float64 { return Phase(s.bins) }

// PeakBin returns the index of the bin with the largest magnitude, the
// lowest index on ties, or -1 for an empty spectrum.
func (s *Spectrum) PeakBin() int {
	peak := -1
	best := -1.0
	for k, v := range s.bins {
		if m := cmplx.Abs(v); m > best {
			best = m
			peak = k
		}
	}
	return peak
}

// Compatible reports whether o has the same length and sample rate as s.
func (s *Spectrum) Compatible(o *Spectrum) error {
	if o == nil {
		return fmt.Errorf("%w: nil operand", core.ErrIncompatibleSignals)
	}
	if len(s.bins) != len(o.bins) || s.sampleRate != o.sampleRate {
		return fmt.Errorf("%w: %d bins at %v vs %d bins at %v",
			core.ErrIncompatibleSignals, len(s.bins), s.sampleRate, len(o.bins), o.sampleRate)
	}
	return nil
}

// ApproxEqual reports whether o is compatible with s and every bin differs by
// at most tol (absolute or relative, see core.NearlyEqualComplex).
func (s *Spectrum) ApproxEqual(o *Spectrum, tol float64) bool {
	if s.Compatible(o) != nil {
		return false
	}
	for k := range s.bins {
		if !core.NearlyEqualComplex(s.bins[k], o.bins[k], tol) {
			return false
		}
	}
	return true
}
