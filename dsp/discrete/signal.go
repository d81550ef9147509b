package discrete

import (
	"fmt"

	"github.com/cwbudde/algo-signal/dsp/core"
	"gonum.org/v1/gonum/cmplxs"
)

// Signal is an immutable sequence of complex samples taken at a fixed rate.
type Signal struct {
	samples    []complex128
	sampleRate float64
}

// New returns a Signal holding a copy of samples.
func New(samples []complex128, sampleRate float64) (*Signal, error) {
	if err := core.CheckSampleRate(sampleRate); err != nil {
		return nil, err
	}
	data := make([]complex128, len(samples))
	copy(data, samples)
	return wrap(data, sampleRate), nil
}

// FromReals returns a Signal whose samples have the given real parts and
// zero imaginary parts.
func FromReals(data []float64, sampleRate float64) (*Signal, error) {
	if err := core.CheckSampleRate(sampleRate); err != nil {
		return nil, err
	}
	samples := make([]complex128, len(data))
	for i, v := range data {
		samples[i] = complex(v, 0)
	}
	return wrap(samples, sampleRate), nil
}

// Zeros returns an all-zero Signal of n samples.
func Zeros(n int, sampleRate float64) (*Signal, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: signal length must be >= 0: %d", core.ErrInvalidParameter, n)
	}
	if err := core.CheckSampleRate(sampleRate); err != nil {
		return nil, err
	}
	return wrap(make([]complex128, n), sampleRate), nil
}

// wrap takes ownership of samples. The rate must already be validated.
func wrap(samples []complex128, sampleRate float64) *Signal {
	return &Signal{samples: samples, sampleRate: sampleRate}
}

// Len returns the number of samples.
func (s *Signal) Len() int { return len(s.samples) }

// SampleRate returns the number of samples per unit time.
func (s *Signal) SampleRate() float64 { return s.sampleRate }

// Interval returns the time between consecutive samples.
func (s *Signal) Interval() float64 { return 1 / s.sampleRate }

// Duration returns Len()/SampleRate().
func (s *Signal) Duration() float64 { return float64(len(s.samples)) / s.sampleRate }

// At returns sample i, or 0 when i is outside [0, Len()).
func (s *Signal) At(i int) complex128 {
	if i < 0 || i >= len(s.samples) {
		return 0
	}
	return s.samples[i]
}

// TimeAt returns the time of sample i.
func (s *Signal) TimeAt(i int) float64 { return float64(i) / s.sampleRate }

// Samples returns a copy of the samples.
func (s *Signal) Samples() []complex128 {
	out := make([]complex128, len(s.samples))
	copy(out, s.samples)
	return out
}

// Real returns the real parts of the samples.
func (s *Signal) Real() []float64 {
	out := make([]float64, len(s.samples))
	for i, c := range s.samples {
		out[i] = real(c)
	}
	return out
}

// Imag returns the imaginary parts of the samples.
func (s *Signal) Imag() []float64 {
	out := make([]float64, len(s.samples))
	for i, c := range s.samples {
		out[i] = imag(c)
	}
	return out
}

// Compatible reports core.ErrIncompatibleSignals unless s and o share
// length and sample rate.
func (s *Signal) Compatible(o *Signal) error {
	if o == nil {
		return fmt.Errorf("%w: nil operand", core.ErrIncompatibleSignals)
	}
	if len(s.samples) != len(o.samples) {
		return fmt.Errorf("%w: length %d != %d", core.ErrIncompatibleSignals, len(s.samples), len(o.samples))
	}
	if s.sampleRate != o.sampleRate {
		return fmt.Errorf("%w: sample rate %v != %v", core.ErrIncompatibleSignals, s.sampleRate, o.sampleRate)
	}
	return nil
}

// Equal reports whether s and o have the same sample rate and identical samples.
func (s *Signal) Equal(o *Signal) bool {
	if s.Compatible(o) != nil {
		return false
	}
	for i, v := range s.samples {
		if v != o.samples[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether s and o are compatible and every sample pair
// agrees within tol, absolutely or relatively.
func (s *Signal) ApproxEqual(o *Signal, tol float64) bool {
	if s.Compatible(o) != nil {
		return false
	}
	return cmplxs.EqualApprox(s.samples, o.samples, tol)
}
