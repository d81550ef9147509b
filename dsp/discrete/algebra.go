package discrete

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-signal/dsp/buffer"
	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
)

// Shift delays the signal by n samples (advances it for n < 0).
// Positions with no source sample are zero; length and rate are preserved.
func (s *Signal) Shift(n int) *Signal {
	size := len(s.samples)
	out := make([]complex128, size)
	switch {
	case n >= size || n <= -size:
	case n >= 0:
		copy(out[n:], s.samples[:size-n])
	default:
		copy(out, s.samples[-n:])
	}
	return wrap(out, s.sampleRate)
}

// Scale multiplies every sample by k.
func (s *Signal) Scale(k complex128) *Signal {
	out := make([]complex128, len(s.samples))
	cmplxs.ScaleTo(out, k, s.samples)
	return wrap(out, s.sampleRate)
}

// Add returns the elementwise sum of s and o.
func (s *Signal) Add(o *Signal) (*Signal, error) {
	if err := s.Compatible(o); err != nil {
		return nil, fmt.Errorf("add: %w", err)
	}
	out := make([]complex128, len(s.samples))
	cmplxs.AddTo(out, s.samples, o.samples)
	return wrap(out, s.sampleRate), nil
}

// Subtract returns the elementwise difference s - o.
func (s *Signal) Subtract(o *Signal) (*Signal, error) {
	if err := s.Compatible(o); err != nil {
		return nil, fmt.Errorf("subtract: %w", err)
	}
	out := make([]complex128, len(s.samples))
	cmplxs.SubTo(out, s.samples, o.samples)
	return wrap(out, s.sampleRate), nil
}

// Multiply returns the elementwise product of s and o.
func (s *Signal) Multiply(o *Signal) (*Signal, error) {
	if err := s.Compatible(o); err != nil {
		return nil, fmt.Errorf("multiply: %w", err)
	}
	out := make([]complex128, len(s.samples))
	cmplxs.MulTo(out, s.samples, o.samples)
	return wrap(out, s.sampleRate), nil
}

// Integrate returns the running sum of the samples scaled by the sample
// interval: out[i] = sum(x[0..i]) / rate.
func (s *Signal) Integrate() *Signal {
	out := make([]complex128, len(s.samples))
	cmplxs.CumSum(out, s.samples)
	cmplxs.Scale(complex(1/s.sampleRate, 0), out)
	return wrap(out, s.sampleRate)
}

// Differentiate returns the first difference scaled by the sample rate:
// out[i] = (x[i] - x[i-1]) * rate, where the sample before index 0 is zero.
// Integrate undoes it exactly under that convention.
func (s *Signal) Differentiate() *Signal {
	size := len(s.samples)
	out := make([]complex128, size)
	if size == 0 {
		return wrap(out, s.sampleRate)
	}
	out[0] = s.samples[0]
	cmplxs.SubTo(out[1:], s.samples[1:], s.samples[:size-1])
	cmplxs.Scale(complex(s.sampleRate, 0), out)
	return wrap(out, s.sampleRate)
}

// Energy returns the sum of squared sample magnitudes. It is 0 for an empty
// signal.
func (s *Signal) Energy() float64 {
	if len(s.samples) == 0 {
		return 0
	}
	sp := buffer.GetSplit(s.samples)
	defer buffer.PutSplit(sp)

	pow := make([]float64, len(s.samples))
	vecmath.Power(pow, sp.Re, sp.Im)
	return floats.Sum(pow)
}

// Power returns Energy divided by Duration. An empty signal has no duration
// and yields core.ErrDivisionByZero.
func (s *Signal) Power() (float64, error) {
	if len(s.samples) == 0 {
		return 0, fmt.Errorf("power: %w: signal has zero duration", core.ErrDivisionByZero)
	}
	return s.Energy() * s.sampleRate / float64(len(s.samples)), nil
}

// AddNoise returns s plus zero-mean Gaussian noise with standard deviation
// std on the real part. The same seed always yields the same noise.
func (s *Signal) AddNoise(std float64, seed int64) (*Signal, error) {
	if std < 0 || math.IsNaN(std) || math.IsInf(std, 0) {
		return nil, fmt.Errorf("%w: noise std must be >= 0: %v", core.ErrInvalidParameter, std)
	}
	out := make([]complex128, len(s.samples))
	rng := rand.New(rand.NewSource(seed))
	for i, v := range s.samples {
		out[i] = v + complex(std*rng.NormFloat64(), 0)
	}
	return wrap(out, s.sampleRate), nil
}
