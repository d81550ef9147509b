//nolint:funcorder
package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/discrete"
)

// Goertzel evaluates a single DFT term of complex input at an arbitrary
// frequency.
//
// The analyzer is stateful: every processed sample advances a second-order
// recurrence, and Coefficient, Power and Magnitude report the term over all
// samples seen since the last Reset. When the target frequency is k*rate/N
// and exactly N samples were processed, Coefficient equals bin k of the
// forward transform of that block.
//
// Complex input has no mirror image above rate/2, so any frequency in
// [0, rate) is accepted.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	omega      float64
	coeff      float64
	s0, s1     complex128
	n          int
}

// NewGoertzel creates an analyzer for frequency, which must lie in
// [0, sampleRate).
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if err := core.CheckSampleRate(sampleRate); err != nil {
		return nil, fmt.Errorf("goertzel: %w", err)
	}
	if err := checkFrequency(frequency, sampleRate); err != nil {
		return nil, err
	}
	g := &Goertzel{frequency: frequency, sampleRate: sampleRate}
	g.updateCoeff()
	return g, nil
}

func checkFrequency(frequency, sampleRate float64) error {
	if frequency < 0 || frequency >= sampleRate || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return fmt.Errorf("goertzel: %w: frequency must be in [0, %v): %v",
			core.ErrInvalidParameter, sampleRate, frequency)
	}
	return nil
}

func (g *Goertzel) updateCoeff() {
	g.omega = 2 * math.Pi * g.frequency / g.sampleRate
	g.coeff = 2 * math.Cos(g.omega)
}

// Reset clears the accumulated state.
func (g *Goertzel) Reset() {
	g.s0, g.s1 = 0, 0
	g.n = 0
}

// ProcessSample advances the recurrence by one sample.
func (g *Goertzel) ProcessSample(x complex128) {
	s := x + complex(g.coeff, 0)*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
	g.n++
}

// ProcessBlock advances the recurrence over a block of samples.
func (g *Goertzel) ProcessBlock(input []complex128) {
	s0, s1 := g.s0, g.s1
	c := complex(g.coeff, 0)
	for _, x := range input {
		s0, s1 = x+c*s0-s1, s0
	}
	g.s0, g.s1 = s0, s1
	g.n += len(input)
}

// Count returns the number of samples processed since the last Reset.
func (g *Goertzel) Count() int { return g.n }

// Coefficient returns sum_n x[n]*exp(-i*omega*n) over the processed samples.
func (g *Goertzel) Coefficient() complex128 {
	if g.n == 0 {
		return 0
	}
	y := g.s0 - cmplx.Rect(1, -g.omega)*g.s1
	return cmplx.Rect(1, -g.omega*float64(g.n-1)) * y
}

// Power returns the squared magnitude of the evaluated term.
func (g *Goertzel) Power() float64 {
	// The trailing phase factor has unit modulus and does not affect power.
	y := g.s0 - cmplx.Rect(1, -g.omega)*g.s1
	return real(y)*real(y) + imag(y)*imag(y)
}

// Magnitude returns the magnitude of the evaluated term.
func (g *Goertzel) Magnitude() float64 {
	return math.Sqrt(g.Power())
}

// PowerDB returns the power in decibels with a floor at -300 dB.
func (g *Goertzel) PowerDB() float64 {
	p := g.Power()
	if p <= 1e-30 {
		return -300
	}
	return core.LinearPowerToDB(p)
}

// SetFrequency updates the target frequency. Accumulated state is kept.
func (g *Goertzel) SetFrequency(frequency float64) error {
	if err := checkFrequency(frequency, g.sampleRate); err != nil {
		return err
	}
	g.frequency = frequency
	g.updateCoeff()
	return nil
}

// SetSampleRate updates the sample rate. The current frequency must remain
// below the new rate.
func (g *Goertzel) SetSampleRate(sampleRate float64) error {
	if err := core.CheckSampleRate(sampleRate); err != nil {
		return fmt.Errorf("goertzel: %w", err)
	}
	if err := checkFrequency(g.frequency, sampleRate); err != nil {
		return err
	}
	g.sampleRate = sampleRate
	g.updateCoeff()
	return nil
}

// Frequency returns the target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// SampleRate returns the sample rate.
func (g *Goertzel) SampleRate() float64 { return g.sampleRate }

// Evaluate returns the DFT term of x at frequency in one shot. The sample
// rate is taken from x.
func Evaluate(x *discrete.Signal, frequency float64) (complex128, error) {
	if x == nil {
		return 0, fmt.Errorf("goertzel: %w: nil signal", core.ErrInvalidParameter)
	}
	g, err := NewGoertzel(frequency, x.SampleRate())
	if err != nil {
		return 0, err
	}
	g.ProcessBlock(x.Samples())
	return g.Coefficient(), nil
}

// MultiGoertzel runs several analyzers over the same input.
type MultiGoertzel struct {
	analyzers []*Goertzel
}

// NewMultiGoertzel creates one analyzer per frequency.
func NewMultiGoertzel(frequencies []float64, sampleRate float64) (*MultiGoertzel, error) {
	analyzers := make([]*Goertzel, len(frequencies))
	for i, f := range frequencies {
		g, err := NewGoertzel(f, sampleRate)
		if err != nil {
			return nil, err
		}
		analyzers[i] = g
	}
	return &MultiGoertzel{analyzers: analyzers}, nil
}

// ProcessBlock feeds input to every analyzer.
func (m *MultiGoertzel) ProcessBlock(input []complex128) {
	for _, g := range m.analyzers {
		g.ProcessBlock(input)
	}
}

// Coefficients returns the evaluated term of every analyzer.
func (m *MultiGoertzel) Coefficients() []complex128 {
	out := make([]complex128, len(m.analyzers))
	for i, g := range m.analyzers {
		out[i] = g.Coefficient()
	}
	return out
}

// Powers returns the power of every analyzer.
func (m *MultiGoertzel) Powers() []float64 {
	out := make([]float64, len(m.analyzers))
	for i, g := range m.analyzers {
		out[i] = g.Power()
	}
	return out
}

// Reset clears every analyzer.
func (m *MultiGoertzel) Reset() {
	for _, g := range m.analyzers {
		g.Reset()
	}
}
