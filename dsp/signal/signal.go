package signal

import (
	"math"
	"math/cmplx"
)

// Signal is a continuous-time signal. At must be pure: the same t always
// yields the same value and no call observes another.
type Signal interface {
	At(t float64) complex128
}

// Func adapts a pure function to the Signal interface.
type Func func(t float64) complex128

// At calls f(t).
func (f Func) At(t float64) complex128 { return f(t) }

// Impulse is 1 at t == 0 and 0 elsewhere.
type Impulse struct{}

// At evaluates the impulse.
func (Impulse) At(t float64) complex128 {
	if t == 0 {
		return 1
	}
	return 0
}

// Step is 0 for t < 0 and 1 for t >= 0.
type Step struct{}

// At evaluates the step.
func (Step) At(t float64) complex128 {
	if t >= 0 {
		return 1
	}
	return 0
}

// Sinusoid is Amplitude * sin(2*pi*Frequency*t + Phase).
type Sinusoid struct {
	Frequency float64
	Amplitude float64
	Phase     float64
}

// At evaluates the sinusoid.
func (s Sinusoid) At(t float64) complex128 {
	return complex(s.Amplitude*math.Sin(2*math.Pi*s.Frequency*t+s.Phase), 0)
}

// Cosinusoid is Amplitude * cos(2*pi*Frequency*t + Phase).
type Cosinusoid struct {
	Frequency float64
	Amplitude float64
	Phase     float64
}

// At evaluates the cosinusoid.
func (c Cosinusoid) At(t float64) complex128 {
	return complex(c.Amplitude*math.Cos(2*math.Pi*c.Frequency*t+c.Phase), 0)
}

// Phasor is the complex exponential Amplitude * exp(i*(2*pi*Frequency*t + Phase)).
// Its spectrum has a single line at +Frequency.
type Phasor struct {
	Frequency float64
	Amplitude float64
	Phase     float64
}

// At evaluates the phasor.
func (p Phasor) At(t float64) complex128 {
	return cmplx.Rect(p.Amplitude, 2*math.Pi*p.Frequency*t+p.Phase)
}

// Triangle is a triangle wave in [-Amplitude, Amplitude] that starts at 0
// and rises, like a sine of the same frequency.
type Triangle struct {
	Frequency float64
	Amplitude float64
}

// At evaluates the triangle wave.
func (w Triangle) At(t float64) complex128 {
	return complex(w.Amplitude*(4*math.Abs(frac(w.Frequency*t-0.25)-0.5)-1), 0)
}

// Square is +Amplitude for the first half of each period and -Amplitude for
// the second.
type Square struct {
	Frequency float64
	Amplitude float64
}

// At evaluates the square wave.
func (w Square) At(t float64) complex128 {
	if frac(w.Frequency*t) < 0.5 {
		return complex(w.Amplitude, 0)
	}
	return complex(-w.Amplitude, 0)
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}

// Scale multiplies Signal by Factor.
type Scale struct {
	Signal Signal
	Factor complex128
}

// At evaluates Signal(t) * Factor.
func (s Scale) At(t float64) complex128 { return s.Signal.At(t) * s.Factor }

// Sum adds two signals.
type Sum struct {
	Left, Right Signal
}

// At evaluates Left(t) + Right(t).
func (s Sum) At(t float64) complex128 { return s.Left.At(t) + s.Right.At(t) }

// Product multiplies two signals pointwise, e.g. a message and its carrier.
type Product struct {
	Left, Right Signal
}

// At evaluates Left(t) * Right(t).
func (p Product) At(t float64) complex128 { return p.Left.At(t) * p.Right.At(t) }

// Delay shifts Signal later in time by Offset.
type Delay struct {
	Signal Signal
	Offset float64
}

// At evaluates Signal(t - Offset).
func (d Delay) At(t float64) complex128 { return d.Signal.At(t - d.Offset) }

// Add returns the sum of a and b.
func Add(a, b Signal) Signal { return Sum{Left: a, Right: b} }

// ScaleBy returns s scaled by k.
func ScaleBy(s Signal, k complex128) Signal { return Scale{Signal: s, Factor: k} }

// Modulate returns s multiplied by carrier.
func Modulate(s, carrier Signal) Signal { return Product{Left: s, Right: carrier} }
