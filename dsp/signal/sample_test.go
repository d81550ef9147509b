package signal

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/google/go-cmp/cmp"
)

func TestSampleImpulse(t *testing.T) {
	x, err := Sample(Impulse{}, 8, 1)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	want := []complex128{1, 0, 0, 0, 0, 0, 0, 0}
	if diff := cmp.Diff(want, x.Samples()); diff != "" {
		t.Fatalf("sampled impulse mismatch (-want +got):\n%s", diff)
	}
	if x.SampleRate() != 8 {
		t.Fatalf("SampleRate() = %v, want 8", x.SampleRate())
	}
}

func TestSampleStepEnergyPower(t *testing.T) {
	x, err := Sample(Step{}, 4, 1)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if diff := cmp.Diff([]complex128{1, 1, 1, 1}, x.Samples()); diff != "" {
		t.Fatalf("sampled step mismatch (-want +got):\n%s", diff)
	}
	if e := x.Energy(); e != 4 {
		t.Fatalf("Energy() = %v, want 4", e)
	}
	p, err := x.Power()
	if err != nil {
		t.Fatalf("Power() error = %v", err)
	}
	if p != 4 {
		t.Fatalf("Power() = %v, want 4", p)
	}
}

func TestSampleSinusoidCancelsWithNegation(t *testing.T) {
	x, err := Sample(Sinusoid{Frequency: 1, Amplitude: 1}, 8, 1)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if x.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", x.Len())
	}
	for i, v := range x.Samples() {
		want := math.Sin(2 * math.Pi * float64(i) / 8)
		if math.Abs(real(v)-want) > 1e-12 || imag(v) != 0 {
			t.Fatalf("x[%d] = %v, want %v", i, v, want)
		}
	}

	zero, err := x.Add(x.Scale(-1))
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	for i, v := range zero.Samples() {
		if v != 0 {
			t.Fatalf("x + (-x) [%d] = %v, want 0", i, v)
		}
	}
}

func TestSampleCount(t *testing.T) {
	tests := []struct {
		rate     float64
		duration float64
		want     int
	}{
		{rate: 8, duration: 1, want: 8},
		{rate: 8, duration: 0, want: 0},
		{rate: 10, duration: 0.35, want: 3},
		{rate: 100, duration: 0.29, want: 29},
		{rate: 44100, duration: 0.5, want: 22050},
		{rate: 0.5, duration: 7, want: 3},
	}
	for _, tt := range tests {
		x, err := Sample(Step{}, tt.rate, tt.duration)
		if err != nil {
			t.Fatalf("Sample(rate=%v, duration=%v) error = %v", tt.rate, tt.duration, err)
		}
		if x.Len() != tt.want {
			t.Fatalf("Sample(rate=%v, duration=%v) len = %d, want %d", tt.rate, tt.duration, x.Len(), tt.want)
		}
	}
}

func TestSampleEmptyPropagates(t *testing.T) {
	x, err := Sample(Sinusoid{Frequency: 1, Amplitude: 1}, 8, 0)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	if x.Len() != 0 || x.Energy() != 0 {
		t.Fatalf("Len/Energy = %d/%v, want 0/0", x.Len(), x.Energy())
	}
	if y := x.Integrate().Differentiate().Shift(2); y.Len() != 0 {
		t.Fatalf("Len() = %d after chained ops, want 0", y.Len())
	}
}

func TestSampleInvalid(t *testing.T) {
	tests := []struct {
		name     string
		s        Signal
		rate     float64
		duration float64
	}{
		{name: "zero rate", s: Step{}, rate: 0, duration: 1},
		{name: "negative rate", s: Step{}, rate: -8, duration: 1},
		{name: "nan rate", s: Step{}, rate: math.NaN(), duration: 1},
		{name: "negative duration", s: Step{}, rate: 8, duration: -1},
		{name: "inf duration", s: Step{}, rate: 8, duration: math.Inf(1)},
		{name: "nil signal", s: nil, rate: 8, duration: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Sample(tt.s, tt.rate, tt.duration); !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("Sample() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestSamplerDefaults(t *testing.T) {
	sp := NewSampler()
	if sp.Config().SampleRate != 48000 {
		t.Fatalf("SampleRate = %v, want 48000", sp.Config().SampleRate)
	}
	x, err := sp.SampleN(Step{}, 64)
	if err != nil {
		t.Fatalf("SampleN() error = %v", err)
	}
	if x.Len() != 64 || x.SampleRate() != 48000 {
		t.Fatalf("Len/SampleRate = %d/%v, want 64/48000", x.Len(), x.SampleRate())
	}
	if _, err := sp.SampleN(Step{}, -1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("SampleN(-1) error = %v, want ErrInvalidParameter", err)
	}
}

func TestSamplerSample(t *testing.T) {
	sp := NewSampler(core.WithSampleRate(1000))
	x, err := sp.Sample(Sinusoid{Frequency: 250, Amplitude: 1}, 0.005)
	if err != nil {
		t.Fatalf("Sample() error = %v", err)
	}
	want := []float64{0, 1, 0, -1, 0}
	got := x.Real()
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("x[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := sp.SampleN(Step{}, 1<<62); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("SampleN(1<<62) error = %v, want ErrInvalidParameter", err)
	}
	if _, err := sp.SampleN(Step{}, -1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("SampleN(-1) error = %v, want ErrInvalidParameter", err)
	}
	if _, err := sp.Sample(Step{}, 1e300); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("Sample(1e300) error = %v, want ErrInvalidParameter", err)
	}
}

func TestSampleCountSlack(t *testing.T) {
	tests := []struct {
		duration float64
		want     int
	}{
		{duration: 0.29, want: 29},
		{duration: 0.2999, want: 29},
		{duration: 1 - 1e-12, want: 100},
		{duration: 1 - 1e-6, want: 99},
	}
	for _, tt := range tests {
		x, err := Sample(Step{}, 100, tt.duration)
		if err != nil {
			t.Fatalf("Sample(%v) error = %v", tt.duration, err)
		}
		if x.Len() != tt.want {
			t.Fatalf("Sample(%v).Len() = %d, want %d", tt.duration, x.Len(), tt.want)
		}
	}
}

func TestSamplerSampleRange(t *testing.T) {
	sp := NewSampler(core.WithSampleRate(1))
	x, err := sp.SampleRange(Impulse{}, -1, 2)
	if err != nil {
		t.Fatalf("SampleRange() error = %v", err)
	}
	if diff := cmp.Diff([]complex128{0, 1, 0}, x.Samples()); diff != "" {
		t.Fatalf("SampleRange mismatch (-want +got):\n%s", diff)
	}

	if _, err := sp.SampleRange(Impulse{}, 2, 1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("SampleRange(end < start) error = %v, want ErrInvalidParameter", err)
	}
	if _, err := sp.SampleRange(Impulse{}, math.NaN(), 1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("SampleRange(NaN start) error = %v, want ErrInvalidParameter", err)
	}
}
