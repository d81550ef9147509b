package discrete

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func TestShift(t *testing.T) {
	x := mustNew(t, []complex128{1 + 2i, 2 + 3i, 3 + 4i, 4 + 1i}, 1)

	tests := []struct {
		name string
		n    int
		want []complex128
	}{
		{name: "zero", n: 0, want: []complex128{1 + 2i, 2 + 3i, 3 + 4i, 4 + 1i}},
		{name: "delay", n: 1, want: []complex128{0, 1 + 2i, 2 + 3i, 3 + 4i}},
		{name: "advance", n: -1, want: []complex128{2 + 3i, 3 + 4i, 4 + 1i, 0}},
		{name: "delay past end", n: 4, want: []complex128{0, 0, 0, 0}},
		{name: "advance past start", n: -10, want: []complex128{0, 0, 0, 0}},
		{name: "min int", n: math.MinInt, want: []complex128{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := x.Shift(tt.n)
			if got.SampleRate() != x.SampleRate() {
				t.Fatalf("SampleRate() = %v, want %v", got.SampleRate(), x.SampleRate())
			}
			if diff := cmp.Diff(tt.want, got.Samples()); diff != "" {
				t.Fatalf("Shift(%d) mismatch (-want +got):\n%s", tt.n, diff)
			}
		})
	}
}

func TestShiftRoundTripBoundaryFree(t *testing.T) {
	data := append(testutil.DeterministicNoise(3, 1, 12), make([]complex128, 4)...)
	x := mustNew(t, data, 100)

	for _, n := range []int{1, 2, 4} {
		if got := x.Shift(n).Shift(-n); !got.Equal(x) {
			t.Fatalf("Shift(%d).Shift(%d) != x", n, -n)
		}
	}
}

func TestScale(t *testing.T) {
	x := mustNew(t, []complex128{1, 1i, -2}, 2)
	got := x.Scale(2i)
	want := []complex128{2i, -2, -4i}
	if diff := cmp.Diff(want, got.Samples()); diff != "" {
		t.Fatalf("Scale mismatch (-want +got):\n%s", diff)
	}
	if x.At(0) != 1 {
		t.Fatal("Scale mutated its input")
	}
}

func TestAddMultiplyCommutative(t *testing.T) {
	x := mustNew(t, testutil.DeterministicNoise(1, 1, 32), 48000)
	y := mustNew(t, testutil.DeterministicNoise(2, 1, 32), 48000)

	xy, err := x.Add(y)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	yx, err := y.Add(x)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !xy.Equal(yx) {
		t.Fatal("Add is not commutative")
	}

	pxy, err := x.Multiply(y)
	if err != nil {
		t.Fatalf("Multiply() error = %v", err)
	}
	pyx, err := y.Multiply(x)
	if err != nil {
		t.Fatalf("Multiply() error = %v", err)
	}
	if !pxy.Equal(pyx) {
		t.Fatal("Multiply is not commutative")
	}
}

func TestMultiplyValues(t *testing.T) {
	x := mustNew(t, []complex128{3 + 4i, 2}, 1)
	y := mustNew(t, []complex128{1 + 2i, -1i}, 1)
	got, err := x.Multiply(y)
	if err != nil {
		t.Fatalf("Multiply() error = %v", err)
	}
	want := []complex128{-5 + 10i, -2i}
	if diff := cmp.Diff(want, got.Samples()); diff != "" {
		t.Fatalf("Multiply mismatch (-want +got):\n%s", diff)
	}
}

func TestSubtract(t *testing.T) {
	x := mustNew(t, []complex128{3 + 4i, 2}, 1)
	got, err := x.Subtract(x)
	if err != nil {
		t.Fatalf("Subtract() error = %v", err)
	}
	for i, v := range got.Samples() {
		if v != 0 {
			t.Fatalf("x-x [%d] = %v, want 0", i, v)
		}
	}
}

func TestBinaryIncompatible(t *testing.T) {
	x := mustNew(t, make([]complex128, 4), 8)
	short := mustNew(t, make([]complex128, 3), 8)
	other := mustNew(t, make([]complex128, 4), 16)

	ops := map[string]func(*Signal) (*Signal, error){
		"add":      x.Add,
		"subtract": x.Subtract,
		"multiply": x.Multiply,
	}
	for name, op := range ops {
		for _, o := range []*Signal{short, other} {
			if _, err := op(o); !errors.Is(err, core.ErrIncompatibleSignals) {
				t.Fatalf("%s error = %v, want ErrIncompatibleSignals", name, err)
			}
		}
	}
}

func TestIntegrate(t *testing.T) {
	x := mustNew(t, []complex128{1 + 2i, 2 - 4i, 3 - 6i, 4 + 8i}, 1)
	got := x.Integrate()
	want := []complex128{1 + 2i, 3 - 2i, 6 - 8i, 10}
	if diff := cmp.Diff(want, got.Samples()); diff != "" {
		t.Fatalf("Integrate mismatch (-want +got):\n%s", diff)
	}

	half := mustNew(t, []complex128{1, 1, 1, 1}, 4).Integrate()
	if diff := cmp.Diff([]complex128{0.25, 0.5, 0.75, 1}, half.Samples()); diff != "" {
		t.Fatalf("Integrate at rate 4 mismatch (-want +got):\n%s", diff)
	}
}

func TestDifferentiate(t *testing.T) {
	x := mustNew(t, []complex128{1 + 2i, 2 - 4i, 3 - 6i, 4 + 8i}, 1)
	got := x.Differentiate()
	want := []complex128{1 + 2i, 1 - 6i, 1 - 2i, 1 + 14i}
	if diff := cmp.Diff(want, got.Samples()); diff != "" {
		t.Fatalf("Differentiate mismatch (-want +got):\n%s", diff)
	}
}

func TestDifferentiateBoundaryTreatsPriorSampleAsZero(t *testing.T) {
	x := mustNew(t, []complex128{3, 3, 3}, 2)
	got := x.Differentiate().Samples()
	if got[0] != 6 {
		t.Fatalf("out[0] = %v, want x[0]*rate = 6", got[0])
	}
	if got[1] != 0 || got[2] != 0 {
		t.Fatalf("constant tail derivative = %v, want zeros", got[1:])
	}
}

func TestIntegrateUndoesDifferentiate(t *testing.T) {
	x := mustNew(t, testutil.DeterministicNoise(7, 1, 256), 48000)
	got := x.Differentiate().Integrate()
	testutil.RequireComplexNearlyEqual(t, got.Samples(), x.Samples(), 1e-9)
}

func TestEnergyPower(t *testing.T) {
	x := mustNew(t, []complex128{1 + 1i, 2 - 1i, 1 - 1i, 1 - 2i}, 1)
	if e := x.Energy(); math.Abs(e-14) > 1e-12 {
		t.Fatalf("Energy() = %v, want 14", e)
	}
	p, err := x.Power()
	if err != nil {
		t.Fatalf("Power() error = %v", err)
	}
	if math.Abs(p-3.5) > 1e-12 {
		t.Fatalf("Power() = %v, want 3.5", p)
	}

	fast := mustNew(t, x.Samples(), 4)
	p, err = fast.Power()
	if err != nil {
		t.Fatalf("Power() error = %v", err)
	}
	if math.Abs(p-14) > 1e-12 {
		t.Fatalf("Power() at rate 4 = %v, want 14", p)
	}
}

func TestEnergyNonNegative(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		x := mustNew(t, testutil.DeterministicNoise(seed, 3, 17), 10)
		if e := x.Energy(); e < 0 {
			t.Fatalf("seed %d: Energy() = %v, want >= 0", seed, e)
		}
	}
}

func TestEmptySignal(t *testing.T) {
	x, err := Zeros(0, 8)
	if err != nil {
		t.Fatalf("Zeros() error = %v", err)
	}
	if x.Energy() != 0 {
		t.Fatalf("Energy() = %v, want 0", x.Energy())
	}
	if _, err := x.Power(); !errors.Is(err, core.ErrDivisionByZero) {
		t.Fatalf("Power() error = %v, want ErrDivisionByZero", err)
	}
	for name, got := range map[string]*Signal{
		"shift":         x.Shift(3),
		"scale":         x.Scale(2),
		"integrate":     x.Integrate(),
		"differentiate": x.Differentiate(),
	} {
		if got.Len() != 0 || got.SampleRate() != 8 {
			t.Fatalf("%s: Len/SampleRate = %d/%v, want 0/8", name, got.Len(), got.SampleRate())
		}
	}
	sum, err := x.Add(x)
	if err != nil || sum.Len() != 0 {
		t.Fatalf("Add(empty) = %v, %v", sum, err)
	}
}

func TestAddNoise(t *testing.T) {
	x, err := Zeros(4096, 1000)
	if err != nil {
		t.Fatalf("Zeros() error = %v", err)
	}

	a, err := x.AddNoise(0.5, 42)
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}
	b, err := x.AddNoise(0.5, 42)
	if err != nil {
		t.Fatalf("AddNoise() error = %v", err)
	}
	if !a.Equal(b) {
		t.Fatal("AddNoise not deterministic for equal seeds")
	}

	variance := a.Energy() / float64(a.Len())
	if math.Abs(variance-0.25) > 0.03 {
		t.Fatalf("noise variance = %v, want ~0.25", variance)
	}
	for i, v := range a.Imag() {
		if v != 0 {
			t.Fatalf("Imag()[%d] = %v, want 0", i, v)
		}
	}

	if _, err := x.AddNoise(-1, 1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("AddNoise(-1) error = %v, want ErrInvalidParameter", err)
	}
}
