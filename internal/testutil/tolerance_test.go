package testutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []complex128{1, 2, 3i}
	b := []complex128{1, 2, 3i + 0.1}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]complex128{1}, []complex128{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []complex128{1, 2i, 3}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestApproxComplex(t *testing.T) {
	a := []complex128{1, 1i}
	b := []complex128{1 + 1e-12, 1i}
	if diff := cmp.Diff(a, b, ApproxComplex(1e-9)); diff != "" {
		t.Fatalf("unexpected diff (-a +b):\n%s", diff)
	}
	if cmp.Equal(a, []complex128{1, 2i}, ApproxComplex(1e-9)) {
		t.Fatal("expected slices to differ")
	}
}
