package fourier

import (
	"math"
	"math/bits"

	"golang.org/x/sync/errgroup"
)

// radix2 is a precomputed in-place Cooley-Tukey transform for a power-of-two
// length. It is read-only after construction.
type radix2 struct {
	n         int
	twiddle   []complex128 // exp(-2*pi*i*k/n) for k in [0, n/2)
	rev       []int
	workers   int
	threshold int
}

func newRadix2(n, workers, threshold int) *radix2 {
	r := &radix2{
		n:         n,
		twiddle:   make([]complex128, n/2),
		rev:       make([]int, n),
		workers:   workers,
		threshold: threshold,
	}
	for k := range r.twiddle {
		a := -2 * math.Pi * float64(k) / float64(n)
		r.twiddle[k] = complex(math.Cos(a), math.Sin(a))
	}
	shift := bits.UintSize - bits.Len(uint(n-1))
	if n > 1 {
		for i := range r.rev {
			r.rev[i] = int(bits.Reverse(uint(i)) >> shift)
		}
	}
	return r
}

// transform computes the forward DFT of x in place.
func (r *radix2) transform(x []complex128) {
	for i, j := range r.rev {
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}
	half := r.n / 2
	if r.workers <= 1 || r.n < r.threshold || half < r.workers {
		for size := 2; size <= r.n; size <<= 1 {
			r.stage(x, size, 0, half)
		}
		return
	}

	chunk := (half + r.workers - 1) / r.workers
	for size := 2; size <= r.n; size <<= 1 {
		var g errgroup.Group
		for lo := 0; lo < half; lo += chunk {
			hi := min(lo+chunk, half)
			g.Go(func() error {
				r.stage(x, size, lo, hi)
				return nil
			})
		}
		// Stages depend on each other, so each one is joined before the next.
		_ = g.Wait()
	}
}

// stage runs butterflies [lo, hi) of the stage combining blocks of size.
// Butterfly b touches indices i and i+size/2 only, so disjoint ranges never
// overlap.
func (r *radix2) stage(x []complex128, size, lo, hi int) {
	h := size / 2
	step := r.n / size
	for b := lo; b < hi; b++ {
		j := b % h
		i := (b/h)*size + j
		t := r.twiddle[j*step] * x[i+h]
		x[i], x[i+h] = x[i]+t, x[i]-t
	}
}
