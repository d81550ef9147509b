package fourier

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-signal/dsp/buffer"
	"github.com/cwbudde/algo-signal/dsp/core"
)

// bluestein evaluates an arbitrary-length DFT as a circular convolution
// carried out by a power-of-two radix-2 transform.
//
// With w[k] = exp(-i*pi*k^2/n), the identity jk = (j^2 + k^2 - (k-j)^2)/2
// gives X[k] = w[k] * sum_j (x[j]*w[j]) * conj(w[k-j]).
type bluestein struct {
	n     int
	m     int
	inner *radix2
	chirp []complex128 // w[k], k in [0, n)
	kern  []complex128 // transform of the wrapped conj(w) sequence, length m
	pool  *buffer.Pool
}

func newBluestein(n, workers, threshold int) *bluestein {
	m := core.NextPowerOfTwo(2*n - 1)
	b := &bluestein{
		n:     n,
		m:     m,
		inner: newRadix2(m, workers, threshold),
		chirp: make([]complex128, n),
		kern:  make([]complex128, m),
		pool:  buffer.NewPool(m),
	}
	// k^2 is reduced mod 2n before scaling so the angle stays small and exact.
	mod := 2 * n
	for k := range n {
		a := -math.Pi * float64((k*k)%mod) / float64(n)
		b.chirp[k] = complex(math.Cos(a), math.Sin(a))
	}
	b.kern[0] = cmplx.Conj(b.chirp[0])
	for k := 1; k < n; k++ {
		c := cmplx.Conj(b.chirp[k])
		b.kern[k] = c
		b.kern[m-k] = c
	}
	b.inner.transform(b.kern)
	return b
}

// transform computes the forward DFT of x in place.
func (b *bluestein) transform(x []complex128) {
	buf := b.pool.Get()
	defer b.pool.Put(buf)
	a := buf.Samples()

	for k, v := range x {
		a[k] = v * b.chirp[k]
	}
	b.inner.transform(a)
	for i, v := range b.kern {
		a[i] *= v
	}
	// Inverse of the convolution transform: conj(FFT(conj(a)))/m.
	for i, v := range a {
		a[i] = cmplx.Conj(v)
	}
	b.inner.transform(a)
	scale := 1 / float64(b.m)
	for k := range x {
		x[k] = b.chirp[k] * complex(real(a[k])*scale, -imag(a[k])*scale)
	}
}
