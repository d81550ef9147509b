package fourier

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-signal/dsp/core"
)

// LengthPolicy controls which transform lengths a plan accepts.
type LengthPolicy int

const (
	// AnyLength accepts every N >= 0, using Bluestein's algorithm for
	// lengths that are not a power of two.
	AnyLength LengthPolicy = iota
	// PowerOfTwoOnly rejects lengths that are not a power of two with
	// core.ErrUnsupportedLength.
	PowerOfTwoOnly
)

func (p LengthPolicy) String() string {
	switch p {
	case AnyLength:
		return "any-length"
	case PowerOfTwoOnly:
		return "power-of-two-only"
	default:
		return fmt.Sprintf("LengthPolicy(%d)", int(p))
	}
}

// check reports whether n is acceptable under p.
func (p LengthPolicy) check(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: transform length must be >= 0: %d", core.ErrInvalidParameter, n)
	}
	if p == PowerOfTwoOnly && n > 0 && !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d is not a power of two", core.ErrUnsupportedLength, n)
	}
	return nil
}

// Plan is the built-in transform for one length. It holds only precomputed
// tables and is safe for concurrent use.
type Plan struct {
	n     int
	radix *radix2
	blue  *bluestein
}

// NewPlan prepares a transform of length n. Workers and ParallelThreshold
// from coreOpts control parallel butterfly stages.
func NewPlan(n int, policy LengthPolicy, coreOpts ...core.ProcessorOption) (*Plan, error) {
	if err := policy.check(n); err != nil {
		return nil, err
	}
	cfg := core.ApplyProcessorOptions(coreOpts...)
	p := &Plan{n: n}
	switch {
	case n == 0:
	case core.IsPowerOfTwo(n):
		p.radix = newRadix2(n, cfg.Workers, cfg.ParallelThreshold)
	default:
		p.blue = newBluestein(n, cfg.Workers, cfg.ParallelThreshold)
	}
	return p, nil
}

// Len returns the transform length.
func (p *Plan) Len() int { return p.n }

// Forward writes the unnormalized DFT of src into dst. dst and src may be
// the same slice.
func (p *Plan) Forward(dst, src []complex128) error {
	if err := p.checkLen(dst, src); err != nil {
		return err
	}
	copy(dst, src)
	p.transform(dst)
	return nil
}

// Inverse writes the inverse DFT of src into dst, scaled by 1/N. dst and src
// may be the same slice.
func (p *Plan) Inverse(dst, src []complex128) error {
	if err := p.checkLen(dst, src); err != nil {
		return err
	}
	if p.n == 0 {
		return nil
	}
	for i, v := range src {
		dst[i] = cmplx.Conj(v)
	}
	p.transform(dst)
	scale := 1 / float64(p.n)
	for i, v := range dst {
		dst[i] = complex(real(v)*scale, -imag(v)*scale)
	}
	return nil
}

func (p *Plan) transform(x []complex128) {
	switch {
	case p.radix != nil:
		p.radix.transform(x)
	case p.blue != nil:
		p.blue.transform(x)
	}
}

func (p *Plan) checkLen(dst, src []complex128) error {
	if len(dst) != p.n || len(src) != p.n {
		return fmt.Errorf("%w: plan length %d, got dst %d and src %d",
			core.ErrInvalidParameter, p.n, len(dst), len(src))
	}
	return nil
}
