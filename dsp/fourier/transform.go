package fourier

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/discrete"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
)

// Option configures a Transformer.
type Option func(*options)

type options struct {
	backend BackendKind
	policy  LengthPolicy
}

// WithBackend selects the transform implementation. Unknown kinds are ignored.
func WithBackend(kind BackendKind) Option {
	return func(o *options) {
		if kind >= BackendBuiltin && kind <= BackendGonum {
			o.backend = kind
		}
	}
}

// WithLengthPolicy selects which lengths are accepted. Unknown policies are
// ignored.
func WithLengthPolicy(policy LengthPolicy) Option {
	return func(o *options) {
		if policy == AnyLength || policy == PowerOfTwoOnly {
			o.policy = policy
		}
	}
}

// Transformer maps discrete signals to spectra and back. Plans are built on
// first use for each length and cached; a Transformer is safe for concurrent
// use.
type Transformer struct {
	coreOpts []core.ProcessorOption
	opts     options
	plans    sync.Map // int -> Backend
}

// NewTransformer returns a Transformer using the built-in kernel and the
// AnyLength policy.
func NewTransformer(coreOpts ...core.ProcessorOption) *Transformer {
	return NewTransformerWithOptions(coreOpts)
}

// NewTransformerWithOptions returns a Transformer configured by shared core
// options and transform-specific options.
func NewTransformerWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Transformer {
	t := &Transformer{
		coreOpts: append([]core.ProcessorOption(nil), coreOpts...),
		opts:     options{backend: BackendBuiltin, policy: AnyLength},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&t.opts)
		}
	}
	return t
}

// Backend returns the configured backend kind.
func (t *Transformer) Backend() BackendKind { return t.opts.backend }

// LengthPolicy returns the configured length policy.
func (t *Transformer) LengthPolicy() LengthPolicy { return t.opts.policy }

// plan returns the cached backend for length n, creating it when needed.
func (t *Transformer) plan(n int) (Backend, error) {
	if b, ok := t.plans.Load(n); ok {
		return b.(Backend), nil
	}
	b, err := NewBackend(t.opts.backend, n, t.opts.policy, t.coreOpts...)
	if err != nil {
		return nil, err
	}
	actual, _ := t.plans.LoadOrStore(n, b)
	return actual.(Backend), nil
}

// Forward returns the unnormalized DFT of x. The spectrum carries the sample
// rate of x; an empty signal yields an empty spectrum.
func (t *Transformer) Forward(x *discrete.Signal) (*spectrum.Spectrum, error) {
	if x == nil {
		return nil, fmt.Errorf("fourier: forward: %w: nil signal", core.ErrInvalidParameter)
	}
	bins, err := t.run(x.Samples(), Backend.Forward)
	if err != nil {
		return nil, fmt.Errorf("fourier: forward: %w", err)
	}
	return spectrum.New(bins, x.SampleRate())
}

// Inverse returns the signal whose forward transform is s, scaled by 1/N.
// The signal carries the sample rate recorded in s.
func (t *Transformer) Inverse(s *spectrum.Spectrum) (*discrete.Signal, error) {
	if s == nil {
		return nil, fmt.Errorf("fourier: inverse: %w: nil spectrum", core.ErrInvalidParameter)
	}
	samples, err := t.run(s.Bins(), Backend.Inverse)
	if err != nil {
		return nil, fmt.Errorf("fourier: inverse: %w", err)
	}
	return discrete.New(samples, s.SampleRate())
}

// run applies fn to src and returns the result in a fresh slice.
func (t *Transformer) run(src []complex128, fn func(Backend, []complex128, []complex128) error) ([]complex128, error) {
	b, err := t.plan(len(src))
	if err != nil {
		return nil, err
	}
	dst := make([]complex128, len(src))
	if err := fn(b, dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// Forward transforms x with a default Transformer. Callers transforming many
// signals of one length should keep their own Transformer to reuse its plan.
func Forward(x *discrete.Signal) (*spectrum.Spectrum, error) {
	return NewTransformer().Forward(x)
}

// Inverse transforms s with a default Transformer.
func Inverse(s *spectrum.Spectrum) (*discrete.Signal, error) {
	return NewTransformer().Inverse(s)
}
