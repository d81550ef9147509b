package fourier

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-signal/dsp/core"
	gonumfourier "gonum.org/v1/gonum/dsp/fourier"
)

// Backend transforms complex slices of one fixed length. Forward is
// unnormalized and Inverse is scaled by 1/N, so the two are exact inverses.
type Backend interface {
	Len() int
	Forward(dst, src []complex128) error
	Inverse(dst, src []complex128) error
}

// BackendKind selects the implementation a Transformer plans with.
type BackendKind int

const (
	// BackendBuiltin is the radix-2 and Bluestein kernel of this package.
	BackendBuiltin BackendKind = iota
	// BackendAlgoFFT uses github.com/MeKo-Christian/algo-fft plans.
	BackendAlgoFFT
	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier.
	BackendGonum
)

func (k BackendKind) String() string {
	switch k {
	case BackendBuiltin:
		return "builtin"
	case BackendAlgoFFT:
		return "algofft"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("BackendKind(%d)", int(k))
	}
}

// ParseBackendKind maps a name printed by BackendKind.String back to its kind.
func ParseBackendKind(name string) (BackendKind, error) {
	for _, k := range []BackendKind{BackendBuiltin, BackendAlgoFFT, BackendGonum} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown transform backend %q", core.ErrInvalidParameter, name)
}

// NewBackend creates a backend of the given kind for length n. The length
// policy is enforced for every kind.
func NewBackend(kind BackendKind, n int, policy LengthPolicy, coreOpts ...core.ProcessorOption) (Backend, error) {
	if err := policy.check(n); err != nil {
		return nil, err
	}
	switch kind {
	case BackendBuiltin:
		return NewPlan(n, policy, coreOpts...)
	case BackendAlgoFFT:
		return newAlgoFFTBackend(n)
	case BackendGonum:
		return newGonumBackend(n), nil
	default:
		return nil, fmt.Errorf("%w: unknown transform backend %v", core.ErrInvalidParameter, kind)
	}
}

// algoFFTBackend adapts an algo-fft plan. Plans carry internal scratch, so
// calls are serialized.
type algoFFTBackend struct {
	mu   sync.Mutex
	n    int
	plan *algofft.Plan[complex128]
}

func newAlgoFFTBackend(n int) (*algoFFTBackend, error) {
	b := &algoFFTBackend{n: n}
	if n == 0 {
		return b, nil
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: algo-fft plan for length %d: %w", core.ErrUnsupportedLength, n, err)
	}
	b.plan = plan
	return b, nil
}

func (b *algoFFTBackend) Len() int { return b.n }

func (b *algoFFTBackend) Forward(dst, src []complex128) error {
	if err := checkBackendLen(b.n, dst, src); err != nil || b.n == 0 {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.plan.Forward(dst, src); err != nil {
		return fmt.Errorf("algo-fft forward: %w", err)
	}
	return nil
}

func (b *algoFFTBackend) Inverse(dst, src []complex128) error {
	if err := checkBackendLen(b.n, dst, src); err != nil || b.n == 0 {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.plan.Inverse(dst, src); err != nil {
		return fmt.Errorf("algo-fft inverse: %w", err)
	}
	return nil
}

// gonumBackend adapts gonum's CmplxFFT, which keeps work space and is not
// safe for concurrent use.
type gonumBackend struct {
	mu  sync.Mutex
	n   int
	fft *gonumfourier.CmplxFFT
}

func newGonumBackend(n int) *gonumBackend {
	b := &gonumBackend{n: n}
	if n > 0 {
		b.fft = gonumfourier.NewCmplxFFT(n)
	}
	return b
}

func (b *gonumBackend) Len() int { return b.n }

func (b *gonumBackend) Forward(dst, src []complex128) error {
	if err := checkBackendLen(b.n, dst, src); err != nil || b.n == 0 {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.fft.Coefficients(nil, src)
	copy(dst, out)
	return nil
}

func (b *gonumBackend) Inverse(dst, src []complex128) error {
	if err := checkBackendLen(b.n, dst, src); err != nil || b.n == 0 {
		return err
	}
	b.mu.Lock()
	out := b.fft.Sequence(nil, src)
	b.mu.Unlock()
	// Sequence is unnormalized.
	scale := complex(1/float64(b.n), 0)
	for i, v := range out {
		dst[i] = v * scale
	}
	return nil
}

func checkBackendLen(n int, dst, src []complex128) error {
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: backend length %d, got dst %d and src %d",
			core.ErrInvalidParameter, n, len(dst), len(src))
	}
	return nil
}
