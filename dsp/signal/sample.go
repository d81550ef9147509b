package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/discrete"
)

// sampleCountSlack absorbs float rounding in duration*rate, so 0.29s at
// 100 Hz yields 29 samples rather than 28.
const sampleCountSlack = 1e-9

// maxSamples bounds the sample count so it stays exactly representable.
const maxSamples = 1 << 48

// Sample evaluates s at t = i/sampleRate for i in [0, N), where
// N = floor(duration*sampleRate + 1e-9). The small slack keeps products such
// as 0.29*100 from rounding down to 28; a product within 1e-9 below an
// integer therefore counts as that integer. A zero duration yields an empty
// signal.
func Sample(s Signal, sampleRate, duration float64) (*discrete.Signal, error) {
	if err := core.CheckSampleRate(sampleRate); err != nil {
		return nil, err
	}
	n, err := sampleCount(duration, sampleRate)
	if err != nil {
		return nil, err
	}
	return sampleAt(s, sampleRate, 0, n)
}

// Sampler samples signals at a configured rate.
type Sampler struct {
	cfg core.ProcessorConfig
}

// NewSampler creates a sampler. Without options it samples at the default
// processor rate.
func NewSampler(opts ...core.ProcessorOption) *Sampler {
	return &Sampler{cfg: core.ApplyProcessorOptions(opts...)}
}

// Config returns the sampler processor configuration.
func (sp *Sampler) Config() core.ProcessorConfig {
	return sp.cfg
}

// Sample evaluates s over [0, duration).
func (sp *Sampler) Sample(s Signal, duration float64) (*discrete.Signal, error) {
	return Sample(s, sp.cfg.SampleRate, duration)
}

// SampleN evaluates s at exactly n sample instants starting at t = 0.
func (sp *Sampler) SampleN(s Signal, n int) (*discrete.Signal, error) {
	if err := checkCount(float64(n)); err != nil {
		return nil, err
	}
	return sampleAt(s, sp.cfg.SampleRate, 0, n)
}

// SampleRange evaluates s at t = start + i/rate over [start, end).
func (sp *Sampler) SampleRange(s Signal, start, end float64) (*discrete.Signal, error) {
	if math.IsNaN(start) || math.IsInf(start, 0) {
		return nil, fmt.Errorf("%w: range start must be finite: %v", core.ErrInvalidParameter, start)
	}
	if !(end >= start) {
		return nil, fmt.Errorf("%w: range end must be >= start: [%v, %v)", core.ErrInvalidParameter, start, end)
	}
	n, err := sampleCount(end-start, sp.cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	return sampleAt(s, sp.cfg.SampleRate, start, n)
}

func sampleCount(duration, sampleRate float64) (int, error) {
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0, fmt.Errorf("%w: duration must be >= 0: %v", core.ErrInvalidParameter, duration)
	}
	n := math.Floor(duration*sampleRate + sampleCountSlack)
	if err := checkCount(n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// checkCount bounds a sample count to [0, maxSamples].
func checkCount(n float64) error {
	if n < 0 {
		return fmt.Errorf("%w: sample count must be >= 0: %v", core.ErrInvalidParameter, n)
	}
	if n > maxSamples {
		return fmt.Errorf("%w: %v samples exceed the limit of %d", core.ErrInvalidParameter, n, maxSamples)
	}
	return nil
}

func sampleAt(s Signal, sampleRate, start float64, n int) (*discrete.Signal, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil signal", core.ErrInvalidParameter)
	}
	out := make([]complex128, n)
	for i := range out {
		out[i] = s.At(start + float64(i)/sampleRate)
	}
	return discrete.New(out, sampleRate)
}
