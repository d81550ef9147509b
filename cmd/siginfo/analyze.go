package main

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-signal/dsp/core"
	"github.com/cwbudde/algo-signal/dsp/fourier"
	"github.com/cwbudde/algo-signal/dsp/signal"
	"github.com/cwbudde/algo-signal/dsp/spectrum"
	frequencystats "github.com/cwbudde/algo-signal/stats/frequency"
	timestats "github.com/cwbudde/algo-signal/stats/time"
)

type signalEntry struct {
	name string
	make func(cfg config) signal.Signal
}

var registry = []signalEntry{
	{"sine", func(c config) signal.Signal {
		return signal.Sinusoid{Frequency: c.Frequency, Amplitude: c.Amplitude, Phase: c.Phase}
	}},
	{"cosine", func(c config) signal.Signal {
		return signal.Cosinusoid{Frequency: c.Frequency, Amplitude: c.Amplitude, Phase: c.Phase}
	}},
	{"phasor", func(c config) signal.Signal {
		return signal.Phasor{Frequency: c.Frequency, Amplitude: c.Amplitude, Phase: c.Phase}
	}},
	{"square", func(c config) signal.Signal {
		return signal.Square{Frequency: c.Frequency, Amplitude: c.Amplitude}
	}},
	{"triangle", func(c config) signal.Signal {
		return signal.Triangle{Frequency: c.Frequency, Amplitude: c.Amplitude}
	}},
	{"impulse", func(c config) signal.Signal {
		return signal.ScaleBy(signal.Impulse{}, complex(c.Amplitude, 0))
	}},
	{"step", func(c config) signal.Signal {
		return signal.ScaleBy(signal.Step{}, complex(c.Amplitude, 0))
	}},
}

func signalNames() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	slices.Sort(names)
	return names
}

func backendNames() []string {
	kinds := []fourier.BackendKind{fourier.BackendBuiltin, fourier.BackendAlgoFFT, fourier.BackendGonum}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

func lookupSignal(cfg config) (signal.Signal, error) {
	for _, e := range registry {
		if e.name == cfg.Signal {
			return e.make(cfg), nil
		}
	}
	return nil, fmt.Errorf("unknown signal %q (use 'siginfo list' to see available)", cfg.Signal)
}

type report struct {
	Signal   signalReport   `yaml:"signal"`
	Time     timeReport     `yaml:"time"`
	Spectrum spectrumReport `yaml:"spectrum"`
}

type signalReport struct {
	Kind       string  `yaml:"kind"`
	Frequency  float64 `yaml:"frequency"`
	Amplitude  float64 `yaml:"amplitude"`
	SampleRate float64 `yaml:"sample_rate"`
	Duration   float64 `yaml:"duration"`
	Samples    int     `yaml:"samples"`
	Noise      float64 `yaml:"noise,omitempty"`
}

type timeReport struct {
	Energy        float64 `yaml:"energy"`
	Power         float64 `yaml:"power"`
	RMS           float64 `yaml:"rms"`
	RMSdB         float64 `yaml:"rms_db"`
	Peak          float64 `yaml:"peak"`
	PeakPos       int     `yaml:"peak_pos"`
	CrestFactor   float64 `yaml:"crest_factor"`
	ZeroCrossings int     `yaml:"zero_crossings"`
}

type spectrumReport struct {
	Backend    string       `yaml:"backend"`
	Bins       int          `yaml:"bins"`
	BinSpacing float64      `yaml:"bin_spacing"`
	Centroid   float64      `yaml:"centroid"`
	Rolloff    float64      `yaml:"rolloff"`
	Flatness   float64      `yaml:"flatness"`
	Peaks      []peakReport `yaml:"peaks"`
}

type peakReport struct {
	Bin       int     `yaml:"bin"`
	Frequency float64 `yaml:"frequency"`
	Magnitude float64 `yaml:"magnitude"`
}

// analyze samples the configured signal, transforms it and gathers every
// measure the report prints.
func analyze(cfg config) (report, error) {
	sig, err := lookupSignal(cfg)
	if err != nil {
		return report{}, err
	}
	backend, err := fourier.ParseBackendKind(cfg.Backend)
	if err != nil {
		return report{}, err
	}

	// WithSampleRate ignores invalid rates, so reject them here.
	if err := core.CheckSampleRate(cfg.Rate); err != nil {
		return report{}, err
	}
	coreOpts := []core.ProcessorOption{core.WithSampleRate(cfg.Rate), core.WithWorkers(cfg.Workers)}
	x, err := signal.NewSampler(coreOpts...).Sample(sig, cfg.Duration)
	if err != nil {
		return report{}, fmt.Errorf("sample: %w", err)
	}
	if cfg.Noise > 0 {
		if x, err = x.AddNoise(cfg.Noise, cfg.Seed); err != nil {
			return report{}, fmt.Errorf("add noise: %w", err)
		}
	}

	policy := fourier.AnyLength
	if cfg.Strict {
		policy = fourier.PowerOfTwoOnly
	}
	tr := fourier.NewTransformerWithOptions(coreOpts, fourier.WithBackend(backend), fourier.WithLengthPolicy(policy))
	spec, err := tr.Forward(x)
	if err != nil {
		return report{}, err
	}

	ts := timestats.Calculate(x)
	fs := frequencystats.Calculate(spec)

	return report{
		Signal: signalReport{
			Kind:       cfg.Signal,
			Frequency:  cfg.Frequency,
			Amplitude:  cfg.Amplitude,
			SampleRate: x.SampleRate(),
			Duration:   x.Duration(),
			Samples:    x.Len(),
			Noise:      cfg.Noise,
		},
		Time: timeReport{
			Energy:        ts.Energy,
			Power:         ts.Power,
			RMS:           ts.RMS,
			RMSdB:         ts.RMS_dB,
			Peak:          ts.Peak,
			PeakPos:       ts.PeakPos,
			CrestFactor:   ts.CrestFactor,
			ZeroCrossings: ts.ZeroCrossings,
		},
		Spectrum: spectrumReport{
			Backend:    backend.String(),
			Bins:       spec.Len(),
			BinSpacing: spec.BinSpacing(),
			Centroid:   fs.Centroid,
			Rolloff:    fs.Rolloff,
			Flatness:   fs.Flatness,
			Peaks:      strongestBins(spec, cfg.Peaks),
		},
	}, nil
}

// strongestBins returns the n bins with the largest magnitude, strongest
// first, with ties broken by bin index.
func strongestBins(s *spectrum.Spectrum, n int) []peakReport {
	mag := s.Magnitude()
	idx := make([]int, len(mag))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case mag[a] > mag[b]:
			return -1
		case mag[a] < mag[b]:
			return 1
		default:
			return 0
		}
	})
	if n > len(idx) {
		n = len(idx)
	}
	out := make([]peakReport, n)
	for i, k := range idx[:n] {
		out[i] = peakReport{Bin: k, Frequency: s.SignedFrequency(k), Magnitude: mag[k]}
	}
	return out
}
