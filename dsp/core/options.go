package core

// ProcessorConfig defines common processing settings shared by samplers and
// transforms.
type ProcessorConfig struct {
	SampleRate float64
	// Workers bounds the goroutines a single transform may use. 1 keeps every
	// call on the calling goroutine.
	Workers int
	// ParallelThreshold is the smallest transform length that is split
	// across Workers.
	ParallelThreshold int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sensible defaults for offline use.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:        48000,
		Workers:           1,
		ParallelThreshold: 1 << 15,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithWorkers sets the number of goroutines a transform may fan out to.
func WithWorkers(workers int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithParallelThreshold sets the minimum transform length for parallel
// butterfly stages.
func WithParallelThreshold(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n > 0 {
			cfg.ParallelThreshold = n
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
