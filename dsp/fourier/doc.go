// Package fourier implements the discrete Fourier transform between
// discrete.Signal and spectrum.Spectrum.
//
// The built-in kernel runs an iterative radix-2 Cooley-Tukey transform for
// power-of-two lengths and Bluestein's chirp-z algorithm for every other
// length, so any N >= 1 is supported unless the PowerOfTwoOnly policy is
// selected. The forward transform is unnormalized; the inverse divides by N,
// so Inverse(Forward(x)) reproduces x up to rounding.
//
// Large radix-2 transforms can split each butterfly stage across goroutines
// (core.WithWorkers, core.WithParallelThreshold). Every butterfly performs
// the same arithmetic regardless of the split, so parallel and sequential
// results are bit-identical.
//
// Alternative backends backed by github.com/MeKo-Christian/algo-fft and
// gonum.org/v1/gonum/dsp/fourier can be selected with WithBackend.
package fourier
