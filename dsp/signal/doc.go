// Package signal describes continuous-time signals and samples them into
// discrete buffers.
//
// A Signal is a pure function of time returning a complex value. The
// provided variants are immutable values and can be nested freely:
//
//	s := signal.Add(
//		signal.Sinusoid{Frequency: 50, Amplitude: 1},
//		signal.ScaleBy(signal.Step{}, 0.5),
//	)
//	x, err := signal.Sample(s, 1000, 0.1)
package signal
