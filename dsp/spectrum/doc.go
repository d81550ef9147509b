// Package spectrum holds the frequency-domain view of a sampled signal.
//
// A Spectrum is the set of complex bins a forward transform produced, tagged
// with the sample rate of the signal they came from, so that bin k can be
// read as the frequency k*rate/N. The package also evaluates single bins at
// arbitrary frequencies with the Goertzel recurrence, which is cheaper than a
// full transform when only a few frequencies matter.
package spectrum
