// Package discrete implements sampled signals and the vector algebra over them.
//
// A Signal is a dense, fixed-length sequence of complex128 samples tagged with
// a sample rate; index i corresponds to time i/rate. Signals are immutable:
// constructors copy their input, accessors hand out copies, and every
// operation returns a new Signal. Binary operations require compatible
// operands (same length and sample rate) and report core.ErrIncompatibleSignals
// otherwise, never truncating or repeating samples.
package discrete
