package buffer

import "sync"

// Split holds the real and imaginary parts of a complex slice in separate
// float64 slices, the layout the SIMD vector kernels expect.
type Split struct {
	Re, Im []float64
	data   []float64
}

var splitPool = sync.Pool{
	New: func() any { return &Split{} },
}

// GetSplit returns pooled scratch holding the parts of src.
// Callers must return it via PutSplit when done.
func GetSplit(src []complex128) *Split {
	s := splitPool.Get().(*Split)
	n := len(src)
	need := 2 * n
	if cap(s.data) < need {
		s.data = make([]float64, need)
	} else {
		s.data = s.data[:need]
	}
	s.Re = s.data[:n]
	s.Im = s.data[n:need]
	for i, c := range src {
		s.Re[i] = real(c)
		s.Im[i] = imag(c)
	}
	return s
}

// PutSplit returns s to the pool.
func PutSplit(s *Split) {
	if s == nil {
		return
	}
	splitPool.Put(s)
}
