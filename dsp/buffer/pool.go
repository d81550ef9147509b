package buffer

import "sync"

// Buffer is a scratch slice owned by a Pool.
type Buffer struct {
	samples []complex128
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []complex128 {
	return b.samples
}

// Len returns the number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Pool hands out zero-filled buffers of one fixed length. A plan keeps one
// Pool per scratch size, so concurrent transforms never share memory.
type Pool struct {
	n    int
	pool sync.Pool
}

// NewPool returns a Pool of buffers with n samples. Negative n is treated
// as 0.
func NewPool(n int) *Pool {
	n = max(n, 0)
	p := &Pool{n: n}
	p.pool.New = func() any {
		return &Buffer{samples: make([]complex128, n)}
	}
	return p
}

// Len returns the length of every buffer the pool hands out.
func (p *Pool) Len() int {
	return p.n
}

// Get returns a zeroed Buffer. Callers must return it via Put when done.
func (p *Pool) Get() *Buffer {
	b := p.pool.Get().(*Buffer)
	clear(b.samples)
	return b
}

// Put returns b to the pool. Buffers of a different length are dropped.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil || len(b.samples) != p.n {
		return
	}
	p.pool.Put(b)
}
