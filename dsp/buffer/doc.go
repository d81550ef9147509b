// Package buffer provides reusable complex128 buffers and split real/imaginary
// scratch space. The transform and the split-complex vector kernels draw their
// temporary memory from here so steady-state calls allocate only their output.
package buffer
