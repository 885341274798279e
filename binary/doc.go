// Package binary provides the little-endian byte cursor every decoder in
// this module reads through.
//
// A Reader borrows an immutable buffer and owns only its position, so any
// number of Readers may walk the same stream concurrently. Positions are
// always absolute offsets into the stream the Reader was created over, even
// for windows created with Window, so diagnostics point at the real stream
// offset.
//
// Speculative reads use the Mark/Restore protocol:
//
//	m := r.Mark()
//	clxt, err := r.ReadU8()
//	r.Restore(m)
//	switch clxt { ... } // re-decode from the mark with the full decoder
//
// Peek wraps the same protocol around a callback.
package binary
