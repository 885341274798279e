// Package fib decodes the File Information Block, the header at offset 0 of
// the WordDocument stream.
//
// The FIB is a cascade of length-prefixed blocks: FibBase, FibRgW97,
// FibRgLw97, FibRgFcLcb and FibRgCswNew. The size of FibRgFcLcb selects one
// of five variants, each extending the previous, and every other auxiliary
// structure of the document is located through one of its fc/lcb pairs.
// Pairs are addressed by Index:
//
//	f, err := fib.Decode(binary.NewReader(word), logger)
//	if err != nil {
//		return err
//	}
//	clx, ok := f.Pair(fib.IdxClx)
package fib
