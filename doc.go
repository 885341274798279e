// Package msdoc decodes the structure of legacy binary Word documents (.doc).
//
// The decoder works on the streams of the compound file, already extracted
// by an OLE2 reader: WordDocument, the table stream (0Table or 1Table) and
// the optional Data stream. It does not render or edit documents.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	msdoc/            Root package: Open, Document and lazy structure access
//	├── fib/          File Information Block and its fc/lcb offset table
//	├── dop/          Document Properties, one type per format version
//	├── piece/        Clx, piece table and CP to stream offset resolution
//	├── plc/          Generic PLC decoder and the concrete PLC shapes
//	├── sttb/         String tables (bookmark names)
//	├── bitfield/     LSB-first bit unpacking of packed integers
//	├── binary/       Bounds-checked little-endian cursor with Mark/Restore
//	├── errors/       Structured error types for corrupted input
//	├── config/       TOML configuration for callers
//	├── testbed/      Synthetic document builder for end-to-end tests
//	└── cmd/docinspect Inspector CLI and terminal browser
//
// # Quick Start
//
//	doc, err := msdoc.Open(msdoc.Streams{
//	    WordDocument: word,
//	    Table1:       table,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	text, err := doc.Text(piece.Main)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Every failure is an *errors.Error carrying the phase, kind and field path
// of the first violation found. errors.IsCorrupted reports whether that
// violation is damage in the document bytes, as opposed to an unsupported
// feature such as encryption or a bad argument. Decoding never coerces invalid values; the only
// non-fatal findings are logged at warn level.
//
// # Thread Safety
//
// A Document is immutable after Open. Its methods decode from the original
// buffers on every call and are safe for concurrent use.
package msdoc
