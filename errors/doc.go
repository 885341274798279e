// Package errors provides the structured error type returned by every decoder
// in this module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Every failure surfaces as *Error. IsCorrupted separates
// structural damage in the document from unsupported features and caller
// mistakes:
//
//	doc, err := msdoc.Open(streams)
//	switch {
//	case errors.IsCorrupted(err):
//	    // the file is damaged
//	case errors.KindOf(err) == errors.KindUnsupported:
//	    // e.g. an encrypted document
//	}
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindMagicMismatch).
//		Path("Fib", "base", "wIdent").
//		Structure("FibBase").
//		At(0).
//		Value(uint16(0x1234)).
//		Detail("want 0xA5EC").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MagicMismatch(errors.PhaseDecode, path, got, want)
//	err := errors.LengthMismatch(errors.PhaseDecode, path, consumed, declared)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
