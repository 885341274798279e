// Package dop decodes the Document Properties structure stored in the table
// stream at fcDop.
//
// The DOP grew with every release of the format. Each DopNNNN type embeds
// its predecessor, so a Dop2010 also exposes every Dop97 field through
// promotion, and each decoder runs its predecessor's decoder first. Which
// variant a file holds is decided by the FIB (nFibNew and lcbDop), never by
// the DOP bytes themselves.
package dop
