// Package piece decodes the piece table of a Word binary document and
// resolves character positions to WordDocument stream offsets.
//
// The logical text of a document is the concatenation of its sub-documents
// (main text, footnotes, headers, comments, endnotes, textboxes, header
// textboxes) in that order. The piece table (PlcPcd, stored in the Clx)
// splits that CP space into pieces, each stored either as 8-bit
// Windows-1252 text ("compressed") or as UTF-16LE somewhere in the
// WordDocument stream.
//
// A Table is built once per document and is read-only afterwards:
//
//	clx, err := piece.DecodeClx(r, lcbClx, subdocs.LastCP())
//	table, err := piece.NewTable(clx.Pcdt.PlcPcd, logger)
//	loc, err := table.Resolve(cp)
//	text, err := table.Text(wordDocument, start, end)
package piece
