package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/wippyai/msdoc"
	"github.com/wippyai/msdoc/fib"
	"github.com/wippyai/msdoc/piece"
)

func writeStreams(w io.Writer, infos []streamInfo) {
	fmt.Fprintln(w, "Streams")
	fmt.Fprintln(w, "-------")
	for _, s := range infos {
		suffix := ""
		if s.Compressed {
			suffix = " (xz)"
		}
		fmt.Fprintf(w, "  %-12s %10s  blake3:%s%s\n", s.Name, humanize.IBytes(uint64(s.Size)), s.Digest[:16], suffix)
	}
}

func writeFib(w io.Writer, doc *msdoc.Document) {
	f := doc.Fib()
	fmt.Fprintln(w, "FIB")
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "  nFib:          %#04x (effective %#04x)\n", f.Base.NFib, f.NFib())
	fmt.Fprintf(w, "  lid:           %#04x\n", f.Base.Lid)
	fmt.Fprintf(w, "  table stream:  %s\n", f.Base.TableStream())
	fmt.Fprintf(w, "  template:      %v\n", f.Base.FDot)
	fmt.Fprintf(w, "  complex:       %v\n", f.Base.FComplex)
	fmt.Fprintf(w, "  quick saves:   %d\n", f.Base.CQuickSaves)
	fmt.Fprintf(w, "  FibRgFcLcb:    %s (%d pairs)\n", f.RgFcLcb.Version, f.CbRgFcLcb)
	fmt.Fprintf(w, "  size:          %s\n", humanize.IBytes(uint64(f.ByteLength)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Stories")
	fmt.Fprintln(w, "-------")
	sd := doc.SubDocuments()
	for _, s := range piece.AllSubDocuments {
		start, end := sd.Range(s)
		fmt.Fprintf(w, "  %-15s %8d CPs  [%d, %d)\n", s, sd.Length(s), start, end)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Structures")
	fmt.Fprintln(w, "----------")
	for i := 0; i < f.RgFcLcb.Version.Pairs(); i++ {
		idx := fib.Index(i)
		p, _ := f.Pair(idx)
		if p.Empty() {
			continue
		}
		fmt.Fprintf(w, "  %-24s fc=%#08x lcb=%s\n", idx, p.Fc, humanize.Comma(int64(p.Lcb)))
	}
}

func writeDop(w io.Writer, doc *msdoc.Document) {
	d := doc.Dop()
	b := d.Base()
	fmt.Fprintln(w, "DOP")
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "  version:       %s (%d bytes)\n", d.Version, d.Version.Size())
	fmt.Fprintf(w, "  created:       %s\n", b.DttmCreated)
	fmt.Fprintf(w, "  revised:       %s\n", b.DttmRevised)
	fmt.Fprintf(w, "  printed:       %s\n", b.DttmLastPrint)
	fmt.Fprintf(w, "  revision:      %d\n", b.NRevision)
	fmt.Fprintf(w, "  editing time:  %d min\n", b.TmEdited)
	fmt.Fprintf(w, "  default tab:   %d twips\n", b.DxaTab)
	fmt.Fprintf(w, "  words:         %s\n", humanize.Comma(int64(b.CWords)))
	fmt.Fprintf(w, "  characters:    %s\n", humanize.Comma(int64(b.CCh)))
	fmt.Fprintf(w, "  pages:         %d\n", b.CPg)
	fmt.Fprintf(w, "  paragraphs:    %s\n", humanize.Comma(int64(b.CParas)))
	if x := d.Dop2007(); x != nil {
		fmt.Fprintf(w, "  math margins:  %d/%d twips\n", x.DopMth.DxaLeftMargin, x.DopMth.DxaRightMargin)
	}
	if x := d.Dop2010(); x != nil {
		fmt.Fprintf(w, "  docid:         %d\n", x.DocID)
		fmt.Fprintf(w, "  image dpi:     %d\n", x.IImageDPI)
	}
}

func writePieces(w io.Writer, doc *msdoc.Document) {
	t := doc.Pieces()
	fmt.Fprintf(w, "Pieces (%d, last CP %d)\n", t.Len(), t.LastCP())
	fmt.Fprintln(w, "------")
	for i, p := range t.Pieces() {
		fmt.Fprintf(w, "  %3d  [%d, %d)  %-10s offset=%#08x  %s\n",
			i, p.Start, p.End, p.Encoding, p.Offset, humanize.IBytes(uint64(p.ByteLen())))
	}
}

// preview cuts text to n characters and makes control marks visible.
func preview(text string, n int) string {
	r := []rune(text)
	cut := false
	if len(r) > n {
		r, cut = r[:n], true
	}
	out := strings.NewReplacer(
		"\r", "¶\n",
		"\x07", "¤",
		"\x13", "{",
		"\x14", "|",
		"\x15", "}",
		"\x02", "†",
	).Replace(string(r))
	if cut {
		out += "…"
	}
	return out
}
