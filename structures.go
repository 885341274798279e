package msdoc

import (
	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/errors"
	"github.com/wippyai/msdoc/fib"
	"github.com/wippyai/msdoc/piece"
	"github.com/wippyai/msdoc/plc"
	"github.com/wippyai/msdoc/sttb"
)

// locate returns a reader at the structure pair idx points to in the table
// stream. A nil reader with a nil error means the structure is absent.
func (d *Document) locate(idx fib.Index) (*binary.Reader, uint32, error) {
	pair, ok := d.fib.Pair(idx)
	if !ok || pair.Empty() {
		return nil, 0, nil
	}
	r, err := binary.NewReaderAt(d.table, int(pair.Fc))
	if err != nil {
		return nil, 0, errors.WithPath(err, "Fib", idx.String())
	}
	return r, pair.Lcb, nil
}

// Bookmark is a named CP range of the main document.
type Bookmark struct {
	Name  string
	Start piece.CP
	End   piece.CP
	Bkc   plc.BKC
}

// Bookmarks pairs every bookmark start with its end and name. It returns
// nil when the document has no bookmarks.
func (d *Document) Bookmarks() ([]Bookmark, error) {
	rf, lcbf, err := d.locate(fib.IdxPlcfBkf)
	if err != nil || rf == nil {
		return nil, err
	}
	starts, err := plc.DecodePlcBkf(rf, lcbf)
	if err != nil {
		return nil, err
	}
	rl, lcbl, err := d.locate(fib.IdxPlcfBkl)
	if err != nil {
		return nil, err
	}
	if rl == nil {
		return nil, errors.Inconsistent(errors.PhaseValidate, []string{"PlcfBkl"}, "bookmark starts without ends")
	}
	ends, err := plc.DecodePlcBkl(rl, lcbl)
	if err != nil {
		return nil, err
	}

	var names *sttb.Sttb
	if rn, lcbn, err := d.locate(fib.IdxSttbfBkmk); err != nil {
		return nil, err
	} else if rn != nil {
		if names, err = sttb.Decode(rn, lcbn, "SttbfBkmk"); err != nil {
			return nil, err
		}
		if names.Len() != starts.Len() {
			return nil, errors.New(errors.PhaseValidate, errors.KindInconsistent).
				Path("SttbfBkmk").
				Value(names.Len()).
				Detail("%d names for %d bookmarks", names.Len(), starts.Len()).
				Build()
		}
	}

	out := make([]Bookmark, starts.Len())
	for i, fbkf := range starts.Data {
		j := int(fbkf.Ibkl)
		if j >= ends.Len() {
			return nil, errors.WithPath(errors.OutOfBounds(errors.PhaseValidate, []string{"ibkl"}, j, ends.Len()), "PlcfBkf")
		}
		b := Bookmark{Start: starts.Positions[i], End: ends.Positions[j], Bkc: fbkf.Bkc}
		if b.End < b.Start {
			return nil, errors.New(errors.PhaseValidate, errors.KindInconsistent).
				Path("PlcfBkf").
				Value(i).
				Detail("bookmark %d ends at CP %d before it starts at %d", i, b.End, b.Start).
				Build()
		}
		if names != nil {
			b.Name = names.Strings[i]
		}
		out[i] = b
	}
	return out, nil
}

var fieldTables = map[piece.SubDocument]fib.Index{
	piece.Main:          fib.IdxPlcfFldMom,
	piece.Footnote:      fib.IdxPlcfFldFtn,
	piece.Header:        fib.IdxPlcfFldHdr,
	piece.Annotation:    fib.IdxPlcfFldAtn,
	piece.Endnote:       fib.IdxPlcfFldEdn,
	piece.Textbox:       fib.IdxPlcfFldTxbx,
	piece.HeaderTextbox: fib.IdxPlcffldHdrTxbx,
}

// Fields returns the field characters of one story. CPs are relative to
// the start of the story. It returns nil when the story has no fields.
func (d *Document) Fields(sd piece.SubDocument) (*plc.PLC[plc.CP, plc.FLD], error) {
	idx, ok := fieldTables[sd]
	if !ok {
		return nil, errors.InvalidInput(errors.PhaseResolve, "unknown sub-document "+sd.String())
	}
	r, lcb, err := d.locate(idx)
	if err != nil || r == nil {
		return nil, err
	}
	return plc.DecodePlcFld(r, lcb)
}

// Note is one footnote or endnote: the CP of its reference mark in the main
// document and the range of its text, relative to the start of its story.
type Note struct {
	Ref       piece.CP
	NAuto     int16
	TextStart piece.CP
	TextEnd   piece.CP
}

// FootnoteRefs returns every footnote, nil when there are none.
func (d *Document) FootnoteRefs() ([]Note, error) {
	return d.notes(fib.IdxPlcffndRef, fib.IdxPlcffndTxt, "PlcffndRef", "PlcffndTxt")
}

// EndnoteRefs returns every endnote, nil when there are none.
func (d *Document) EndnoteRefs() ([]Note, error) {
	return d.notes(fib.IdxPlcfendRef, fib.IdxPlcfendTxt, "PlcfendRef", "PlcfendTxt")
}

func (d *Document) notes(refIdx, txtIdx fib.Index, refName, txtName string) ([]Note, error) {
	rr, lcbr, err := d.locate(refIdx)
	if err != nil || rr == nil {
		return nil, err
	}
	refs, err := plc.DecodePlcfFrd(rr, lcbr, refName)
	if err != nil {
		return nil, err
	}
	rt, lcbt, err := d.locate(txtIdx)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, errors.Inconsistent(errors.PhaseValidate, []string{txtName}, "note references without text")
	}
	texts, err := plc.DecodePlcfTxt(rt, lcbt, txtName)
	if err != nil {
		return nil, err
	}
	if texts.Len() < refs.Len() {
		return nil, errors.New(errors.PhaseValidate, errors.KindInconsistent).
			Path(txtName).
			Value(texts.Len()).
			Detail("%d text ranges for %d references", texts.Len(), refs.Len()).
			Build()
	}

	out := make([]Note, refs.Len())
	for i, frd := range refs.Data {
		out[i] = Note{
			Ref:       refs.Positions[i],
			NAuto:     frd.NAuto,
			TextStart: texts.Positions[i],
			TextEnd:   texts.Positions[i+1],
		}
	}
	return out, nil
}

// Sections returns the section descriptors of the main document.
func (d *Document) Sections() (*plc.PLC[plc.CP, plc.SED], error) {
	r, lcb, err := d.locate(fib.IdxPlcfSed)
	if err != nil || r == nil {
		return nil, err
	}
	return plc.DecodePlcfSed(r, lcb, d.SubDocuments().CcpText)
}

// SpellingState returns the spelling check state of the main document.
func (d *Document) SpellingState() (*plc.PLC[plc.CP, plc.SPLS], error) {
	r, lcb, err := d.locate(fib.IdxPlcfSpl)
	if err != nil || r == nil {
		return nil, err
	}
	return plc.DecodePlcfSpls(r, lcb, "PlcfSpl")
}

// GrammarState returns the grammar check state of the main document.
func (d *Document) GrammarState() (*plc.PLC[plc.CP, plc.SPLS], error) {
	r, lcb, err := d.locate(fib.IdxPlcfGram)
	if err != nil || r == nil {
		return nil, err
	}
	return plc.DecodePlcfSpls(r, lcb, "PlcfGram")
}

// CharacterBins returns the FC ranges of the character formatting pages.
func (d *Document) CharacterBins() (*plc.PLC[plc.FC, plc.PnFkp], error) {
	r, lcb, err := d.locate(fib.IdxPlcfBteChpx)
	if err != nil || r == nil {
		return nil, err
	}
	return plc.DecodePlcBte(r, lcb, "PlcBteChpx")
}

// ParagraphBins returns the FC ranges of the paragraph formatting pages.
func (d *Document) ParagraphBins() (*plc.PLC[plc.FC, plc.PnFkp], error) {
	r, lcb, err := d.locate(fib.IdxPlcfBtePapx)
	if err != nil || r == nil {
		return nil, err
	}
	return plc.DecodePlcBte(r, lcb, "PlcBtePapx")
}

// HeaderStories returns the story boundaries inside the header document.
func (d *Document) HeaderStories() (*plc.PLC[plc.CP, plc.Empty], error) {
	r, lcb, err := d.locate(fib.IdxPlcfHdd)
	if err != nil || r == nil {
		return nil, err
	}
	return plc.DecodePlcfHdd(r, lcb)
}
