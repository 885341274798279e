package piece

import (
	"github.com/wippyai/msdoc/errors"
	"github.com/wippyai/msdoc/plc"
)

// CP is a character position.
type CP = plc.CP

// SubDocument identifies one story of the document text.
type SubDocument int

// Sub-documents in CP order.
const (
	Main SubDocument = iota
	Footnote
	Header
	Annotation
	Endnote
	Textbox
	HeaderTextbox
)

var subDocumentNames = [...]string{
	Main:          "main",
	Footnote:      "footnote",
	Header:        "header",
	Annotation:    "annotation",
	Endnote:       "endnote",
	Textbox:       "textbox",
	HeaderTextbox: "header-textbox",
}

// AllSubDocuments lists every sub-document in CP order.
var AllSubDocuments = []SubDocument{Main, Footnote, Header, Annotation, Endnote, Textbox, HeaderTextbox}

func (s SubDocument) String() string {
	if s >= 0 && int(s) < len(subDocumentNames) {
		return subDocumentNames[s]
	}
	return "unknown"
}

// ParseSubDocument maps a name produced by String back to its value.
func ParseSubDocument(name string) (SubDocument, bool) {
	for i, n := range subDocumentNames {
		if n == name {
			return SubDocument(i), true
		}
	}
	return 0, false
}

// SubDocuments holds the CP length of every story, as declared by the FIB.
type SubDocuments struct {
	CcpText    CP
	CcpFtn     CP
	CcpHdd     CP
	CcpAtn     CP
	CcpEdn     CP
	CcpTxbx    CP
	CcpHdrTxbx CP
}

// Length returns the CP count of sd.
func (s SubDocuments) Length(sd SubDocument) CP {
	switch sd {
	case Main:
		return s.CcpText
	case Footnote:
		return s.CcpFtn
	case Header:
		return s.CcpHdd
	case Annotation:
		return s.CcpAtn
	case Endnote:
		return s.CcpEdn
	case Textbox:
		return s.CcpTxbx
	case HeaderTextbox:
		return s.CcpHdrTxbx
	}
	return 0
}

// Validate checks every length is non-negative.
func (s SubDocuments) Validate() error {
	for _, sd := range AllSubDocuments {
		if n := s.Length(sd); n < 0 {
			return errors.OutOfRange(errors.PhaseDecode, []string{"FibRgLw97", "ccp" + sd.String()}, n, 0, "2^31-1")
		}
	}
	return nil
}

// Range returns the [start, end) CP range of sd in the global CP space.
func (s SubDocuments) Range(sd SubDocument) (start, end CP) {
	for _, prev := range AllSubDocuments {
		if prev == sd {
			break
		}
		start += s.Length(prev)
	}
	return start, start + s.Length(sd)
}

// HasAuxiliary reports whether any story other than the main text is
// non-empty.
func (s SubDocuments) HasAuxiliary() bool {
	for _, sd := range AllSubDocuments[1:] {
		if s.Length(sd) != 0 {
			return true
		}
	}
	return false
}

// LastCP is the CP the piece table must end at: ccpText alone when every
// other story is empty, otherwise the sum of all lengths plus the final
// paragraph mark that separates the last story.
func (s SubDocuments) LastCP() CP {
	if !s.HasAuxiliary() {
		return s.CcpText
	}
	var total CP
	for _, sd := range AllSubDocuments {
		total += s.Length(sd)
	}
	return total + 1
}
