package piece

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/wippyai/msdoc/errors"
)

func decoderFor(e Encoding) *encoding.Decoder {
	if e == Compressed {
		return charmap.Windows1252.NewDecoder()
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
}

// Text decodes the characters of [start, end) from the WordDocument stream.
func (t *Table) Text(word []byte, start, end CP) (string, error) {
	runs, err := t.Slice(start, end)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, run := range runs {
		from := uint64(run.Offset)
		to := from + uint64(run.ByteLen())
		if to > uint64(len(word)) {
			return "", errors.New(errors.PhaseResolve, errors.KindTruncated).
				Path("WordDocument").
				At(int(run.Offset)).
				Detail("text run [%d, %d) past end of stream (%d bytes)", from, to, len(word)).
				Build()
		}
		out, err := decoderFor(run.Encoding).Bytes(word[from:to])
		if err != nil {
			return "", errors.Wrap(errors.PhaseResolve, errors.KindInvalidInput, err, "decode "+run.Encoding.String()+" text")
		}
		b.Write(out)
	}
	return b.String(), nil
}

// SubDocumentText decodes the whole of one story.
func (t *Table) SubDocumentText(word []byte, subdocs SubDocuments, sd SubDocument) (string, error) {
	start, end := subdocs.Range(sd)
	return t.Text(word, start, end)
}
