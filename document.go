package msdoc

import (
	"go.uber.org/zap"

	"github.com/wippyai/msdoc/binary"
	"github.com/wippyai/msdoc/dop"
	"github.com/wippyai/msdoc/errors"
	"github.com/wippyai/msdoc/fib"
	"github.com/wippyai/msdoc/piece"
)

// DefaultMaxStreamSize bounds every stream passed to Open.
const DefaultMaxStreamSize = 512 << 20

// Streams holds the raw streams of one compound file. Table0 and Table1
// are the 0Table and 1Table streams; only the one the FIB selects is
// required. Data may be nil.
type Streams struct {
	WordDocument []byte
	Table0       []byte
	Table1       []byte
	Data         []byte
}

// Options configures Open.
type Options struct {
	Logger        *zap.Logger
	MaxStreamSize int64
}

// DefaultOptions returns the default Open configuration.
func DefaultOptions() Options {
	return Options{
		Logger:        Logger(),
		MaxStreamSize: DefaultMaxStreamSize,
	}
}

// Option adjusts Options.
type Option func(*Options)

// WithLogger sets the logger used by the Document.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMaxStreamSize overrides DefaultMaxStreamSize. Zero or less disables
// the limit.
func WithMaxStreamSize(n int64) Option {
	return func(o *Options) { o.MaxStreamSize = n }
}

// Document is an opened binary Word document.
type Document struct {
	fib    *fib.Fib
	dop    *dop.Dop
	clx    *piece.Clx
	pieces *piece.Table
	word   []byte
	table  []byte
	data   []byte
	log    *zap.Logger
}

// Open decodes the FIB, DOP and piece table of a document. Auxiliary
// structures are decoded on demand by the Document methods.
func Open(s Streams, opts ...Option) (*Document, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if err := checkSizes(s, o.MaxStreamSize); err != nil {
		return nil, err
	}
	if len(s.WordDocument) == 0 {
		return nil, errors.InvalidInput(errors.PhaseLoad, "empty WordDocument stream")
	}

	f, err := fib.Decode(binary.NewReader(s.WordDocument), o.Logger)
	if err != nil {
		return nil, err
	}
	if f.Base.FEncrypted || f.Base.FObfuscated {
		e := errors.Unsupported(errors.PhaseLoad, "encrypted or obfuscated documents are not supported")
		e.Path = []string{"Fib", "FibBase", "fEncrypted"}
		e.Value = f.Base.LKey
		return nil, e
	}

	table := s.Table0
	if f.Base.FWhichTblStm {
		table = s.Table1
	}
	if len(table) == 0 {
		return nil, errors.New(errors.PhaseLoad, errors.KindInconsistent).
			Path("Fib", "FibBase", "fWhichTblStm").
			Value(f.Base.FWhichTblStm).
			Detail("FIB selects %s, which is missing or empty", f.Base.TableStream()).
			Build()
	}

	d := &Document{
		fib:   f,
		word:  s.WordDocument,
		table: table,
		data:  s.Data,
		log:   o.Logger,
	}
	if d.dop, err = dop.Decode(binary.NewReader(table), f, d.log); err != nil {
		return nil, err
	}
	if err := d.loadPieces(); err != nil {
		return nil, err
	}

	d.log.Debug("document opened",
		zap.Uint16("nfib", f.NFib()),
		zap.Stringer("dop", d.dop.Version),
		zap.String("table_stream", f.Base.TableStream()),
		zap.Int("pieces", d.pieces.Len()),
		zap.Int32("last_cp", int32(d.pieces.LastCP())))
	return d, nil
}

func checkSizes(s Streams, limit int64) error {
	if limit <= 0 {
		return nil
	}
	for _, st := range []struct {
		name string
		buf  []byte
	}{
		{"WordDocument", s.WordDocument},
		{"0Table", s.Table0},
		{"1Table", s.Table1},
		{"Data", s.Data},
	} {
		if int64(len(st.buf)) > limit {
			return errors.New(errors.PhaseLoad, errors.KindOutOfRange).
				Path(st.name).
				Value(len(st.buf)).
				Detail("stream of %d bytes exceeds limit of %d", len(st.buf), limit).
				Build()
		}
	}
	return nil
}

func (d *Document) loadPieces() error {
	pair, _ := d.fib.Pair(fib.IdxClx)
	if pair.Empty() {
		return errors.New(errors.PhaseLoad, errors.KindInconsistent).
			Path("Fib", "lcbClx").
			Detail("document has no piece table").
			Build()
	}
	r, err := binary.NewReaderAt(d.table, int(pair.Fc))
	if err != nil {
		return errors.WithPath(err, "Fib", "fcClx")
	}
	if d.clx, err = piece.DecodeClx(r, pair.Lcb, d.fib.SubDocuments().LastCP()); err != nil {
		return err
	}
	d.pieces, err = piece.NewTable(d.clx.Pcdt.PlcPcd, d.log)
	return err
}

// Fib returns the decoded FIB.
func (d *Document) Fib() *fib.Fib { return d.fib }

// Dop returns the decoded document properties.
func (d *Document) Dop() *dop.Dop { return d.dop }

// Clx returns the decoded piece table container.
func (d *Document) Clx() *piece.Clx { return d.clx }

// Pieces returns the CP resolver.
func (d *Document) Pieces() *piece.Table { return d.pieces }

// Data returns the Data stream, nil when absent.
func (d *Document) Data() []byte { return d.data }

// SubDocuments returns the story lengths declared by the FIB.
func (d *Document) SubDocuments() piece.SubDocuments {
	return d.fib.SubDocuments()
}

// Resolve returns the WordDocument location of cp.
func (d *Document) Resolve(cp piece.CP) (piece.Location, error) {
	return d.pieces.Resolve(cp)
}

// Text decodes the whole of one story.
func (d *Document) Text(sd piece.SubDocument) (string, error) {
	return d.pieces.SubDocumentText(d.word, d.SubDocuments(), sd)
}

// TextRange decodes [start, end) of the global CP space.
func (d *Document) TextRange(start, end piece.CP) (string, error) {
	return d.pieces.Text(d.word, start, end)
}
