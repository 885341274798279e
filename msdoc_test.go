package msdoc_test

import (
	"encoding/binary"
	stderrors "errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/msdoc"
	"github.com/wippyai/msdoc/errors"
	"github.com/wippyai/msdoc/piece"
	"github.com/wippyai/msdoc/testbed"
)

func TestOpenFailures(t *testing.T) {
	encrypted := testbed.New().Story(piece.Main, "x\r", false)
	encrypted.Encrypted = true

	wrongTable := testbed.New().Story(piece.Main, "x\r", false).Build()
	wrongTable.Table1, wrongTable.Table0 = wrongTable.Table0, nil
	// FIB still selects 0Table

	tests := []struct {
		name    string
		streams msdoc.Streams
		opts    []msdoc.Option
		phase     errors.Phase
		kind      errors.Kind
		corrupted bool
	}{
		{"empty WordDocument", msdoc.Streams{}, nil, errors.PhaseLoad, errors.KindInvalidInput, false},
		{"encrypted", encrypted.Build(), nil, errors.PhaseLoad, errors.KindUnsupported, false},
		{"missing table stream", wrongTable, nil, errors.PhaseLoad, errors.KindInconsistent, true},
		{"stream too large", testbed.New().Build(), []msdoc.Option{msdoc.WithMaxStreamSize(1024)}, errors.PhaseLoad, errors.KindOutOfRange, true},
		{"not a FIB", msdoc.Streams{WordDocument: make([]byte, 64)}, nil, errors.PhaseDecode, errors.KindMagicMismatch, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := msdoc.Open(tt.streams, tt.opts...)
			var e *errors.Error
			if !stderrors.As(err, &e) {
				t.Fatalf("expected *errors.Error, got %v", err)
			}
			if got := errors.IsCorrupted(err); got != tt.corrupted {
				t.Errorf("IsCorrupted = %v, want %v", got, tt.corrupted)
			}
			var target error = &errors.Error{Phase: tt.phase, Kind: tt.kind}
			if !stderrors.Is(err, target) {
				t.Errorf("err = %v, want phase %s kind %s", err, tt.phase, tt.kind)
			}
		})
	}
}

func TestOpenWithoutLimit(t *testing.T) {
	streams := testbed.New().Story(piece.Main, "unbounded\r", false).Build()
	if _, err := msdoc.Open(streams, msdoc.WithMaxStreamSize(0)); err != nil {
		t.Fatalf("Open: %v", err)
	}
}

func TestOpenLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	streams := testbed.New().Story(piece.Main, "logged\r", false).Build()
	doc, err := msdoc.Open(streams, msdoc.WithLogger(zap.New(core)))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	entries := logs.FilterMessage("document opened").All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["table_stream"] != "0Table" || fields["pieces"] != int64(doc.Pieces().Len()) {
		t.Errorf("fields = %v", fields)
	}
}

func TestEncryptedReportsFlag(t *testing.T) {
	b := testbed.New().Story(piece.Main, "x\r", false)
	b.Encrypted = true
	_, err := msdoc.Open(b.Build())
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("err = %v", err)
	}
	if len(e.Path) != 3 || e.Path[2] != "fEncrypted" || e.Detail == "" {
		t.Errorf("path = %v detail = %q", e.Path, e.Detail)
	}
}

func TestOpenForwardsLoggerToDecoders(t *testing.T) {
	streams := testbed.New().Story(piece.Main, "tabs\r", false).Build()
	binary.LittleEndian.PutUint16(streams.Table0[10:], 708)

	core, logs := observer.New(zapcore.WarnLevel)
	if _, err := msdoc.Open(streams, msdoc.WithLogger(zap.New(core))); err != nil {
		t.Fatalf("Open: %v", err)
	}
	entries := logs.FilterField(zap.Uint16("dxa_tab", 708)).All()
	if len(entries) != 1 {
		t.Fatalf("warn entries = %d, want 1 (all: %v)", len(entries), logs.All())
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Errorf("level = %s", entries[0].Level)
	}
}

func TestDocumentAccessors(t *testing.T) {
	b := testbed.New().Story(piece.Main, "abc\r", false)
	b.Data = []byte{1, 2, 3}
	doc, err := msdoc.Open(b.Build(), msdoc.WithLogger(nil))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(doc.Data()) != 3 || doc.Clx() == nil || len(doc.Clx().RgPrc) != 0 {
		t.Error("accessors")
	}
	if doc.Fib().SubDocuments() != doc.SubDocuments() {
		t.Error("SubDocuments disagree")
	}
	if doc.Dop().Base().DxaTab != 720 {
		t.Errorf("dxaTab = %d", doc.Dop().Base().DxaTab)
	}
	if _, err := doc.TextRange(3, 2); errors.KindOf(err) != errors.KindInvalidInput {
		t.Errorf("reversed range kind = %q", errors.KindOf(err))
	}
}
