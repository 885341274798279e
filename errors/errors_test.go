package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:     PhaseDecode,
				Kind:      KindMagicMismatch,
				Path:      []string{"Fib", "base", "wIdent"},
				Structure: "FibBase",
				Detail:    "got 0x1234, want 0xa5ec",
				Offset:    0,
				HasOffset: true,
			},
			contains: []string{"[decode]", "magic_mismatch", "Fib.base.wIdent", "(offset 0)", "FibBase", "want 0xa5ec"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseResolve,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[resolve]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindTruncated,
				Detail: "table stream",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "truncated", "table stream", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_NoOffsetWhenUnset(t *testing.T) {
	err := &Error{Phase: PhaseDecode, Kind: KindInconsistent}
	if strings.Contains(err.Error(), "offset") {
		t.Errorf("unexpected offset in %q", err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindTruncated,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindLengthMismatch,
		Path:  []string{"PlcPcd"},
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindLengthMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseResolve, Kind: KindLengthMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindOutOfRange}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDecode, Kind: KindLengthMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestIsCorrupted(t *testing.T) {
	base := LengthMismatch(PhaseDecode, []string{"Clx"}, 10, 12)
	wrapped := fmt.Errorf("open: %w", base)

	if !IsCorrupted(base) {
		t.Error("IsCorrupted(base) = false")
	}
	if !IsCorrupted(wrapped) {
		t.Error("IsCorrupted(wrapped) = false")
	}
	if IsCorrupted(errors.New("plain")) {
		t.Error("IsCorrupted(plain) = true")
	}
	if IsCorrupted(nil) {
		t.Error("IsCorrupted(nil) = true")
	}
	notCorrupted := []error{
		Unsupported(PhaseLoad, "encrypted"),
		fmt.Errorf("open: %w", InvalidInput(PhaseResolve, "range start after end")),
		New(PhaseConfig, KindOutOfRange).Build(),
	}
	for _, err := range notCorrupted {
		if IsCorrupted(err) {
			t.Errorf("IsCorrupted(%v) = true", err)
		}
	}
	if KindOf(wrapped) != KindLengthMismatch {
		t.Errorf("KindOf = %q", KindOf(wrapped))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("KindOf(plain) should be empty")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindInvalidEnum).
		Path("Clx", "clxt").
		Structure("Clx").
		At(17).
		Value(uint8(3)).
		Cause(cause).
		Detail("expected %#x or %#x", 1, 2).
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindInvalidEnum {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidEnum)
	}
	if len(err.Path) != 2 || err.Path[0] != "Clx" || err.Path[1] != "clxt" {
		t.Errorf("Path = %v, want [Clx clxt]", err.Path)
	}
	if err.Structure != "Clx" {
		t.Errorf("Structure = %v", err.Structure)
	}
	if !err.HasOffset || err.Offset != 17 {
		t.Errorf("Offset = %d/%v, want 17/true", err.Offset, err.HasOffset)
	}
	if err.Value != uint8(3) {
		t.Errorf("Value = %v, want 3", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected 0x1 or 0x2" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("MagicMismatch", func(t *testing.T) {
		err := MagicMismatch(PhaseDecode, []string{"wIdent"}, uint16(0x1234), uint16(0xA5EC))
		if err.Kind != KindMagicMismatch {
			t.Errorf("Kind = %v", err.Kind)
		}
		if !strings.Contains(err.Detail, "0xa5ec") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		err := OutOfRange(PhaseDecode, []string{"cchLeadingPunct"}, 70, 0, 51)
		if err.Kind != KindOutOfRange || err.Value != 70 {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("Inconsistent", func(t *testing.T) {
		err := Inconsistent(PhaseDecode, []string{"cswNew"}, "cswNew 5 needs nFibNew 0x112")
		if err.Kind != KindInconsistent {
			t.Errorf("Kind = %v", err.Kind)
		}
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		err := LengthMismatch(PhaseDecode, []string{"Dop"}, 500, 544)
		if err.Kind != KindLengthMismatch {
			t.Errorf("Kind = %v", err.Kind)
		}
		if !strings.Contains(err.Detail, "500") || !strings.Contains(err.Detail, "544") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("InvalidEnum", func(t *testing.T) {
		err := InvalidEnum(PhaseDecode, []string{"ch"}, uint8(0x16), "FldCh")
		if err.Kind != KindInvalidEnum || err.Structure != "FldCh" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		err := Truncated(PhaseDecode, 30, 4, 2)
		if err.Kind != KindTruncated || !err.HasOffset || err.Offset != 30 {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseResolve, []string{"cp"}, 10, 5)
		if err.Kind != KindOutOfBounds || err.Value != 10 {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseLoad, "encrypted document")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v", err.Kind)
		}
	})
}

func TestWithPath(t *testing.T) {
	inner := OutOfRange(PhaseDecode, []string{"cchFollowingPunct"}, 200, 0, 101)
	got := WithPath(inner, "Dop97", "doptypography")

	var e *Error
	if !errors.As(got, &e) {
		t.Fatal("WithPath lost *Error")
	}
	want := []string{"Dop97", "doptypography", "cchFollowingPunct"}
	if strings.Join(e.Path, ".") != strings.Join(want, ".") {
		t.Errorf("Path = %v, want %v", e.Path, want)
	}
	if len(inner.Path) != 1 {
		t.Error("WithPath mutated the original error")
	}

	plain := errors.New("plain")
	if WithPath(plain, "x") != plain {
		t.Error("WithPath should pass through non-*Error values")
	}
}
