package errors

import (
	"errors"
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
				Phase:  PhaseTransform,
				Kind:   KindBadState,
				Path:   []string{"payload", "arms[2]"},
				Detail: "ordinal 0xdeadbeef has no matching arm",
			},
			contains: []string{"[transform]", "bad_state", "payload.arms[2]", "0xdeadbeef"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseTransform,
				Kind:  KindBufferTooSmall,
			},
			contains: []string{"[transform]", "buffer_too_small"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCompile,
				Kind:   KindInvalidArgs,
				Detail: "arm counts differ",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[compile]", "invalid_args", "arm counts differ", "caused by", "underlying error"},
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

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseTransform,
		Kind:  KindBadState,
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
		Phase:  PhaseTransform,
		Kind:   KindBadState,
		Path:   []string{"foo"},
		Detail: "detail one",
	}

	same := &Error{Phase: PhaseTransform, Kind: KindBadState}
	if !errors.Is(err, same) {
		t.Error("errors with same phase and kind should match")
	}

	otherKind := &Error{Phase: PhaseTransform, Kind: KindInvalidArgs}
	if errors.Is(err, otherKind) {
		t.Error("errors with different kinds should not match")
	}

	otherPhase := &Error{Phase: PhaseCompile, Kind: KindBadState}
	if errors.Is(err, otherPhase) {
		t.Error("errors with different phases should not match")
	}

	if errors.Is(err, errors.New("plain")) {
		t.Error("structured error should not match a plain error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseTransform, KindBufferTooSmall).
		Path("root", "vector").
		Detail("write of %d bytes at offset %d", 16, 40).
		Cause(cause).
		Build()

	if err.Phase != PhaseTransform {
		t.Errorf("phase: got %q, want %q", err.Phase, PhaseTransform)
	}
	if err.Kind != KindBufferTooSmall {
		t.Errorf("kind: got %q, want %q", err.Kind, KindBufferTooSmall)
	}
	if len(err.Path) != 2 || err.Path[1] != "vector" {
		t.Errorf("path: got %v", err.Path)
	}
	if err.Detail != "write of 16 bytes at offset 40" {
		t.Errorf("detail: got %q", err.Detail)
	}
	if !errors.Is(err, err) || err.Cause != cause {
		t.Error("cause not preserved")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(InvalidArgs("nope")); got != KindInvalidArgs {
		t.Errorf("KindOf: got %q, want %q", got, KindInvalidArgs)
	}
	if got := KindOf(errors.New("plain")); got != Kind("") {
		t.Errorf("KindOf(plain): got %q, want empty", got)
	}
	if got := KindOf(nil); got != Kind("") {
		t.Errorf("KindOf(nil): got %q, want empty", got)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
		want string
	}{
		{"invalid args", InvalidArgs("unknown direction %d", 7), KindInvalidArgs, "unknown direction 7"},
		{"unknown ordinal", UnknownOrdinal(nil, 0x7fc2f0db), KindBadState, "0x7fc2f0db"},
		{"unknown tag", UnknownTag(nil, 9, 3), KindBadState, "tag 9 out of range (1..3)"},
		{"untransformable", Untransformable(nil, "table"), KindBadState, "table cannot be transformed"},
		{"src too short", SrcTooShort(40, 8, 44), KindBadState, "source offset 40"},
		{"dst too small", DstTooSmall(64, 16, 72), KindBufferTooSmall, "destination offset 64"},
		{"invalid table", InvalidTable([]string{"u"}, "data offset %d", 6), KindInvalidArgs, "data offset 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("kind: got %q, want %q", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.want) {
				t.Errorf("message %q does not contain %q", tt.err.Error(), tt.want)
			}
		})
	}
}
