package transformer

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/tengyifei/llcpptransformer/coding"
	"github.com/tengyifei/llcpptransformer/errors"
	"github.com/tengyifei/llcpptransformer/samples"
)

func TestTransformNone(t *testing.T) {
	dst := []byte{0xcc, 0xcc, 0xcc, 0xcc}
	n, err := Transform(None, samples.WrappedSmallV1, []byte{1, 2, 3, 4}, dst)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if n != 0 {
		t.Errorf("length: got %d, want 0", n)
	}
	for _, b := range dst {
		if b != 0xcc {
			t.Fatal("identity direction wrote to the destination")
		}
	}
}

func TestTransformBadArguments(t *testing.T) {
	src := make([]byte, 64)
	dst := make([]byte, 64)

	tests := []struct {
		name      string
		direction Direction
		root      *coding.Type
	}{
		{"unknown direction", Direction(7), samples.WrappedSmallV1},
		{"nil root", V1ToOld, nil},
		{"vector root", V1ToOld, &coding.Type{Kind: coding.KindVector, ElementSize: 1}},
		{"extensible union root", V1ToOld, &coding.Type{Kind: coding.KindExtensibleUnion}},
		{"table root", OldToV1, &coding.Type{Kind: coding.KindTable}},
		{"root without alt", OldToV1, &coding.Type{Kind: coding.KindStruct, InlineSize: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Transform(tt.direction, tt.root, src, dst)
			if errors.KindOf(err) != errors.KindInvalidArgs {
				t.Errorf("got %v, want invalid_args", err)
			}
		})
	}
}

func TestTransformUnknownOrdinal(t *testing.T) {
	src := append([]byte(nil), wrappedSmallV1()...)
	binary.LittleEndian.PutUint32(src[8:], 0xdeadbeef)
	dst := make([]byte, MaxMessageBytes)

	_, err := Transform(V1ToOld, samples.WrappedSmallV1, src, dst)
	if errors.KindOf(err) != errors.KindBadState {
		t.Errorf("got %v, want bad_state", err)
	}
}

func TestTransformUnknownTag(t *testing.T) {
	old := pairByName(t, "wrapped-small").OldBytes
	for _, tag := range []uint32{0, 4, 99} {
		src := append([]byte(nil), old...)
		binary.LittleEndian.PutUint32(src[4:], tag)
		dst := make([]byte, MaxMessageBytes)

		_, err := Transform(OldToV1, samples.WrappedSmallOld, src, dst)
		if errors.KindOf(err) != errors.KindBadState {
			t.Errorf("tag %d: got %v, want bad_state", tag, err)
		}
	}
}

func TestTransformDestinationTooSmall(t *testing.T) {
	src := wrappedSmallV1()
	for _, size := range []int{0, 4, 15} {
		_, err := Transform(V1ToOld, samples.WrappedSmallV1, src, make([]byte, size))
		if errors.KindOf(err) != errors.KindBufferTooSmall {
			t.Errorf("dst size %d: got %v, want buffer_too_small", size, err)
		}
	}
}

func TestTransformTruncatedSource(t *testing.T) {
	src := wrappedSmallV1()
	for _, size := range []int{4, 12, 40} {
		_, err := Transform(V1ToOld, samples.WrappedSmallV1, src[:size], make([]byte, MaxMessageBytes))
		if errors.KindOf(err) != errors.KindBadState {
			t.Errorf("src size %d: got %v, want bad_state", size, err)
		}
	}
}

func TestTransformRejectsTableField(t *testing.T) {
	table := &coding.Type{Kind: coding.KindTable, Name: "Options"}
	old := &coding.Type{
		Kind:       coding.KindStruct,
		Fields:     []coding.Field{{Type: table, Offset: 0}},
		InlineSize: 16,
	}
	v1 := &coding.Type{
		Kind:       coding.KindStruct,
		Fields:     []coding.Field{{Type: table, Offset: 0}},
		InlineSize: 16,
	}
	coding.LinkAlts(old, v1)

	_, err := Transform(OldToV1, old, make([]byte, 16), make([]byte, 64))
	if errors.KindOf(err) != errors.KindBadState {
		t.Errorf("got %v, want bad_state", err)
	}
}

func TestInlineSize(t *testing.T) {
	tests := []struct {
		name string
		typ  *coding.Type
		want uint32
	}{
		{"nil is a presence word", nil, 8},
		{"struct pointer", &coding.Type{Kind: coding.KindStructPointer}, 8},
		{"union pointer", &coding.Type{Kind: coding.KindUnionPointer}, 8},
		{"string", &coding.Type{Kind: coding.KindString}, 16},
		{"vector", &coding.Type{Kind: coding.KindVector, ElementSize: 4}, 16},
		{"struct", samples.WrappedSmallOld, 16},
		{"static union", samples.BigUnionOld, 24},
		{"extensible footprint", samples.BigUnionV1, 24},
		{"array", &coding.Type{Kind: coding.KindArray, ElementCount: 3, ElementSize: 3, ElementPadding: 1}, 12},
		{"raw extensible union", &coding.Type{Kind: coding.KindExtensibleUnion}, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inlineSize(tt.typ)
			if err != nil {
				t.Fatalf("inlineSize: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}

	for _, k := range []coding.Kind{coding.KindPrimitive, coding.KindEnum, coding.KindBits, coding.KindHandle} {
		if _, err := inlineSize(&coding.Type{Kind: k}); errors.KindOf(err) != errors.KindBadState {
			t.Errorf("%s: got %v, want bad_state", k, err)
		}
	}
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{None, "none"},
		{V1ToOld, "v1-to-old"},
		{OldToV1, "old-to-v1"},
		{Direction(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Direction(%d).String(): got %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestTransformPureDataStruct(t *testing.T) {
	// A struct with no traversed members transforms to a verbatim copy of
	// its inline bytes in either direction.
	old := &coding.Type{
		Kind:       coding.KindStruct,
		Fields:     []coding.Field{{Offset: 14, Padding: 2}},
		InlineSize: 16,
		Name:       "PlainData",
	}
	v1 := &coding.Type{
		Kind:       coding.KindStruct,
		Fields:     []coding.Field{{Offset: 14, Padding: 2}},
		InlineSize: 16,
		Name:       "PlainData",
	}
	coding.LinkAlts(old, v1)

	src := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 0, 0}
	for _, dir := range []Direction{V1ToOld, OldToV1} {
		root := v1
		if dir == OldToV1 {
			root = old
		}
		dst := make([]byte, 16)
		for i := range dst {
			dst[i] = 0xcc
		}
		n, err := Transform(dir, root, src, dst)
		if err != nil {
			t.Fatalf("%s: %v", dir, err)
		}
		if n != 16 {
			t.Errorf("%s: length %d, want 16", dir, n)
		}
		if !bytes.Equal(dst, src) {
			t.Errorf("%s: got % x, want % x", dir, dst, src)
		}
	}
}

func TestTransformLeavesSourceIntact(t *testing.T) {
	p := pairByName(t, "wrapped-nested-big")
	src := append([]byte(nil), p.V1Bytes...)
	dst := make([]byte, MaxMessageBytes)

	if _, err := Transform(V1ToOld, p.V1, src, dst); err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if !bytes.Equal(src, p.V1Bytes) {
		t.Error("source buffer was modified")
	}
}

func wrappedSmallV1() []byte {
	for _, p := range samples.Pairs() {
		if p.Name == "wrapped-small" {
			return append([]byte(nil), p.V1Bytes...)
		}
	}
	return nil
}

func pairByName(t *testing.T, name string) samples.Pair {
	t.Helper()
	for _, p := range samples.Pairs() {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("no fixture pair named %q", name)
	return samples.Pair{}
}
