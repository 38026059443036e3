package coding

import (
	"strings"
	"testing"
)

func unionPair() (*Type, *Type) {
	old := &Type{
		Kind: KindUnion,
		Arms: []Arm{
			{Padding: 3, Ordinal: 0x11111111},
			{Padding: 0, Ordinal: 0x22222222},
		},
		InlineSize: 8,
		DataOffset: 4,
		Name:       "U",
	}
	v1 := &Type{
		Kind: KindUnion,
		Arms: []Arm{
			{Ordinal: 0x11111111},
			{Ordinal: 0x22222222},
		},
		InlineSize: 24,
		DataOffset: 8,
		Name:       "U",
	}
	LinkAlts(old, v1)
	return old, v1
}

func structPair(member *Type, memberAlt *Type) (*Type, *Type) {
	old := &Type{
		Kind: KindStruct,
		Fields: []Field{
			{Offset: 4},
			{Type: member, Offset: 4},
		},
		InlineSize: 12,
		Name:       "S",
	}
	v1 := &Type{
		Kind: KindStruct,
		Fields: []Field{
			{Offset: 4, Padding: 4},
			{Type: memberAlt, Offset: 8},
		},
		InlineSize: 32,
		Name:       "S",
	}
	LinkAlts(old, v1)
	return old, v1
}

func TestValidateAccepts(t *testing.T) {
	uOld, uV1 := unionPair()
	sOld, _ := structPair(uOld, uV1)

	if err := Validate(sOld); err != nil {
		t.Errorf("valid table rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Type
		want  string
	}{
		{
			name: "missing alt",
			build: func() *Type {
				return &Type{Kind: KindStruct, Name: "S"}
			},
			want: "no alt",
		},
		{
			name: "non-reciprocal alt",
			build: func() *Type {
				a := &Type{Kind: KindStruct, Name: "A"}
				b := &Type{Kind: KindStruct, Name: "B"}
				c := &Type{Kind: KindStruct, Name: "C"}
				a.Alt = b
				b.Alt = c
				c.Alt = b
				return a
			},
			want: "not reciprocal",
		},
		{
			name: "field count mismatch",
			build: func() *Type {
				a := &Type{Kind: KindStruct, Fields: []Field{{Offset: 4}}}
				b := &Type{Kind: KindStruct}
				a.Alt = b
				b.Alt = a
				return a
			},
			want: "field counts differ",
		},
		{
			name: "arm count mismatch",
			build: func() *Type {
				old, v1 := unionPair()
				v1.Arms = v1.Arms[:1]
				return old
			},
			want: "arm counts differ",
		},
		{
			name: "bad data offset",
			build: func() *Type {
				old, _ := unionPair()
				old.DataOffset = 6
				return old
			},
			want: "neither 4 nor 8",
		},
		{
			name: "zero ordinal",
			build: func() *Type {
				old, v1 := unionPair()
				old.Arms[0].Ordinal = 0
				v1.Arms[0].Ordinal = 0
				return old
			},
			want: "ordinal 0",
		},
		{
			name: "duplicate ordinal",
			build: func() *Type {
				old, v1 := unionPair()
				old.Arms[1].Ordinal = old.Arms[0].Ordinal
				v1.Arms[1].Ordinal = v1.Arms[0].Ordinal
				return old
			},
			want: "share ordinal",
		},
		{
			name: "ordinal mismatch across dialects",
			build: func() *Type {
				old, _ := unionPair()
				old.Arms[1].Ordinal = 0x33333333
				return old
			},
			want: "ordinal mismatch",
		},
		{
			name: "pointer without pointee",
			build: func() *Type {
				return &Type{Kind: KindStructPointer, Name: "P"}
			},
			want: "no pointee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.build())
			if err == nil {
				t.Fatal("invalid table accepted")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestValidateTerminatesOnCycles(t *testing.T) {
	// Alt edges form a two-node cycle; the visit set must break it.
	old, _ := unionPair()
	vec := &Type{Kind: KindVector, Element: nil, ElementSize: 1}
	vecAlt := &Type{Kind: KindVector, Element: nil, ElementSize: 1}
	LinkAlts(vec, vecAlt)
	old.Arms[0].Type = vec
	old.Alt.Arms[0].Type = vecAlt

	if err := Validate(old); err != nil {
		t.Errorf("cyclic but valid table rejected: %v", err)
	}
}
