package coding

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPrimitive, "primitive"},
		{KindStruct, "struct"},
		{KindStructPointer, "struct_pointer"},
		{KindUnion, "union"},
		{KindExtensibleUnion, "extensible_union"},
		{KindVector, "vector"},
		{KindTable, "table"},
		{Kind(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String(): got %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindIsScalar(t *testing.T) {
	scalars := []Kind{KindPrimitive, KindEnum, KindBits, KindHandle}
	for _, k := range scalars {
		if !k.IsScalar() {
			t.Errorf("%s should be scalar", k)
		}
	}
	others := []Kind{KindStruct, KindStructPointer, KindUnion, KindExtensibleUnion, KindArray, KindString, KindVector, KindTable}
	for _, k := range others {
		if k.IsScalar() {
			t.Errorf("%s should not be scalar", k)
		}
	}
}

func TestPrimitiveSize(t *testing.T) {
	tests := []struct {
		p    PrimitiveSubtype
		want uint32
	}{
		{Bool, 1},
		{Int8, 1},
		{Uint8, 1},
		{Int16, 2},
		{Uint16, 2},
		{Int32, 4},
		{Uint32, 4},
		{Float32, 4},
		{Int64, 8},
		{Uint64, 8},
		{Float64, 8},
	}
	for _, tt := range tests {
		if got := tt.p.Size(); got != tt.want {
			t.Errorf("%s.Size(): got %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestLinkAlts(t *testing.T) {
	a := &Type{
		Kind:   KindStruct,
		Fields: []Field{{Offset: 4}, {Type: &Type{Kind: KindString}, Offset: 8}},
	}
	b := &Type{
		Kind:   KindStruct,
		Fields: []Field{{Offset: 4}, {Type: &Type{Kind: KindString}, Offset: 8}},
	}
	LinkAlts(a, b)

	if a.Alt != b || b.Alt != a {
		t.Fatal("Alt pointers not reciprocal")
	}
	for i := range a.Fields {
		if a.Fields[i].Alt != &b.Fields[i] {
			t.Errorf("field %d: a side not linked", i)
		}
		if b.Fields[i].Alt != &a.Fields[i] {
			t.Errorf("field %d: b side not linked", i)
		}
	}
}
