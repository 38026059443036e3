package samples

import (
	"github.com/tengyifei/llcpptransformer/coding"
)

// Element types used by the sequence fixtures.

// PackedTriple is a 3-byte struct with byte alignment; its vector stride
// still rounds to 4 under the natural-alignment law.
var (
	PackedTripleOld = &coding.Type{
		Kind:       coding.KindStruct,
		InlineSize: 3,
		Name:       "PackedTriple",
	}
	PackedTripleV1 = &coding.Type{
		Kind:       coding.KindStruct,
		InlineSize: 3,
		Name:       "PackedTriple",
	}
)

// AlignedTriple carries 3 data bytes and a trailing padding byte, for an
// inline size of 4.
var (
	AlignedTripleOld = &coding.Type{
		Kind:       coding.KindStruct,
		Fields:     []coding.Field{{Offset: 3, Padding: 1}},
		InlineSize: 4,
		Name:       "AlignedTriple",
	}
	AlignedTripleV1 = &coding.Type{
		Kind:       coding.KindStruct,
		Fields:     []coding.Field{{Offset: 3, Padding: 1}},
		InlineSize: 4,
		Name:       "AlignedTriple",
	}
)

var rawHandle = &coding.Type{
	Kind:     coding.KindHandle,
	Nullable: true,
	Name:     "handle",
}

var boundedString = &coding.Type{
	Kind:    coding.KindString,
	MaxSize: 32,
	Name:    "string:32",
}

// SmallUnion has a 4-byte payload slot; arm 2 holds a plain u32.
// Static form: 8 bytes, tag at 0, data at 4.
var (
	SmallUnionOld = &coding.Type{
		Kind: coding.KindUnion,
		Arms: []coding.Arm{
			{Padding: 3, Ordinal: 0x12e72834},
			{Padding: 0, Ordinal: 0x7fc2f0db},
			{Padding: 3, Ordinal: 0x55cd3f7a},
		},
		InlineSize: 8,
		DataOffset: 4,
		Name:       "SmallUnion",
	}
	SmallUnionV1 = &coding.Type{
		Kind: coding.KindUnion,
		Arms: []coding.Arm{
			{Ordinal: 0x12e72834},
			{Ordinal: 0x7fc2f0db},
			{Ordinal: 0x55cd3f7a},
		},
		InlineSize: 24,
		DataOffset: 8,
		Name:       "SmallUnion",
	}
)

// MidUnion has an 8-byte payload slot; arm 3 holds 6 plain bytes followed
// by 2 bytes of padding. Static form: 12 bytes, tag at 0, data at 4.
var (
	MidUnionOld = &coding.Type{
		Kind: coding.KindUnion,
		Arms: []coding.Arm{
			{Padding: 7, Ordinal: 0x63f97adf},
			{Padding: 4, Ordinal: 0x0ca61c71},
			{Padding: 2, Ordinal: 0x20d1d3bf},
		},
		InlineSize: 12,
		DataOffset: 4,
		Name:       "MidUnion",
	}
	MidUnionV1 = &coding.Type{
		Kind: coding.KindUnion,
		Arms: []coding.Arm{
			{Ordinal: 0x63f97adf},
			{Ordinal: 0x0ca61c71},
			{Ordinal: 0x20d1d3bf},
		},
		InlineSize: 24,
		DataOffset: 8,
		Name:       "MidUnion",
	}
)

// BigUnion has a 16-byte payload slot and 8-byte alignment; arm 3 holds 16
// plain bytes. Static form: 24 bytes, tag widened to u64, data at 8.
var (
	BigUnionOld = &coding.Type{
		Kind: coding.KindUnion,
		Arms: []coding.Arm{
			{Padding: 15, Ordinal: 0x7e0a7b3c},
			{Padding: 8, Ordinal: 0x4e1c2a95},
			{Padding: 0, Ordinal: 0x3404559b},
		},
		InlineSize: 24,
		DataOffset: 8,
		Name:       "BigUnion",
	}
	BigUnionV1 = &coding.Type{
		Kind: coding.KindUnion,
		Arms: []coding.Arm{
			{Ordinal: 0x7e0a7b3c},
			{Ordinal: 0x4e1c2a95},
			{Ordinal: 0x3404559b},
		},
		InlineSize: 24,
		DataOffset: 8,
		Name:       "BigUnion",
	}
)

// NestedUnion's arms are themselves unions, so its payload slot is sized by
// BigUnion (24 bytes) and the smaller arms carry trailing padding.
var (
	NestedUnionOld = &coding.Type{
		Kind: coding.KindUnion,
		Arms: []coding.Arm{
			{Type: SmallUnionOld, Padding: 16, Ordinal: 0x20aadd60},
			{Type: MidUnionOld, Padding: 12, Ordinal: 0x49b1e353},
			{Type: BigUnionOld, Padding: 0, Ordinal: 0x06722d1f},
		},
		InlineSize: 32,
		DataOffset: 8,
		Name:       "NestedUnion",
	}
	NestedUnionV1 = &coding.Type{
		Kind: coding.KindUnion,
		Arms: []coding.Arm{
			{Type: SmallUnionV1, Ordinal: 0x20aadd60},
			{Type: MidUnionV1, Ordinal: 0x49b1e353},
			{Type: BigUnionV1, Ordinal: 0x06722d1f},
		},
		InlineSize: 24,
		DataOffset: 8,
		Name:       "NestedUnion",
	}
)

// Sequence payload descriptors for SeqUnion.
var (
	byteVectorOld = &coding.Type{
		Kind:        coding.KindVector,
		ElementSize: 1,
		Nullable:    true,
		Name:        "vector<uint8>",
	}
	byteVectorV1 = &coding.Type{
		Kind:        coding.KindVector,
		ElementSize: 1,
		Nullable:    true,
		Name:        "vector<uint8>",
	}

	packedTripleVectorOld = &coding.Type{
		Kind:        coding.KindVector,
		Element:     PackedTripleOld,
		ElementSize: 3,
		Name:        "vector<PackedTriple>",
	}
	packedTripleVectorV1 = &coding.Type{
		Kind:        coding.KindVector,
		Element:     PackedTripleV1,
		ElementSize: 3,
		Name:        "vector<PackedTriple>",
	}

	alignedTripleVectorOld = &coding.Type{
		Kind:        coding.KindVector,
		Element:     AlignedTripleOld,
		ElementSize: 4,
		Name:        "vector<AlignedTriple>",
	}
	alignedTripleVectorV1 = &coding.Type{
		Kind:        coding.KindVector,
		Element:     AlignedTripleV1,
		ElementSize: 4,
		Name:        "vector<AlignedTriple>",
	}

	handleVectorOld = &coding.Type{
		Kind:        coding.KindVector,
		Element:     rawHandle,
		ElementSize: 4,
		Name:        "vector<handle>",
	}
	handleVectorV1 = &coding.Type{
		Kind:        coding.KindVector,
		Element:     rawHandle,
		ElementSize: 4,
		Name:        "vector<handle>",
	}

	packedTripleArrayOld = &coding.Type{
		Kind:         coding.KindArray,
		Element:      PackedTripleOld,
		ElementCount: 2,
		ElementSize:  3,
		Name:         "array<PackedTriple,2>",
	}
	packedTripleArrayV1 = &coding.Type{
		Kind:         coding.KindArray,
		Element:      PackedTripleV1,
		ElementCount: 2,
		ElementSize:  3,
		Name:         "array<PackedTriple,2>",
	}

	alignedTripleArrayOld = &coding.Type{
		Kind:         coding.KindArray,
		Element:      AlignedTripleOld,
		ElementCount: 2,
		ElementSize:  4,
		Name:         "array<AlignedTriple,2>",
	}
	alignedTripleArrayV1 = &coding.Type{
		Kind:         coding.KindArray,
		Element:      AlignedTripleV1,
		ElementCount: 2,
		ElementSize:  4,
		Name:         "array<AlignedTriple,2>",
	}

	smallUnionVectorOld = &coding.Type{
		Kind:        coding.KindVector,
		Element:     SmallUnionOld,
		ElementSize: 8,
		Name:        "vector<SmallUnion>",
	}
	smallUnionVectorV1 = &coding.Type{
		Kind:        coding.KindVector,
		Element:     SmallUnionV1,
		ElementSize: 24,
		Name:        "vector<SmallUnion>",
	}
)

// SeqUnion's arms exercise every sequence shape: vectors, strings, handle
// vectors, arrays, and a vector of unions. Every arm's inline footprint is
// 16 bytes or less, so the static payload slot is 16 with 8-byte alignment.
var (
	SeqUnionOld = &coding.Type{
		Kind: coding.KindUnion,
		Arms: []coding.Arm{
			{Type: byteVectorOld, Padding: 0, Ordinal: 0x79c3ccad},
			{Type: boundedString, Padding: 0, Ordinal: 0x3b314338},
			{Type: packedTripleVectorOld, Padding: 0, Ordinal: 0x4bc13cdc},
			{Type: alignedTripleVectorOld, Padding: 0, Ordinal: 0x1d08aa3c},
			{Type: handleVectorOld, Padding: 0, Ordinal: 0x471eaa76},
			{Type: packedTripleArrayOld, Padding: 10, Ordinal: 0x5ea0a810},
			{Type: alignedTripleArrayOld, Padding: 8, Ordinal: 0x5cf8b70d},
			{Type: smallUnionVectorOld, Padding: 0, Ordinal: 0x2b768c31},
		},
		InlineSize: 24,
		DataOffset: 8,
		Name:       "SeqUnion",
	}
	SeqUnionV1 = &coding.Type{
		Kind: coding.KindUnion,
		Arms: []coding.Arm{
			{Type: byteVectorV1, Ordinal: 0x79c3ccad},
			{Type: boundedString, Ordinal: 0x3b314338},
			{Type: packedTripleVectorV1, Ordinal: 0x4bc13cdc},
			{Type: alignedTripleVectorV1, Ordinal: 0x1d08aa3c},
			{Type: handleVectorV1, Ordinal: 0x471eaa76},
			{Type: packedTripleArrayV1, Ordinal: 0x5ea0a810},
			{Type: alignedTripleArrayV1, Ordinal: 0x5cf8b70d},
			{Type: smallUnionVectorV1, Ordinal: 0x2b768c31},
		},
		InlineSize: 24,
		DataOffset: 8,
		Name:       "SeqUnion",
	}
)

// Wrapped structs: a u32 on either side of the interesting member, the
// shape that flushes out inter-field padding differences between dialects.

var (
	WrappedSmallOld = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4},
			{Type: SmallUnionOld, Offset: 4},
			{Offset: 16},
		},
		InlineSize: 16,
		Name:       "WrappedSmall",
	}
	WrappedSmallV1 = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4, Padding: 4},
			{Type: SmallUnionV1, Offset: 8},
			{Offset: 36, Padding: 4},
		},
		InlineSize: 40,
		Name:       "WrappedSmall",
	}

	WrappedMidOld = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4},
			{Type: MidUnionOld, Offset: 4},
			{Offset: 20},
		},
		InlineSize: 20,
		Name:       "WrappedMid",
	}
	WrappedMidV1 = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4, Padding: 4},
			{Type: MidUnionV1, Offset: 8},
			{Offset: 36, Padding: 4},
		},
		InlineSize: 40,
		Name:       "WrappedMid",
	}

	WrappedBigOld = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4, Padding: 4},
			{Type: BigUnionOld, Offset: 8},
			{Offset: 36, Padding: 4},
		},
		InlineSize: 40,
		Name:       "WrappedBig",
	}
	WrappedBigV1 = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4, Padding: 4},
			{Type: BigUnionV1, Offset: 8},
			{Offset: 36, Padding: 4},
		},
		InlineSize: 40,
		Name:       "WrappedBig",
	}

	WrappedNestedOld = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4, Padding: 4},
			{Type: NestedUnionOld, Offset: 8},
			{Offset: 44, Padding: 4},
		},
		InlineSize: 48,
		Name:       "WrappedNested",
	}
	WrappedNestedV1 = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4, Padding: 4},
			{Type: NestedUnionV1, Offset: 8},
			{Offset: 36, Padding: 4},
		},
		InlineSize: 40,
		Name:       "WrappedNested",
	}

	WrappedSeqOld = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4, Padding: 4},
			{Type: SeqUnionOld, Offset: 8},
			{Offset: 36, Padding: 4},
		},
		InlineSize: 40,
		Name:       "WrappedSeq",
	}
	WrappedSeqV1 = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4, Padding: 4},
			{Type: SeqUnionV1, Offset: 8},
			{Offset: 36, Padding: 4},
		},
		InlineSize: 40,
		Name:       "WrappedSeq",
	}
)

// WrappedOptional carries a nullable pointer to WrappedSmall.
var (
	wrappedSmallPointerOld = &coding.Type{
		Kind:    coding.KindStructPointer,
		Element: WrappedSmallOld,
		Name:    "WrappedSmall?",
	}
	wrappedSmallPointerV1 = &coding.Type{
		Kind:    coding.KindStructPointer,
		Element: WrappedSmallV1,
		Name:    "WrappedSmall?",
	}

	WrappedOptionalOld = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4, Padding: 4},
			{Type: wrappedSmallPointerOld, Offset: 8},
			{Offset: 20, Padding: 4},
		},
		InlineSize: 24,
		Name:       "WrappedOptional",
	}
	WrappedOptionalV1 = &coding.Type{
		Kind: coding.KindStruct,
		Fields: []coding.Field{
			{Offset: 4, Padding: 4},
			{Type: wrappedSmallPointerV1, Offset: 8},
			{Offset: 20, Padding: 4},
		},
		InlineSize: 24,
		Name:       "WrappedOptional",
	}
)

func init() {
	coding.LinkAlts(PackedTripleOld, PackedTripleV1)
	coding.LinkAlts(AlignedTripleOld, AlignedTripleV1)
	coding.LinkAlts(SmallUnionOld, SmallUnionV1)
	coding.LinkAlts(MidUnionOld, MidUnionV1)
	coding.LinkAlts(BigUnionOld, BigUnionV1)
	coding.LinkAlts(NestedUnionOld, NestedUnionV1)
	coding.LinkAlts(SeqUnionOld, SeqUnionV1)
	coding.LinkAlts(byteVectorOld, byteVectorV1)
	coding.LinkAlts(packedTripleVectorOld, packedTripleVectorV1)
	coding.LinkAlts(alignedTripleVectorOld, alignedTripleVectorV1)
	coding.LinkAlts(handleVectorOld, handleVectorV1)
	coding.LinkAlts(packedTripleArrayOld, packedTripleArrayV1)
	coding.LinkAlts(alignedTripleArrayOld, alignedTripleArrayV1)
	coding.LinkAlts(smallUnionVectorOld, smallUnionVectorV1)
	coding.LinkAlts(wrappedSmallPointerOld, wrappedSmallPointerV1)
	coding.LinkAlts(WrappedSmallOld, WrappedSmallV1)
	coding.LinkAlts(WrappedMidOld, WrappedMidV1)
	coding.LinkAlts(WrappedBigOld, WrappedBigV1)
	coding.LinkAlts(WrappedNestedOld, WrappedNestedV1)
	coding.LinkAlts(WrappedSeqOld, WrappedSeqV1)
	coding.LinkAlts(WrappedOptionalOld, WrappedOptionalV1)
}
