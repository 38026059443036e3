package samples

import (
	"github.com/tengyifei/llcpptransformer/coding"
)

// Pair couples one logical message with its encodings in both dialects.
// Transforming either encoding must reproduce the other byte for byte.
type Pair struct {
	Name string

	// Old and V1 are the root descriptors of the respective dialects.
	Old *coding.Type
	V1  *coding.Type

	OldBytes []byte
	V1Bytes  []byte
}

// WrappedSmall, arm 2 selected: a u32 payload in a 4-byte slot.
var (
	wrappedSmallV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0xdb, 0xf0, 0xc2, 0x7f, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x09, 0x0a, 0x0b, 0x0c, 0x00, 0x00, 0x00, 0x00, // payload, padding
	}
	wrappedSmallOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, // before
		0x02, 0x00, 0x00, 0x00, // tag
		0x09, 0x0a, 0x0b, 0x0c, // payload
		0x05, 0x06, 0x07, 0x08, // after
	}
)

// WrappedMid, arm 3 selected: 6 payload bytes in an 8-byte slot.
var (
	wrappedMidV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0xbf, 0xd3, 0xd1, 0x20, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0x00, 0x00, // payload, padding
	}
	wrappedMidOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, // before
		0x03, 0x00, 0x00, 0x00, // tag
		0xa0, 0xa1, 0xa2, 0xa3, // payload
		0xa4, 0xa5, 0x00, 0x00, // payload, padding
		0x05, 0x06, 0x07, 0x08, // after
	}
)

// WrappedBig, arm 3 selected: a 16-byte payload behind a widened u64 tag.
var (
	wrappedBigV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x9b, 0x55, 0x04, 0x34, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, // payload
		0xa8, 0xa9, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf, // payload
	}
	wrappedBigOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // tag (u64)
		0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, // payload
		0xa8, 0xa9, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf, // payload
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
	}
)

// WrappedNested, outer arm 1: a SmallUnion inside the 24-byte outer slot.
var (
	wrappedNestedSmallV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x60, 0xdd, 0xaa, 0x20, 0x00, 0x00, 0x00, 0x00, // outer ordinal, pad
		0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // outer envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // outer envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0xdb, 0xf0, 0xc2, 0x7f, 0x00, 0x00, 0x00, 0x00, // inner ordinal, pad
		0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // inner envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // inner envelope presence
		0x09, 0x0a, 0x0b, 0x0c, 0x00, 0x00, 0x00, 0x00, // inner payload, padding
	}
	wrappedNestedSmallOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // outer tag (u64)
		0x02, 0x00, 0x00, 0x00, // inner tag
		0x09, 0x0a, 0x0b, 0x0c, // inner payload
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // outer slot padding
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // outer slot padding
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
	}
)

// WrappedNested, outer arm 3: a BigUnion filling the outer slot exactly.
var (
	wrappedNestedBigV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x1f, 0x2d, 0x72, 0x06, 0x00, 0x00, 0x00, 0x00, // outer ordinal, pad
		0x28, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // outer envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // outer envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x9b, 0x55, 0x04, 0x34, 0x00, 0x00, 0x00, 0x00, // inner ordinal, pad
		0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // inner envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // inner envelope presence
		0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, // inner payload
		0xa8, 0xa9, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf, // inner payload
	}
	wrappedNestedBigOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // outer tag (u64)
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // inner tag (u64)
		0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0xa7, // inner payload
		0xa8, 0xa9, 0xaa, 0xab, 0xac, 0xad, 0xae, 0xaf, // inner payload
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
	}
)

// WrappedSeq, arm 1: a present byte vector of six elements.
var (
	wrappedSeqBytesV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0xad, 0xcc, 0xc3, 0x79, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x18, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // vector presence
		0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0x00, 0x00, // vector data, padding
	}
	wrappedSeqBytesOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // tag (u64)
		0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // vector presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0xa0, 0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0x00, 0x00, // vector data, padding
	}
)

// WrappedSeq, arm 1 with the vector absent: the zero header is carried
// through and nothing goes out of line.
var (
	wrappedSeqAbsentV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0xad, 0xcc, 0xc3, 0x79, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector absence
	}
	wrappedSeqAbsentOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // tag (u64)
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector absence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
	}
)

// WrappedSeq, arm 2: a 21-byte string.
var (
	wrappedSeqStringV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x38, 0x43, 0x31, 0x3b, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x28, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x15, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // string size
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // string presence
		0x73, 0x6f, 0x66, 0x74, 0x20, 0x6d, 0x69, 0x67, // "soft mig"
		0x72, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x20, // "rations "
		0x72, 0x6f, 0x63, 0x6b, 0x21, 0x00, 0x00, 0x00, // "rock!", padding
	}
	wrappedSeqStringOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // tag (u64)
		0x15, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // string size
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // string presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x73, 0x6f, 0x66, 0x74, 0x20, 0x6d, 0x69, 0x67, // "soft mig"
		0x72, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x20, // "rations "
		0x72, 0x6f, 0x63, 0x6b, 0x21, 0x00, 0x00, 0x00, // "rock!", padding
	}
)

// WrappedSeq, arm 3: three packed 3-byte structs at the natural stride 4.
var (
	wrappedSeqPackedVectorV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0xdc, 0x3c, 0xc1, 0x4b, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // vector presence
		0x73, 0x6f, 0x66, 0x00, 0x20, 0x6d, 0x69, 0x00, // elements 1-2
		0x72, 0x61, 0x74, 0x00, 0x00, 0x00, 0x00, 0x00, // element 3, padding
	}
	wrappedSeqPackedVectorOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // tag (u64)
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // vector presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x73, 0x6f, 0x66, 0x00, 0x20, 0x6d, 0x69, 0x00, // elements 1-2
		0x72, 0x61, 0x74, 0x00, 0x00, 0x00, 0x00, 0x00, // element 3, padding
	}
)

// WrappedSeq, arm 4: three 4-byte structs, each with a real padding byte.
var (
	wrappedSeqAlignedVectorV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x3c, 0xaa, 0x08, 0x1d, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // vector presence
		0x73, 0x6f, 0x66, 0x00, 0x20, 0x6d, 0x69, 0x00, // elements 1-2
		0x72, 0x61, 0x74, 0x00, 0x00, 0x00, 0x00, 0x00, // element 3, padding
	}
	wrappedSeqAlignedVectorOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // tag (u64)
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // vector presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x73, 0x6f, 0x66, 0x00, 0x20, 0x6d, 0x69, 0x00, // elements 1-2
		0x72, 0x61, 0x74, 0x00, 0x00, 0x00, 0x00, 0x00, // element 3, padding
	}
)

// WrappedSeq, arm 5: three present handle slots; the envelope carries the
// handle count.
var (
	wrappedSeqHandlesV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x76, 0xaa, 0x1e, 0x47, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x20, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // vector presence
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // handles 1-2
		0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00, // handle 3, padding
	}
	wrappedSeqHandlesOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // tag (u64)
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // vector presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // handles 1-2
		0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0x00, // handle 3, padding
	}
)

// WrappedSeq, arm 6: a two-element packed array carried inline.
var (
	wrappedSeqPackedArrayV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x10, 0xa8, 0xa0, 0x5e, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0x00, 0x00, // elements, padding
	}
	wrappedSeqPackedArrayOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // tag (u64)
		0xa1, 0xa2, 0xa3, 0xa4, 0xa5, 0xa6, 0x00, 0x00, // elements, slot padding
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // slot padding
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
	}
)

// WrappedSeq, arm 7: a two-element array of 4-byte structs.
var (
	wrappedSeqAlignedArrayV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x0d, 0xb7, 0xf8, 0x5c, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0xa1, 0xa2, 0xa3, 0x00, 0xa4, 0xa5, 0xa6, 0x00, // elements
	}
	wrappedSeqAlignedArrayOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // tag (u64)
		0xa1, 0xa2, 0xa3, 0x00, 0xa4, 0xa5, 0xa6, 0x00, // elements
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // slot padding
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
	}
)

// WrappedSeq, arm 8: a one-element vector of SmallUnion, whose element
// footprint differs between the dialects (24 inline vs 8).
var (
	wrappedSeqUnionVectorV1Bytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x31, 0x8c, 0x76, 0x2b, 0x00, 0x00, 0x00, 0x00, // ordinal, pad
		0x30, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // vector presence
		0xdb, 0xf0, 0xc2, 0x7f, 0x00, 0x00, 0x00, 0x00, // element ordinal, pad
		0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // element envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // element envelope presence
		0x09, 0x0a, 0x0b, 0x0c, 0x00, 0x00, 0x00, 0x00, // element payload, padding
	}
	wrappedSeqUnionVectorOldBytes = []byte{
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // tag (u64)
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // vector count
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // vector presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x02, 0x00, 0x00, 0x00, 0x09, 0x0a, 0x0b, 0x0c, // element tag, payload
	}
)

// WrappedOptional with the pointer present: the pointee is re-laid-out in
// the destination's out-of-line arena.
var (
	wrappedOptionalPresentV1Bytes = []byte{
		0x11, 0x12, 0x13, 0x14, 0x00, 0x00, 0x00, 0x00, // before, padding
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // pointer presence
		0x21, 0x22, 0x23, 0x24, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x01, 0x02, 0x03, 0x04, 0x00, 0x00, 0x00, 0x00, // pointee before, padding
		0xdb, 0xf0, 0xc2, 0x7f, 0x00, 0x00, 0x00, 0x00, // pointee ordinal, pad
		0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // pointee envelope bytes/handles
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // pointee envelope presence
		0x05, 0x06, 0x07, 0x08, 0x00, 0x00, 0x00, 0x00, // pointee after, padding
		0x09, 0x0a, 0x0b, 0x0c, 0x00, 0x00, 0x00, 0x00, // pointee payload, padding
	}
	wrappedOptionalPresentOldBytes = []byte{
		0x11, 0x12, 0x13, 0x14, 0x00, 0x00, 0x00, 0x00, // before, padding
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // pointer presence
		0x21, 0x22, 0x23, 0x24, 0x00, 0x00, 0x00, 0x00, // after, padding
		0x01, 0x02, 0x03, 0x04, // pointee before
		0x02, 0x00, 0x00, 0x00, // pointee tag
		0x09, 0x0a, 0x0b, 0x0c, // pointee payload
		0x05, 0x06, 0x07, 0x08, // pointee after
	}
)

// WrappedOptional with the pointer absent: only the presence word travels.
var (
	wrappedOptionalAbsentV1Bytes = []byte{
		0x11, 0x12, 0x13, 0x14, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // pointer absence
		0x21, 0x22, 0x23, 0x24, 0x00, 0x00, 0x00, 0x00, // after, padding
	}
	wrappedOptionalAbsentOldBytes = []byte{
		0x11, 0x12, 0x13, 0x14, 0x00, 0x00, 0x00, 0x00, // before, padding
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // pointer absence
		0x21, 0x22, 0x23, 0x24, 0x00, 0x00, 0x00, 0x00, // after, padding
	}
)

// Pairs returns the full fixture corpus.
func Pairs() []Pair {
	return []Pair{
		{"wrapped-small", WrappedSmallOld, WrappedSmallV1, wrappedSmallOldBytes, wrappedSmallV1Bytes},
		{"wrapped-mid", WrappedMidOld, WrappedMidV1, wrappedMidOldBytes, wrappedMidV1Bytes},
		{"wrapped-big", WrappedBigOld, WrappedBigV1, wrappedBigOldBytes, wrappedBigV1Bytes},
		{"wrapped-nested-small", WrappedNestedOld, WrappedNestedV1, wrappedNestedSmallOldBytes, wrappedNestedSmallV1Bytes},
		{"wrapped-nested-big", WrappedNestedOld, WrappedNestedV1, wrappedNestedBigOldBytes, wrappedNestedBigV1Bytes},
		{"wrapped-seq-bytes", WrappedSeqOld, WrappedSeqV1, wrappedSeqBytesOldBytes, wrappedSeqBytesV1Bytes},
		{"wrapped-seq-absent", WrappedSeqOld, WrappedSeqV1, wrappedSeqAbsentOldBytes, wrappedSeqAbsentV1Bytes},
		{"wrapped-seq-string", WrappedSeqOld, WrappedSeqV1, wrappedSeqStringOldBytes, wrappedSeqStringV1Bytes},
		{"wrapped-seq-packed-vector", WrappedSeqOld, WrappedSeqV1, wrappedSeqPackedVectorOldBytes, wrappedSeqPackedVectorV1Bytes},
		{"wrapped-seq-aligned-vector", WrappedSeqOld, WrappedSeqV1, wrappedSeqAlignedVectorOldBytes, wrappedSeqAlignedVectorV1Bytes},
		{"wrapped-seq-handles", WrappedSeqOld, WrappedSeqV1, wrappedSeqHandlesOldBytes, wrappedSeqHandlesV1Bytes},
		{"wrapped-seq-packed-array", WrappedSeqOld, WrappedSeqV1, wrappedSeqPackedArrayOldBytes, wrappedSeqPackedArrayV1Bytes},
		{"wrapped-seq-aligned-array", WrappedSeqOld, WrappedSeqV1, wrappedSeqAlignedArrayOldBytes, wrappedSeqAlignedArrayV1Bytes},
		{"wrapped-seq-union-vector", WrappedSeqOld, WrappedSeqV1, wrappedSeqUnionVectorOldBytes, wrappedSeqUnionVectorV1Bytes},
		{"wrapped-optional-present", WrappedOptionalOld, WrappedOptionalV1, wrappedOptionalPresentOldBytes, wrappedOptionalPresentV1Bytes},
		{"wrapped-optional-absent", WrappedOptionalOld, WrappedOptionalV1, wrappedOptionalAbsentOldBytes, wrappedOptionalAbsentV1Bytes},
	}
}
