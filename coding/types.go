package coding

// Type is a Kind-discriminated descriptor for one wire type. Only the
// fields relevant to the Kind are populated; the zero value of everything
// else is ignored.
//
// Aggregate descriptors (struct, union, extensible union, array, vector)
// are dialect-specific: sizes, offsets, and padding are those of one layout
// dialect, and Alt points at the descriptor of the same logical type in the
// other dialect.
type Type struct {
	Kind Kind

	// Primitive subtype; also the underlying type of enums and bits.
	Primitive PrimitiveSubtype

	// Struct fields in declaration order. A Field with a nil Type marks a
	// run of plain data; see Field.
	Fields []Field

	// Union arms in declaration order. The 1-origin position of an arm is
	// its static-dialect tag value; Arm.Ordinal is its extensible-dialect
	// tag value.
	Arms []Arm

	// InlineSize is the number of bytes the type occupies inline in its
	// container, in this descriptor's dialect. Set for structs and unions.
	InlineSize uint32

	// DataOffset is the offset of a static union's payload: 4 when the
	// largest arm's natural alignment is at most 4, else 8.
	DataOffset uint32

	// Element is the pointee of a struct pointer, or the element type of
	// an array or vector. A nil Element on an array or vector marks plain
	// data (for example byte vectors) copied without traversal.
	Element *Type

	// ElementCount and ElementSize describe array geometry; ElementPadding
	// is the per-element trailing padding in this dialect. Vectors carry
	// ElementSize only; their stride follows the natural-alignment law.
	ElementCount   uint32
	ElementSize    uint32
	ElementPadding uint32

	// MaxSize bounds strings (bytes) and MaxCount bounds vectors
	// (elements). Zero means unbounded. The transformer ignores both.
	MaxSize  uint32
	MaxCount uint32

	// Nullable marks strings, vectors, handles, and extensible unions
	// whose absence is representable. The transformer ignores it.
	Nullable bool

	// Strict marks extensible unions that reject unknown ordinals when
	// decoded. The transformer ignores it.
	Strict bool

	// Mask is the valid-bit mask of a bits type. Ignored here.
	Mask uint64

	// Validate is the value predicate of an enum type. Ignored here.
	Validate func(uint64) bool

	// Subtype is the kernel object type a handle is constrained to.
	Subtype uint32

	// Name is the optional schema-compiler-assigned type name, used in
	// diagnostics. May be empty.
	Name string

	// Alt is the descriptor of the same logical type in the other
	// dialect. Set on aggregates; Alt.Alt always points back here.
	Alt *Type
}

// Field describes one struct member.
//
// A Field with a non-nil Type is a traversed member: Offset is its byte
// offset within the struct and Alt points at the matching Field in the
// other dialect's descriptor.
//
// A Field with a nil Type is a run of plain data: Offset is the byte
// offset at which the run's trailing padding begins, and the walker copies
// everything from its cursor up to that offset verbatim.
type Field struct {
	Type *Type

	// Offset of the member, or of the start of trailing padding when Type
	// is nil.
	Offset uint32

	// Padding is the number of trailing padding bytes after the member in
	// this dialect.
	Padding uint32

	// Alt is the matching field in the Alt struct descriptor. LinkAlts
	// sets it on plain-data fields too; the walker only reads it on
	// traversed members.
	Alt *Field
}

// Arm describes one union alternative.
type Arm struct {
	// Type of the arm payload, or nil when the payload is plain data
	// copied verbatim.
	Type *Type

	// Padding is the number of trailing padding bytes between the end of
	// this arm's payload and the end of the union's fixed payload slot, in
	// the static dialect.
	Padding uint32

	// Ordinal is the arm's tag value in the extensible dialect. Ordinals
	// are nonzero and unique within a union.
	Ordinal uint32
}

// LinkAlts wires a pair of dialect twins together: the two Type.Alt
// pointers and, for structs, the pairwise Field.Alt pointers. Both
// descriptors must declare their members in the same order.
func LinkAlts(a, b *Type) {
	a.Alt = b
	b.Alt = a
	if a.Kind == KindStruct && b.Kind == KindStruct && len(a.Fields) == len(b.Fields) {
		for i := range a.Fields {
			a.Fields[i].Alt = &b.Fields[i]
			b.Fields[i].Alt = &a.Fields[i]
		}
	}
}
