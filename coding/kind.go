package coding

type Kind uint8

const (
	KindPrimitive Kind = iota
	KindEnum
	KindBits
	KindStruct
	KindStructPointer
	KindUnion
	KindUnionPointer
	KindExtensibleUnion
	KindArray
	KindString
	KindVector
	KindHandle
	KindTable
)

var kindNames = [...]string{
	KindPrimitive:       "primitive",
	KindEnum:            "enum",
	KindBits:            "bits",
	KindStruct:          "struct",
	KindStructPointer:   "struct_pointer",
	KindUnion:           "union",
	KindUnionPointer:    "union_pointer",
	KindExtensibleUnion: "extensible_union",
	KindArray:           "array",
	KindString:          "string",
	KindVector:          "vector",
	KindHandle:          "handle",
	KindTable:           "table",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether values of this kind are plain inline bytes with
// no wire structure of their own. Scalar payloads are copied verbatim; the
// enclosing descriptor knows their width.
func (k Kind) IsScalar() bool {
	switch k {
	case KindPrimitive, KindEnum, KindBits, KindHandle:
		return true
	default:
		return false
	}
}

type PrimitiveSubtype uint8

const (
	Bool PrimitiveSubtype = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

var primitiveNames = [...]string{
	Bool:    "bool",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

func (p PrimitiveSubtype) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return "unknown"
}

// Size returns the natural wire width of the primitive in bytes.
func (p PrimitiveSubtype) Size() uint32 {
	switch p {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	default:
		return 8
	}
}
