package transformer

import (
	"go.uber.org/zap"

	"github.com/tengyifei/llcpptransformer/coding"
	"github.com/tengyifei/llcpptransformer/errors"
	"github.com/tengyifei/llcpptransformer/transformer/internal/wire"
)

// Direction selects which dialect the source buffer is encoded in.
type Direction uint32

const (
	// None performs no transformation; callers wanting an identity copy
	// should copy the buffer themselves.
	None Direction = iota

	// V1ToOld rewrites extensible unions into static unions.
	V1ToOld

	// OldToV1 rewrites static unions into extensible unions.
	OldToV1
)

var directionNames = [...]string{
	None:    "none",
	V1ToOld: "v1-to-old",
	OldToV1: "old-to-v1",
}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// Wire-format constants callers need to build and size buffers.
const (
	// MaxMessageBytes is the transport's message ceiling; destination
	// buffers are conventionally sized to it.
	MaxMessageBytes = wire.MaxMessageBytes

	// AllocPresent and AllocAbsent are the two legal values of an inline
	// presence word.
	AllocPresent = wire.AllocPresent
	AllocAbsent  = wire.AllocAbsent
)

// Transform rewrites the encoded message in src, described by the
// dialect-specific root descriptor, into the other dialect and writes the
// result to dst. It returns the number of destination bytes that make up
// the transformed message.
//
// root must be the struct descriptor of src's own dialect: the old-dialect
// descriptor for OldToV1, the v1-dialect descriptor for V1ToOld. src is
// never modified; dst must not alias src and should be sized for the
// worst case (MaxMessageBytes). On error the destination contents are
// unspecified.
func Transform(direction Direction, root *coding.Type, src, dst []byte) (uint32, error) {
	n, err := transform(direction, root, src, dst)
	if err != nil {
		Logger().Debug("transformation failed",
			zap.Stringer("direction", direction),
			zap.Error(err))
		return 0, err
	}
	return n, nil
}

func transform(direction Direction, root *coding.Type, src, dst []byte) (uint32, error) {
	switch direction {
	case None:
		return 0, nil
	case V1ToOld, OldToV1:
	default:
		return 0, errors.InvalidArgs("unknown transformation direction %d", direction)
	}

	if root == nil {
		return 0, errors.InvalidArgs("root descriptor is nil")
	}
	switch root.Kind {
	case coding.KindStruct:
	case coding.KindTable, coding.KindExtensibleUnion:
		return 0, errors.InvalidArgs("%s is not transformable at the top level", root.Kind)
	default:
		return 0, errors.InvalidArgs("root descriptor must be a struct, got %s", root.Kind)
	}
	if root.Alt == nil {
		return 0, errors.InvalidArgs("root struct %q has no alt descriptor", root.Name)
	}

	w := walker{
		sd:        &srcDst{src: src, dst: dst},
		direction: direction,
	}
	pos := position{
		srcInline:    0,
		srcOutOfLine: wire.Align(root.InlineSize),
		dstInline:    0,
		dstOutOfLine: wire.Align(root.Alt.InlineSize),
	}
	if _, err := w.transformStruct(root, pos, root.Alt.InlineSize); err != nil {
		return 0, err
	}
	return w.sd.maxDstOffset, nil
}

// walker carries the per-call traversal state: the buffer pair and the
// direction. Everything positional travels through position values.
type walker struct {
	sd        *srcDst
	direction Direction
}

// traversalResult reports what a subtree consumed and produced beyond its
// inline footprint: out-of-line bytes on each side and the number of
// present handle slots visited. Parents advance their out-of-line cursors
// by these amounts, and envelopes are sized from them.
type traversalResult struct {
	srcOutOfLine uint32
	dstOutOfLine uint32
	handles      uint32
}

func (r *traversalResult) add(c traversalResult) {
	r.srcOutOfLine += c.srcOutOfLine
	r.dstOutOfLine += c.dstOutOfLine
	r.handles += c.handles
}

// transformOne dispatches on the descriptor kind. dstSize is the number of
// destination bytes the parent reserved for this value; scalar and
// plain-data payloads are copied at exactly that width rather than
// recomputing it, which is how surrounding padding travels.
func (w *walker) transformOne(t *coding.Type, pos position, dstSize uint32) (traversalResult, error) {
	if t == nil {
		return traversalResult{}, w.sd.copy(pos.dstInline, pos.srcInline, dstSize)
	}

	switch t.Kind {
	case coding.KindPrimitive, coding.KindEnum, coding.KindBits:
		return traversalResult{}, w.sd.copy(pos.dstInline, pos.srcInline, dstSize)

	case coding.KindHandle:
		return w.copyHandle(pos, dstSize)

	case coding.KindStruct:
		return w.transformStruct(t, pos, dstSize)

	case coding.KindStructPointer:
		return w.transformStructPointer(t, pos)

	case coding.KindUnion:
		// The descriptor names the logical union; the direction says
		// which layout the source bytes use.
		if w.direction == V1ToOld {
			return w.transformExtensibleToStatic(t, pos)
		}
		return w.transformStaticToExtensible(t, pos)

	case coding.KindArray, coding.KindVector:
		if t.Alt == nil {
			return traversalResult{}, errors.New(errors.PhaseTransform, errors.KindBadState).
				Path(descPath(t)...).
				Detail("%s has no alt descriptor", t.Kind).
				Build()
		}
		if t.Kind == coding.KindArray {
			return w.transformArray(t, t.Alt, pos, dstSize)
		}
		return w.transformVector(t, t.Alt, pos)

	case coding.KindString:
		return w.transformString(pos)

	default:
		// Tables, nullable static unions, and raw extensible unions have
		// no rewrite rule.
		return traversalResult{}, errors.Untransformable(descPath(t), t.Kind.String())
	}
}

// copyHandle moves an opaque handle slot and reports it when present, so
// enclosing envelopes can carry the handle count.
func (w *walker) copyHandle(pos position, dstSize uint32) (traversalResult, error) {
	v, err := w.sd.readU32(pos.srcInline)
	if err != nil {
		return traversalResult{}, err
	}
	if err := w.sd.copy(pos.dstInline, pos.srcInline, dstSize); err != nil {
		return traversalResult{}, err
	}
	var res traversalResult
	if v == wire.HandlePresent {
		res.handles = 1
	}
	return res, nil
}

// inlineSize returns the inline footprint of a descriptor in its own
// dialect. Scalars have no context-free width: their containers know it,
// so asking for one is a table defect.
func inlineSize(t *coding.Type) (uint32, error) {
	if t == nil {
		// A bare presence word.
		return wire.PointerSize, nil
	}
	switch t.Kind {
	case coding.KindStructPointer, coding.KindUnionPointer:
		return wire.PointerSize, nil
	case coding.KindString, coding.KindVector:
		return wire.VectorHeaderSize, nil
	case coding.KindStruct, coding.KindUnion:
		return t.InlineSize, nil
	case coding.KindArray:
		size, ok := wire.SafeMul(t.ElementCount, t.ElementSize+t.ElementPadding)
		if !ok {
			return 0, errors.New(errors.PhaseTransform, errors.KindBadState).
				Path(descPath(t)...).
				Detail("array geometry overflows").
				Build()
		}
		return size, nil
	case coding.KindExtensibleUnion:
		return wire.ExtensibleInlineSize, nil
	default:
		return 0, errors.New(errors.PhaseTransform, errors.KindBadState).
			Path(descPath(t)...).
			Detail("%s has no context-free inline size", t.Kind).
			Build()
	}
}

// transformStruct walks the source struct's fields, re-laying each one out
// at its destination offset. dstSize may exceed the destination struct's
// inline size when the struct sits in a larger slot (a pointee rounded up
// to 8 bytes out-of-line); the excess is zero-filled.
func (w *walker) transformStruct(t *coding.Type, pos position, dstSize uint32) (traversalResult, error) {
	if len(t.Fields) == 0 {
		// No traversed members: the whole extent is plain data.
		return traversalResult{}, w.sd.copy(pos.dstInline, pos.srcInline, dstSize)
	}

	srcStart := pos.srcInline
	dstStart := pos.dstInline
	cur := pos
	var res traversalResult

	for i := range t.Fields {
		f := &t.Fields[i]

		if f.Type == nil {
			// Plain-data run: copy everything up to where the run's
			// trailing padding begins. The padding itself is skipped on
			// the source side and re-materialized on the destination by
			// the next field's alignment or the final fill.
			runEnd := srcStart + f.Offset
			if runEnd > cur.srcInline {
				n := runEnd - cur.srcInline
				if err := w.sd.copy(cur.dstInline, cur.srcInline, n); err != nil {
					return traversalResult{}, err
				}
				cur = cur.incSrcInline(n).incDstInline(n)
			}
			continue
		}

		alt := f.Alt
		if alt == nil {
			return traversalResult{}, errors.New(errors.PhaseTransform, errors.KindBadState).
				Path(descPath(t)...).
				Detail("field %d has no alt field", i).
				Build()
		}

		// Zero the gap up to the destination field offset; the dialects
		// disagree on inter-field padding wherever a union changed size.
		if gap := dstStart + alt.Offset - cur.dstInline; gap > 0 {
			if err := w.sd.pad(cur.dstInline, gap); err != nil {
				return traversalResult{}, err
			}
		}
		cur.srcInline = srcStart + f.Offset
		cur.dstInline = dstStart + alt.Offset

		fieldDstSize, err := inlineSize(alt.Type)
		if err != nil {
			return traversalResult{}, err
		}
		child, err := w.transformOne(f.Type, cur, fieldDstSize)
		if err != nil {
			return traversalResult{}, err
		}
		res.add(child)

		fieldSrcSize, err := inlineSize(f.Type)
		if err != nil {
			return traversalResult{}, err
		}
		cur.srcInline += fieldSrcSize
		cur.dstInline += fieldDstSize
		cur.srcOutOfLine += child.srcOutOfLine
		cur.dstOutOfLine += child.dstOutOfLine
	}

	// Trailing padding out to the slot the caller reserved.
	if end := dstStart + dstSize; end > cur.dstInline {
		if err := w.sd.pad(cur.dstInline, end-cur.dstInline); err != nil {
			return traversalResult{}, err
		}
	}
	return res, nil
}

// transformStructPointer copies the presence word and, when present,
// re-lays the pointed-at struct out at the destination's next out-of-line
// slot.
func (w *walker) transformStructPointer(t *coding.Type, pos position) (traversalResult, error) {
	presence, err := w.sd.readU64(pos.srcInline)
	if err != nil {
		return traversalResult{}, err
	}
	if err := w.sd.writeU64(pos.dstInline, presence); err != nil {
		return traversalResult{}, err
	}
	if presence != wire.AllocPresent {
		return traversalResult{}, nil
	}

	target := t.Element
	srcAligned := wire.Align(target.InlineSize)
	dstAligned := wire.Align(target.Alt.InlineSize)
	child, err := w.transformStruct(target, position{
		srcInline:    pos.srcOutOfLine,
		srcOutOfLine: pos.srcOutOfLine + srcAligned,
		dstInline:    pos.dstOutOfLine,
		dstOutOfLine: pos.dstOutOfLine + dstAligned,
	}, dstAligned)
	if err != nil {
		return traversalResult{}, err
	}
	return traversalResult{
		srcOutOfLine: srcAligned + child.srcOutOfLine,
		dstOutOfLine: dstAligned + child.dstOutOfLine,
		handles:      child.handles,
	}, nil
}

func descPath(t *coding.Type) []string {
	if t == nil || t.Name == "" {
		return nil
	}
	return []string{t.Name}
}
