package transformer

import (
	"github.com/tengyifei/llcpptransformer/coding"
	"github.com/tengyifei/llcpptransformer/errors"
	"github.com/tengyifei/llcpptransformer/transformer/internal/wire"
)

// transformExtensibleToStatic rewrites one extensible-form union into
// static form. t is the source (v1) descriptor; its Alt is the static
// twin whose tag width, slot size, and arm padding shape the output.
//
// Source layout: u32 ordinal, u32 pad, envelope; payload out-of-line.
// Destination layout: u32 or u64 tag, payload inline in a fixed slot
// padded to the largest arm.
func (w *walker) transformExtensibleToStatic(t *coding.Type, pos position) (traversalResult, error) {
	dst := t.Alt
	if dst == nil || len(dst.Arms) != len(t.Arms) {
		return traversalResult{}, badUnionTable(t)
	}

	ordinal, err := w.sd.readU32(pos.srcInline)
	if err != nil {
		return traversalResult{}, err
	}

	arm := -1
	for i := range t.Arms {
		if t.Arms[i].Ordinal == ordinal {
			arm = i
			break
		}
	}
	if arm < 0 {
		return traversalResult{}, errors.UnknownOrdinal(descPath(t), ordinal)
	}
	srcArm := &t.Arms[arm]
	dstArm := &dst.Arms[arm]

	tag := uint32(arm + 1)
	switch dst.DataOffset {
	case 4:
		err = w.sd.writeU32(pos.dstInline, tag)
	case 8:
		err = w.sd.writeU64(pos.dstInline, uint64(tag))
	default:
		err = errors.New(errors.PhaseTransform, errors.KindBadState).
			Path(descPath(dst)...).
			Detail("data offset %d is neither 4 nor 8", dst.DataOffset).
			Build()
	}
	if err != nil {
		return traversalResult{}, err
	}

	// The fixed slot is padded to the largest arm; this arm's own bytes
	// stop Padding short of it.
	slot := dst.InlineSize - dst.DataOffset
	unpadded := slot - dstArm.Padding

	srcSize := unpadded
	if srcArm.Type != nil {
		if srcSize, err = inlineSize(srcArm.Type); err != nil {
			return traversalResult{}, err
		}
	}
	srcAligned := wire.Align(srcSize)

	// The payload lives at the source's next out-of-line slot; anything
	// it points at in turn follows it.
	child, err := w.transformOne(srcArm.Type, position{
		srcInline:    pos.srcOutOfLine,
		srcOutOfLine: pos.srcOutOfLine + srcAligned,
		dstInline:    pos.dstInline + dst.DataOffset,
		dstOutOfLine: pos.dstOutOfLine,
	}, unpadded)
	if err != nil {
		return traversalResult{}, err
	}

	if err := w.sd.pad(pos.dstInline+dst.DataOffset+unpadded, dstArm.Padding); err != nil {
		return traversalResult{}, err
	}
	return traversalResult{
		srcOutOfLine: srcAligned + child.srcOutOfLine,
		dstOutOfLine: child.dstOutOfLine,
		handles:      child.handles,
	}, nil
}

func badUnionTable(t *coding.Type) error {
	return errors.New(errors.PhaseTransform, errors.KindBadState).
		Path(descPath(t)...).
		Detail("union has no matching alt descriptor").
		Build()
}

// transformStaticToExtensible rewrites one static-form union into
// extensible form. t is the source (old) descriptor; its Alt carries the
// arm ordinals of the extensible dialect.
//
// The payload moves out-of-line, so the envelope can only be sized after
// the arm's traversal reports how much out-of-line data it produced.
func (w *walker) transformStaticToExtensible(t *coding.Type, pos position) (traversalResult, error) {
	dst := t.Alt
	if dst == nil || len(dst.Arms) != len(t.Arms) {
		return traversalResult{}, badUnionTable(t)
	}

	tag, err := w.sd.readU32(pos.srcInline)
	if err != nil {
		return traversalResult{}, err
	}
	if tag == 0 || tag > uint32(len(t.Arms)) {
		return traversalResult{}, errors.UnknownTag(descPath(t), tag, len(t.Arms))
	}
	arm := int(tag - 1)
	srcArm := &t.Arms[arm]
	dstArm := &dst.Arms[arm]

	slot := t.InlineSize - t.DataOffset
	srcUnpadded := slot - srcArm.Padding

	dstSize := srcUnpadded
	if dstArm.Type != nil {
		if dstSize, err = inlineSize(dstArm.Type); err != nil {
			return traversalResult{}, err
		}
	}
	dstAligned := wire.Align(dstSize)

	child, err := w.transformOne(srcArm.Type, position{
		srcInline:    pos.srcInline + t.DataOffset,
		srcOutOfLine: pos.srcOutOfLine,
		dstInline:    pos.dstOutOfLine,
		dstOutOfLine: pos.dstOutOfLine + dstAligned,
	}, dstSize)
	if err != nil {
		return traversalResult{}, err
	}
	if err := w.sd.pad(pos.dstOutOfLine+dstSize, dstAligned-dstSize); err != nil {
		return traversalResult{}, err
	}

	numBytes := dstAligned + child.dstOutOfLine
	if err := w.sd.writeU32(pos.dstInline, dstArm.Ordinal); err != nil {
		return traversalResult{}, err
	}
	if err := w.sd.writeU32(pos.dstInline+4, 0); err != nil {
		return traversalResult{}, err
	}
	if err := w.sd.writeU32(pos.dstInline+8, numBytes); err != nil {
		return traversalResult{}, err
	}
	if err := w.sd.writeU32(pos.dstInline+12, child.handles); err != nil {
		return traversalResult{}, err
	}
	if err := w.sd.writeU64(pos.dstInline+16, wire.AllocPresent); err != nil {
		return traversalResult{}, err
	}

	return traversalResult{
		srcOutOfLine: child.srcOutOfLine,
		dstOutOfLine: numBytes,
		handles:      child.handles,
	}, nil
}
