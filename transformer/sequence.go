package transformer

import (
	"math"

	"github.com/tengyifei/llcpptransformer/coding"
	"github.com/tengyifei/llcpptransformer/errors"
	"github.com/tengyifei/llcpptransformer/transformer/internal/wire"
)

// transformArray walks count elements laid out back to back, each padded
// to its stride. dstTotal is the full destination extent; bytes past the
// last element are zero-filled.
func (w *walker) transformArray(src, dst *coding.Type, pos position, dstTotal uint32) (traversalResult, error) {
	if src.Element == nil {
		// Elements carry no wire structure; both dialects agree on the
		// layout and the whole extent is one copy.
		return traversalResult{}, w.sd.copy(pos.dstInline, pos.srcInline, dstTotal)
	}

	srcStride := src.ElementSize + src.ElementPadding
	dstStride := dst.ElementSize + dst.ElementPadding
	cur := pos
	var res traversalResult

	for i := uint32(0); i < src.ElementCount; i++ {
		child, err := w.transformOne(src.Element, cur, dst.ElementSize)
		if err != nil {
			return traversalResult{}, err
		}
		if dst.ElementPadding > 0 {
			if err := w.sd.pad(cur.dstInline+dst.ElementSize, dst.ElementPadding); err != nil {
				return traversalResult{}, err
			}
		}
		res.add(child)
		cur.srcInline += srcStride
		cur.dstInline += dstStride
		cur.srcOutOfLine += child.srcOutOfLine
		cur.dstOutOfLine += child.dstOutOfLine
	}

	if end := pos.dstInline + dstTotal; end > cur.dstInline {
		if err := w.sd.pad(cur.dstInline, end-cur.dstInline); err != nil {
			return traversalResult{}, err
		}
	}
	return res, nil
}

// transformVector copies the 16-byte header verbatim and, when the
// presence word says so, walks the out-of-line payload as an array whose
// stride follows the natural-alignment law in each dialect.
func (w *walker) transformVector(src, dst *coding.Type, pos position) (traversalResult, error) {
	count, err := w.sd.readU64(pos.srcInline)
	if err != nil {
		return traversalResult{}, err
	}
	presence, err := w.sd.readU64(pos.srcInline + 8)
	if err != nil {
		return traversalResult{}, err
	}
	if err := w.sd.writeU64(pos.dstInline, count); err != nil {
		return traversalResult{}, err
	}
	if err := w.sd.writeU64(pos.dstInline+8, presence); err != nil {
		return traversalResult{}, err
	}
	if presence != wire.AllocPresent {
		// Absent: the count is not checked against zero.
		return traversalResult{}, nil
	}
	if count > math.MaxUint32 {
		return traversalResult{}, errors.New(errors.PhaseTransform, errors.KindBadState).
			Path(descPath(src)...).
			Detail("element count %d does not fit a message", count).
			Build()
	}
	return w.vectorPayload(src.Element, src.ElementSize, dst.Element, dst.ElementSize, uint32(count), pos, src)
}

// transformString treats a string as a vector of plain bytes.
func (w *walker) transformString(pos position) (traversalResult, error) {
	return w.transformVector(
		&coding.Type{Kind: coding.KindVector, ElementSize: 1},
		&coding.Type{Kind: coding.KindVector, ElementSize: 1},
		pos)
}

func (w *walker) vectorPayload(srcElem *coding.Type, srcElemSize uint32, dstElem *coding.Type, dstElemSize, count uint32, pos position, vec *coding.Type) (traversalResult, error) {
	srcStride := wire.NaturalStride(srcElemSize)
	dstStride := wire.NaturalStride(dstElemSize)

	srcTotal, err := alignedExtent(count, srcStride, vec)
	if err != nil {
		return traversalResult{}, err
	}
	dstTotal, err := alignedExtent(count, dstStride, vec)
	if err != nil {
		return traversalResult{}, err
	}

	srcArr := coding.Type{
		Kind:           coding.KindArray,
		Element:        srcElem,
		ElementCount:   count,
		ElementSize:    srcElemSize,
		ElementPadding: srcStride - srcElemSize,
	}
	dstArr := coding.Type{
		Kind:           coding.KindArray,
		Element:        dstElem,
		ElementCount:   count,
		ElementSize:    dstElemSize,
		ElementPadding: dstStride - dstElemSize,
	}
	child, err := w.transformArray(&srcArr, &dstArr, position{
		srcInline:    pos.srcOutOfLine,
		srcOutOfLine: pos.srcOutOfLine + srcTotal,
		dstInline:    pos.dstOutOfLine,
		dstOutOfLine: pos.dstOutOfLine + dstTotal,
	}, dstTotal)
	if err != nil {
		return traversalResult{}, err
	}
	return traversalResult{
		srcOutOfLine: srcTotal + child.srcOutOfLine,
		dstOutOfLine: dstTotal + child.dstOutOfLine,
		handles:      child.handles,
	}, nil
}

// alignedExtent builds the diagnostic path from vec only on failure, so the
// success path allocates nothing.
func alignedExtent(count, stride uint32, vec *coding.Type) (uint32, error) {
	raw, ok := wire.SafeMul(count, stride)
	if ok {
		var padded uint32
		if padded, ok = wire.SafeAdd(raw, wire.Alignment-1); ok {
			return padded &^ (wire.Alignment - 1), nil
		}
	}
	return 0, errors.New(errors.PhaseTransform, errors.KindBadState).
		Path(descPath(vec)...).
		Detail("payload of %d elements does not fit a message", count).
		Build()
}
