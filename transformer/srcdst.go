package transformer

import (
	"encoding/binary"

	"github.com/tengyifei/llcpptransformer/errors"
)

// srcDst pairs the read-only source buffer with the write-only destination
// buffer and remembers the highest destination offset touched, which
// becomes the transformed message's length. Source and destination must
// not alias.
type srcDst struct {
	src []byte
	dst []byte

	// maxDstOffset is one past the furthest destination byte written so
	// far, including padding writes.
	maxDstOffset uint32
}

func (sd *srcDst) checkSrc(offset, size uint32) error {
	end, ok := addOffset(offset, size)
	if !ok || uint64(end) > uint64(len(sd.src)) {
		return errors.SrcTooShort(offset, size, len(sd.src))
	}
	return nil
}

func (sd *srcDst) checkDst(offset, size uint32) error {
	end, ok := addOffset(offset, size)
	if !ok || uint64(end) > uint64(len(sd.dst)) {
		return errors.DstTooSmall(offset, size, len(sd.dst))
	}
	if end > sd.maxDstOffset {
		sd.maxDstOffset = end
	}
	return nil
}

func (sd *srcDst) readU32(offset uint32) (uint32, error) {
	if err := sd.checkSrc(offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(sd.src[offset:]), nil
}

func (sd *srcDst) readU64(offset uint32) (uint64, error) {
	if err := sd.checkSrc(offset, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(sd.src[offset:]), nil
}

func (sd *srcDst) writeU32(offset uint32, v uint32) error {
	if err := sd.checkDst(offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(sd.dst[offset:], v)
	return nil
}

func (sd *srcDst) writeU64(offset uint32, v uint64) error {
	if err := sd.checkDst(offset, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(sd.dst[offset:], v)
	return nil
}

// copy moves size bytes from the source to the destination.
func (sd *srcDst) copy(dstOffset, srcOffset, size uint32) error {
	if size == 0 {
		return nil
	}
	if err := sd.checkSrc(srcOffset, size); err != nil {
		return err
	}
	if err := sd.checkDst(dstOffset, size); err != nil {
		return err
	}
	copy(sd.dst[dstOffset:dstOffset+size], sd.src[srcOffset:srcOffset+size])
	return nil
}

// pad zero-fills size destination bytes. The destination may hold garbage
// from a previous use of the buffer, so padding is always written out.
func (sd *srcDst) pad(offset, size uint32) error {
	if size == 0 {
		return nil
	}
	if err := sd.checkDst(offset, size); err != nil {
		return err
	}
	for i := offset; i < offset+size; i++ {
		sd.dst[i] = 0
	}
	return nil
}

func addOffset(a, b uint32) (uint32, bool) {
	s := a + b
	if s < a {
		return 0, false
	}
	return s, true
}
