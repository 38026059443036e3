package transformer

// position carries the four traversal cursors: where the walker is reading
// and writing in the inline arena, and where the next out-of-line object
// goes in each buffer. Positions are values; each recursive step copies
// and advances its own.
type position struct {
	srcInline    uint32
	srcOutOfLine uint32
	dstInline    uint32
	dstOutOfLine uint32
}

func (p position) incSrcInline(n uint32) position {
	p.srcInline += n
	return p
}

func (p position) incSrcOutOfLine(n uint32) position {
	p.srcOutOfLine += n
	return p
}

func (p position) incDstInline(n uint32) position {
	p.dstInline += n
	return p
}

func (p position) incDstOutOfLine(n uint32) position {
	p.dstOutOfLine += n
	return p
}
