package angstrom

// Unconsumed names the tail of a buffered parse that the parser never
// consumed: Len bytes of Buf starting at Off.
type Unconsumed struct {
	Buf []byte
	Off int
	Len int
}

// buffering glues successive chunks into one contiguous view for the engine.
// The live region is buf[off : off+length]; the prefix below off was consumed
// and is reclaimed on the next compaction.
type buffering struct {
	buf    []byte
	off    int
	length int
}

func newBuffering(size int) *buffering {
	if size < 1 {
		panic("angstrom: buffering: size < 1")
	}
	return &buffering{buf: make([]byte, size)}
}

// bufferingOfUnconsumed rebuilds a buffering around a terminal state's tail
// so the tail can keep growing as chunks arrive.
func bufferingOfUnconsumed(u Unconsumed) *buffering {
	size := u.Len
	if size < 1 {
		size = 1
	}
	b := &buffering{buf: make([]byte, size), length: u.Len}
	copy(b.buf, u.Buf[u.Off:u.Off+u.Len])
	return b
}

func (b *buffering) view() []byte {
	return b.buf[b.off : b.off+b.length]
}

func (b *buffering) unconsumed() Unconsumed {
	return Unconsumed{Buf: b.buf, Off: b.off, Len: b.length}
}

// feed appends p to the live region. If the unused tail fits p, it is
// appended in place; if the total unused space fits once the consumed prefix
// is reclaimed, the live region is shifted to offset 0 first; otherwise the
// backing store grows by ceil(3/2) until the additional bytes fit.
func (b *buffering) feed(p []byte) {
	need := len(p)
	if len(b.buf)-(b.off+b.length) >= need {
		copy(b.buf[b.off+b.length:], p)
		b.length += need
		return
	}
	if len(b.buf)-b.length >= need {
		copy(b.buf, b.view())
		b.off = 0
		copy(b.buf[b.length:], p)
		b.length += need
		return
	}
	size := len(b.buf)
	for size-b.length < need {
		size = (size*3 + 1) / 2
	}
	grown := make([]byte, size)
	copy(grown, b.view())
	copy(grown[b.length:], p)
	b.buf, b.off = grown, 0
	b.length += need
}

// consume advances the view's logical start by n, freeing a prefix.
func (b *buffering) consume(n int) {
	if n < 0 || n > b.length {
		panic("angstrom: buffering: consume out of range")
	}
	b.off += n
	b.length -= n
}
