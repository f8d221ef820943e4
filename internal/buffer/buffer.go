package buffer

// Buffer accumulates a single body out of many reads, refusing to grow beyond the
// limit. The memory is reused between bodies, so a finished body is valid only until
// the next Clear.
type Buffer struct {
	memory  []byte
	maxSize int
}

func New(initialSize, maxSize int) Buffer {
	return Buffer{
		memory:  make([]byte, 0, min(initialSize, maxSize)),
		maxSize: maxSize,
	}
}

// Append writes data, checking whether the new amount of elements (bytes) doesn't exceed the
// limit, otherwise discarding the data and returning false.
func (b *Buffer) Append(elements []byte) (ok bool) {
	if len(elements) > b.maxSize-len(b.memory) {
		return false
	}

	b.memory = append(b.memory, elements...)
	return true
}

// Grow ensures there's enough capacity for n more bytes, if it fits into the limit.
// Used when the body length is known in advance.
func (b *Buffer) Grow(n int) {
	if n > b.maxSize-len(b.memory) || cap(b.memory)-len(b.memory) >= n {
		return
	}

	grown := make([]byte, len(b.memory), len(b.memory)+n)
	copy(grown, b.memory)
	b.memory = grown
}

// Len returns the number of bytes accumulated so far.
func (b *Buffer) Len() int {
	return len(b.memory)
}

// Finish returns everything accumulated.
func (b *Buffer) Finish() []byte {
	return b.memory
}

// Clear just resets the pointers, so old values may be overridden by new ones.
func (b *Buffer) Clear() {
	b.memory = b.memory[:0]
}
