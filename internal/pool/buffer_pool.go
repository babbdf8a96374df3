package pool

import (
	"sync"
)

// BufferPool is a pool of byte slices reused while extracting digits.
type BufferPool struct {
	pool sync.Pool
}

// NewBufferPool creates a pool whose fresh buffers have the given capacity.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
	}
}

// Get retrieves an empty buffer.
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put resets the buffer length, keeping its capacity, and returns it.
func (bp *BufferPool) Put(buffer *[]byte) {
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// Digits is shared by the phone rules. E.164 numbers never exceed 15
// digits, so 32 bytes fits any formatted input without growth.
var Digits = NewBufferPool(32)
