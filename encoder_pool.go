package lzss

import "sync"

// encoderPool holds Encoders for reuse, so repeated one-shot Compress calls
// under load don't re-zero a potentially large window/tree from the
// allocator each time.
var encoderPool sync.Pool

// acquireEncoder gets an Encoder from the pool (or allocates one) and sizes
// it for p, reusing its backing arrays when they already have enough
// capacity.
func acquireEncoder(p codecParams) *Encoder {
	e, ok := encoderPool.Get().(*Encoder)
	if !ok || e == nil {
		e = &Encoder{}
	}
	e.reset(p)
	return e
}

// releaseEncoder returns e to the pool.
func releaseEncoder(e *Encoder) {
	if e == nil {
		return
	}
	encoderPool.Put(e)
}
