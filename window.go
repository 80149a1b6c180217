// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/ecucodec/lzss

package lzss

// window is the fixed-size sliding-window dictionary: a ring buffer of the
// most recent w bytes, addressed modulo w. w is always a power of two, so
// the modulus reduces to a mask.
type window struct {
	buf  []byte
	w    uint
	mask uint
}

// resize (re)allocates the window's backing buffer for the given size,
// reusing the existing slice when it already has enough capacity — this is
// what lets encoderPool hand back pre-sized buffers instead of the
// allocator re-zeroing a fresh array on every acquire.
func (win *window) resize(w uint) {
	if cap(win.buf) < int(w) {
		win.buf = make([]byte, w)
	} else {
		win.buf = win.buf[:w]
		for i := range win.buf {
			win.buf[i] = 0
		}
	}
	win.w = w
	win.mask = w - 1
}

// at returns the byte at pos mod w.
func (win *window) at(pos uint) byte {
	return win.buf[pos&win.mask]
}

// set writes the byte at pos mod w.
func (win *window) set(pos uint, b byte) {
	win.buf[pos&win.mask] = b
}

// setDirect writes the byte at the raw index with no modulo; used only
// during Phase A prefill, which is guaranteed to stay within [1, 1+LookAhead)
// and therefore within bounds without wrapping.
func (win *window) setDirect(idx uint, b byte) {
	win.buf[idx] = b
}
