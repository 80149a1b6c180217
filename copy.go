// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ecucodec
// Source: github.com/ecucodec/lzss

package lzss

// copyWindowMatch copies length bytes starting at window position pos into
// both the flat output buffer and the decoder's own ring-buffer window,
// advancing winPos alongside. It reads and writes one byte at a time: pos
// and winPos can alias (a match may reference bytes this very call is about
// to (re)write), so writing each byte before reading the next is what makes
// the overlap self-consistent. There is no single wrap-free slice to
// batch-copy here, so no chunked copy applies.
func copyWindowMatch(win *window, out []byte, winPos, pos, length uint, maxOutputLen int) ([]byte, uint, error) {
	if len(out)+int(length) > maxOutputLen {
		return nil, 0, ErrOutputOverrun
	}

	for i := uint(0); i < length; i++ {
		b := win.at(pos + i)
		out = append(out, b)
		win.set(winPos, b)
		winPos = (winPos + 1) & win.mask
	}

	return out, winPos, nil
}
