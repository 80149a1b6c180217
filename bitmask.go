// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ecucodec
// Source: github.com/ecucodec/lzss

package lzss

// lowBits masks v down to its low k bits as required by writeBits' MSB-first
// packing. Callers pass k in 1..32.
func lowBits(v uint32, k uint) uint32 {
	if k >= 32 {
		return v
	}
	return v & ((1 << k) - 1)
}
