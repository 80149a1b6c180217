// SPDX-License-Identifier: MIT
// Copyright (c) 2026 ecucodec
// Source: github.com/ecucodec/lzss

package lzss

// LZSS format constants: the defaults from which the tree sentinel, window
// size and encoded-length bias are all derived.

// Default tunables. IndexBits/LengthBits may be overridden per Encoder/Decoder
// via EncoderOptions/DecoderOptions; everything else in this block is derived
// from whichever pair is actually in effect (see params.go).
const (
	defaultIndexBits  = 10 // bits used to encode a window position
	defaultLengthBits = 4  // bits used to encode an encoded match length
)

// Absolute bounds this implementation supports for IndexBits/LengthBits.
// Below the minimum the tree sentinel and literal flag bit stop making sense;
// above the maximum the window/tree arrays would be impractically large for
// an embedded target.
const (
	minIndexBits  = 6
	maxIndexBits  = 16
	minLengthBits = 1
	maxLengthBits = 8
)

// unused is the sentinel for "no child / no parent" and also the value of
// the window position that signals end-of-stream. Both conventions rely on
// position 0 never being a live tree member (the encoder starts at window
// position 1, and addNode refuses position 0).
const unused = 0

// endOfStream is the value written in the match-position field to signal
// termination. It is always 0 regardless of IndexBits/LengthBits.
const endOfStream = 0
